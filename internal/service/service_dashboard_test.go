package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/mock"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardSvc(t *testing.T, ctrl *gomock.Controller) (*dashboardService, *mock.MockEntryRepository, *mock.MockUserRepository) {
	t.Helper()
	entries := mock.NewMockEntryRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewDashboardService(entries, users, testConfig(), logger.Nop()).(*dashboardService)
	svc.loc = time.UTC
	svc.now = func() time.Time { return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC) }
	return svc, entries, users
}

func dashboardRows() []models.EntryStat {
	day := func(d int) time.Time { return time.Date(2026, time.October, d, 9, 0, 0, 0, time.UTC) }
	s := func(v float64) *float64 { return &v }
	return []models.EntryStat{
		{CreatedAt: day(14), CreatedBy: "budi", Selisih: s(0.5), Status: models.StatusVerified},
		{CreatedAt: day(13), CreatedBy: "budi", Selisih: s(0.25), Status: models.StatusSubmitted},
		{CreatedAt: day(13), CreatedBy: "ani", Selisih: s(1.25), Status: models.StatusSubmitted},
		{CreatedAt: day(2), CreatedBy: "ani", Selisih: nil, Status: models.StatusRejected},
		{CreatedAt: day(1), CreatedBy: "citra", Selisih: s(0), Status: models.StatusVerified},
	}
}

func TestDashboardService_GlobalStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, users := newTestDashboardSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{}).Return(dashboardRows(), nil)
	users.EXPECT().CountUsers(ctx).Return(int64(5), int64(4), nil)

	got, err := svc.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 1, got.Today)
	assert.Equal(t, 2, got.Verified)
	assert.Equal(t, 0.5, got.AverageSelisih)
	assert.Equal(t, int64(5), got.TotalUsers)
	assert.Equal(t, int64(4), got.ActiveUsers)
	assert.Equal(t, 3, got.Submitters)
}

func TestDashboardService_GlobalStats_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, users := newTestDashboardSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{}).Return([]models.EntryStat{}, nil)
	users.EXPECT().CountUsers(ctx).Return(int64(0), int64(0), nil)

	got, err := svc.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GlobalStats{}, got)
}

func TestDashboardService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestDashboardSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{}).Return(dashboardRows(), nil).Times(2)

	board, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	for i, row := range board {
		assert.Equal(t, i+1, row.Rank)
	}
	assert.Equal(t, 2, board[0].Count)

	board, err = svc.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, board, 1)
}

func TestDashboardService_UserStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestDashboardSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{CreatedBy: "ani"}).Return(dashboardRows()[2:4], nil)

	got, err := svc.UserStats(ctx, " ANI ")
	require.NoError(t, err)
	assert.Equal(t, "ani", got.Username)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 1.25, got.Summary.AverageSelisih)
	assert.Equal(t, int64(2*500+2*50000), got.Earnings.Total)
	assert.Equal(t, int64(500), got.Rates.PerEntry)
}

func TestDashboardService_Earnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestDashboardSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{}).Return(dashboardRows(), nil)

	report, err := svc.Earnings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, report.Users)

	var sum int64
	for _, u := range report.Users {
		sum += u.Total
	}
	assert.Equal(t, sum, report.Total)
	assert.Equal(t, int64(5*500+5*50000), report.Total)

	entries.EXPECT().FetchStats(ctx, models.EntryFilter{}).Return(nil, errors.New("db down"))
	_, err = svc.Earnings(ctx)
	assert.Error(t, err)
}
