package service

import (
	"context"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/stats"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/models"
)

// dashboardService fetches the statistics projection of entries and reduces
// it in memory with package stats.
type dashboardService struct {
	entryRepository store.EntryRepository
	userRepository  store.UserRepository

	rates           models.EarningRates
	leaderboardSize int
	loc             *time.Location
	now             func() time.Time

	logger *logger.Logger
}

func NewDashboardService(entryRepository store.EntryRepository, userRepository store.UserRepository, cfg *config.StructuredConfig, logger *logger.Logger) DashboardService {
	return &dashboardService{
		entryRepository: entryRepository,
		userRepository:  userRepository,
		rates:           ratesFrom(cfg.Business),
		leaderboardSize: stats.ClampLeaderboardSize(cfg.Business.LeaderboardSize),
		loc:             cfg.App.Location(),
		now:             time.Now,
		logger:          logger,
	}
}

func (d *dashboardService) GlobalStats(ctx context.Context) (models.GlobalStats, error) {
	entries, err := d.entryRepository.FetchStats(ctx, models.EntryFilter{})
	if err != nil {
		return models.GlobalStats{}, err
	}

	total, active, err := d.userRepository.CountUsers(ctx)
	if err != nil {
		return models.GlobalStats{}, err
	}

	submitters := make(map[string]struct{})
	for _, e := range entries {
		submitters[models.NormalizeUsername(e.CreatedBy)] = struct{}{}
	}

	return models.GlobalStats{
		Summary:     stats.Summarize(entries, d.now(), d.loc),
		TotalUsers:  total,
		ActiveUsers: active,
		Submitters:  len(submitters),
	}, nil
}

func (d *dashboardService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = d.leaderboardSize
	}

	entries, err := d.entryRepository.FetchStats(ctx, models.EntryFilter{})
	if err != nil {
		return nil, err
	}

	return stats.Leaderboard(entries, stats.ClampLeaderboardSize(limit)), nil
}

func (d *dashboardService) UserStats(ctx context.Context, username string) (models.UserStats, error) {
	return userStats(ctx, d.entryRepository, username, d.rates, d.now(), d.loc)
}

// Earnings lists the payout of every submitter, highest first.
func (d *dashboardService) Earnings(ctx context.Context) (models.EarningsReport, error) {
	entries, err := d.entryRepository.FetchStats(ctx, models.EntryFilter{})
	if err != nil {
		return models.EarningsReport{}, err
	}

	report := models.EarningsReport{
		Rates: d.rates,
		Users: stats.EarningsByUser(entries, d.rates, d.loc),
	}
	for _, u := range report.Users {
		report.Total += u.Total
	}
	return report, nil
}

// userStats reduces the entries of a single submitter.
func userStats(ctx context.Context, repo store.EntryRepository, username string, rates models.EarningRates, now time.Time, loc *time.Location) (models.UserStats, error) {
	username = models.NormalizeUsername(username)

	entries, err := repo.FetchStats(ctx, models.EntryFilter{CreatedBy: username})
	if err != nil {
		return models.UserStats{}, err
	}

	return models.UserStats{
		Username: username,
		Summary:  stats.Summarize(entries, now, loc),
		Earnings: stats.Earnings(entries, rates, loc),
		Rates:    rates,
	}, nil
}

func ratesFrom(cfg config.Business) models.EarningRates {
	return models.EarningRates{
		PerEntry:      cfg.EntryRate,
		PerWorkingDay: cfg.WorkingDayRate(),
	}
}
