package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/mock"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminActor = models.Claims{UserID: 1, Username: "admin", Role: models.RoleAdmin}
	userActor  = models.Claims{UserID: 3, Username: "budi", Role: models.RoleUser}
)

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().ListUsers(ctx).Return([]models.User{{ID: 1}, {ID: 3}}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().SetActive(ctx, int64(3), false).Return(nil)
	require.NoError(t, svc.SetActive(ctx, adminActor, 3, false))

	assert.ErrorIs(t, svc.SetActive(ctx, adminActor, 1, false), ErrCannotModifySelf)
	assert.ErrorIs(t, svc.SetActive(ctx, userActor, 4, false), ErrForbidden)

	repo.EXPECT().SetActive(ctx, int64(99), true).Return(store.ErrUserNotFound)
	assert.ErrorIs(t, svc.SetActive(ctx, adminActor, 99, true), store.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().DeleteUser(ctx, int64(3)).Return(nil)
	require.NoError(t, svc.DeleteUser(ctx, adminActor, 3))

	assert.ErrorIs(t, svc.DeleteUser(ctx, adminActor, 1), ErrCannotModifySelf)
	assert.ErrorIs(t, svc.DeleteUser(ctx, userActor, 1), ErrForbidden)
}
