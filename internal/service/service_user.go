package service

import (
	"context"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

func (u *userService) SetActive(ctx context.Context, actor models.Claims, id int64, active bool) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.UserID == id {
		return ErrCannotModifySelf
	}

	if err := u.userRepository.SetActive(ctx, id, active); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", id).
		Bool("is_active", active).
		Str("by", actor.Username).
		Msg("user active flag changed")
	return nil
}

func (u *userService) DeleteUser(ctx context.Context, actor models.Claims, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.UserID == id {
		return ErrCannotModifySelf
	}

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Str("by", actor.Username).Msg("user deleted")
	return nil
}
