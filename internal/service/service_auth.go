package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/internal/validators"
	"github.com/MKhiriev/selisih-berat/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; access and refresh tokens are
// HS256 JWTs signed with separate keys.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	accessTokenKey       string
	refreshTokenKey      string
	tokenIssuer          string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	bcryptCost           int

	// admin bootstrap account, see EnsureAdmin
	adminUsername string
	adminPassword string
	adminFullName string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		validator:            validators.NewUserValidator(),
		accessTokenKey:       cfg.AccessTokenKey,
		refreshTokenKey:      cfg.RefreshTokenKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		bcryptCost:           cfg.BcryptCost,
		adminUsername:        cfg.AdminUsername,
		adminPassword:        cfg.AdminPassword,
		adminFullName:        cfg.AdminFullName,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register creates a regular account and signs it in.
//
// The username is stored lowercase; a case-insensitive collision yields
// store.ErrUsernameAlreadyExists.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.User{}, models.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username: models.NormalizeUsername(req.Username),
		Password: hash,
		Email:    strings.TrimSpace(req.Email),
		FullName: strings.TrimSpace(req.FullName),
		Role:     models.RoleUser,
		IsActive: true,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	pair, err := a.issueTokens(user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, pair, nil
}

// Login authenticates an active account and stamps its last login.
//
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, models.NormalizeUsername(req.Username))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, req.Password); err != nil {
		log.Warn().Str("username", user.Username).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, models.TokenPair{}, ErrAccountInactive
	}

	now := a.now()
	if err = a.userRepository.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// login still succeeds
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLogin = &now
	}

	pair, err := a.issueTokens(user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The account must
// still exist and be active.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenKey, a.tokenIssuer, models.RefreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("invalid refresh token")
		return models.User{}, models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.Claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Msg("user search by id failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return models.User{}, models.TokenPair{}, ErrAccountInactive
	}

	pair, err := a.issueTokens(user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

// ParseAccessToken validates signature, issuer, expiry and token type.
// Any failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenKey, a.tokenIssuer, models.AccessToken)
	if err != nil {
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims, nil
}

func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err = utils.CheckPassword(user.Password, req.OldPassword); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := utils.HashPassword(req.NewPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("failed to hash password")
		return fmt.Errorf("hash password: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	log.Info().Int64("user_id", userID).Msg("password changed")
	return nil
}

func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return a.userRepository.UpdateProfile(ctx, userID, trimmed(req.Email), trimmed(req.FullName))
}

// EnsureAdmin bootstraps the first admin account. It is a no-op when an
// admin already exists or no admin password is configured.
func (a *authService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.adminPassword == "" {
		log.Warn().Msg("admin password is not configured, skipping admin bootstrap")
		return nil
	}

	exists, err := a.userRepository.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := utils.HashPassword(a.adminPassword, a.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Username: models.NormalizeUsername(a.adminUsername),
		Password: hash,
		FullName: a.adminFullName,
		Role:     models.RoleAdmin,
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Info().Int64("user_id", admin.ID).Str("username", admin.Username).Msg("admin account created")
	return nil
}

// issueTokens signs an access/refresh pair for user.
func (a *authService) issueTokens(user models.User) (models.TokenPair, error) {
	claims := models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
	}

	claims.Type = models.AccessToken
	access, err := utils.GenerateJWTToken(claims, a.tokenIssuer, a.accessTokenDuration, a.accessTokenKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	claims.Type = models.RefreshToken
	refresh, err := utils.GenerateJWTToken(claims, a.tokenIssuer, a.refreshTokenDuration, a.refreshTokenKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
