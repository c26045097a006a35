// Package users handles accounts of the development backend: registration,
// password login and refresh token rotation.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/dmitrijs2005/voltshop/internal/logging"
	"github.com/dmitrijs2005/voltshop/internal/server/auth"
	"github.com/dmitrijs2005/voltshop/internal/server/config"
	"github.com/dmitrijs2005/voltshop/internal/server/refreshtokens"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is what login and refresh hand out. The JSON shape is the one
// clients expect.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type Service struct {
	repo                         Repository
	refreshTokenRepo             refreshtokens.Repository
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
}

func NewService(repo Repository, refreshTokenRepo refreshtokens.Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{UserName: username, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) Login(ctx context.Context, userName, password string) (*TokenPair, error) {

	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}

	return s.generateTokenPair(ctx, user.ID)
}

// RefreshToken rotates refreshToken and returns a fresh pair. Presenting a
// token that was already rotated revokes every refresh token of its owner.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {

	token, err := s.refreshTokenRepo.Consume(ctx, refreshToken)
	switch {
	case errors.Is(err, common.ErrRefreshTokenReused):
		s.logger.Warn(ctx, "refresh token reuse detected, revoking session family", "user_id", token.UserID)
		if err := s.refreshTokenRepo.RevokeAllForUser(ctx, token.UserID); err != nil {
			return nil, common.ErrInternal
		}
		return nil, common.ErrRefreshTokenReused
	case errors.Is(err, common.ErrNotFound):
		return nil, common.ErrInvalidToken
	case err != nil:
		return nil, common.ErrInternal
	}

	if !token.Expires.After(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	return s.generateTokenPair(ctx, token.UserID)
}

// UserIDFromAccessToken verifies an access token.
func (s *Service) UserIDFromAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *Service) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrInternal
	}
	if err := s.refreshTokenRepo.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
