// Package services contains application services for the VoltShop client.
// This file defines the authentication service: login against the backend,
// logout, and a local session check.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/tokens"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token pair and persist it.
//   - Logout: forget both tokens. The local cart is kept.
//   - IsLoggedIn: report whether a refresh token is stored.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

type authService struct {
	client api.Client
	tokens *tokens.Store
}

func NewAuthService(client api.Client, tokens *tokens.Store) AuthService {
	return &authService{client: client, tokens: tokens}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	pair, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.tokens.Save(ctx, pair); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Purge(ctx)
}

func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	return a.tokens.HasSession(ctx)
}
