// Package tokens keeps the access/refresh token pair in local storage.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/dmitrijs2005/voltshop/internal/common"
)

// Store is a typed view over the access_token and refresh_token keys.
// Reads of an absent token return "" with a nil error.
type Store struct {
	repo storage.Repository
}

func NewStore(repo storage.Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, common.AccessTokenKey)
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, common.RefreshTokenKey)
}

// Save writes the pair atomically. An empty Refresh keeps the stored one.
func (s *Store) Save(ctx context.Context, p models.TokenPair) error {
	values := map[string][]byte{common.AccessTokenKey: []byte(p.Access)}
	if p.Refresh != "" {
		values[common.RefreshTokenKey] = []byte(p.Refresh)
	}
	return s.repo.SetMany(ctx, values)
}

// Purge deletes both tokens together.
func (s *Store) Purge(ctx context.Context) error {
	return s.repo.Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
}

// HasSession reports whether a refresh token is stored.
func (s *Store) HasSession(ctx context.Context) (bool, error) {
	rt, err := s.RefreshToken(ctx)
	return rt != "", err
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
