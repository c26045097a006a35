package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/dmitrijs2005/voltshop/internal/client/tokens"
	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret")

func mintAt(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        uuid.NewString(),
	}).SignedString(testKey)
	require.NoError(t, err)
	return tok
}

func mint(t *testing.T, ttl time.Duration) string {
	t.Helper()
	return mintAt(t, time.Now().Add(ttl))
}

func mintClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	return tok
}

// rawToken assembles a token from the given header and claims without
// signing it.
func rawToken(t *testing.T, header, claims map[string]any) string {
	t.Helper()
	seg := func(v map[string]any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return seg(header) + "." + seg(claims) + ".c2ln"
}

// newTokenStore returns a store holding only the non-empty tokens given.
func newTokenStore(t *testing.T, access, refresh string) *tokens.Store {
	t.Helper()
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	if access != "" {
		require.NoError(t, repo.Set(ctx, common.AccessTokenKey, []byte(access)))
	}
	if refresh != "" {
		require.NoError(t, repo.Set(ctx, common.RefreshTokenKey, []byte(refresh)))
	}
	return tokens.NewStore(repo)
}

func requireTokens(t *testing.T, s *tokens.Store, access, refresh string) {
	t.Helper()
	ctx := context.Background()
	a, err := s.AccessToken(ctx)
	require.NoError(t, err)
	r, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, access, a, "access token")
	require.Equal(t, refresh, r, "refresh token")
}
