// Package refreshtokens stores the opaque rotating refresh tokens of the
// development backend.
package refreshtokens

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	// Consume atomically revokes token and returns its record as it was
	// before. A token revoked earlier is returned with
	// common.ErrRefreshTokenReused; an unknown token yields common.ErrNotFound.
	Consume(ctx context.Context, token string) (*RefreshToken, error)
	RevokeAllForUser(ctx context.Context, userID string) error
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
