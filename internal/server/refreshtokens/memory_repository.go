package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/common"
)

type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]*RefreshToken
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]*RefreshToken), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.tokens[hashToken(token)] = &RefreshToken{
		Hash:      hashToken(token),
		UserID:    userID,
		Expires:   now.Add(validity),
		CreatedAt: now,
	}
	return nil
}

func (r *MemoryRepository) Consume(_ context.Context, token string) (*RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.tokens[hashToken(token)]
	if !ok {
		return nil, common.ErrNotFound
	}
	before := *rt
	if rt.Revoked {
		return &before, common.ErrRefreshTokenReused
	}
	rt.Revoked = true
	return &before, nil
}

func (r *MemoryRepository) RevokeAllForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rt := range r.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}
