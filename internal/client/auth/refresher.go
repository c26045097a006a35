package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"github.com/dmitrijs2005/voltshop/internal/logging"
)

// RefreshPath is appended to the API base URL.
const RefreshPath = "/auth/token/refresh/"

// TokenStore is the persistence the refresher and dispatcher rely on.
// *tokens.Store implements it.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, p models.TokenPair) error
	Purge(ctx context.Context) error
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Refresher struct {
	httpClient *http.Client
	endpoint   string
	tokens     TokenStore
	logger     logging.Logger
}

func NewRefresher(httpClient *http.Client, baseURL string, tokens TokenStore, logger logging.Logger) *Refresher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Refresher{
		httpClient: httpClient,
		endpoint:   strings.TrimSuffix(baseURL, "/") + RefreshPath,
		tokens:     tokens,
		logger:     logger,
	}
}

// Refresh exchanges the stored refresh token for a new access token and
// persists the result. On any failure both stored tokens are purged before
// the error is returned.
func (r *Refresher) Refresh(ctx context.Context) (access string, err error) {
	defer func() {
		if err == nil {
			return
		}
		if purgeErr := r.tokens.Purge(context.WithoutCancel(ctx)); purgeErr != nil {
			r.logger.Error(ctx, "failed to purge tokens", "error", purgeErr)
			err = errors.Join(err, fmt.Errorf("purge tokens: %w", purgeErr))
		}
	}()

	refresh, err := r.tokens.RefreshToken(ctx)
	if err != nil {
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		return "", ErrNoRefreshToken
	}

	pair, err := r.exchange(ctx, refresh)
	if err != nil {
		return "", err
	}

	if err := r.tokens.Save(ctx, pair); err != nil {
		return "", fmt.Errorf("save tokens: %w", err)
	}
	return pair.Access, nil
}

func (r *Refresher) exchange(ctx context.Context, refresh string) (models.TokenPair, error) {
	body, err := json.Marshal(refreshRequest{Refresh: refresh})
	if err != nil {
		return models.TokenPair{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.TokenPair{}, fmt.Errorf("%w: %s", ErrRefreshRejected, resp.Status)
	}

	var rr refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: decode response: %w", ErrRefreshRejected, err)
	}
	if rr.Access == "" {
		return models.TokenPair{}, fmt.Errorf("%w: response has no access token", ErrRefreshRejected)
	}
	return models.TokenPair{Access: rr.Access, Refresh: rr.Refresh}, nil
}
