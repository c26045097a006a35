package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/dmitrijs2005/voltshop/internal/logging"
)

// DefaultRefreshTimeout bounds a single refresh call.
const DefaultRefreshTimeout = 10 * time.Second

// TokenRefresher obtains a fresh access token. *Refresher implements it.
type TokenRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

type refreshState int

const (
	stateIdle refreshState = iota
	stateRefreshing
)

func (s refreshState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRefreshing:
		return "refreshing"
	default:
		return fmt.Sprintf("refreshState(%d)", int(s))
	}
}

// flight is the pending result of one refresh. done is closed after token
// and err are set; neither changes afterwards.
type flight struct {
	done  chan struct{}
	token string
	err   error
}

// Dispatcher sends authenticated requests and coordinates token refreshes.
// It is safe for concurrent use.
type Dispatcher struct {
	client         *http.Client
	tokens         TokenStore
	refresher      TokenRefresher
	validator      *Validator
	logger         logging.Logger
	refreshTimeout time.Duration

	mu      sync.Mutex
	state   refreshState
	pending *flight
}

type Option func(*Dispatcher)

func WithHTTPClient(c *http.Client) Option {
	return func(d *Dispatcher) { d.client = c }
}

func WithValidator(v *Validator) Option {
	return func(d *Dispatcher) { d.validator = v }
}

func WithLogger(l logging.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithRefreshTimeout bounds each refresh call. Zero means no bound.
func WithRefreshTimeout(t time.Duration) Option {
	return func(d *Dispatcher) { d.refreshTimeout = t }
}

func NewDispatcher(tokens TokenStore, refresher TokenRefresher, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client:         http.DefaultClient,
		tokens:         tokens,
		refresher:      refresher,
		validator:      NewValidator(DefaultExpiryMargin),
		logger:         logging.NewNop(),
		refreshTimeout: DefaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("module", "auth")
	return d
}

// Do sends req with a bearer token, refreshing first when the stored token
// is missing or about to expire. A 401 triggers one refresh and one replay;
// the replayed response is returned as is. As with http.Client.Do, the
// request body is always closed and the caller closes the response body.
func (d *Dispatcher) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	body, err := replayableBody(req)
	if err != nil {
		return nil, err
	}

	token, err := d.validToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := d.send(req, body, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	discard(resp)

	d.logger.Debug(ctx, "request unauthorized, refreshing", "method", req.Method, "path", req.URL.Path)
	token, err = d.awaitRefresh(ctx, token)
	if err != nil {
		return nil, err
	}
	return d.send(req, body, token)
}

func (d *Dispatcher) validToken(ctx context.Context) (string, error) {
	token, err := d.tokens.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	if !d.validator.Expired(token) {
		return token, nil
	}
	d.logger.Debug(ctx, "access token missing or expiring")
	return d.awaitRefresh(ctx, token)
}

// awaitRefresh joins the in-flight refresh or starts one. stale is the token
// the caller found unusable; if the store already holds a different valid
// token, another refresh has completed since and that token is returned
// without refreshing again.
func (d *Dispatcher) awaitRefresh(ctx context.Context, stale string) (string, error) {
	d.mu.Lock()
	f := d.pending
	if d.state == stateIdle {
		cur, err := d.tokens.AccessToken(ctx)
		if err == nil && cur != stale && !d.validator.Expired(cur) {
			d.mu.Unlock()
			return cur, nil
		}
		f = d.startRefresh(ctx)
	}
	d.mu.Unlock()

	select {
	case <-f.done:
		if f.err != nil {
			return "", fmt.Errorf("%w: %w", ErrAuthRequired, f.err)
		}
		return f.token, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// startRefresh must be called with d.mu held.
func (d *Dispatcher) startRefresh(ctx context.Context) *flight {
	f := &flight{done: make(chan struct{})}
	d.state, d.pending = stateRefreshing, f

	rctx := context.WithoutCancel(ctx)
	cancel := func() {}
	if d.refreshTimeout > 0 {
		rctx, cancel = context.WithTimeout(rctx, d.refreshTimeout)
	}

	go func() {
		defer cancel()
		d.logger.Info(rctx, "refreshing access token")
		token, err := d.refresher.Refresh(rctx)
		if err != nil {
			d.logger.Warn(rctx, "token refresh failed", "error", err)
		} else {
			d.logger.Info(rctx, "access token refreshed")
		}
		d.settle(f, token, err)
	}()
	return f
}

func (d *Dispatcher) settle(f *flight, token string, err error) {
	d.mu.Lock()
	f.token, f.err = token, err
	d.state, d.pending = stateIdle, nil
	d.mu.Unlock()
	close(f.done)
}

func (d *Dispatcher) currentState() refreshState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dispatcher) send(req *http.Request, body func() (io.ReadCloser, error), token string) (*http.Response, error) {
	out := req.Clone(req.Context())
	if body != nil {
		rc, err := body()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		out.Body = rc
	}
	out.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return d.client.Do(out)
}

// replayableBody returns a function yielding a fresh copy of the request
// body, or nil if there is no body. Bodies without GetBody are buffered.
// Either way req.Body itself is closed: every send uses a copy.
func replayableBody(req *http.Request) (func() (io.ReadCloser, error), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	if req.GetBody != nil {
		_ = req.Body.Close()
		return req.GetBody, nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
