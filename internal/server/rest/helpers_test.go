package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/voltshop/internal/logging"
	"github.com/dmitrijs2005/voltshop/internal/server/catalog"
	"github.com/dmitrijs2005/voltshop/internal/server/config"
	"github.com/dmitrijs2005/voltshop/internal/server/messages"
	"github.com/dmitrijs2005/voltshop/internal/server/orders"
	"github.com/dmitrijs2005/voltshop/internal/server/refreshtokens"
	"github.com/dmitrijs2005/voltshop/internal/server/users"
	"github.com/stretchr/testify/require"
)

const (
	demoUser     = "demo"
	demoPassword = "demo-password"
)

type testEnv struct {
	srv   *httptest.Server
	users *users.Service
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	us := users.NewService(users.NewMemoryRepository(), refreshtokens.NewMemoryRepository(), logging.NewNop(), cfg)
	cs := catalog.NewService(catalog.DemoProducts())
	ms := messages.NewService()

	u, err := us.Register(context.Background(), demoUser, demoPassword)
	require.NoError(t, err)
	ms.Welcome(context.Background(), u.ID)

	s := NewServer(cfg.Addr, cfg.BasePath, logging.NewNop(), us, cs, orders.NewService(cs), ms)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{srv: ts, users: us, cfg: cfg}
}

func (e *testEnv) url(path string) string {
	return e.srv.URL + e.cfg.BasePath + path
}

// call sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil). It returns the status code.
func (e *testEnv) call(t *testing.T, method, path, token string, in, out any) int {
	t.Helper()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.url(path), body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (e *testEnv) login(t *testing.T) users.TokenPair {
	t.Helper()
	var pair users.TokenPair
	code := e.call(t, http.MethodPost, "/auth/token/", "", loginRequest{Username: demoUser, Password: demoPassword}, &pair)
	require.Equal(t, http.StatusOK, code)
	return pair
}
