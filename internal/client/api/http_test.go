package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/client/auth"
	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/dmitrijs2005/voltshop/internal/client/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bearerDoer stands in for the auth dispatcher.
type bearerDoer struct {
	c     *http.Client
	token string
}

func (b bearerDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.c.Do(req)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
}

func newTestClient(t *testing.T, mux *http.ServeMux) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api/", srv.Client(), bearerDoer{c: srv.Client(), token: "tkn"})
}

func TestHTTPClient_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/token/", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "demo" || req.Password != "demo-password" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, models.TokenPair{Access: "a1", Refresh: "r1"})
	})
	c := newTestClient(t, mux)

	pair, err := c.Login(context.Background(), "demo", "demo-password")
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{Access: "a1", Refresh: "r1"}, pair)

	_, err = c.Login(context.Background(), "demo", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "invalid credentials", se.Detail)
}

func TestHTTPClient_LoginWithoutAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"refresh": "r1"})
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), "demo", "demo-password")
	assert.Error(t, err)
}

func TestHTTPClient_Products(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", Name: "Volt Phone X", Brand: "Volt", Category: "phones", Price: 69900, Stock: 3},
		{ID: "p2", Name: "Volt Buds", Brand: "Volt", Category: "audio", Price: 9900, Stock: 10},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		if r.URL.Query().Get("q") == "buds" {
			writeJSON(w, http.StatusOK, catalog[1:])
			return
		}
		writeJSON(w, http.StatusOK, catalog)
	})
	mux.HandleFunc("GET /api/products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		for _, p := range catalog {
			if p.ID == r.PathValue("id") {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "product not found"})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	all, err := c.Products(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, catalog, all)

	filtered, err := c.Products(ctx, "buds")
	require.NoError(t, err)
	assert.Equal(t, catalog[1:], filtered)

	p, err := c.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, catalog[0], *p)

	_, err = c.Product(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPClient_Orders(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	var placed []models.Order
	mux.HandleFunc("POST /api/orders/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		var req models.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		o := models.Order{ID: "o1", Status: "placed", Lines: req.Lines, Total: 1000, CreatedAt: created}
		placed = append(placed, o)
		writeJSON(w, http.StatusCreated, o)
	})
	mux.HandleFunc("GET /api/orders/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		writeJSON(w, http.StatusOK, placed)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	lines := []models.OrderLine{{ProductID: "p1", Quantity: 2}}
	o, err := c.PlaceOrder(ctx, models.OrderRequest{Lines: lines, ShippingAddress: "1 Main St", PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, lines, o.Lines)

	orders, err := c.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, created.Equal(orders[0].CreatedAt))
}

func TestHTTPClient_Messages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/messages/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		writeJSON(w, http.StatusOK, []models.Message{{ID: "m1", From: "support", Body: "welcome"}})
	})
	mux.HandleFunc("POST /api/messages/", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		var req messageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, models.Message{ID: "m2", From: "demo", Body: req.Body})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	msgs, err := c.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "welcome", msgs[0].Body)

	m, err := c.SendMessage(ctx, "where is my order?")
	require.NoError(t, err)
	assert.Equal(t, "where is my order?", m.Body)
}

func TestHTTPClient_Errors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /api/messages/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "forbidden"})
	})
	mux.HandleFunc("GET /api/products/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.Orders(ctx)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "boom", se.Detail)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	_, err = c.Messages(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Products(ctx, "")
	require.Error(t, err)
	assert.NotErrorAs(t, err, &se)
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api"
	srv.Close()

	c := NewHTTPClient(base, nil, nil)
	_, err := c.Orders(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Orders(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_AuthRequiredPassesThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "token is invalid or expired"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store := tokens.NewStore(storage.NewMemoryRepository())
	require.NoError(t, store.Save(context.Background(), models.TokenPair{Access: "expired", Refresh: "r1"}))
	refresher := auth.NewRefresher(srv.Client(), srv.URL+"/api", store, nil)
	d := auth.NewDispatcher(store, refresher, auth.WithHTTPClient(srv.Client()))
	c := NewHTTPClient(srv.URL+"/api", srv.Client(), d)

	_, err := c.Orders(context.Background())
	require.ErrorIs(t, err, auth.ErrAuthRequired)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
