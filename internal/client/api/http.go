package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/voltshop/internal/client/models"
)

const maxDetailBytes = 512

type HTTPClient struct {
	baseURL string
	plain   Doer
	authed  Doer
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL. plain is used
// for unauthenticated calls, authed for everything else.
func NewHTTPClient(baseURL string, plain, authed Doer) *HTTPClient {
	if plain == nil {
		plain = http.DefaultClient
	}
	if authed == nil {
		authed = plain
	}
	return &HTTPClient{baseURL: strings.TrimSuffix(baseURL, "/"), plain: plain, authed: authed}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageRequest struct {
	Body string `json:"body"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.call(ctx, c.plain, http.MethodPost, "/auth/token/", loginRequest{Username: username, Password: password}, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.Access == "" {
		return models.TokenPair{}, errors.New("login response has no access token")
	}
	return pair, nil
}

func (c *HTTPClient) Products(ctx context.Context, query string) ([]models.Product, error) {
	path := "/products/"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	var products []models.Product
	if err := c.call(ctx, c.authed, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := c.call(ctx, c.authed, http.MethodGet, "/products/"+url.PathEscape(id)+"/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var o models.Order
	if err := c.call(ctx, c.authed, http.MethodPost, "/orders/", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.call(ctx, c.authed, http.MethodGet, "/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) Messages(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	if err := c.call(ctx, c.authed, http.MethodGet, "/messages/", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, body string) (*models.Message, error) {
	var m models.Message
	if err := c.call(ctx, c.authed, http.MethodPost, "/messages/", messageRequest{Body: body}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) call(ctx context.Context, d Doer, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.Do(req)
	if err != nil {
		return mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// mapError wraps transport failures in ErrUnavailable and leaves everything
// else (auth failures, caller cancellation) as is.
func mapError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
	se := &StatusError{Code: resp.StatusCode}

	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
		se.Detail = payload.Detail
	} else {
		se.Detail = strings.TrimSpace(string(raw))
	}
	return se
}
