package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/models"
)

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet models.TokenPair
	LoginErr error

	ProductsRet []models.Product
	ProductsErr error

	ProductRet *models.Product
	ProductErr error

	PlaceOrderRet *models.Order
	PlaceOrderErr error

	OrdersRet []models.Order
	OrdersErr error

	MessagesRet []models.Message
	MessagesErr error

	SendMessageErr error

	LastLoginUser     string
	LastLoginPassword string
	LastQuery         string
	LastOrder         models.OrderRequest
	LastMessage       string
	Calls             int
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) call() {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()
}

func (f *fakeClient) Login(_ context.Context, username, password string) (models.TokenPair, error) {
	f.call()
	f.LastLoginUser, f.LastLoginPassword = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Products(_ context.Context, query string) ([]models.Product, error) {
	f.call()
	f.mu.Lock()
	f.LastQuery = query
	f.mu.Unlock()
	return f.ProductsRet, f.ProductsErr
}

func (f *fakeClient) Product(_ context.Context, id string) (*models.Product, error) {
	f.call()
	if f.ProductErr != nil {
		return nil, f.ProductErr
	}
	if f.ProductRet == nil {
		return nil, api.ErrNotFound
	}
	p := *f.ProductRet
	p.ID = id
	return &p, nil
}

func (f *fakeClient) PlaceOrder(_ context.Context, req models.OrderRequest) (*models.Order, error) {
	f.call()
	f.LastOrder = req
	return f.PlaceOrderRet, f.PlaceOrderErr
}

func (f *fakeClient) Orders(context.Context) ([]models.Order, error) {
	f.call()
	return f.OrdersRet, f.OrdersErr
}

func (f *fakeClient) Messages(context.Context) ([]models.Message, error) {
	f.call()
	return f.MessagesRet, f.MessagesErr
}

func (f *fakeClient) SendMessage(_ context.Context, body string) (*models.Message, error) {
	f.call()
	f.LastMessage = body
	if f.SendMessageErr != nil {
		return nil, f.SendMessageErr
	}
	return &models.Message{ID: "m1", From: "me", Body: body}, nil
}
