package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/voltshop/internal/client/models"
)

// Client is the storefront backend contract.
type Client interface {
	Login(ctx context.Context, username, password string) (models.TokenPair, error)
	Products(ctx context.Context, query string) ([]models.Product, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Messages(ctx context.Context) ([]models.Message, error)
	SendMessage(ctx context.Context, body string) (*models.Message, error)
}

// Doer sends a prepared request. *http.Client and *auth.Dispatcher satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
