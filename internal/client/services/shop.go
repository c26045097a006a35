package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/cart"
	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"golang.org/x/sync/errgroup"
)

var ErrEmptyCart = errors.New("cart is empty")

// Home is what the CLI shows right after login.
type Home struct {
	Products []models.Product
	Messages []models.Message
}

// ShopService covers catalog browsing, the local cart, checkout, orders and
// account messages.
type ShopService interface {
	Products(ctx context.Context, query string) ([]models.Product, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	AddToCart(ctx context.Context, productID string, qty int) (*models.Product, error)
	Cart(ctx context.Context) ([]models.CartItem, models.Money, error)
	RemoveFromCart(ctx context.Context, productID string) error
	Checkout(ctx context.Context, address, payment string) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Messages(ctx context.Context) ([]models.Message, error)
	SendMessage(ctx context.Context, body string) (*models.Message, error)
	Home(ctx context.Context) (*Home, error)
}

type shopService struct {
	client api.Client
	cart   *cart.Cart
}

func NewShopService(client api.Client, cart *cart.Cart) ShopService {
	return &shopService{client: client, cart: cart}
}

func (s *shopService) Products(ctx context.Context, query string) ([]models.Product, error) {
	return s.client.Products(ctx, query)
}

func (s *shopService) Product(ctx context.Context, id string) (*models.Product, error) {
	return s.client.Product(ctx, id)
}

// AddToCart fetches the product so the cart line carries its current name
// and price.
func (s *shopService) AddToCart(ctx context.Context, productID string, qty int) (*models.Product, error) {
	p, err := s.client.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.cart.Add(ctx, *p, qty); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *shopService) Cart(ctx context.Context) ([]models.CartItem, models.Money, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, cart.Total(items), nil
}

func (s *shopService) RemoveFromCart(ctx context.Context, productID string) error {
	return s.cart.Remove(ctx, productID)
}

// Checkout places an order for the cart contents. The cart is cleared only
// after the backend accepted the order.
func (s *shopService) Checkout(ctx context.Context, address, payment string) (*models.Order, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.OrderRequest{ShippingAddress: address, PaymentMethod: payment}
	for _, it := range items {
		req.Lines = append(req.Lines, models.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := s.client.PlaceOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return order, fmt.Errorf("order %s placed but cart not cleared: %w", order.ID, err)
	}
	return order, nil
}

func (s *shopService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.client.Orders(ctx)
}

func (s *shopService) Messages(ctx context.Context) ([]models.Message, error) {
	return s.client.Messages(ctx)
}

func (s *shopService) SendMessage(ctx context.Context, body string) (*models.Message, error) {
	return s.client.SendMessage(ctx, body)
}

// Home loads the catalog and the inbox concurrently. Both requests share the
// dispatcher, so an expired token is refreshed once for the pair.
func (s *shopService) Home(ctx context.Context) (*Home, error) {
	var h Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.client.Products(gctx, "")
		h.Products = p
		return err
	})
	g.Go(func() error {
		m, err := s.client.Messages(gctx)
		h.Messages = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &h, nil
}
