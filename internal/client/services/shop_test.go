package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/cart"
	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShop(fc *fakeClient) (ShopService, *cart.Cart) {
	c := cart.New(storage.NewMemoryRepository())
	return NewShopService(fc, c), c
}

func TestShopService_AddToCart(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{ProductRet: &models.Product{Name: "Volt Buds", Price: 9900}}
	svc, _ := newShop(fc)

	p, err := svc.AddToCart(ctx, "p2", 2)
	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)

	items, total, err := svc.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.CartItem{ProductID: "p2", Name: "Volt Buds", Price: 9900, Quantity: 2}, items[0])
	assert.Equal(t, models.Money(19800), total)

	require.NoError(t, svc.RemoveFromCart(ctx, "p2"))
	items, _, err = svc.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShopService_AddToCart_UnknownProduct(t *testing.T) {
	svc, _ := newShop(&fakeClient{})
	_, err := svc.AddToCart(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestShopService_Checkout(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		ProductRet:    &models.Product{Name: "Volt Phone X", Price: 69900},
		PlaceOrderRet: &models.Order{ID: "o1", Status: "placed"},
	}
	svc, c := newShop(fc)

	_, err := svc.Checkout(ctx, "1 Main St", "card")
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, fc.Calls)

	_, err = svc.AddToCart(ctx, "p1", 1)
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, "1 Main St", "card")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, models.OrderRequest{
		Lines:           []models.OrderLine{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: "1 Main St",
		PaymentMethod:   "card",
	}, fc.LastOrder)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShopService_Checkout_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		ProductRet:    &models.Product{Name: "Volt Phone X", Price: 69900},
		PlaceOrderErr: api.ErrUnavailable,
	}
	svc, c := newShop(fc)
	_, err := svc.AddToCart(ctx, "p1", 1)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "1 Main St", "card")
	require.ErrorIs(t, err, api.ErrUnavailable)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestShopService_Home(t *testing.T) {
	fc := &fakeClient{
		ProductsRet: []models.Product{{ID: "p1"}},
		MessagesRet: []models.Message{{ID: "m1"}},
	}
	svc, _ := newShop(fc)

	h, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fc.ProductsRet, h.Products)
	assert.Equal(t, fc.MessagesRet, h.Messages)
	assert.Equal(t, 2, fc.Calls)
}

func TestShopService_Home_Error(t *testing.T) {
	boom := errors.New("boom")
	svc, _ := newShop(&fakeClient{MessagesErr: boom})

	_, err := svc.Home(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestShopService_PassThrough(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		ProductsRet: []models.Product{{ID: "p1"}},
		OrdersRet:   []models.Order{{ID: "o1"}},
	}
	svc, _ := newShop(fc)

	products, err := svc.Products(ctx, "phone")
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "phone", fc.LastQuery)

	orders, err := svc.Orders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	m, err := svc.SendMessage(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", m.Body)
}
