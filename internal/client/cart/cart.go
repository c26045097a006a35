// Package cart keeps the shopping cart in local storage under the
// local_cart key as a JSON array of items. Every mutation rewrites the whole
// array; the last write wins.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/voltshop/internal/client/models"
	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/dmitrijs2005/voltshop/internal/common"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

type Cart struct {
	repo storage.Repository
}

func New(repo storage.Repository) *Cart {
	return &Cart{repo: repo}
}

// Items returns the cart contents in insertion order. A missing key is an
// empty cart.
func (c *Cart) Items(ctx context.Context) ([]models.CartItem, error) {
	raw, err := c.repo.Get(ctx, common.CartKey)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// Add puts qty units of p into the cart, merging with an existing line.
func (c *Cart) Add(ctx context.Context, p models.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	items, err := c.Items(ctx)
	if err != nil {
		return err
	}
	if i := index(items, p.ID); i >= 0 {
		items[i].Quantity += qty
		items[i].Name, items[i].Price = p.Name, p.Price
	} else {
		items = append(items, models.CartItem{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty})
	}
	return c.save(ctx, items)
}

// SetQuantity replaces the quantity of a line; qty <= 0 removes it.
func (c *Cart) SetQuantity(ctx context.Context, productID string, qty int) error {
	items, err := c.Items(ctx)
	if err != nil {
		return err
	}
	i := index(items, productID)
	if i < 0 {
		return fmt.Errorf("product %s: %w", productID, common.ErrNotFound)
	}
	if qty <= 0 {
		items = slices.Delete(items, i, i+1)
	} else {
		items[i].Quantity = qty
	}
	return c.save(ctx, items)
}

func (c *Cart) Remove(ctx context.Context, productID string) error {
	return c.SetQuantity(ctx, productID, 0)
}

func (c *Cart) Clear(ctx context.Context) error {
	return c.repo.Delete(ctx, common.CartKey)
}

func (c *Cart) Total(ctx context.Context) (models.Money, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Total sums price*quantity over items.
func Total(items []models.CartItem) models.Money {
	var sum models.Money
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

func (c *Cart) save(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return c.Clear(ctx)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.repo.Set(ctx, common.CartKey, raw); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func index(items []models.CartItem, productID string) int {
	return slices.IndexFunc(items, func(it models.CartItem) bool { return it.ProductID == productID })
}
