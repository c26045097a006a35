// Package models holds the client-side data shapes exchanged with the
// storefront backend and kept in local storage.
package models

import (
	"fmt"
	"time"
)

// Money is an amount in the smallest currency unit (cents).
type Money int64

func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign, m = "-", -m
	}
	return fmt.Sprintf("%s%d.%02d", sign, m/100, m%100)
}

// TokenPair is what the backend returns on login and refresh.
// Refresh is empty when the backend does not rotate refresh tokens.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
}

// CartItem is one line of the local cart persisted under the local_cart key.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

func (c CartItem) Subtotal() Money { return c.Price * Money(c.Quantity) }

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderRequest struct {
	Lines           []OrderLine `json:"lines"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
}

type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Lines     []OrderLine `json:"lines"`
	Total     Money       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
