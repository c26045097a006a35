// Package orders places and lists orders on the development backend.
package orders

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/dmitrijs2005/voltshop/internal/server/catalog"
	"github.com/google/uuid"
)

const StatusPlaced = "placed"

type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceRequest struct {
	Lines           []Line `json:"lines"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

type Order struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Lines           []Line    `json:"lines"`
	Total           int64     `json:"total"`
	ShippingAddress string    `json:"-"`
	PaymentMethod   string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

type Service struct {
	catalog *catalog.Service

	mu     sync.RWMutex
	byUser map[string][]Order
}

func NewService(c *catalog.Service) *Service {
	return &Service{catalog: c, byUser: make(map[string][]Order)}
}

func (s *Service) Place(ctx context.Context, userID string, req PlaceRequest) (*Order, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("order has no lines: %w", common.ErrValidation)
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, fmt.Errorf("shipping address is required: %w", common.ErrValidation)
	}

	quantities := make(map[string]int, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: quantity must be positive: %w", l.ProductID, common.ErrValidation)
		}
		quantities[l.ProductID] += l.Quantity
	}

	var total int64
	for id, qty := range quantities {
		p, err := s.catalog.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, common.ErrValidation)
		}
		total += p.Price * int64(qty)
	}

	if err := s.catalog.Reserve(ctx, quantities); err != nil {
		return nil, err
	}

	o := Order{
		ID:              uuid.NewString(),
		Status:          StatusPlaced,
		Lines:           req.Lines,
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       time.Now().UTC(),
	}

	s.mu.Lock()
	s.byUser[userID] = append(s.byUser[userID], o)
	s.mu.Unlock()

	return &o, nil
}

// List returns the user's orders, oldest first.
func (s *Service) List(_ context.Context, userID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.byUser[userID]))
	copy(out, s.byUser[userID])
	return out
}
