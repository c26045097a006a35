// Package catalog serves the product catalog of the development backend.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/voltshop/internal/common"
)

// Product prices are in cents.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
}

type Service struct {
	mu       sync.RWMutex
	products map[string]*Product
}

func NewService(products []Product) *Service {
	s := &Service{products: make(map[string]*Product, len(products))}
	for _, p := range products {
		s.products[p.ID] = &p
	}
	return s
}

// List returns products whose name, brand or category contains query
// (case-insensitive), ordered by id. An empty query lists everything.
func (s *Service) List(_ context.Context, query string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if q == "" || matches(p, q) {
			out = append(out, *p)
		}
	}
	slices.SortFunc(out, func(a, b Product) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (s *Service) Get(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *p
	return &out, nil
}

// Reserve takes quantities[id] units of each product out of stock. Either
// every line is reserved or none is.
func (s *Service) Reserve(_ context.Context, quantities map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, qty := range quantities {
		p, ok := s.products[id]
		if !ok {
			return fmt.Errorf("product %s: %w", id, common.ErrNotFound)
		}
		if qty <= 0 || p.Stock < qty {
			return fmt.Errorf("product %s: insufficient stock: %w", id, common.ErrValidation)
		}
	}
	for id, qty := range quantities {
		s.products[id].Stock -= qty
	}
	return nil
}

func matches(p *Product, q string) bool {
	for _, f := range []string{p.Name, p.Brand, p.Category} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
