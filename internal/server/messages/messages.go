// Package messages keeps the per-user inbox of the development backend.
package messages

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/google/uuid"
)

const (
	SupportSender  = "VoltShop"
	welcomeMessage = "Welcome to VoltShop! Reply here if you need help with an order."
)

type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	mu     sync.RWMutex
	byUser map[string][]Message
}

func NewService() *Service {
	return &Service{byUser: make(map[string][]Message)}
}

// Welcome puts the greeting from support into a new user's inbox.
func (s *Service) Welcome(_ context.Context, userID string) {
	s.add(userID, SupportSender, welcomeMessage)
}

func (s *Service) Send(_ context.Context, userID, from, body string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is empty: %w", common.ErrValidation)
	}
	m := s.add(userID, from, body)
	return &m, nil
}

func (s *Service) List(_ context.Context, userID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.byUser[userID]))
	copy(out, s.byUser[userID])
	return out
}

func (s *Service) add(userID, from, body string) Message {
	m := Message{ID: uuid.NewString(), From: from, Body: body, CreatedAt: time.Now().UTC()}

	s.mu.Lock()
	s.byUser[userID] = append(s.byUser[userID], m)
	s.mu.Unlock()

	return m
}
