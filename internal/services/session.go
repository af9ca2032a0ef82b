package service

import (
	"sync"

	"github.com/leaflane/storefront-platform/internal/models"
)

// SessionCartStore keeps one cart per browsing session. The mutex guards the
// session map; the cart itself carries its own lock, since requests with the
// same session ID can execute on concurrent handlers.
type SessionCartStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewSessionCartStore() *SessionCartStore {
	return &SessionCartStore{carts: make(map[string]*models.Cart)}
}

func (s *SessionCartStore) GetOrCreate(sessionID string) *models.Cart {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}

	cart = models.NewCart(sessionID)
	s.carts[sessionID] = cart

	return cart
}
