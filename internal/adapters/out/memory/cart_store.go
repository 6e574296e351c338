package memory

import (
	"context"
	"fmt"
	"sync"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// CartStore keeps carts by id. Carts are cloned on the way in and out so that callers
// never share a mutable cart.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cart.Cart)}
}

func (s *CartStore) Add(_ context.Context, c *cart.Cart) error {
	clone, err := validClone(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[c.ID().String()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("cart", fmt.Errorf("cart %s already exists", c.ID().String()))
	}
	s.carts[c.ID().String()] = clone
	return nil
}

// Update checks presence and writes under one lock, so a cart deleted after the caller
// read it stays deleted.
func (s *CartStore) Update(_ context.Context, c *cart.Cart) error {
	clone, err := validClone(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[c.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("cart", c.ID().String())
	}
	s.carts[c.ID().String()] = clone
	return nil
}

func (s *CartStore) Get(_ context.Context, id kernel.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	stored, ok := s.carts[id.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", id.String())
	}
	return cloneCart(stored)
}

func (s *CartStore) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id.String())
	return nil
}

func validClone(c *cart.Cart) (*cart.Cart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return cloneCart(c)
}

func cloneCart(c *cart.Cart) (*cart.Cart, error) {
	return cart.RestoreCart(c.ID(), c.Header(), c.Lines())
}
