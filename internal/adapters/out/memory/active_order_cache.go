// Package memory holds process-local implementations of the transient stores: the
// active-order cache used when no Redis is configured, and the staging cart store.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ActiveOrderCache is a mutex-guarded snapshot of the order store.
type ActiveOrderCache struct {
	mu     sync.RWMutex
	loaded bool
	orders map[string]*order.Order
}

func NewActiveOrderCache() *ActiveOrderCache {
	return &ActiveOrderCache{orders: make(map[string]*order.Order)}
}

func (c *ActiveOrderCache) Load(_ context.Context) ([]*order.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, ports.ErrCacheMiss
	}

	orders := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		orders = append(orders, o)
	}
	// map iteration is random; ties on creation time are broken by id
	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		if cmp := b.CreatedAt().Compare(a.CreatedAt()); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})

	return orders, nil
}

func (c *ActiveOrderCache) Store(_ context.Context, orders []*order.Order) error {
	snapshot := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		snapshot[o.ID().String()] = o
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = snapshot
	c.loaded = true
	return nil
}

func (c *ActiveOrderCache) Put(_ context.Context, o *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		c.orders[o.ID().String()] = o
	}
	return nil
}

func (c *ActiveOrderCache) Remove(_ context.Context, id kernel.OrderID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.orders, id.String())
	return nil
}

func (c *ActiveOrderCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = make(map[string]*order.Order)
	c.loaded = false
	return nil
}
