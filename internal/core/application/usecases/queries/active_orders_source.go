package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// OrderLister is the read side of ports.OrderRepository.
type OrderLister interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// ActiveOrdersSource reads the cached snapshot and falls back to the order store on a
// miss, filling the cache with the result. A failing cache degrades to direct store reads.
type ActiveOrdersSource struct {
	cache  ports.ActiveOrderCache
	store  OrderLister
	logger *slog.Logger
}

func NewActiveOrdersSource(cache ports.ActiveOrderCache, store OrderLister, logger *slog.Logger) *ActiveOrdersSource {
	return &ActiveOrdersSource{
		cache:  cache,
		store:  store,
		logger: logger.With("component", "active-orders-source"),
	}
}

func (s *ActiveOrdersSource) Orders(ctx context.Context) ([]*order.Order, error) {
	orders, err := s.cache.Load(ctx)
	if err == nil {
		return orders, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "active order cache unavailable", "error", err)
	}

	orders, err = s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	if err = s.cache.Store(ctx, orders); err != nil {
		s.logger.WarnContext(ctx, "failed to fill active order cache", "error", err)
	}

	return orders, nil
}
