// Package redis keeps the active-order snapshot in Redis so that every instance behind the
// load balancer serves the same board.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "orderdesk"
	DefaultTTL       = 10 * time.Minute

	maxWatchRetries = 3
)

// ActiveOrderCache stores one hash field per order plus a marker key that tells an
// empty snapshot apart from a missing one.
type ActiveOrderCache struct {
	client    goredis.UniversalClient
	ordersKey string
	loadedKey string
	ttl       time.Duration
	logger    *slog.Logger
}

func NewActiveOrderCache(client goredis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) *ActiveOrderCache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ActiveOrderCache{
		client:    client,
		ordersKey: prefix + ":active_orders",
		loadedKey: prefix + ":active_orders:loaded",
		ttl:       ttl,
		logger:    logger.With("component", "redis-active-order-cache"),
	}
}

// Load returns the snapshot newest first. A field that no longer decodes is dropped from
// the result and logged.
func (c *ActiveOrderCache) Load(ctx context.Context) ([]*order.Order, error) {
	loaded, err := c.client.Exists(ctx, c.loadedKey).Result()
	if err != nil {
		return nil, fmt.Errorf("check snapshot marker: %w", err)
	}
	if loaded == 0 {
		return nil, ports.ErrCacheMiss
	}

	fields, err := c.client.HGetAll(ctx, c.ordersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	orders := make([]*order.Order, 0, len(fields))
	for id, payload := range fields {
		o, decodeErr := decode(payload)
		if decodeErr != nil {
			c.logger.WarnContext(ctx, "dropping undecodable cache entry", "order_id", id, "error", decodeErr)
			continue
		}
		orders = append(orders, o)
	}

	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		if cmp := b.CreatedAt().Compare(a.CreatedAt()); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})

	return orders, nil
}

func (c *ActiveOrderCache) Store(ctx context.Context, orders []*order.Order) error {
	values := make([]any, 0, 2*len(orders))
	for _, o := range orders {
		payload, err := json.Marshal(snapshotOf(o))
		if err != nil {
			return fmt.Errorf("encode order %s: %w", o.ID(), err)
		}
		values = append(values, o.ID().String(), payload)
	}

	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, c.ordersKey)
		if len(values) > 0 {
			pipe.HSet(ctx, c.ordersKey, values...)
			pipe.Expire(ctx, c.ordersKey, c.ttl)
		}
		pipe.Set(ctx, c.loadedKey, time.Now().UTC().Format(time.RFC3339), c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}

// Put writes o only while the snapshot marker exists. The WATCH on the marker keeps a
// concurrent Invalidate from being undone by a late Put.
func (c *ActiveOrderCache) Put(ctx context.Context, o *order.Order) error {
	payload, err := json.Marshal(snapshotOf(o))
	if err != nil {
		return fmt.Errorf("encode order %s: %w", o.ID(), err)
	}

	put := func(tx *goredis.Tx) error {
		loaded, err := tx.Exists(ctx, c.loadedKey).Result()
		if err != nil {
			return err
		}
		if loaded == 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, c.ordersKey, o.ID().String(), payload)
			return nil
		})
		return err
	}

	for range maxWatchRetries {
		err = c.client.Watch(ctx, put, c.loadedKey)
		if !errors.Is(err, goredis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("put order %s: %w", o.ID(), err)
	}

	return nil
}

func (c *ActiveOrderCache) Remove(ctx context.Context, id kernel.OrderID) error {
	if err := c.client.HDel(ctx, c.ordersKey, id.String()).Err(); err != nil {
		return fmt.Errorf("remove order %s: %w", id, err)
	}
	return nil
}

func (c *ActiveOrderCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.loadedKey, c.ordersKey).Err(); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

func decode(payload string) (*order.Order, error) {
	var s orderSnapshot
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, err
	}
	return s.restore()
}
