// Package rabbitmq publishes order change events and user notifications to RabbitMQ.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultOrdersExchange        = "orders_topic"
	DefaultNotificationsExchange = "notifications_fanout"
	DefaultCacheQueue            = "orderdesk.cache"

	// OrdersBindingKey matches every order change routing key.
	OrdersBindingKey = "orders.#"
)

// Topology names the exchanges and the queue this service declares.
type Topology struct {
	OrdersExchange        string
	NotificationsExchange string
	CacheQueue            string
}

func DefaultTopology() Topology {
	return Topology{
		OrdersExchange:        DefaultOrdersExchange,
		NotificationsExchange: DefaultNotificationsExchange,
		CacheQueue:            DefaultCacheQueue,
	}
}

// Client owns one connection with a confirm-mode channel for publishing and a separate
// channel for consuming.
type Client struct {
	conn    *amqp.Connection
	pubCh   *amqp.Channel
	consCh  *amqp.Channel
	acks    <-chan amqp.Confirmation
	mu      sync.Mutex
	timeout time.Duration
}

// Dial connects to url and enables publisher confirms.
func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	pubCh, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	if err = pubCh.Confirm(false); err != nil {
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	consCh, err := conn.Channel()
	if err != nil {
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("open consume channel: %w", err)
	}

	return &Client{
		conn:    conn,
		pubCh:   pubCh,
		consCh:  consCh,
		acks:    pubCh.NotifyPublish(make(chan amqp.Confirmation, 1)),
		timeout: 5 * time.Second,
	}, nil
}

// Declare creates the exchanges and the cache refresh queue bound to every order change.
func (c *Client) Declare(t Topology) error {
	if err := c.pubCh.ExchangeDeclare(t.OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", t.OrdersExchange, err)
	}
	if err := c.pubCh.ExchangeDeclare(t.NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", t.NotificationsExchange, err)
	}
	if _, err := c.consCh.QueueDeclare(t.CacheQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", t.CacheQueue, err)
	}
	if err := c.consCh.QueueBind(t.CacheQueue, OrdersBindingKey, t.OrdersExchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", t.CacheQueue, err)
	}
	return nil
}

// Publish sends body and waits for the broker confirm. Calls are serialized.
func (c *Client) Publish(ctx context.Context, exchange, key string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.pubCh.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return err
	}

	select {
	case conf := <-c.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish NACK from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume starts delivering messages from queue with manual acknowledgement.
func (c *Client) Consume(queue, consumer string, prefetch int) (<-chan amqp.Delivery, error) {
	if err := c.consCh.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	return c.consCh.Consume(queue, consumer, false, false, false, false, nil)
}

func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() error {
	return errors.Join(c.consCh.Close(), c.pubCh.Close(), c.conn.Close())
}
