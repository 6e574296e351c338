package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"orderdesk/internal/core/ports"
)

// Broker is the publishing side of Client.
type Broker interface {
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

// ChangePublisher sends OrderChangedEvent to the orders topic exchange with the routing
// key "orders.<action>". Events carry the instance name as their source.
type ChangePublisher struct {
	broker   Broker
	exchange string
	source   string
}

func NewChangePublisher(broker Broker, exchange, source string) *ChangePublisher {
	if exchange == "" {
		exchange = DefaultOrdersExchange
	}
	return &ChangePublisher{broker: broker, exchange: exchange, source: source}
}

func (p *ChangePublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	if event.Source == "" {
		event.Source = p.source
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode order change: %w", err)
	}

	if err = p.broker.Publish(ctx, p.exchange, RoutingKey(event.Action), body); err != nil {
		return fmt.Errorf("publish order change %s: %w", event.OrderID, err)
	}
	return nil
}

func RoutingKey(action ports.ChangeAction) string {
	return "orders." + string(action)
}
