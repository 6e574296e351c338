package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// Notification is the message broadcast on the notifications fanout exchange.
type Notification struct {
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	Error      string    `json:"error,omitempty"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FanoutNotifier forwards toasts to every subscriber of the notifications exchange.
// Broker failures are logged, never returned.
type FanoutNotifier struct {
	broker   Broker
	exchange string
	source   string
	clock    kernel.Clock
	logger   *slog.Logger
}

func NewFanoutNotifier(broker Broker, exchange, source string, clock kernel.Clock, logger *slog.Logger) *FanoutNotifier {
	if exchange == "" {
		exchange = DefaultNotificationsExchange
	}
	return &FanoutNotifier{
		broker:   broker,
		exchange: exchange,
		source:   source,
		clock:    clock,
		logger:   logger.With("component", "fanout-notifier"),
	}
}

func (n *FanoutNotifier) Success(ctx context.Context, message string) {
	n.send(ctx, Notification{Level: "success", Message: message})
}

func (n *FanoutNotifier) Failure(ctx context.Context, message string, cause error) {
	notification := Notification{Level: "error", Message: message}
	if cause != nil {
		notification.Error = cause.Error()
	}
	n.send(ctx, notification)
}

func (n *FanoutNotifier) send(ctx context.Context, notification Notification) {
	notification.Source = n.source
	notification.OccurredAt = n.clock.Now()

	body, err := json.Marshal(notification)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to encode notification", "error", err)
		return
	}

	if err = n.broker.Publish(ctx, n.exchange, "", body); err != nil {
		n.logger.WarnContext(ctx, "failed to publish notification", "message", notification.Message, "error", err)
	}
}
