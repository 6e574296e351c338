// Package notify holds the process-local toast sinks.
package notify

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/ports"
)

// LogNotifier writes every notification to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, message, "outcome", "success")
}

func (n *LogNotifier) Failure(ctx context.Context, message string, cause error) {
	n.logger.ErrorContext(ctx, message, "outcome", "failure", "error", cause)
}

// MultiNotifier fans one notification out to several sinks in order.
type MultiNotifier []ports.Notifier

func NewMultiNotifier(sinks ...ports.Notifier) MultiNotifier {
	return MultiNotifier(sinks)
}

func (m MultiNotifier) Success(ctx context.Context, message string) {
	for _, sink := range m {
		sink.Success(ctx, message)
	}
}

func (m MultiNotifier) Failure(ctx context.Context, message string, cause error) {
	for _, sink := range m {
		sink.Failure(ctx, message, cause)
	}
}

// LogChangePublisher stands in for the broker when the service runs alone: change events
// are only logged at debug level.
type LogChangePublisher struct {
	logger *slog.Logger
}

func NewLogChangePublisher(logger *slog.Logger) *LogChangePublisher {
	return &LogChangePublisher{logger: logger.With("component", "change-log")}
}

func (p *LogChangePublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	p.logger.DebugContext(ctx, "order changed",
		"order_id", event.OrderID, "action", string(event.Action), "status", event.Status)
	return nil
}
