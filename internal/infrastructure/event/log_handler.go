package event

import (
	"context"

	"github.com/crown/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LogHandler is a wildcard handler that writes every event to the log
type LogHandler struct {
	logger *zap.Logger
}

// NewLogHandler creates a LogHandler
func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// Handle logs the event envelope
func (h *LogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Debug("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns nil: the handler receives every event
func (h *LogHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LogHandler)(nil)
