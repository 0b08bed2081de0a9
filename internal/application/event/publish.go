// Package event holds application-side event plumbing shared by the services.
package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/crown/backend/internal/domain/shared"
)

// PublishPending publishes the aggregate's pending events and clears them.
// Publish errors are logged; the mutation that raised the events has already
// been applied and is not rolled back.
func PublishPending(ctx context.Context, publisher shared.EventPublisher, aggregate shared.AggregateRoot, logger *zap.Logger) {
	events := aggregate.GetDomainEvents()
	aggregate.ClearDomainEvents()
	Publish(ctx, publisher, logger, events...)
}

// Publish sends events that are not attached to an aggregate, such as removals.
func Publish(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil && logger != nil {
		logger.Warn("Failed to publish domain events",
			zap.Int("count", len(events)),
			zap.String("first_event_type", events[0].EventType()),
			zap.Error(err),
		)
	}
}
