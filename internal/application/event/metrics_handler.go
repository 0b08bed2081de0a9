package event

import (
	"context"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/shared"
	"github.com/crown/backend/internal/infrastructure/telemetry"
)

// MetricsHandler turns domain events into brokerage metrics.
// It subscribes to every event; sales also feed the revenue counters.
type MetricsHandler struct {
	metrics *telemetry.BrokerageMetrics
}

// NewMetricsHandler creates a MetricsHandler. A nil metrics value records nothing.
func NewMetricsHandler(metrics *telemetry.BrokerageMetrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Handle records the event
func (h *MetricsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.metrics.RecordListingEvent(ctx, event.EventType())
	if sold, ok := event.(*fleet.CarSoldEvent); ok {
		h.metrics.RecordSale(ctx, sold.Make, sold.Price)
	}
	return nil
}

// EventTypes returns nil so the handler sees every event
func (h *MetricsHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*MetricsHandler)(nil)
