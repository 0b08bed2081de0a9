package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when metrics are built without a meter.
var ErrMeterNil = errors.New("meter is nil")

const brokerageMeterName = "crown-backend/brokerage"

// BrokerageMetrics records sales, listing changes and copy generation.
// A nil *BrokerageMetrics is valid and records nothing.
type BrokerageMetrics struct {
	carsSold        *Counter
	saleRevenue     metric.Float64Counter
	listingEvents   *Counter
	copyGenerations *Counter
	copyDuration    *Histogram
}

// NewBrokerageMetrics registers the brokerage instruments on meter.
func NewBrokerageMetrics(meter metric.Meter) (*BrokerageMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	carsSold, err := NewCounter(meter, "crown_cars_sold_total", "Number of cars sold", "{car}")
	if err != nil {
		return nil, err
	}
	saleRevenue, err := meter.Float64Counter("crown_sales_revenue_total",
		metric.WithDescription("Sum of sale prices"),
		metric.WithUnit("{USD}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter crown_sales_revenue_total: %w", err)
	}
	listingEvents, err := NewCounter(meter, "crown_listing_events_total", "Fleet, seller and buyer changes by event type", "{event}")
	if err != nil {
		return nil, err
	}
	copyGenerations, err := NewCounter(meter, "crown_copy_generations_total", "Marketing copy requests by outcome", "{request}")
	if err != nil {
		return nil, err
	}
	copyDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "crown_copy_generation_duration_seconds",
		Description: "Time spent producing marketing copy",
		Unit:        "s",
		Boundaries:  GenerationDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &BrokerageMetrics{
		carsSold:        carsSold,
		saleRevenue:     saleRevenue,
		listingEvents:   listingEvents,
		copyGenerations: copyGenerations,
		copyDuration:    copyDuration,
	}, nil
}

// NewBrokerageMetricsFromProvider is a shortcut over mp.Meter.
func NewBrokerageMetricsFromProvider(mp *MeterProvider) (*BrokerageMetrics, error) {
	return NewBrokerageMetrics(mp.Meter(brokerageMeterName))
}

// RecordSale counts one sale and adds its price to revenue.
func (m *BrokerageMetrics) RecordSale(ctx context.Context, carMake string, price decimal.Decimal) {
	if m == nil {
		return
	}
	m.carsSold.Inc(ctx, AttrCarMake.String(carMake))
	m.saleRevenue.Add(ctx, price.InexactFloat64(), metric.WithAttributes(AttrCarMake.String(carMake)))
}

// RecordListingEvent counts one domain event by type.
func (m *BrokerageMetrics) RecordListingEvent(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.listingEvents.Inc(ctx, AttrEventType.String(eventType))
}

// RecordCopyGeneration counts one copy request and its duration by source.
func (m *BrokerageMetrics) RecordCopyGeneration(ctx context.Context, source string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.copyGenerations.Inc(ctx, AttrCopySource.String(source))
	m.copyDuration.RecordDuration(ctx, elapsed, AttrCopySource.String(source))
}
