package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// providerShutdownTimeout bounds each provider's final flush
const providerShutdownTimeout = 10 * time.Second

// newResource describes this service to every exporter
func newResource(serviceName, serviceVersion string) (*resource.Resource, error) {
	if serviceVersion == "" {
		serviceVersion = "dev"
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// shutdownProvider flushes one signal pipeline within providerShutdownTimeout
func shutdownProvider(ctx context.Context, signal string, logger *zap.Logger, shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, providerShutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		logger.Error("Telemetry shutdown failed", zap.String("signal", signal), zap.Error(err))
		return fmt.Errorf("shutdown %s provider: %w", signal, err)
	}
	logger.Info("Telemetry flushed", zap.String("signal", signal))
	return nil
}
