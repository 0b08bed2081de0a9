package middleware

import (
	"net/http"

	"github.com/crown/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// SkipPaths are served without a server span
	SkipPaths []string
}

// DefaultTracingConfig returns the default tracing configuration
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: telemetry.TracerName,
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}
}

// Tracing returns tracing middleware with the default configuration
func Tracing() gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig wraps otelgin, which names server spans after the
// route pattern. Requests to SkipPaths get no span.
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	base := otelgin.Middleware(cfg.ServiceName)

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		base(c)
	}
}

// SpanEnricher tags the server span opened by Tracing with the request ID
// and marks it as failed on 4xx/5xx. It must run after Tracing.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}
		if id := GetRequestID(c); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}

		c.Next()

		markSpanStatus(span, c.Writer.Status())
	}
}

func markSpanStatus(span trace.Span, status int) {
	if status < http.StatusBadRequest {
		return
	}
	msg := "Client Error"
	switch {
	case status >= http.StatusInternalServerError:
		msg = "Internal Server Error"
	case status == http.StatusNotFound:
		msg = "Not Found"
	case status == http.StatusConflict:
		msg = "Conflict"
	case status == http.StatusTooManyRequests:
		msg = "Too Many Requests"
	}
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attribute.Int("http.status_code", status))
}
