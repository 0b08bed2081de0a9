// Package copywriter talks to the Google Generative Language API.
package copywriter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/crown/backend/internal/domain/marketing"
	"github.com/crown/backend/internal/infrastructure/telemetry"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/"
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrRequestFailed wraps error answers from the API
	ErrRequestFailed = errors.New("copywriter: request failed")
	// ErrUnavailable wraps transport failures
	ErrUnavailable = errors.New("copywriter: service unavailable")
)

// Config holds the Gemini client settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient implements marketing.CopyWriter with the genai SDK
type GeminiClient struct {
	config     Config
	httpClient *http.Client
	genai      *genai.Client
	initErr    error
	logger     *zap.Logger
}

var _ marketing.CopyWriter = (*GeminiClient)(nil)

// NewGeminiClient creates a client. An empty APIKey yields a client whose
// Write always returns marketing.ErrCopyWriterNotConfigured.
func NewGeminiClient(cfg Config, logger *zap.Logger) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = marketing.DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &GeminiClient{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("copywriter"),
	}
	if !c.Configured() {
		return c
	}

	// Backend is pinned so GOOGLE_GENAI_USE_VERTEXAI cannot reroute requests
	c.genai, c.initErr = genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if c.initErr != nil {
		c.logger.Error("Gemini client init failed", zap.Error(c.initErr))
	}
	return c
}

// Configured reports whether an API key is set
func (c *GeminiClient) Configured() bool {
	return strings.TrimSpace(c.config.APIKey) != ""
}

// Model returns the model name requests are sent to
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Write sends prompt in a single attempt and returns the text parts of the
// first candidate. An empty string is a valid result.
func (c *GeminiClient) Write(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", marketing.ErrCopyWriterNotConfigured
	}
	if c.initErr != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, c.initErr)
	}

	ctx, span := telemetry.StartSpan(ctx, "copywriter.generate_content",
		telemetry.WithSpanKind(trace.SpanKindClient),
		telemetry.WithAttribute("copy.model", c.config.Model),
	)
	defer span.End()

	resp, err := c.genai.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		err = classify(err)
		telemetry.RecordError(span, err)
		c.logger.Warn("generateContent failed", zap.String("model", c.config.Model), zap.Error(err))
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	telemetry.SetAttributes(span, "copy.length", len(text))
	telemetry.SetOK(span)
	return text, nil
}

// classify maps SDK errors onto ErrRequestFailed and ErrUnavailable
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: HTTP %d %s: %s", ErrRequestFailed, apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("copywriter: generate content: %w", err)
}
