// Package marketing generates listing copy and applies it to cars.
package marketing

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	appfleet "github.com/crown/backend/internal/application/fleet"
	"github.com/crown/backend/internal/domain/marketing"
	"github.com/crown/backend/internal/infrastructure/telemetry"
)

// DefaultCacheTTL applies when no TTL is configured
const DefaultCacheTTL = 24 * time.Hour

// GenerateCopyRequest names the vehicle to write copy for
type GenerateCopyRequest struct {
	Make  string `json:"make" binding:"required,max=100"`
	Model string `json:"model" binding:"required,max=100"`
	Year  int    `json:"year" binding:"required,gte=1885,lte=2100"`
}

// CopyResponse is the generated text. Source tells generated text from fallbacks.
type CopyResponse struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// CarCopyResponse is the result of generating a description for a stored car
type CarCopyResponse struct {
	CarID   string                `json:"car_id"`
	Text    string                `json:"text"`
	Source  string                `json:"source"`
	Applied bool                  `json:"applied"`
	Car     *appfleet.CarResponse `json:"car,omitempty"`
}

// CarDescriptions is the slice of the inventory the copy service needs
type CarDescriptions interface {
	GetByID(ctx context.Context, id string) (*appfleet.CarDetailResponse, error)
	UpdateDescription(ctx context.Context, id, description string) (*appfleet.CarResponse, error)
}

// CopyServiceConfig holds the collaborators of a CopyService
type CopyServiceConfig struct {
	Writer   marketing.CopyWriter
	Cache    marketing.CopyCache // optional
	CacheTTL time.Duration
	Cars     CarDescriptions
	Metrics  *telemetry.BrokerageMetrics // optional
	Logger   *zap.Logger
}

// CopyService produces marketing copy. Generation never fails: a missing key,
// an empty answer or a failed call each yield a fixed fallback text.
type CopyService struct {
	writer   marketing.CopyWriter
	cache    marketing.CopyCache
	cacheTTL time.Duration
	cars     CarDescriptions
	metrics  *telemetry.BrokerageMetrics
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCopyService creates a new CopyService
func NewCopyService(cfg CopyServiceConfig) *CopyService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &CopyService{
		writer:   cfg.Writer,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		cars:     cfg.Cars,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		inFlight: make(map[string]struct{}),
	}
}

// Generate writes copy for the vehicle
func (s *CopyService) Generate(ctx context.Context, req GenerateCopyRequest) *CopyResponse {
	ctx, span := telemetry.StartServiceSpan(ctx, "CopyService", "Generate",
		telemetry.WithAttribute(telemetry.SpanAttrCarMake, req.Make),
	)
	defer span.End()

	start := time.Now()
	result := s.generate(ctx, marketing.VehicleRef{Make: req.Make, Model: req.Model, Year: req.Year})
	s.metrics.RecordCopyGeneration(ctx, string(result.Source), time.Since(start))

	telemetry.SetAttributes(span, telemetry.SpanAttrCopySource, string(result.Source))
	telemetry.SetOK(span)
	return &CopyResponse{Text: result.Text, Source: string(result.Source)}
}

func (s *CopyService) generate(ctx context.Context, ref marketing.VehicleRef) marketing.Copy {
	if s.writer == nil || !s.writer.Configured() {
		return marketing.Copy{Text: marketing.MissingKeyCopy, Source: marketing.CopySourceMissingKey}
	}

	key := ref.CacheKey()
	if s.cache != nil {
		text, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("Copy cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return marketing.Copy{Text: text, Source: marketing.CopySourceCache}
		}
	}

	text, err := s.writer.Write(ctx, ref.Prompt())
	if err != nil {
		if errors.Is(err, marketing.ErrCopyWriterNotConfigured) {
			return marketing.Copy{Text: marketing.MissingKeyCopy, Source: marketing.CopySourceMissingKey}
		}
		s.logger.Warn("Copy generation failed, using fallback",
			zap.String("vehicle", key),
			zap.Error(err),
		)
		return marketing.Copy{Text: ref.FallbackCopy(), Source: marketing.CopySourceFallback}
	}
	if text == "" {
		return marketing.Copy{Text: marketing.EmptyCopy, Source: marketing.CopySourceEmpty}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.logger.Warn("Copy cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return marketing.Copy{Text: text, Source: marketing.CopySourceGenerated}
}

// GenerateForCar writes copy for a stored car and saves it as the description.
// Only one generation per car may run at a time; a concurrent request gets
// marketing.ErrGenerationInProgress. If the car is removed while the text is
// being written, the text is still returned with Applied false.
func (s *CopyService) GenerateForCar(ctx context.Context, carID string) (*CarCopyResponse, error) {
	car, err := s.cars.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if !s.acquire(carID) {
		return nil, marketing.ErrGenerationInProgress
	}
	defer s.release(carID)

	result := s.Generate(ctx, GenerateCopyRequest{Make: car.Make, Model: car.Model, Year: car.Year})

	updated, err := s.cars.UpdateDescription(ctx, carID, result.Text)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		s.logger.Info("Car removed during copy generation", zap.String("car_id", carID))
	}

	return &CarCopyResponse{
		CarID:   carID,
		Text:    result.Text,
		Source:  result.Source,
		Applied: updated != nil,
		Car:     updated,
	}, nil
}

// IsGenerating reports whether a generation for the car is running
func (s *CopyService) IsGenerating(carID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[carID]
	return ok
}

func (s *CopyService) acquire(carID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[carID]; busy {
		return false
	}
	s.inFlight[carID] = struct{}{}
	return true
}

func (s *CopyService) release(carID string) {
	s.mu.Lock()
	delete(s.inFlight, carID)
	s.mu.Unlock()
}
