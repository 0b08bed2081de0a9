package marketing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crown/backend/internal/domain/shared"
)

// DefaultModel is the generative model used for listing copy
const DefaultModel = "gemini-2.5-flash"

// Fixed copy returned when generation cannot produce text
const (
	MissingKeyCopy = "Experience the pinnacle of automotive excellence. (AI Key missing)"
	EmptyCopy      = "A vehicle beyond compare."
)

// ErrCopyWriterNotConfigured is returned by a CopyWriter that has no credential
var ErrCopyWriterNotConfigured = errors.New("copywriter: api key not configured")

// ErrGenerationInProgress rejects a second generation request for the same car
var ErrGenerationInProgress = shared.NewDomainError("GENERATION_IN_PROGRESS", "A description is already being generated for this car")

// VehicleRef identifies the vehicle a piece of copy is written for
type VehicleRef struct {
	Make  string
	Model string
	Year  int
}

// Prompt builds the generation prompt for the vehicle
func (v VehicleRef) Prompt() string {
	return fmt.Sprintf("Write a short, sophisticated, and luxurious sales description for a %d %s %s. "+
		"Focus on emotion, prestige, and engineering. Maximum 2 sentences. Do not use exclamation marks. "+
		"Tone: Elegant, Exclusive, Gold-standard.", v.Year, v.Make, v.Model)
}

// FallbackCopy is the deterministic text used when the generation call fails
func (v VehicleRef) FallbackCopy() string {
	return fmt.Sprintf("The definitive %d %s %s. A class of its own.", v.Year, v.Make, v.Model)
}

// CacheKey returns a stable key for the vehicle, case-insensitive on make and model
func (v VehicleRef) CacheKey() string {
	return fmt.Sprintf("%s:%s:%d",
		strings.ToLower(strings.TrimSpace(v.Make)),
		strings.ToLower(strings.TrimSpace(v.Model)),
		v.Year)
}

// CopySource records where a piece of copy came from
type CopySource string

const (
	CopySourceGenerated  CopySource = "generated"
	CopySourceCache      CopySource = "cache"
	CopySourceMissingKey CopySource = "missing_key"
	CopySourceEmpty      CopySource = "empty"
	CopySourceFallback   CopySource = "fallback"
)

// IsFallback reports whether the text is one of the fixed fallbacks
func (s CopySource) IsFallback() bool {
	return s != CopySourceGenerated && s != CopySourceCache
}

// Copy is a piece of marketing text
type Copy struct {
	Text   string
	Source CopySource
}

// CopyWriter sends a prompt to a text-generation backend
type CopyWriter interface {
	// Write returns the generated text for the prompt.
	// It returns ErrCopyWriterNotConfigured when no credential is set.
	Write(ctx context.Context, prompt string) (string, error)

	// Configured reports whether a credential is available
	Configured() bool
}

// CopyCache stores generated copy by vehicle key
type CopyCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, text string, ttl time.Duration) error
}
