package langid

import (
	"context"
	"strings"

	"github.com/ppiankov/lidspan/internal/model"
	"golang.org/x/text/language"
)

// Provider defines the interface for language classifiers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Predict returns up to k ranked (language code, probability) guesses
	// for text, sorted by descending probability. It is called once per
	// token during segmentation, so implementations must hold a warm model
	// rather than reload per call, and must be safe for concurrent use.
	Predict(ctx context.Context, text string, k int) ([]model.Prediction, error)
}

// Config holds language classifier configuration
type Config struct {
	// Provider name: "lingua", "openai", "ollama"
	Provider string

	// Model name for remote providers
	Model string

	// APIKey for remote providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for remote requests, in seconds
	Timeout int

	// RequestsPerSecond throttles remote providers (0 = unthrottled)
	RequestsPerSecond float64

	// Burst for the remote throttle
	Burst int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider: "lingua",
		Timeout:  30,
		Burst:    5,
	}
}

// ConfigFromModel converts model.LangIDConfig to langid.Config
func ConfigFromModel(mc model.LangIDConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		RequestsPerSecond: mc.RequestsPerSecond,
		Burst:             mc.Burst,
	}
}

// NormalizeLang canonicalizes a classifier language tag to BCP-47. Tags the
// parser rejects pass through lowercased; an empty tag becomes the "und"
// sentinel.
func NormalizeLang(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return model.LangUnd
	}
	if tag, err := language.Parse(code); err == nil {
		return tag.String()
	}
	return code
}
