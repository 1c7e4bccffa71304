package langid

import (
	"fmt"
	"strings"
)

// NewProvider creates a language classifier based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "", "lingua":
		return NewLinguaProvider(), nil

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		// Ollama exposes an OpenAI-compatible API and needs no real key
		if config.BaseURL == "" {
			config.BaseURL = "http://localhost:11434/v1"
		}
		if config.APIKey == "" {
			config.APIKey = "ollama"
		}
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown langid provider: %s (supported: lingua, openai, ollama)", config.Provider)
	}
}
