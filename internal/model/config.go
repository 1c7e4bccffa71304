package model

import "time"

// Config is the complete lidspan configuration
type Config struct {
	Segmenter   SegmenterConfig   `yaml:"segmenter" json:"segmenter"`
	LangID      LangIDConfig      `yaml:"langid" json:"langid"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// SegmenterConfig holds the segmentation thresholds. The zero value of any
// field means "use the default".
type SegmenterConfig struct {
	// MinClassifyConfidence is the floor below which a per-token
	// classification is replaced by the "und" sentinel.
	MinClassifyConfidence float64 `yaml:"min_classify_confidence" json:"min_classify_confidence"`

	// TokenWeightCap caps the length factor of a token's vote weight.
	TokenWeightCap int `yaml:"token_weight_cap" json:"token_weight_cap"`

	// MinVoteTokenLen is the minimum trimmed token length that may vote.
	MinVoteTokenLen int `yaml:"min_vote_token_len" json:"min_vote_token_len"`

	// TopK is how many ranked guesses to request per classification.
	TopK int `yaml:"top_k" json:"top_k"`
}

// LangIDConfig configures the language classifier collaborator
type LangIDConfig struct {
	// Provider name: "lingua", "openai", "ollama"
	Provider string `yaml:"provider" json:"provider"`

	// Model name for remote providers
	Model string `yaml:"model" json:"model"`

	// APIKey for remote providers (prefer environment variables)
	APIKey string `yaml:"-" json:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timeout for remote classification requests, in seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// RequestsPerSecond throttles remote providers (0 = unthrottled)
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`

	// Burst for the remote throttle
	Burst int `yaml:"burst" json:"burst"`
}

// HTTPConfig configures the page fetcher used by scan
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig configures the prediction cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // empty: memory only
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose"`
	Format  string `yaml:"format" json:"format"` // "table", "json", "yaml"
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Segmenter: SegmenterConfig{
			MinClassifyConfidence: 0.60,
			TokenWeightCap:        10,
			MinVoteTokenLen:       2,
			TopK:                  1,
		},
		LangID: LangIDConfig{
			Provider: "lingua",
			Timeout:  30,
			Burst:    5,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "lidspan/0.1 (+https://github.com/ppiankov/lidspan)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}
