package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Credentials configures one provider account.
type Credentials struct {
	APIKey string

	// Model is a friendly alias or an exact provider model ID.
	Model string

	// BaseURL overrides the API endpoint; only the OpenAI-compatible
	// providers honor it.
	BaseURL string
}

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  Credentials
	OpenAI     Credentials
	Gemini     Credentials
	OpenRouter Credentials

	Retry RetryConfig

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// providerSlots drives env loading, validation, and key discovery.
// Order is the discovery priority: cheapest adequate model first.
var providerSlots = []struct {
	name  string
	creds func(*Config) *Credentials
}{
	{"gemini", func(c *Config) *Credentials { return &c.Gemini }},
	{"openai", func(c *Config) *Credentials { return &c.OpenAI }},
	{"anthropic", func(c *Config) *Credentials { return &c.Anthropic }},
	{"openrouter", func(c *Config) *Credentials { return &c.OpenRouter }},
}

// DefaultConfig returns the defaults every other loader starts from.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  Credentials{Model: "claude-haiku"},
		OpenAI:     Credentials{Model: "gpt-4o-mini"},
		Gemini:     Credentials{Model: "gemini-flash"},
		OpenRouter: Credentials{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays SLAM_* environment variables on the defaults:
// SLAM_LLM_PROVIDER selects the provider, and each provider reads
// SLAM_<NAME>_API_KEY, SLAM_<NAME>_MODEL, SLAM_<NAME>_BASE_URL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SLAM_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	for _, slot := range providerSlots {
		creds := slot.creds(&cfg)
		prefix := "SLAM_" + strings.ToUpper(slot.name) + "_"
		if k := os.Getenv(prefix + "API_KEY"); k != "" {
			creds.APIKey = k
		}
		if m := os.Getenv(prefix + "MODEL"); m != "" {
			creds.Model = m
		}
		if u := os.Getenv(prefix + "BASE_URL"); u != "" {
			creds.BaseURL = u
		}
	}

	return cfg
}

// DiscoverConfig checks the providers' conventional API key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ...) in slot order and returns a
// Config for the first key found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, slot := range providerSlots {
		key := os.Getenv(strings.ToUpper(slot.name) + "_API_KEY")
		if key == "" {
			continue
		}
		cfg.Provider = slot.name
		slot.creds(&cfg).APIKey = key
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	for _, slot := range providerSlots {
		if slot.name != c.Provider {
			continue
		}
		if slot.creds(&c).APIKey == "" {
			return fmt.Errorf("SLAM_%s_API_KEY is required for the %s provider",
				strings.ToUpper(c.Provider), c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
