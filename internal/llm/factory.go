package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

// NewProvider builds the configured provider, decorated so callers see
// retry → logging → provider.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropic(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAI(cfg.OpenAI)
	case "gemini":
		base, err = NewGemini(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouter(cfg.OpenRouter)
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from SLAM_* environment
// variables, falling back to DiscoverConfig when no provider is
// selected explicitly.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// An explicit provider choice must not be silently overridden.
		if os.Getenv("SLAM_LLM_PROVIDER") != "" {
			return nil, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
