package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: Credentials{APIKey: "k"}}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, false},
		{"openai without key", Config{Provider: "openai"}, false},
		{"gemini without key", Config{Provider: "gemini"}, false},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: Credentials{APIKey: "k"}}, true},
		{"mock needs nothing", Config{Provider: "mock"}, true},
		{"unknown provider", Config{Provider: "oracle"}, false},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SLAM_LLM_PROVIDER", "openai")
	t.Setenv("SLAM_OPENAI_API_KEY", "sk-test")
	t.Setenv("SLAM_OPENAI_MODEL", "gpt-4o")
	t.Setenv("SLAM_OPENAI_BASE_URL", "http://localhost:9999/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai creds = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("base URL = %q", cfg.OpenAI.BaseURL)
	}
	// Untouched slots keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic default model = %q", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	// With several keys present, the cheapest adequate provider wins.
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g" {
		t.Errorf("discovered %+v, ok=%v; want gemini", cfg, ok)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(key, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig found a provider with no keys set")
	}
}

func TestMockScript(t *testing.T) {
	mock := NewMock(Reply{JSON: json.RawMessage(`"first"`)})
	mock.Enqueue(Reply{JSON: json.RawMessage(`"second"`)})

	ctx := context.Background()
	for _, want := range []string{`"first"`, `"second"`} {
		out, err := mock.Complete(ctx, Prompt{Purpose: PurposeHint, User: "q"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if string(out.JSON) != want {
			t.Errorf("reply = %s, want %s", out.JSON, want)
		}
	}

	// Script exhausted: the mock degrades like an unreachable provider.
	_, err := mock.Complete(ctx, Prompt{User: "q"})
	if faultOf(err) != FaultUnavailable {
		t.Errorf("exhausted script: err = %v", err)
	}

	if mock.Calls() != 3 || mock.Prompts[0].Purpose != PurposeHint {
		t.Errorf("recorded %d prompts, first purpose %q", mock.Calls(), mock.Prompts[0].Purpose)
	}
}

func TestCallErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := unavailable(cause)
	if !errors.Is(err, cause) {
		t.Error("CallError does not unwrap to its cause")
	}
}

func TestPriceFor(t *testing.T) {
	c := PriceFor("gpt-4o-mini")
	if c == nil {
		t.Fatal("no price for gpt-4o-mini")
	}
	// 1M in + 1M out at $0.15/$0.60.
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if PriceFor("some/upstream-model") != nil {
		t.Error("unknown model must have no price")
	}
}
