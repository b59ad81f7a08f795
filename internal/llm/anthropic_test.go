package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func fakeAnthropic(t *testing.T, handler http.HandlerFunc) *Anthropic {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Anthropic{
		client: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(server.URL),
		),
		model: "claude-haiku-4-5-20251001",
	}
}

func anthropicMessage(text, stopReason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stopReason,
			"content":     []map[string]any{{"type": "text", "text": text}},
			"usage":       map[string]any{"input_tokens": 42, "output_tokens": 17},
		})
	}
}

func TestAnthropicComplete(t *testing.T) {
	a := fakeAnthropic(t, anthropicMessage(`{"feedback":"Gut gemacht!"}`, "end_turn"))

	out, err := a.Complete(context.Background(), Prompt{
		System:    "You are a math tutor.",
		User:      "Phrase feedback for a correct answer.",
		MaxTokens: 128,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(out.JSON) != `{"feedback":"Gut gemacht!"}` {
		t.Errorf("reply = %s", out.JSON)
	}
	if out.Usage.InputTokens != 42 || out.Usage.OutputTokens != 17 {
		t.Errorf("usage = %+v, want 42/17", out.Usage)
	}
	if out.Truncated {
		t.Error("end_turn reply marked truncated")
	}
}

func TestAnthropicTruncated(t *testing.T) {
	a := fakeAnthropic(t, anthropicMessage("half a feed", "max_tokens"))

	out, err := a.Complete(context.Background(), Prompt{User: "hi", MaxTokens: 4})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !out.Truncated {
		t.Error("max_tokens reply not marked truncated")
	}
}

func TestAnthropicFaults(t *testing.T) {
	tests := []struct {
		status int
		want   Fault
	}{
		{http.StatusTooManyRequests, FaultRateLimited},
		{http.StatusInternalServerError, FaultUnavailable},
		{http.StatusBadGateway, FaultUnavailable},
	}
	for _, tt := range tests {
		a := fakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
		})
		_, err := a.Complete(context.Background(), Prompt{User: "hi", MaxTokens: 8})
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if got := faultOf(err); got != tt.want {
			t.Errorf("status %d: fault = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestAnthropicNoTextBlock(t *testing.T) {
	a := fakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id": "msg_1", "type": "message", "role": "assistant",
			"model": "claude-haiku-4-5-20251001", "stop_reason": "end_turn",
			"content": []map[string]any{},
			"usage":   map[string]any{"input_tokens": 1, "output_tokens": 0},
		})
	})

	_, err := a.Complete(context.Background(), Prompt{User: "hi", MaxTokens: 8})
	var ce *CallError
	if !errors.As(err, &ce) || ce.Fault != FaultBadOutput {
		t.Errorf("empty message: err = %v, want bad-output fault", err)
	}
}

func TestNewAnthropic(t *testing.T) {
	if _, err := NewAnthropic(Credentials{}); err == nil {
		t.Error("missing API key accepted")
	}

	a, err := NewAnthropic(Credentials{APIKey: "k", Model: "claude-haiku"})
	if err != nil {
		t.Fatalf("NewAnthropic: %v", err)
	}
	if a.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("alias not resolved: %s", a.ModelID())
	}

	pinned, _ := NewAnthropic(Credentials{APIKey: "k", Model: "claude-3-5-haiku-20241022"})
	if pinned.ModelID() != "claude-3-5-haiku-20241022" {
		t.Errorf("exact ID rewritten: %s", pinned.ModelID())
	}
}
