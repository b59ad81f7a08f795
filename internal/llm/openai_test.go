package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAICompatible {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAI(Credentials{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAI: %v", err)
	}
	return p
}

func chatCompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": finishReason,
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 12, "total_tokens": 42},
	}
}

func TestOpenAIComplete(t *testing.T) {
	var gotReq map[string]any
	p := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"hint":"Isoliere x."}`, "stop"))
	})

	out, err := p.Complete(context.Background(), Prompt{
		System:    "You are a math tutor.",
		User:      "Give a hint.",
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(out.JSON) != `{"hint":"Isoliere x."}` {
		t.Errorf("reply = %s", out.JSON)
	}
	if out.Usage.InputTokens != 30 || out.Usage.OutputTokens != 12 {
		t.Errorf("usage = %+v, want 30/12", out.Usage)
	}

	// The system instruction must travel as the first chat message.
	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want 2", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" {
		t.Errorf("first message role = %v, want system", first["role"])
	}
}

func TestOpenAISchemaResponseFormat(t *testing.T) {
	var gotReq map[string]any
	p := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"hint":"Teile durch 2."}`, "stop"))
	})

	schema := &Schema{
		Name: "tutor-hint-format",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           map[string]any{"hint": map[string]any{"type": "string"}},
			"required":             []any{"hint"},
			"additionalProperties": false,
		},
	}

	if _, err := p.Complete(context.Background(), Prompt{User: "hi", Schema: schema, MaxTokens: 64}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	rf, _ := gotReq["response_format"].(map[string]any)
	if rf["type"] != "json_schema" {
		t.Errorf("response_format type = %v, want json_schema", rf["type"])
	}
	js, _ := rf["json_schema"].(map[string]any)
	if js["name"] != "tutor-hint-format" {
		t.Errorf("schema name = %v", js["name"])
	}
}

func TestOpenAITruncated(t *testing.T) {
	p := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("half a hi", "length"))
	})

	out, err := p.Complete(context.Background(), Prompt{User: "hi", MaxTokens: 4})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !out.Truncated {
		t.Error("length finish reason not marked truncated")
	}
}

func TestOpenAIFaults(t *testing.T) {
	tests := []struct {
		status int
		want   Fault
	}{
		{http.StatusTooManyRequests, FaultRateLimited},
		{http.StatusServiceUnavailable, FaultUnavailable},
	}
	for _, tt := range tests {
		p := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "nope", "type": "server_error"},
			})
		})
		_, err := p.Complete(context.Background(), Prompt{User: "hi", MaxTokens: 8})
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if got := faultOf(err); got != tt.want {
			t.Errorf("status %d: fault = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNewOpenRouterDefaults(t *testing.T) {
	if _, err := NewOpenRouter(Credentials{}); err == nil {
		t.Error("missing API key accepted")
	}

	p, err := NewOpenRouter(Credentials{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("NewOpenRouter: %v", err)
	}
	// Upstream model names pass through untouched.
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %s", p.ModelID())
	}
}
