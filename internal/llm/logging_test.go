package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLoggingRecordsCompletion(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMock(Reply{
		JSON:  json.RawMessage(`{"hint":"Klammere aus."}`),
		Usage: Usage{InputTokens: 21, OutputTokens: 8},
	})
	p := WithLogging(mock, "mock", repo)

	ctx := context.Background()
	out, err := p.Complete(ctx, Prompt{
		Purpose:   PurposeHint,
		System:    "You are a math tutor.",
		User:      "The learner is stuck on 2x+4=10.",
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "hint" || !e.Success {
		t.Errorf("event = purpose %q success %v", e.Purpose, e.Success)
	}
	if e.InputTokens != 21 || e.OutputTokens != 8 {
		t.Errorf("tokens = %d/%d, want 21/8", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") || !strings.Contains(e.RequestBody, "2x+4=10") {
		t.Errorf("request transcript incomplete:\n%s", e.RequestBody)
	}
	if e.ResponseBody != string(out.JSON) {
		t.Errorf("response body = %s", e.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMock(Reply{Err: unavailable(errors.New("down"))})
	p := WithLogging(mock, "anthropic", repo)

	ctx := context.Background()
	if _, err := p.Complete(ctx, Prompt{Purpose: PurposeFeedback, User: "hi"}); err == nil {
		t.Fatal("expected error")
	}

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	e := events[0]
	if e.Success || e.ErrorMessage == "" {
		t.Errorf("failure event = success %v, error %q", e.Success, e.ErrorMessage)
	}
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q, want the configured name", e.Provider)
	}
}

func TestTranscriptWithoutSystemOrSchema(t *testing.T) {
	got := transcript(Prompt{User: "just a question"})
	if strings.Contains(got, "[system]") || strings.Contains(got, "[schema") {
		t.Errorf("transcript has empty sections:\n%s", got)
	}
	if !strings.Contains(got, "just a question") {
		t.Errorf("transcript lost the user message:\n%s", got)
	}
}
