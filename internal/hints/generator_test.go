package hints

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/llm"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
)

func TestGenerator_Feedback(t *testing.T) {
	resp := json.RawMessage(`{"feedback":"Nice work, 1/2 and 0.5 are the same number!"}`)
	mock := llm.NewMock(llm.Reply{JSON: resp})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	req := &FeedbackRequest{
		QuestionText:   "What is 1 divided by 2?",
		QuestionType:   "numeric",
		ExpectedAnswer: "0.5",
		UserAnswer:     "1/2",
		Correct:        true,
		Fallback:       "Correct.",
	}

	got, err := g.Feedback(context.Background(), req)
	if err != nil {
		t.Fatalf("Feedback failed: %v", err)
	}
	if !strings.Contains(got, "Nice work") {
		t.Errorf("feedback = %q, want LLM text", got)
	}
}

func TestGenerator_FeedbackIncludesMisconceptions(t *testing.T) {
	resp := json.RawMessage(`{"feedback":"Check your signs."}`)
	mock := llm.NewMock(llm.Reply{JSON: resp})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	m := misconception.Get("sign-error")
	if m == nil {
		t.Fatal("sign-error not in catalog")
	}
	req := &FeedbackRequest{
		QuestionText:   "Solve -2 * 2",
		QuestionType:   "numeric",
		ExpectedAnswer: "-4",
		UserAnswer:     "4",
		Misconceptions: []misconception.Misconception{*m},
		Fallback:       "Not quite.",
	}

	if _, err := g.Feedback(context.Background(), req); err != nil {
		t.Fatalf("Feedback failed: %v", err)
	}

	// The prompt must carry the remediation hint to the LLM.
	if mock.Calls() != 1 {
		t.Fatalf("calls = %d, want 1", mock.Calls())
	}
	sent := mock.Prompts[0]
	if sent.Purpose != llm.PurposeFeedback {
		t.Errorf("purpose = %q, want %q", sent.Purpose, llm.PurposeFeedback)
	}
	if !strings.Contains(sent.User, m.RemediationHint) {
		t.Errorf("prompt missing remediation hint:\n%s", sent.User)
	}
	if !strings.Contains(sent.User, "Sign error") {
		t.Errorf("prompt missing misconception name:\n%s", sent.User)
	}
}

func TestGenerator_FeedbackFallsBackOnError(t *testing.T) {
	mock := llm.NewMock(llm.Reply{Err: errors.New("boom")})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	req := &FeedbackRequest{
		QuestionType:   "numeric",
		ExpectedAnswer: "4",
		UserAnswer:     "5",
		Fallback:       "Not quite. The correct answer is 4.",
	}

	got, err := g.Feedback(context.Background(), req)
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if got != req.Fallback {
		t.Errorf("feedback = %q, want fallback %q", got, req.Fallback)
	}
}

func TestGenerator_FeedbackFallsBackOnEmpty(t *testing.T) {
	resp := json.RawMessage(`{"feedback":""}`)
	mock := llm.NewMock(llm.Reply{JSON: resp})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	req := &FeedbackRequest{Fallback: "Keep going."}
	got, err := g.Feedback(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for empty feedback")
	}
	if got != "Keep going." {
		t.Errorf("feedback = %q, want fallback", got)
	}
}

func TestGenerator_Hint(t *testing.T) {
	resp := json.RawMessage(`{"hint":"Think about what happens to both sides when you subtract 3."}`)
	mock := llm.NewMock(llm.Reply{JSON: resp})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	req := &HintRequest{
		QuestionText:   "Solve x + 3 = 7",
		ExpectedAnswer: "4",
		HintsSoFar:     []string{"Start by isolating x."},
	}

	got, err := g.Hint(context.Background(), req)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !strings.Contains(got, "subtract 3") {
		t.Errorf("hint = %q", got)
	}

	sent := mock.Prompts[0]
	if sent.Purpose != llm.PurposeHint {
		t.Errorf("purpose = %q, want %q", sent.Purpose, llm.PurposeHint)
	}
	if !strings.Contains(sent.User, "Start by isolating x.") {
		t.Errorf("prompt missing earlier hint:\n%s", sent.User)
	}
}

func TestGenerator_HintErrorHasNoText(t *testing.T) {
	mock := llm.NewMock(llm.Reply{Err: errors.New("boom")})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	got, err := g.Hint(context.Background(), &HintRequest{QuestionText: "Solve x + 3 = 7"})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if got != "" {
		t.Errorf("hint = %q, want empty", got)
	}
}
