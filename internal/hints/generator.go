// Package hints turns evaluation results into learner-facing text via an
// LLM: personalised feedback on a graded answer and progressive hints for
// a question still in flight. The deterministic feedback built by the
// evaluation package is always available as a fallback, so every function
// here degrades gracefully when no provider is configured.
package hints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/llm"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
)

// GeneratorConfig holds configuration for the LLM generator.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   256,
		Temperature: 0.4,
	}
}

// Generator produces LLM-backed feedback and hints.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates an LLM-backed generator.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// FeedbackRequest is the input for personalised answer feedback.
type FeedbackRequest struct {
	QuestionText   string
	QuestionType   string
	ExpectedAnswer string
	UserAnswer     string
	Correct        bool
	IsClose        bool
	Misconceptions []misconception.Misconception

	// Fallback is returned unchanged when the LLM fails. Callers pass the
	// deterministic feedback from the evaluation engine.
	Fallback string
}

// HintRequest is the input for a progressive hint.
type HintRequest struct {
	QuestionText   string
	ExpectedAnswer string
	HintsSoFar     []string
}

type feedbackOutput struct {
	Feedback string `json:"feedback"`
}

type hintOutput struct {
	Hint string `json:"hint"`
}

// Feedback asks the LLM to phrase feedback for a graded answer. On any
// provider or parse error it returns the request's Fallback text and the
// error, so callers can log and still show something useful.
func (g *Generator) Feedback(ctx context.Context, req *FeedbackRequest) (string, error) {
	userMsg, err := buildFeedbackMessage(req)
	if err != nil {
		return req.Fallback, fmt.Errorf("build feedback prompt: %w", err)
	}

	resp, err := g.provider.Complete(ctx, llm.Prompt{
		Purpose:     llm.PurposeFeedback,
		System:      feedbackSystemPrompt,
		User:        userMsg,
		Schema:      FeedbackSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return req.Fallback, fmt.Errorf("LLM feedback failed: %w", err)
	}

	var raw feedbackOutput
	if err := json.Unmarshal(resp.JSON, &raw); err != nil {
		return req.Fallback, fmt.Errorf("failed to parse feedback response: %w", err)
	}
	if raw.Feedback == "" {
		return req.Fallback, fmt.Errorf("LLM returned empty feedback")
	}

	return raw.Feedback, nil
}

// Hint asks the LLM for the next hint in a progression. Earlier hints are
// included so the LLM escalates rather than repeats.
func (g *Generator) Hint(ctx context.Context, req *HintRequest) (string, error) {
	userMsg, err := buildHintMessage(req)
	if err != nil {
		return "", fmt.Errorf("build hint prompt: %w", err)
	}

	resp, err := g.provider.Complete(ctx, llm.Prompt{
		Purpose:     llm.PurposeHint,
		System:      hintSystemPrompt,
		User:        userMsg,
		Schema:      HintSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM hint failed: %w", err)
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.JSON, &raw); err != nil {
		return "", fmt.Errorf("failed to parse hint response: %w", err)
	}
	if raw.Hint == "" {
		return "", fmt.Errorf("LLM returned empty hint")
	}

	return raw.Hint, nil
}

const feedbackSystemPrompt = `You are a friendly math tutor for secondary school students. You are given a graded answer and, when the answer was wrong, the error patterns detected by the grading engine.

Instructions:
- Address the learner directly in one to three sentences.
- When the answer was correct, be brief and encouraging.
- When a misconception is listed, work its remediation hint into your feedback in your own words.
- Never invent a different correct answer than the one given.
- Never mention internal IDs, grading tiers, or that you are an AI.`

const hintSystemPrompt = `You are a friendly math tutor for secondary school students. The learner is stuck on a question and asks for a hint.

Instructions:
- Give exactly one hint, one sentence.
- Never state the final answer.
- Each hint must go further than the previous ones, so look at the hints already given and escalate.`

var feedbackUserTemplate = template.Must(template.New("feedback").Parse(`Question: {{.QuestionText}}
Question type: {{.QuestionType}}
Correct answer: {{.ExpectedAnswer}}
Learner's answer: {{.UserAnswer}}
Graded: {{if .Correct}}correct{{else if .IsClose}}incorrect, but numerically close{{else}}incorrect{{end}}

{{if .Misconceptions}}Detected error patterns:
{{range .Misconceptions}}- {{.Name}}: {{.Description}} Remediation: {{.RemediationHint}}
{{end}}{{else}}No specific error pattern was detected.
{{end}}`))

var hintUserTemplate = template.Must(template.New("hint").Parse(`Question: {{.QuestionText}}
Correct answer (do not reveal): {{.ExpectedAnswer}}

{{if .HintsSoFar}}Hints already given:
{{range .HintsSoFar}}- {{.}}
{{end}}{{else}}No hints given yet.
{{end}}`))

func buildFeedbackMessage(req *FeedbackRequest) (string, error) {
	var buf bytes.Buffer
	if err := feedbackUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildHintMessage(req *HintRequest) (string, error) {
	var buf bytes.Buffer
	if err := hintUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
