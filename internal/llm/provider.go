// Package llm generates learner-facing text through a hosted language
// model. The surface is deliberately narrow: one system instruction, one
// user message, an optional JSON schema the reply must satisfy. That is
// all the feedback and hint generation in this backend ever needs, so
// there is no conversation state and no streaming.
package llm

import (
	"context"
	"encoding/json"
)

// Provider executes a single prompt against one model. Implementations
// exist for Anthropic, OpenAI, Gemini and OpenRouter, plus a scripted
// Mock; decorators add retries and event logging around any of them.
type Provider interface {
	// Complete sends the prompt and returns the model's reply. When the
	// prompt carries a Schema, the reply is validated JSON conforming to
	// it; otherwise it is the raw text wrapped as a JSON value.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// ModelID returns the resolved model identifier in use.
	ModelID() string
}

// Purpose labels what a completion is for. It is stored on the request
// event and drives the usage breakdown in `slam llm stats`.
type Purpose string

const (
	PurposeFeedback Purpose = "feedback"
	PurposeHint     Purpose = "hint"
)

func purposeLabel(p Purpose) string {
	if p == "" {
		return "unknown"
	}
	return string(p)
}

// Prompt is one self-contained generation request.
type Prompt struct {
	// Purpose tags the request for the event log.
	Purpose Purpose

	// System sets the model's role and constraints.
	System string

	// User is the single user-turn message.
	User string

	// Schema, when set, constrains the reply to a JSON object and is
	// enforced twice: natively by the provider and again locally.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Completion is the model's reply.
type Completion struct {
	// JSON holds the reply. Schema-constrained prompts get the validated
	// object; free-text prompts get the raw text as a JSON value.
	JSON json.RawMessage

	// Model is the identifier the provider reports having served.
	Model string

	// Truncated is set when the reply was cut off at MaxTokens.
	Truncated bool

	Usage Usage
}

// Usage counts the tokens one completion consumed.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel turns a friendly alias into a provider model ID; unknown
// names pass through so callers can pin exact IDs.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
