package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var feedbackTestSchema = &Schema{
	Name:        "graded-feedback",
	Description: "Feedback on a graded answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback":   map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number"},
		},
		"required":             []any{"feedback"},
		"additionalProperties": false,
	},
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"complete object", `{"feedback":"Richtig!","confidence":0.9}`, true},
		{"optional field absent", `{"feedback":"Fast."}`, true},
		{"missing required", `{"confidence":0.5}`, false},
		{"wrong type", `{"feedback":42}`, false},
		{"extra property", `{"feedback":"ok","grade":"A"}`, false},
		{"not an object", `"just text"`, false},
		{"malformed", `{"feedback":`, false},
	}

	for _, tt := range tests {
		err := feedbackTestSchema.Validate(json.RawMessage(tt.raw))
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.ok {
			var ce *CallError
			if !errors.As(err, &ce) || ce.Fault != FaultBadOutput {
				t.Errorf("%s: err = %v, want bad-output CallError", tt.name, err)
			}
		}
	}
}

func TestSchemaValidateKeepsOffendingOutput(t *testing.T) {
	raw := json.RawMessage(`{"confidence":1}`)
	err := feedbackTestSchema.Validate(raw)

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want CallError", err)
	}
	if string(ce.Output) != string(raw) {
		t.Errorf("Output = %s, want the rejected reply", ce.Output)
	}
}

func TestSchemaCompileCaching(t *testing.T) {
	// Two validations against the same schema must not recompile; the
	// second call hits the cache keyed by name.
	s := &Schema{
		Name: "cache-check",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"x": map[string]any{"type": "string"}},
		},
	}
	if err := s.Validate(json.RawMessage(`{"x":"1"}`)); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, ok := compiledSchemas.Load("cache-check"); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := s.Validate(json.RawMessage(`{"x":"2"}`)); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}
