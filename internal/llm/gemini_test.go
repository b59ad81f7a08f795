package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct{ alias, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestToGenaiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "tutor feedback",
		"properties": map[string]any{
			"feedback": map[string]any{"type": "string"},
			"tone":     map[string]any{"type": "string", "enum": []any{"praise", "corrective"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"feedback"},
	}

	s := toGenaiSchema(def)

	if s.Type != genai.TypeObject {
		t.Errorf("type = %v, want object", s.Type)
	}
	if s.Description != "tutor feedback" {
		t.Errorf("description = %q", s.Description)
	}
	if len(s.Required) != 1 || s.Required[0] != "feedback" {
		t.Errorf("required = %v", s.Required)
	}
	if s.Properties["feedback"].Type != genai.TypeString {
		t.Errorf("feedback type = %v", s.Properties["feedback"].Type)
	}
	if got := s.Properties["tone"].Enum; len(got) != 2 || got[0] != "praise" {
		t.Errorf("tone enum = %v", got)
	}
	steps := s.Properties["steps"]
	if steps.Type != genai.TypeArray || steps.Items == nil || steps.Items.Type != genai.TypeInteger {
		t.Errorf("steps schema = %+v", steps)
	}
}

func TestGenaiTypeFallback(t *testing.T) {
	if genaiType("no-such-type") != genai.TypeString {
		t.Error("unknown type must fall back to string")
	}
}
