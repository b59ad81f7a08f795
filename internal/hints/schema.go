package hints

import "github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/llm"

// FeedbackSchema defines the JSON schema for LLM feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Short encouraging feedback for a learner's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "One to three sentences of learner-facing feedback. Address the learner directly, never reveal internal IDs.",
			},
		},
		"required":             []any{"feedback"},
		"additionalProperties": false,
	},
}

// HintSchema defines the JSON schema for LLM hint responses.
var HintSchema = &llm.Schema{
	Name:        "next-hint",
	Description: "A single progressive hint toward the solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One sentence that nudges the learner forward without revealing the answer",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}
