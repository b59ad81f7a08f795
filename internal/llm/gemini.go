package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// Gemini completes prompts through the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, creds Credentials) (*Gemini, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  creds.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  resolveModel(creds.Model, geminiModels),
	}, nil
}

func (g *Gemini) ModelID() string { return g.model }

func (g *Gemini) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.MaxTokens),
	}
	if p.Temperature > 0 {
		temp := float32(p.Temperature)
		cfg.Temperature = &temp
	}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: p.System}},
		}
	}
	if p.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(p.Schema.Definition)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: p.User}},
	}}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, geminiFault(err)
	}

	reply := json.RawMessage(result.Text())
	if p.Schema != nil {
		if err := p.Schema.Validate(reply); err != nil {
			return nil, err
		}
	}

	out := &Completion{
		JSON:      reply,
		Model:     g.model,
		Truncated: geminiTruncated(result),
	}
	if result.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
		}
	}
	return out, nil
}

// toGenaiSchema converts a JSON Schema definition to the genai schema
// type, recursing through properties and array items. Gemini has no
// native JSON Schema support, so only the constructs the feedback and
// hint schemas use are mapped.
func toGenaiSchema(def map[string]any) *genai.Schema {
	out := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		out.Type = genaiType(t)
	}
	if d, ok := def["description"].(string); ok {
		out.Description = d
	}
	if req, ok := def["required"].([]any); ok {
		for _, name := range req {
			if s, ok := name.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}
	if values, ok := def["enum"].([]any); ok {
		for _, v := range values {
			if s, ok := v.(string); ok {
				out.Enum = append(out.Enum, s)
			}
		}
	}
	if props, ok := def["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if prop, ok := raw.(map[string]any); ok {
				out.Properties[name] = toGenaiSchema(prop)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		out.Items = toGenaiSchema(items)
	}

	return out
}

func genaiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func geminiTruncated(result *genai.GenerateContentResponse) bool {
	return len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS"
}

func geminiFault(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return rateLimited(err)
	}
	return unavailable(err)
}
