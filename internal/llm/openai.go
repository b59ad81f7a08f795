package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAICompatible speaks the OpenAI chat-completions wire format. It
// backs both the "openai" and the "openrouter" provider; OpenRouter is
// the same protocol pointed at a different endpoint.
type OpenAICompatible struct {
	client *openai.Client
	model  string
}

func NewOpenAI(creds Credentials) (*OpenAICompatible, error) {
	return newOpenAICompatible("openai", creds)
}

func NewOpenRouter(creds Credentials) (*OpenAICompatible, error) {
	if creds.BaseURL == "" {
		creds.BaseURL = openRouterBaseURL
	}
	return newOpenAICompatible("openrouter", creds)
}

func newOpenAICompatible(name string, creds Credentials) (*OpenAICompatible, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%s: missing API key", name)
	}
	cc := openai.DefaultConfig(creds.APIKey)
	if creds.BaseURL != "" {
		cc.BaseURL = creds.BaseURL
	}
	return &OpenAICompatible{
		client: openai.NewClientWithConfig(cc),
		model:  resolveModel(creds.Model, openaiModels),
	}, nil
}

func (o *OpenAICompatible) ModelID() string { return o.model }

func (o *OpenAICompatible) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var messages []openai.ChatCompletionMessage
	if p.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: p.User,
	})

	req := openai.ChatCompletionRequest{
		Model:               o.model,
		Messages:            messages,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}

	if p.Schema != nil {
		def, err := json.Marshal(p.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %q: %w", p.Schema.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   p.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, openaiFault(err)
	}
	if len(resp.Choices) == 0 {
		return nil, badOutput(nil, fmt.Errorf("completion has no choices"))
	}
	choice := resp.Choices[0]

	reply := json.RawMessage(choice.Message.Content)
	if p.Schema != nil {
		if err := p.Schema.Validate(reply); err != nil {
			return nil, err
		}
	}

	return &Completion{
		JSON:      reply,
		Model:     resp.Model,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

func openaiFault(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return rateLimited(err)
	}
	return unavailable(err)
}
