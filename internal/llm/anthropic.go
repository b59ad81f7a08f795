package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// Anthropic completes prompts through the Anthropic Messages API.
type Anthropic struct {
	client anthropic.Client
	model  string
}

func NewAnthropic(creds Credentials) (*Anthropic, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("anthropic: missing API key")
	}
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(creds.APIKey)),
		model:  resolveModel(creds.Model, anthropicModels),
	}, nil
}

func (a *Anthropic) ModelID() string { return a.model }

func (a *Anthropic) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(p.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Schema.Definition},
		}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, anthropicFault(err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, badOutput(nil, fmt.Errorf("anthropic: message has no text block"))
	}

	reply := json.RawMessage(text)
	if p.Schema != nil {
		if err := p.Schema.Validate(reply); err != nil {
			return nil, err
		}
	}

	return &Completion{
		JSON:      reply,
		Model:     string(msg.Model),
		Truncated: msg.StopReason == "max_tokens",
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func anthropicFault(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return rateLimited(err)
	}
	return unavailable(err)
}
