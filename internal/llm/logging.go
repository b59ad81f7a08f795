package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

// recorder appends one LLMRequestEvent per provider call, capturing the
// prompt transcript and the reply for `slam llm view`. A failed append
// warns on stderr but never fails the call itself.
type recorder struct {
	inner  Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps a Provider with event logging. providerName is the
// configured provider ("anthropic", "openrouter", ...), as distinct
// from the model that ends up serving the request.
func WithLogging(p Provider, providerName string, repo store.EventRepo) Provider {
	return &recorder{inner: p, name: providerName, events: repo}
}

func (r *recorder) ModelID() string { return r.inner.ModelID() }

func (r *recorder) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	out, err := r.inner.Complete(ctx, p)

	data := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.inner.ModelID(),
		Purpose:     purposeLabel(p.Purpose),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(p),
	}
	if out != nil {
		data.Model = out.Model
		data.InputTokens = out.Usage.InputTokens
		data.OutputTokens = out.Usage.OutputTokens
		data.ResponseBody = string(out.JSON)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := r.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record LLM event: %v\n", logErr)
	}

	return out, err
}

// transcript renders the prompt the way `slam llm view` displays it.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", p.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", p.User)
	if p.Schema != nil {
		if def, err := json.Marshal(p.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", p.Schema.Name, def)
		}
	}
	return b.String()
}
