package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Reply is one scripted answer for the Mock provider.
type Reply struct {
	JSON  json.RawMessage
	Usage Usage
	Err   error
}

// Mock is a scripted Provider for tests and for the "mock" config
// provider. Replies are consumed in order; received prompts are kept
// for assertions.
type Mock struct {
	mu      sync.Mutex
	replies []Reply

	// Prompts records every prompt received, in call order.
	Prompts []Prompt
}

func NewMock(replies ...Reply) *Mock {
	return &Mock{replies: replies}
}

// Enqueue appends a reply to the script.
func (m *Mock) Enqueue(r Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// Calls returns how many prompts have been received.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

func (m *Mock) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)

	if len(m.replies) == 0 {
		return nil, unavailable(fmt.Errorf("mock: reply script exhausted"))
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Completion{JSON: reply.JSON, Usage: reply.Usage, Model: "mock"}, nil
}

func (m *Mock) ModelID() string { return "mock" }
