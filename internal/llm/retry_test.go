package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps test backoffs in the microsecond range.
var fastRetry = RetryConfig{
	MaxAttempts: 3,
	InitialWait: time.Microsecond,
	MaxWait:     10 * time.Microsecond,
	Multiplier:  2.0,
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	mock := NewMock(Reply{JSON: json.RawMessage(`"ok"`)})
	p := WithRetry(mock, fastRetry)

	out, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(out.JSON) != `"ok"` || mock.Calls() != 1 {
		t.Errorf("reply = %s after %d calls", out.JSON, mock.Calls())
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMock(
		Reply{Err: unavailable(errors.New("overloaded"))},
		Reply{Err: rateLimited(errors.New("429"))},
		Reply{JSON: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetry)

	out, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if string(out.JSON) != `"ok"` || mock.Calls() != 3 {
		t.Errorf("reply = %s after %d calls, want 3", out.JSON, mock.Calls())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMock(
		Reply{Err: unavailable(errors.New("down"))},
		Reply{Err: unavailable(errors.New("still down"))},
		Reply{Err: unavailable(errors.New("dead"))},
	)
	p := WithRetry(mock, fastRetry)

	_, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if err == nil {
		t.Fatal("expected error after exhausted attempts")
	}
	if mock.Calls() != fastRetry.MaxAttempts {
		t.Errorf("calls = %d, want %d", mock.Calls(), fastRetry.MaxAttempts)
	}
	if faultOf(err) != FaultUnavailable {
		t.Errorf("final error = %v", err)
	}
}

func TestRetryBadOutputOnlyOnce(t *testing.T) {
	mock := NewMock(
		Reply{Err: badOutput(json.RawMessage(`"oops"`), errors.New("schema violation"))},
		Reply{Err: badOutput(json.RawMessage(`"oops again"`), errors.New("schema violation"))},
		Reply{JSON: json.RawMessage(`"never reached"`)},
	)
	p := WithRetry(mock, fastRetry)

	_, err := p.Complete(context.Background(), Prompt{User: "hi"})
	if faultOf(err) != FaultBadOutput {
		t.Fatalf("err = %v, want bad-output", err)
	}
	if mock.Calls() != 2 {
		t.Errorf("calls = %d, want 2 (one retry for bad output)", mock.Calls())
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMock(Reply{Err: unavailable(errors.New("down"))})
	p := WithRetry(mock, fastRetry)

	_, err := p.Complete(ctx, Prompt{User: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if mock.Calls() != 1 {
		t.Errorf("calls = %d, want 1", mock.Calls())
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMock(
		Reply{Err: &CallError{Fault: FaultRateLimited, RetryAfter: 5 * time.Millisecond}},
		Reply{JSON: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetry)

	start := time.Now()
	if _, err := p.Complete(context.Background(), Prompt{User: "hi"}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("resumed after %v, want >= RetryAfter", elapsed)
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMock(), fastRetry)
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
