package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Fault classifies why a provider call failed.
type Fault string

const (
	// FaultRateLimited: the provider returned HTTP 429.
	FaultRateLimited Fault = "rate-limited"

	// FaultUnavailable: the provider is down, unreachable, or rejected
	// the request for a reason retrying might cure.
	FaultUnavailable Fault = "unavailable"

	// FaultBadOutput: the model replied, but not with the JSON the
	// prompt's schema demands.
	FaultBadOutput Fault = "bad-output"
)

// CallError wraps a failed provider call with the classification the
// retry layer keys on.
type CallError struct {
	Fault Fault

	// RetryAfter is the provider-suggested wait, rate limits only.
	RetryAfter time.Duration

	// Output carries the offending reply for bad-output faults.
	Output json.RawMessage

	Err error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm call failed (%s): %v", e.Fault, e.Err)
	}
	return fmt.Sprintf("llm call failed (%s)", e.Fault)
}

func (e *CallError) Unwrap() error { return e.Err }

// faultOf extracts the Fault from an error chain; empty for untyped
// errors such as raw network failures.
func faultOf(err error) Fault {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Fault
	}
	return ""
}

func rateLimited(err error) error {
	return &CallError{Fault: FaultRateLimited, Err: err}
}

func unavailable(err error) error {
	return &CallError{Fault: FaultUnavailable, Err: err}
}

func badOutput(output json.RawMessage, err error) error {
	return &CallError{Fault: FaultBadOutput, Output: output, Err: err}
}
