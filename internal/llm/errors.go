package llm

import (
	"fmt"
	"strings"
)

// OverloadedError indicates the model is temporarily over capacity. These
// failures are transient and safe to retry after a backoff.
type OverloadedError struct {
	Cause error
}

func (e *OverloadedError) Error() string {
	return fmt.Sprintf("model is overloaded: %v", e.Cause)
}

func (e *OverloadedError) Unwrap() error {
	return e.Cause
}

// RateLimitError indicates the request quota was exhausted. Retrying
// immediately would only extend the penalty, so callers fail fast.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %v", e.Cause)
}

func (e *RateLimitError) Unwrap() error {
	return e.Cause
}

// GenerationError covers all other generation failures.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// classifyError maps a provider failure to the retry semantics callers
// depend on. Capacity exhaustion (503, "overloaded") is retryable, quota
// exhaustion (429) is not, and everything else fails immediately.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "503") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "unavailable"):
		return &OverloadedError{Cause: err}
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit"):
		return &RateLimitError{Cause: err}
	default:
		return &GenerationError{Message: "request failed", Cause: err}
	}
}
