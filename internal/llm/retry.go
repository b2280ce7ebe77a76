package llm

import (
	"context"
	"errors"
	"log"
	"time"
)

// maxAttempts bounds how many times an overloaded request is tried.
const maxAttempts = 3

// baseRetryDelay is the backoff before the second attempt. Each later
// attempt doubles it. A variable so tests can shorten the wait.
var baseRetryDelay = 2 * time.Second

// GenerateTextWithRetry calls GenerateText, retrying only when the model
// reports it is overloaded. Rate limit and generic failures surface
// immediately. The delay before attempt n is baseRetryDelay * 2^(n-2).
func GenerateTextWithRetry(ctx context.Context, client Client, prompt string, tier ModelTier) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := baseRetryDelay << (attempt - 2)
			log.Printf("[LLM] model overloaded, retrying in %s (attempt %d/%d)", delay, attempt, maxAttempts)
			select {
			case <-ctx.Done():
				return "", &GenerationError{Message: "generation cancelled", Cause: ctx.Err()}
			case <-time.After(delay):
			}
		}

		text, err := client.GenerateText(ctx, prompt, tier)
		if err == nil {
			return text, nil
		}
		lastErr = err

		var overloaded *OverloadedError
		if !errors.As(err, &overloaded) {
			return "", err
		}
	}
	return "", lastErr
}
