package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns canned responses in order.
type scriptedClient struct {
	results []scriptedResult
	calls   int
}

type scriptedResult struct {
	text string
	err  error
}

func (s *scriptedClient) GenerateText(_ context.Context, _ string, _ ModelTier) (string, error) {
	r := s.results[s.calls]
	s.calls++
	return r.text, r.err
}

func (s *scriptedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return s.GenerateText(ctx, prompt, tier)
}

func (s *scriptedClient) GetModel(ModelTier) string { return "scripted" }
func (s *scriptedClient) Close() error              { return nil }

// shortenRetryDelay keeps tests that exercise the backoff from sleeping
// for real.
func shortenRetryDelay(t *testing.T) {
	t.Helper()
	restore := baseRetryDelay
	baseRetryDelay = time.Millisecond
	t.Cleanup(func() { baseRetryDelay = restore })
}

func TestGenerateTextWithRetry_SucceedsFirstAttempt(t *testing.T) {
	client := &scriptedClient{results: []scriptedResult{{text: "done"}}}

	text, err := GenerateTextWithRetry(context.Background(), client, "prompt", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "done", text)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateTextWithRetry_RetriesOverload(t *testing.T) {
	shortenRetryDelay(t)
	overloaded := &OverloadedError{Cause: errors.New("503 service overloaded")}
	client := &scriptedClient{results: []scriptedResult{
		{err: overloaded},
		{err: overloaded},
		{text: "recovered"},
	}}

	text, err := GenerateTextWithRetry(context.Background(), client, "prompt", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 3, client.calls)
}

func TestGenerateTextWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	shortenRetryDelay(t)
	overloaded := &OverloadedError{Cause: errors.New("503")}
	client := &scriptedClient{results: []scriptedResult{
		{err: overloaded}, {err: overloaded}, {err: overloaded},
	}}

	_, err := GenerateTextWithRetry(context.Background(), client, "prompt", TierStandard)
	require.Error(t, err)
	var oe *OverloadedError
	assert.ErrorAs(t, err, &oe)
	assert.Equal(t, maxAttempts, client.calls)
}

func TestGenerateTextWithRetry_RateLimitFailsFast(t *testing.T) {
	client := &scriptedClient{results: []scriptedResult{
		{err: &RateLimitError{Cause: errors.New("429 quota exceeded")}},
	}}

	_, err := GenerateTextWithRetry(context.Background(), client, "prompt", TierStandard)
	require.Error(t, err)
	var re *RateLimitError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateTextWithRetry_GenericFailsFast(t *testing.T) {
	client := &scriptedClient{results: []scriptedResult{
		{err: &GenerationError{Message: "bad request"}},
	}}

	_, err := GenerateTextWithRetry(context.Background(), client, "prompt", TierStandard)
	require.Error(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateTextWithRetry_CancelledContext(t *testing.T) {
	overloaded := &OverloadedError{Cause: errors.New("503")}
	client := &scriptedClient{results: []scriptedResult{
		{err: overloaded}, {err: overloaded}, {err: overloaded},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateTextWithRetry(ctx, client, "prompt", TierStandard)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, client.calls)
}
