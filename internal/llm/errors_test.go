package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError_Overloaded(t *testing.T) {
	for _, msg := range []string{
		"googleapi: Error 503: The model is overloaded",
		"rpc error: code = Unavailable",
		"model overloaded, please retry",
	} {
		err := classifyError(errors.New(msg))
		var oe *OverloadedError
		assert.ErrorAs(t, err, &oe, "message %q", msg)
	}
}

func TestClassifyError_RateLimit(t *testing.T) {
	for _, msg := range []string{
		"googleapi: Error 429: Resource has been exhausted",
		"quota exceeded for quota metric",
		"rate limit reached",
	} {
		err := classifyError(errors.New(msg))
		var re *RateLimitError
		assert.ErrorAs(t, err, &re, "message %q", msg)
	}
}

func TestClassifyError_Generic(t *testing.T) {
	err := classifyError(errors.New("invalid argument"))
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, classifyError(nil))
}

func TestClassifyError_PreservesCause(t *testing.T) {
	cause := errors.New("503 overloaded")
	err := classifyError(cause)
	assert.ErrorIs(t, err, cause)
}
