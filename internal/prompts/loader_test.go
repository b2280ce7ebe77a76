package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKey(t *testing.T) {
	prompt, err := Get("resume.json", "improve-summary")
	require.NoError(t, err)
	assert.Contains(t, prompt, "professional summary")
	assert.Contains(t, prompt, "{{.Content}}", "the template keeps its placeholder until Format fills it")
}

func TestGet_SecondReadServedFromCache(t *testing.T) {
	first, err := Get("coverletter.json", "full-letter")
	require.NoError(t, err)

	second, err := Get("coverletter.json", "full-letter")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("nonexistent.json", "improve-summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent.json")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("resume.json", "no-such-operation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-operation")
}

func TestFormat_FillsPlaceholders(t *testing.T) {
	out := Format("Dear {{.HiringManager}}, I want the {{.JobTitle}} role.", map[string]string{
		"HiringManager": "Pat",
		"JobTitle":      "Backend Engineer",
	})
	assert.Equal(t, "Dear Pat, I want the Backend Engineer role.", out)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "filled"})
	assert.Equal(t, "filled and {{.Unknown}}", out)
}
