package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reco/reco-builder/internal/types"
)

func TestApplyGeneratedLetter_ThreeParagraphs(t *testing.T) {
	content := types.LetterContent{}
	ApplyGeneratedLetter(&content, "I am excited to apply.\n\nMy background fits well.\n\nI look forward to hearing from you.")

	assert.Equal(t, "I am excited to apply.", content.Opening)
	assert.Equal(t, "My background fits well.", content.Body)
	assert.Equal(t, "I look forward to hearing from you.", content.Closing)
}

func TestApplyGeneratedLetter_FiveParagraphs(t *testing.T) {
	content := types.LetterContent{}
	ApplyGeneratedLetter(&content, strings.Join([]string{"P1", "P2", "P3", "P4", "P5"}, "\n\n"))

	assert.Equal(t, "P1", content.Opening)
	assert.Equal(t, "P2\n\nP3\n\nP4", content.Body)
	assert.Equal(t, "P5", content.Closing)
}

func TestApplyGeneratedLetter_SingleParagraph(t *testing.T) {
	content := types.LetterContent{Opening: "keep me", Closing: "and me"}
	ApplyGeneratedLetter(&content, "Just one paragraph of text.")

	assert.Equal(t, "keep me", content.Opening)
	assert.Equal(t, "Just one paragraph of text.", content.Body)
	assert.Equal(t, "and me", content.Closing)
}

func TestApplyGeneratedLetter_BlankParagraphsIgnored(t *testing.T) {
	content := types.LetterContent{}
	ApplyGeneratedLetter(&content, "P1\n\n   \n\nP2\n\nP3")

	// The whitespace-only paragraph does not count toward the three slots.
	assert.Equal(t, "P1", content.Opening)
	assert.Equal(t, "P2", content.Body)
	assert.Equal(t, "P3", content.Closing)
}

func TestFullText(t *testing.T) {
	text := FullText(types.LetterContent{Opening: "a", Body: "b", Closing: "c"})
	assert.Equal(t, "a\n\nb\n\nc", text)
}
