package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reco/reco-builder/internal/types"
)

func TestGenerateSectionRequest_Validate(t *testing.T) {
	req := &GenerateSectionRequest{Content: "Improve me"}
	assert.NoError(t, req.Validate())
}

func TestGenerateSectionRequest_EmptyContent(t *testing.T) {
	req := &GenerateSectionRequest{}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content is required")
}

func TestGenerateLetterRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GenerateLetterRequest{}).Validate())
	assert.NoError(t, (&GenerateLetterRequest{Slot: "opening"}).Validate())
	assert.NoError(t, (&GenerateLetterRequest{Slot: "body"}).Validate())
	assert.NoError(t, (&GenerateLetterRequest{Slot: "closing"}).Validate())
}

func TestGenerateLetterRequest_UnknownSlot(t *testing.T) {
	err := (&GenerateLetterRequest{Slot: "postscript"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot must be one of")
}

func TestSetTemplateRequest_Validate(t *testing.T) {
	for _, id := range types.ResumeTemplates {
		assert.NoError(t, (&SetTemplateRequest{Template: id}).Validate(), id)
	}
}

func TestSetTemplateRequest_Unknown(t *testing.T) {
	err := (&SetTemplateRequest{Template: "vaporwave"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestSetTemplateRequest_Empty(t *testing.T) {
	err := (&SetTemplateRequest{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template is required")
}

func TestLetterReady(t *testing.T) {
	doc := types.EmptyCoverLetter()
	doc.JobTitle = "Engineer"
	doc.CompanyName = "Acme"
	assert.NoError(t, LetterReady(doc))
}

func TestLetterReady_MissingFields(t *testing.T) {
	doc := types.EmptyCoverLetter()
	assert.Error(t, LetterReady(doc))

	doc.JobTitle = "Engineer"
	assert.Error(t, LetterReady(doc))

	doc.JobTitle = "   "
	doc.CompanyName = "Acme"
	assert.Error(t, LetterReady(doc))
}
