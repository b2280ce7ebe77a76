package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeFilename_FullName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.pdf", ResumeFilename("Jane", "Doe"))
}

func TestResumeFilename_MissingParts(t *testing.T) {
	assert.Equal(t, "Resume_Document_Resume.pdf", ResumeFilename("", ""))
	assert.Equal(t, "Jane_Document_Resume.pdf", ResumeFilename("Jane", ""))
	assert.Equal(t, "Resume_Doe_Resume.pdf", ResumeFilename("  ", "Doe"))
}

func TestResumeFilename_SanitizesSeparators(t *testing.T) {
	assert.Equal(t, "A-B_Doe_Resume.pdf", ResumeFilename("A/B", "Doe"))
}

func TestCoverLetterFilename(t *testing.T) {
	assert.Equal(t, "Acme_Cover_Letter.pdf", CoverLetterFilename("Acme"))
	assert.Equal(t, "Company_Cover_Letter.pdf", CoverLetterFilename(""))
}

func TestCoverLetterTextFilename(t *testing.T) {
	assert.Equal(t, "Acme_Cover_Letter.txt", CoverLetterTextFilename("Acme"))
	assert.Equal(t, "Company_Cover_Letter.txt", CoverLetterTextFilename("   "))
}
