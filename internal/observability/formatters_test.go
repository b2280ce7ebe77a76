package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.EmptyResume()
	doc.PersonalInfo.FirstName = "Jane"
	doc.PersonalInfo.LastName = "Doe"
	doc.WorkExperience = []types.WorkExperience{
		{JobTitle: "Senior Engineer", Company: "Acme Corp"},
	}
	doc.Skills[types.SkillTechnical] = []string{"Go", "Kubernetes"}

	p.PrintResume(doc, "modern")
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "modern")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Go, Kubernetes")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil, "modern")

	assert.Empty(t, buf.String())
}

func TestPrintResume_ManyEntries_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.EmptyResume()
	for i := 0; i < 8; i++ {
		doc.WorkExperience = append(doc.WorkExperience, types.WorkExperience{JobTitle: "Engineer"})
	}

	p.PrintResume(doc, "classic")

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintCoverLetter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.EmptyCoverLetter()
	doc.CompanyName = "Acme Corp"
	doc.JobTitle = "Senior Engineer"
	doc.HiringManager = "Pat Smith"
	doc.Content.Opening = "Dear Pat,"
	doc.Content.Body = "I am writing to apply."
	doc.Content.Closing = "Sincerely, Jane"

	p.PrintCoverLetter(doc)
	output := buf.String()

	assert.Contains(t, output, "COVER LETTER")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Pat Smith")
	assert.Contains(t, output, "9 words")
}

func TestPrintCoverLetter_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCoverLetter(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExportResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := export.NewResult([]byte("%PDF-fake"), "Jane_Doe_Resume.pdf")
	p.PrintExportResult(result, "/tmp/out.pdf")
	output := buf.String()

	assert.Contains(t, output, "EXPORT COMPLETE")
	assert.Contains(t, output, "Jane_Doe_Resume.pdf")
	assert.Contains(t, output, "9 bytes")
	assert.Contains(t, output, "/tmp/out.pdf")
}

func TestPrintBox_LongLinesTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
