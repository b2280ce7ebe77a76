package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reco/reco-builder/internal/types"
)

func letterDoc() *types.CoverLetterDocument {
	doc := types.EmptyCoverLetter()
	doc.JobTitle = "Backend Engineer"
	doc.CompanyName = "Acme"
	doc.JobDescription = "Build Go services."
	return doc
}

func resumeDoc() *types.ResumeDocument {
	doc := types.EmptyResume()
	doc.PersonalInfo.Summary = "Engineer focused on distributed systems."
	doc.WorkExperience = append(doc.WorkExperience, types.WorkExperience{
		JobTitle: "Engineer", Company: "Initech", Description: "Ran the billing platform.",
	})
	doc.Skills[types.SkillTechnical] = []string{"Go", "PostgreSQL"}
	return doc
}

func TestImproveSection_KnownSection(t *testing.T) {
	prompt, err := ImproveSection(SectionSummary, "I do software.")
	require.NoError(t, err)
	assert.Contains(t, prompt, "professional summary")
	assert.Contains(t, prompt, "I do software.")
}

func TestImproveSection_UnknownSectionFallsBack(t *testing.T) {
	prompt, err := ImproveSection("languagesSpoken", "English, Spanish")
	require.NoError(t, err)
	assert.Contains(t, prompt, "English, Spanish")
	assert.Contains(t, prompt, "Improve the following resume text")
}

func TestTailorForJob(t *testing.T) {
	prompt, err := TailorForJob("Built APIs.", "Looking for a Go developer.")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Built APIs.")
	assert.Contains(t, prompt, "Looking for a Go developer.")
}

func TestCoverLetter_IncludesJobAndResumeContext(t *testing.T) {
	prompt, err := CoverLetter(letterDoc(), resumeDoc())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "Build Go services.")
	assert.Contains(t, prompt, "distributed systems")
	assert.Contains(t, prompt, "around 250 words")
	// No hiring manager set, so the prompt addresses the team.
	assert.Contains(t, prompt, "the hiring team")
}

func TestCoverLetter_NamedHiringManager(t *testing.T) {
	doc := letterDoc()
	doc.HiringManager = "Alex Rivera"

	prompt, err := CoverLetter(doc, resumeDoc())
	require.NoError(t, err)
	assert.Contains(t, prompt, "Alex Rivera")
}

func TestCoverLetterSlotPrompt(t *testing.T) {
	for _, slot := range []CoverLetterSlot{SlotOpening, SlotBody, SlotClosing} {
		prompt, err := CoverLetterSlotPrompt(slot, letterDoc(), resumeDoc())
		require.NoError(t, err, "slot %s", slot)
		assert.Contains(t, prompt, "Backend Engineer")
		assert.Contains(t, prompt, string(slot)+" paragraph")
	}
}

func TestSuggestSkills(t *testing.T) {
	prompt, err := SuggestSkills(resumeDoc())
	require.NoError(t, err)
	assert.Contains(t, prompt, "technical: Go, PostgreSQL")
	assert.Contains(t, prompt, "Initech")
	assert.Contains(t, prompt, `"technical"`)
}

func TestResumeContext_EmptyResume(t *testing.T) {
	assert.Equal(t, "No resume on file.", ResumeContext(types.EmptyResume()))
	assert.Equal(t, "No resume on file.", ResumeContext(nil))
}
