package prompts

import (
	"fmt"
	"strings"

	"github.com/reco/reco-builder/internal/types"
)

// Resume section keys accepted by ImproveSection.
const (
	SectionSummary        = "summary"
	SectionExperience     = "workExperience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionHobbies        = "hobbies"
)

// sectionKeys maps a section id to its prompt key in resume.json.
var sectionKeys = map[string]string{
	SectionSummary:        "improve-summary",
	SectionExperience:     "improve-experience",
	SectionEducation:      "improve-education",
	SectionProjects:       "improve-projects",
	SectionCertifications: "improve-certifications",
	SectionHobbies:        "improve-hobbies",
}

// CoverLetterSlot names an independently generated piece of the letter.
type CoverLetterSlot string

// Letter slots map onto coverletter.json prompt keys.
const (
	SlotOpening CoverLetterSlot = "opening"
	SlotBody    CoverLetterSlot = "body"
	SlotClosing CoverLetterSlot = "closing"
)

// lengthGuidance phrases the length customization for the letter prompts.
var lengthGuidance = map[string]string{
	"short":  "Keep the letter brief, around 150 words in total.",
	"medium": "Aim for around 250 words in total.",
	"long":   "Write a thorough letter of around 400 words in total.",
}

// ImproveSection builds the prompt that rewrites one resume section.
// Unknown sections fall back to the generic improvement prompt.
func ImproveSection(section, content string) (string, error) {
	key, ok := sectionKeys[section]
	if !ok {
		key = "improve-generic"
	}
	template, err := Get("resume.json", key)
	if err != nil {
		return "", err
	}
	return Format(template, map[string]string{"Content": content}), nil
}

// TailorForJob builds the prompt that rewrites a section toward a job posting.
func TailorForJob(content, jobDescription string) (string, error) {
	template, err := Get("resume.json", "tailor-for-job")
	if err != nil {
		return "", err
	}
	return Format(template, map[string]string{
		"Content":        content,
		"JobDescription": jobDescription,
	}), nil
}

// CoverLetter builds the prompt for a complete three-paragraph letter.
func CoverLetter(doc *types.CoverLetterDocument, resume *types.ResumeDocument) (string, error) {
	template, err := Get("coverletter.json", "full-letter")
	if err != nil {
		return "", err
	}
	return Format(template, letterData(doc, resume)), nil
}

// CoverLetterSlotPrompt builds the prompt for regenerating a single slot.
func CoverLetterSlotPrompt(slot CoverLetterSlot, doc *types.CoverLetterDocument, resume *types.ResumeDocument) (string, error) {
	template, err := Get("coverletter.json", string(slot))
	if err != nil {
		return "", err
	}
	return Format(template, letterData(doc, resume)), nil
}

// SuggestSkills builds the prompt that proposes additional skills from the
// candidate's experience and projects.
func SuggestSkills(doc *types.ResumeDocument) (string, error) {
	template, err := Get("skills.json", "suggest")
	if err != nil {
		return "", err
	}
	return Format(template, map[string]string{
		"CurrentSkills": skillsContext(doc.Skills),
		"Experience":    experienceContext(doc.WorkExperience),
		"Projects":      projectsContext(doc.Projects),
	}), nil
}

func letterData(doc *types.CoverLetterDocument, resume *types.ResumeDocument) map[string]string {
	manager := strings.TrimSpace(doc.HiringManager)
	if manager == "" {
		manager = "the hiring team"
	}
	guidance, ok := lengthGuidance[doc.Customizations.Length]
	if !ok {
		guidance = lengthGuidance["medium"]
	}
	return map[string]string{
		"JobTitle":       doc.JobTitle,
		"CompanyName":    doc.CompanyName,
		"HiringManager":  manager,
		"JobDescription": doc.JobDescription,
		"Tone":           doc.Customizations.Tone,
		"Emphasis":       doc.Customizations.Emphasis,
		"Industry":       doc.Industry,
		"LengthGuidance": guidance,
		"ResumeContext":  ResumeContext(resume),
	}
}

// ResumeContext summarizes the resume as plain text for letter prompts.
// A nil or empty resume yields a short placeholder so prompts stay valid.
func ResumeContext(doc *types.ResumeDocument) string {
	if doc == nil {
		return "No resume on file."
	}
	var b strings.Builder
	if s := strings.TrimSpace(doc.PersonalInfo.Summary); s != "" {
		b.WriteString("Summary: " + s + "\n")
	}
	if exp := experienceContext(doc.WorkExperience); exp != "" {
		b.WriteString("Experience:\n" + exp + "\n")
	}
	if !doc.Skills.IsEmpty() {
		b.WriteString("Skills: " + skillsContext(doc.Skills) + "\n")
	}
	if out := strings.TrimSpace(b.String()); out != "" {
		return out
	}
	return "No resume on file."
}

func experienceContext(entries []types.WorkExperience) string {
	var lines []string
	for _, e := range entries {
		line := fmt.Sprintf("- %s at %s", e.JobTitle, e.Company)
		if d := strings.TrimSpace(e.Description); d != "" {
			line += ": " + d
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func projectsContext(entries []types.Project) string {
	var lines []string
	for _, p := range entries {
		line := "- " + p.Name
		if d := strings.TrimSpace(p.Description); d != "" {
			line += ": " + d
		}
		if t := strings.TrimSpace(p.Technologies); t != "" {
			line += " (" + t + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func skillsContext(skills types.Skills) string {
	var parts []string
	for _, cat := range types.SkillCategories {
		if len(skills[cat]) > 0 {
			parts = append(parts, cat+": "+strings.Join(skills[cat], ", "))
		}
	}
	if len(parts) == 0 {
		return "none listed"
	}
	return strings.Join(parts, "; ")
}
