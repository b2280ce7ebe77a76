// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the resume about to be
// rendered.
func (p *Printer) PrintResume(doc *types.ResumeDocument, templateID string) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	name := strings.TrimSpace(doc.PersonalInfo.FirstName + " " + doc.PersonalInfo.LastName)
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Template: %s\n", templateID))
	sb.WriteString("\n")

	if len(doc.WorkExperience) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(doc.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := doc.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.JobTitle))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(doc.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, cat := range types.SkillCategories {
		if len(doc.Skills[cat]) == 0 {
			continue
		}
		skills := strings.Join(doc.Skills[cat], ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-10s %s\n", cat+":", skills))
	}

	sb.WriteString(fmt.Sprintf("\nSections: %d experience, %d education, %d projects, %d certifications",
		len(doc.WorkExperience), len(doc.Education), len(doc.Projects), len(doc.Certifications)))

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverLetter outputs a summary of the cover letter about to be
// rendered.
func (p *Printer) PrintCoverLetter(doc *types.CoverLetterDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", doc.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", doc.JobTitle))
	if doc.HiringManager != "" {
		sb.WriteString(fmt.Sprintf("Manager:  %s\n", doc.HiringManager))
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Template))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Tone:     %s\n", doc.Customizations.Tone))
	sb.WriteString(fmt.Sprintf("Length:   %s\n", doc.Customizations.Length))

	words := 0
	for _, slot := range []string{doc.Content.Opening, doc.Content.Body, doc.Content.Closing} {
		words += len(strings.Fields(slot))
	}
	sb.WriteString(fmt.Sprintf("\nContent:  %d words", words))

	p.printBox("COVER LETTER", sb.String())
}

// PrintExportResult outputs the artifact written by an export.
func (p *Printer) PrintExportResult(result *export.Result, path string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", result.Filename()))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", result.Len()))
	if path != "" {
		sb.WriteString(fmt.Sprintf("\nWritten:  %s", path))
	}

	p.printBox("EXPORT COMPLETE", sb.String())
}
