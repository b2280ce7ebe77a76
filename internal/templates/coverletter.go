package templates

import (
	"strings"
	"time"

	"github.com/reco/reco-builder/internal/types"
)

// Clock returns the date stamped onto rendered letters. Tests may override.
var Clock = time.Now

// BuildCoverLetter produces the layout tree for a cover letter under the
// named template. Unknown ids use the default variant. The date, salutation
// and signature always render; content slots render only when non-empty.
func BuildCoverLetter(doc *types.CoverLetterDocument, templateID string) *LayoutTree {
	def := letterDefinition(templateID)
	tree := &LayoutTree{Template: def.ID, Theme: def.Theme}

	for _, kind := range def.Order {
		if section := buildLetterSection(doc, kind); section != nil {
			tree.Sections = append(tree.Sections, *section)
		}
	}
	return tree
}

func buildLetterSection(doc *types.CoverLetterDocument, kind SectionKind) *Section {
	switch kind {
	case KindDate:
		return &Section{Kind: kind, Items: []Item{{Meta: Clock().Format("1/2/2006")}}}

	case KindRecipient:
		var items []Item
		if s := strings.TrimSpace(doc.HiringManager); s != "" {
			items = append(items, Item{Title: s})
		}
		if s := strings.TrimSpace(doc.CompanyName); s != "" {
			items = append(items, Item{Title: s})
		}
		if len(items) == 0 {
			return nil
		}
		return &Section{Kind: kind, Items: items}

	case KindSalutation:
		recipient := strings.TrimSpace(doc.HiringManager)
		if recipient == "" {
			recipient = "Hiring Manager"
		}
		return &Section{Kind: kind, Items: []Item{{Body: "Dear " + recipient + ","}}}

	case KindOpening:
		return letterParagraph(kind, doc.Content.Opening)
	case KindBody:
		return letterParagraph(kind, doc.Content.Body)
	case KindClosing:
		return letterParagraph(kind, doc.Content.Closing)

	case KindSignature:
		return &Section{Kind: kind, Items: []Item{
			{Body: "Sincerely,"},
			{Title: "[Your Name]"},
		}}
	}
	return nil
}

func letterParagraph(kind SectionKind, text string) *Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Section{Kind: kind, Items: []Item{{Body: text}}}
}
