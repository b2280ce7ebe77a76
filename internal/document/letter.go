package document

import (
	"strings"

	"github.com/reco/reco-builder/internal/types"
)

// ApplyGeneratedLetter partitions a freshly generated full letter into the
// three content slots. With three or more blank-line-separated paragraphs
// the first becomes the opening, the last the closing, and everything
// between is joined into the body. With fewer, the entire text becomes the
// body and the opening and closing are left untouched. This is the only
// place letter content is ever auto-split.
func ApplyGeneratedLetter(content *types.LetterContent, generated string) {
	paragraphs := splitParagraphs(generated)
	if len(paragraphs) >= 3 {
		content.Opening = paragraphs[0]
		content.Body = strings.Join(paragraphs[1:len(paragraphs)-1], "\n\n")
		content.Closing = paragraphs[len(paragraphs)-1]
		return
	}
	content.Body = generated
}

// FullText joins the three content slots with blank lines, the form used
// for the plain-text export and clipboard copy.
func FullText(content types.LetterContent) string {
	return content.Opening + "\n\n" + content.Body + "\n\n" + content.Closing
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
