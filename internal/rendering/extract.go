package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText returns the visible text of a rendered document, one entry
// per text-bearing leaf element in document order. It backs the
// content-over-presentation contract: two renderings of the same document
// under different templates must extract to the same multiset of text.
func ExtractText(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse rendered HTML", Cause: err}
	}

	var texts []string
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts, nil
}
