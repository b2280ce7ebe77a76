package export

import (
	"context"
	"log"

	"github.com/reco/reco-builder/internal/rendering"
	"github.com/reco/reco-builder/internal/templates"
	"github.com/reco/reco-builder/internal/types"
)

// PageCapturer renders an HTML document to a PNG bitmap.
type PageCapturer interface {
	CapturePNG(ctx context.Context, html string) (*Bitmap, error)
}

// Exporter turns documents into downloadable PDF files by rendering the
// export layout, capturing it in a headless browser, and slicing the
// capture into A4 pages.
type Exporter struct {
	capturer PageCapturer
}

// NewExporter creates an Exporter backed by the given capturer.
func NewExporter(capturer PageCapturer) *Exporter {
	return &Exporter{capturer: capturer}
}

// Resume exports a resume as a multi-page PDF. Content taller than one A4
// page flows onto additional pages.
func (e *Exporter) Resume(ctx context.Context, doc *types.ResumeDocument, templateID string) (*Result, error) {
	tree := templates.BuildResume(doc, templateID)
	data, err := e.export(ctx, tree, true)
	if err != nil {
		return nil, err
	}
	name := ResumeFilename(doc.PersonalInfo.FirstName, doc.PersonalInfo.LastName)
	log.Printf("[EXPORT] resume PDF ready: %s (%d bytes)", name, len(data))
	return &Result{data: data, filename: name}, nil
}

// CoverLetter exports a cover letter as a single-page PDF.
func (e *Exporter) CoverLetter(ctx context.Context, doc *types.CoverLetterDocument) (*Result, error) {
	tree := templates.BuildCoverLetter(doc, doc.Template)
	data, err := e.export(ctx, tree, false)
	if err != nil {
		return nil, err
	}
	name := CoverLetterFilename(doc.CompanyName)
	log.Printf("[EXPORT] cover letter PDF ready: %s (%d bytes)", name, len(data))
	return &Result{data: data, filename: name}, nil
}

func (e *Exporter) export(ctx context.Context, tree *templates.LayoutTree, multipage bool) ([]byte, error) {
	html, err := rendering.RenderHTML(tree, rendering.Export)
	if err != nil {
		return nil, &ExportError{Message: "failed to render export layout", Cause: err}
	}
	bm, err := e.capturer.CapturePNG(ctx, html)
	if err != nil {
		return nil, &ExportError{Message: "failed to capture document", Cause: err}
	}
	return assemble(bm, multipage)
}
