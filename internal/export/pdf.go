package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// assemble composes the captured bitmap into an A4 portrait PDF. The full
// image is registered once and drawn on every page at a negative vertical
// offset so each page shows the next 295mm slice. With multipage false the
// image is clamped to a single page.
func assemble(bm *Bitmap, multipage bool) ([]byte, error) {
	if bm == nil || len(bm.PNG) == 0 {
		return nil, &ExportError{Message: "no rendered page image to assemble"}
	}
	if bm.Width <= 0 || bm.Height <= 0 {
		return nil, &ExportError{Message: "rendered page image has invalid dimensions"}
	}

	imgHeight := ScaledImageHeight(bm.Width, bm.Height)
	offsets := []float64{0}
	if multipage {
		offsets = PageOffsets(imgHeight, PageHeight)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("document", opts, bytes.NewReader(bm.PNG))
	if pdf.Err() {
		return nil, &ExportError{Message: "failed to register page image", Cause: pdf.Error()}
	}

	for _, y := range offsets {
		pdf.AddPage()
		pdf.ImageOptions("document", 0, y, PageWidth, imgHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ExportError{Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}
