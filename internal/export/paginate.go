// Package export rasterizes rendered documents and assembles paginated PDF
// artifacts from the resulting bitmap.
package export

import "math"

// Output geometry, in millimetres of PDF space. PageHeight is the usable
// slice height, deliberately a hair under physical A4 so adjacent slices
// never shave content at the fold.
const (
	PageWidth  = 210.0
	PageHeight = 295.0

	// CaptureScale is the oversampling factor applied at rasterization for
	// output sharpness.
	CaptureScale = 2.0

	// ViewportWidth is 210mm at 96 CSS px/inch, the fixed capture width.
	ViewportWidth = 794

	// heightTolerance absorbs sub-millimetre rounding so an image that is
	// exactly n pages tall yields n pages, not n plus a blank one.
	heightTolerance = 0.5
)

// ScaledImageHeight returns the height of a bitmap after uniform
// scale-to-fit-width into PageWidth.
func ScaledImageHeight(bitmapWidth, bitmapHeight int) float64 {
	if bitmapWidth <= 0 {
		return 0
	}
	return float64(bitmapHeight) * PageWidth / float64(bitmapWidth)
}

// PageCount returns ceil(imgHeight/pageHeight) within tolerance, never
// less than one.
func PageCount(imgHeight, pageHeight float64) int {
	if pageHeight <= 0 || imgHeight <= pageHeight+heightTolerance {
		return 1
	}
	return int(math.Ceil((imgHeight - heightTolerance) / pageHeight))
}

// PageOffsets returns the vertical placement of the full-height image on
// each output page. Page 0 places the image at offset 0; every later page
// shifts the image up by the height already consumed, so that offset i is
// heightLeft - imgHeight after i slices of pageHeight have been taken.
// Concatenating the pageHeight-tall windows at these offsets reconstructs
// the image exactly, with no gap and no overlap.
func PageOffsets(imgHeight, pageHeight float64) []float64 {
	offsets := make([]float64, PageCount(imgHeight, pageHeight))
	heightLeft := imgHeight
	for i := range offsets {
		offsets[i] = heightLeft - imgHeight
		heightLeft -= pageHeight
	}
	return offsets
}
