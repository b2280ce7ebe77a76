package export

import (
	"bytes"
	"context"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultCaptureTimeout bounds a single rasterization, browser startup
// included.
const DefaultCaptureTimeout = 60 * time.Second

// Bitmap is a captured full-height raster of a rendered document.
type Bitmap struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer captures rendered HTML to a full-height bitmap using a
// detached headless browser. Every capture runs in its own browser
// context: nothing visible is disturbed and everything is torn down on all
// paths, success or failure.
type Rasterizer struct {
	ChromePath string
	Timeout    time.Duration
}

// NewRasterizer creates a Rasterizer. chromePath may be empty to use the
// browser found on PATH.
func NewRasterizer(chromePath string, timeout time.Duration) *Rasterizer {
	if timeout <= 0 {
		timeout = DefaultCaptureTimeout
	}
	return &Rasterizer{ChromePath: chromePath, Timeout: timeout}
}

// CapturePNG renders html offscreen at the fixed export width with the
// oversampling scale applied and returns the full-height screenshot.
func (r *Rasterizer) CapturePNG(ctx context.Context, html string) (*Bitmap, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.Timeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(ViewportWidth, 1123, chromedp.EmulateScale(CaptureScale)),
		chromedp.Navigate("about:blank"),
		setDocumentContent(html),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, &ExportError{Message: "surface capture failed", Cause: err}
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, &ExportError{Message: "captured bitmap unreadable", Cause: err}
	}
	return &Bitmap{PNG: buf, Width: cfg.Width, Height: cfg.Height}, nil
}

// setDocumentContent injects html into the page's main frame, avoiding a
// temp file round-trip through the filesystem.
func setDocumentContent(html string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	}
}
