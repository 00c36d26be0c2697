package receipt

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Paper is 80mm thermal roll width, in inches.
const paperWidth = 3.15

var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// Printer turns rendered receipt HTML into a PDF with headless Chrome.
type Printer struct {
	chromePath string
	timeout    time.Duration
}

// NewPrinter prefers chromePath when it exists and otherwise looks in the
// usual install locations. An empty result lets chromedp find Chrome itself.
func NewPrinter(chromePath string) *Printer {
	return &Printer{chromePath: detectChromePath(chromePath), timeout: 30 * time.Second}
}

func detectChromePath(preferred string) string {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred
		}
	}
	for _, path := range chromeCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// PDF prints html as a single receipt-width document.
func (p *Printer) PDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(paperWidth).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt PDF: %w", err)
	}
	return pdf, nil
}
