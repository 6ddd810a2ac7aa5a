// Package report renders a generation result as a paged PDF.
package report

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Layout is an A4 portrait page measured in millimetres.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

var A4 = Layout{PageWidth: 210, PageHeight: 297, Margin: 10}

// Placement is where a section image lands on its page.
type Placement struct {
	X, Y, W, H float64
}

// Fit scales an image of imgW x imgH pixels to the content width. Images
// that would then overflow the page height are shrunk to fit and centred
// horizontally instead of being split across pages.
func Fit(imgW, imgH int, l Layout) Placement {
	contentWidth := l.PageWidth - 2*l.Margin
	maxHeight := l.PageHeight - 2*l.Margin
	if imgW <= 0 || imgH <= 0 {
		return Placement{X: l.Margin, Y: l.Margin}
	}

	h := float64(imgH) * contentWidth / float64(imgW)
	w := contentWidth
	if h > maxHeight {
		h = maxHeight
		w = float64(imgW) * h / float64(imgH)
	}
	return Placement{
		X: l.Margin + (contentWidth-w)/2,
		Y: l.Margin,
		W: w,
		H: h,
	}
}

// Filename names an export after the moment it was produced.
func Filename(now time.Time) string {
	return fmt.Sprintf("Palette-Design-Plan-%d.pdf", now.UnixMilli())
}

// Export rasterizes each section in order onto its own page and writes the
// PDF to w. It returns the number of pages added.
func Export(ctx context.Context, sections []Section, w io.Writer) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Palette Design Plan", true)
	pdf.SetCreator("palette-backend", true)

	pageW, pageH := pdf.GetPageSize()
	layout := Layout{PageWidth: pageW, PageHeight: pageH, Margin: A4.Margin}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	for i, section := range sections {
		img, err := section.Rasterize(ctx)
		if err != nil {
			return i, fmt.Errorf("failed to render section %q: %w", section.Name(), err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return i, fmt.Errorf("failed to encode section %q: %w", section.Name(), err)
		}

		name := fmt.Sprintf("section-%d", i)
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()

		b := img.Bounds()
		p := Fit(b.Dx(), b.Dy(), layout)
		pdf.ImageOptions(name, p.X, p.Y, p.W, p.H, false, opts, 0, "")
		if err := pdf.Error(); err != nil {
			return i, fmt.Errorf("failed to place section %q: %w", section.Name(), err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return len(sections), fmt.Errorf("failed to write pdf: %w", err)
	}
	return len(sections), nil
}
