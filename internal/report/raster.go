package report

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	canvasWidth = 720
	padding     = 24
	lineHeight  = 18
	// RenderScale is the supersampling factor applied to text sections.
	RenderScale = 2
)

var (
	inkColor    = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	accentColor = color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}
)

// Style controls how a line of a text section is drawn.
type Style int

const (
	Body Style = iota
	Heading
	Bullet
	Rule
)

type Line struct {
	Text  string
	Style Style
}

// TextSection is a block of text rasterized with a fixed-width bitmap face.
type TextSection struct {
	Title string
	Lines []Line
}

func (s TextSection) Name() string { return s.Title }

func (s TextSection) Rasterize(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	face := basicfont.Face7x13
	maxChars := (canvasWidth - 2*padding) / face.Advance

	var rows []Line
	for _, l := range s.Lines {
		switch l.Style {
		case Bullet:
			for i, w := range wrap(l.Text, maxChars-2) {
				prefix := "  "
				if i == 0 {
					prefix = "- "
				}
				rows = append(rows, Line{Text: prefix + w, Style: Bullet})
			}
		case Rule:
			rows = append(rows, Line{Text: strings.Repeat("-", maxChars), Style: Rule})
		default:
			for _, w := range wrap(l.Text, maxChars) {
				rows = append(rows, Line{Text: w, Style: l.Style})
			}
		}
	}

	height := 2*padding + len(rows)*lineHeight
	src := image.NewRGBA(image.Rect(0, 0, canvasWidth, height))
	xdraw.Draw(src, src.Bounds(), image.White, image.Point{}, xdraw.Src)

	d := &font.Drawer{Dst: src, Face: face}
	for i, row := range rows {
		d.Src = image.NewUniform(inkColor)
		if row.Style == Heading {
			d.Src = image.NewUniform(accentColor)
		}
		d.Dot = fixed.P(padding, padding+i*lineHeight+face.Ascent)
		d.DrawString(row.Text)
	}

	return upscale(src, RenderScale), nil
}

// ImageSection is an already-encoded photo, such as an uploaded room image.
type ImageSection struct {
	Title string
	Data  []byte
}

func (s ImageSection) Name() string { return s.Title }

func (s ImageSection) Rasterize(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(s.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Title, err)
	}
	return img, nil
}

func upscale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// wrap breaks text into lines of at most width characters, splitting on
// spaces and hard-breaking words longer than a line.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	for _, w := range words {
		for len(w) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, w[:width])
			w = w[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
