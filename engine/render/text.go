package render

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawString draws text with its top-left corner at pt using the canvas
// font. Newlines start a new line; lines are not wrapped.
func (c *Canvas) DrawString(pt image.Point, text string) error {
	if text == "" {
		return nil
	}
	p := c.plotter()
	metrics := c.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = (metrics.Ascent + metrics.Descent).Ceil()
	}

	dev := pt.Add(p.origin)
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		dot := fixed.P(dev.X, dev.Y+i*lineHeight+metrics.Ascent.Ceil())
		bounds, _ := font.BoundString(c.face, line)
		r := image.Rect(
			(dot.X + bounds.Min.X).Floor(), (dot.Y + bounds.Min.Y).Floor(),
			(dot.X + bounds.Max.X).Ceil(), (dot.Y + bounds.Max.Y).Ceil(),
		).Intersect(p.area)
		if r.Empty() {
			continue
		}
		mask := image.NewAlpha(r)
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: c.face,
			Dot:  dot,
		}
		d.DrawString(line)
		p.mask(mask, image.Point{})
	}
	return nil
}

func (c *Canvas) DrawChar(pt image.Point, r rune) error {
	return c.DrawString(pt, string(r))
}

// MeasureString returns the size of text drawn with the canvas font.
func (c *Canvas) MeasureString(text string) (int, int) {
	metrics := c.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	width := 0
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		width = max(width, font.MeasureString(c.face, line).Ceil())
	}
	return width, lineHeight * len(lines)
}
