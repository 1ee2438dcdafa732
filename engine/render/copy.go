package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// CopyOptions controls how an image is copied onto the canvas.
type CopyOptions struct {
	// Angle in degrees, clockwise.
	Angle float64
	// Center of rotation relative to the destination rectangle. Nil
	// rotates around the middle of the destination.
	Center *image.Point
	FlipH  bool
	FlipV  bool
	// Mod multiplies every texel. White leaves the image unchanged.
	Mod   color.NRGBA
	Blend BlendMode
}

func DefaultCopyOptions() CopyOptions {
	return CopyOptions{Mod: White, Blend: BlendAlpha}
}

// Copy draws the src rectangle of img scaled into dst. A nil src selects
// the whole image and a nil dst the whole viewport.
func (c *Canvas) Copy(img *image.NRGBA, src, dst *image.Rectangle) error {
	return c.CopyEx(img, src, dst, DefaultCopyOptions())
}

// CopyEx is Copy with rotation, flipping and color modulation.
func (c *Canvas) CopyEx(img *image.NRGBA, src, dst *image.Rectangle, opts CopyOptions) error {
	if img == nil {
		return invalid("nil image")
	}
	sr := img.Bounds()
	if src != nil {
		if src.Dx() < 0 || src.Dy() < 0 {
			return invalid("source rectangle %v has a negative size", *src)
		}
		sr = src.Intersect(img.Bounds())
	}
	vp := c.Viewport()
	dr := image.Rect(0, 0, vp.Dx(), vp.Dy())
	if dst != nil {
		if dst.Dx() < 0 || dst.Dy() < 0 {
			return invalid("destination rectangle %v has a negative size", *dst)
		}
		dr = *dst
	}
	if sr.Empty() || dr.Empty() {
		return nil
	}

	origin, area := c.target()
	x0, y0 := float64(origin.X+dr.Min.X), float64(origin.Y+dr.Min.Y)
	pivot := image.Pt(dr.Dx()/2, dr.Dy()/2)
	if opts.Center != nil {
		pivot = *opts.Center
	}
	cx, cy := x0+float64(pivot.X), y0+float64(pivot.Y)

	// Scale (and flip) source pixels onto the destination rectangle, then
	// rotate clockwise about the pivot.
	sx := float64(dr.Dx()) / float64(sr.Dx())
	sy := float64(dr.Dy()) / float64(sr.Dy())
	fx, tx := sx, x0-float64(sr.Min.X)*sx
	if opts.FlipH {
		fx, tx = -sx, x0+float64(sr.Max.X)*sx
	}
	fy, ty := sy, y0-float64(sr.Min.Y)*sy
	if opts.FlipV {
		fy, ty = -sy, y0+float64(sr.Max.Y)*sy
	}
	sin, cos := math.Sincos(opts.Angle * math.Pi / 180)
	m := f64.Aff3{
		cos * fx, -sin * fy, cos*(tx-cx) - sin*(ty-cy) + cx,
		sin * fx, cos * fy, sin*(tx-cx) + cos*(ty-cy) + cy,
	}

	bounds := transformedBounds(m, sr).Intersect(area)
	if bounds.Empty() {
		return nil
	}
	texels := image.NewNRGBA(bounds)
	cover := image.NewAlpha(bounds)
	draw.NearestNeighbor.Transform(texels, m, img, sr, draw.Src, nil)
	draw.NearestNeighbor.Transform(cover, m, image.Opaque, sr, draw.Src, nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if cover.AlphaAt(x, y).A == 0 {
				continue
			}
			texel := modulate(texels.NRGBAAt(x, y), opts.Mod)
			i := c.back.PixOffset(x, y)
			blend(c.back.Pix[i:i+4:i+4], texel, 255, opts.Blend)
		}
	}
	return nil
}

// transformedBounds returns the device pixels m can map the rectangle r
// onto.
func transformedBounds(m f64.Aff3, r image.Rectangle) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4]image.Point{r.Min, {r.Max.X, r.Min.Y}, {r.Min.X, r.Max.Y}, r.Max} {
		x := m[0]*float64(p.X) + m[1]*float64(p.Y) + m[2]
		y := m[3]*float64(p.X) + m[4]*float64(p.Y) + m[5]
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
