package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Pixel (x, y) covers the unit square whose center is (x+0.5, y+0.5).
func center(v int) float64 {
	return float64(v) + 0.5
}

// shape rasterizes the contours of one primitive with gg into a coverage
// mask. The mask is composited once, so pixels shared by several contours
// blend a single time.
type shape struct {
	p      *plotter
	bounds image.Rectangle
	pm     *gg.Pixmap
	dc     *gg.Context
	smooth bool
	err    error
}

// newShape prepares a shape whose viewport-space extent is
// [minX, maxX] x [minY, maxY]. It returns nil when the extent misses the
// drawable area.
func (p *plotter) newShape(minX, minY, maxX, maxY float64, smooth bool) *shape {
	dev := image.Rect(
		int(math.Floor(minX))+p.origin.X-1,
		int(math.Floor(minY))+p.origin.Y-1,
		int(math.Ceil(maxX))+p.origin.X+1,
		int(math.Ceil(maxY))+p.origin.Y+1,
	).Intersect(p.area)
	if dev.Empty() {
		return nil
	}
	pm := gg.NewPixmap(dev.Dx(), dev.Dy())
	dc := gg.NewContext(dev.Dx(), dev.Dy(), gg.WithPixmap(pm))
	dc.SetColor(color.White)
	dc.Translate(float64(p.origin.X-dev.Min.X), float64(p.origin.Y-dev.Min.Y))
	return &shape{p: p, bounds: dev, pm: pm, dc: dc, smooth: smooth}
}

func (s *shape) fill(rule gg.FillRule) {
	s.dc.SetFillRule(rule)
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = err
	}
}

// segment adds a one pixel wide line between two pixel centers, extended
// by half a pixel past both ends so the end pixels are fully covered.
func (s *shape) segment(ax, ay, bx, by float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.dc.DrawRectangle(ax-0.5, ay-0.5, 1, 1)
		s.fill(gg.FillRuleNonZero)
		return
	}
	nx, ny := -dy/length*0.5, dx/length*0.5
	ex, ey := dx/length*0.5, dy/length*0.5
	s.dc.MoveTo(ax-ex+nx, ay-ey+ny)
	s.dc.LineTo(bx+ex+nx, by+ey+ny)
	s.dc.LineTo(bx+ex-nx, by+ey-ny)
	s.dc.LineTo(ax-ex-nx, ay-ey-ny)
	s.dc.ClosePath()
	s.fill(gg.FillRuleNonZero)
}

// composite blends the accumulated coverage into the back buffer. Without
// anti-aliasing a pixel is either covered (at least half) or untouched.
func (s *shape) composite() error {
	defer s.dc.Close()
	if s.err != nil {
		return s.err
	}
	mask := image.NewAlpha(s.bounds)
	data := s.pm.Data()
	for i := range mask.Pix {
		a := data[i*4+3]
		if !s.smooth {
			if a >= 128 {
				a = 255
			} else {
				a = 0
			}
		}
		mask.Pix[i] = a
	}
	s.p.mask(mask, image.Point{})
	return nil
}

// reach returns the viewport-space box a primitive can affect, grown by
// margin pixels on every side.
func (p *plotter) reach(margin int) image.Rectangle {
	return p.area.Sub(p.origin).Inset(-margin)
}

// clipSegment trims the segment a-b to r (Liang-Barsky) and reports
// whether any part of it is left.
func clipSegment(ax, ay, bx, by float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	dx, dy := bx-ax, by-ay
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, ax - float64(r.Min.X)},
		{dx, float64(r.Max.X) - ax},
		{-dy, ay - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - ay},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return ax + t0*dx, ay + t0*dy, ax + t1*dx, ay + t1*dy, true
}

type lineSeg struct {
	ax, ay, bx, by float64
}

// outline rasterizes the polyline through points, closing it when asked.
// Segments are clipped first, so the work is bounded by the drawable area
// whatever the coordinates.
func (p *plotter) outline(points []image.Point, closed, smooth bool) error {
	box := p.reach(2)
	var segs []lineSeg
	add := func(a, b image.Point) {
		ax, ay, bx, by, ok := clipSegment(center(a.X), center(a.Y), center(b.X), center(b.Y), box)
		if ok {
			segs = append(segs, lineSeg{ax, ay, bx, by})
		}
	}
	if len(points) == 1 {
		add(points[0], points[0])
	}
	for i := 0; i+1 < len(points); i++ {
		add(points[i], points[i+1])
	}
	if closed && len(points) > 2 {
		add(points[len(points)-1], points[0])
	}
	if len(segs) == 0 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sg := range segs {
		minX, maxX = min(minX, sg.ax, sg.bx), max(maxX, sg.ax, sg.bx)
		minY, maxY = min(minY, sg.ay, sg.by), max(maxY, sg.ay, sg.by)
	}
	s := p.newShape(minX, minY, maxX, maxY, smooth)
	if s == nil {
		return nil
	}
	for _, sg := range segs {
		s.segment(sg.ax, sg.ay, sg.bx, sg.by)
	}
	return s.composite()
}

// rect fills r, or only its one pixel frame when frame is set. Rectangles
// sit on the pixel grid, so they never need partial coverage.
func (p *plotter) rect(r image.Rectangle, frame bool) error {
	// Edges beyond the reach stay invisible after clipping.
	r = r.Intersect(p.reach(1))
	if r.Empty() {
		return nil
	}
	s := p.newShape(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y), false)
	if s == nil {
		return nil
	}
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if inner := r.Inset(1); frame && !inner.Empty() {
		s.dc.DrawRectangle(float64(inner.Min.X), float64(inner.Min.Y), float64(inner.Dx()), float64(inner.Dy()))
	}
	s.fill(gg.FillRuleEvenOdd)
	return s.composite()
}

// ellipse fills the ellipse around the pixel (cx, cy), or only a one
// pixel ring along its edge when ring is set.
func (p *plotter) ellipse(cx, cy, rx, ry int, ring, smooth bool) error {
	if rx == 0 || ry == 0 {
		return p.outline([]image.Point{{cx - rx, cy - ry}, {cx + rx, cy + ry}}, false, smooth)
	}
	x, y := center(cx), center(cy)
	outerX, outerY := float64(rx)+0.5, float64(ry)+0.5
	s := p.newShape(x-outerX, y-outerY, x+outerX, y+outerY, smooth)
	if s == nil {
		return nil
	}
	s.dc.DrawEllipse(x, y, outerX, outerY)
	if ring && rx > 1 && ry > 1 {
		s.dc.DrawEllipse(x, y, float64(rx)-0.5, float64(ry)-0.5)
	}
	s.fill(gg.FillRuleEvenOdd)
	return s.composite()
}

// polygon fills the polygon through the pixel centers of points with the
// even-odd rule. Its edges are rasterized as well, so boundary pixels and
// vertices are always drawn.
func (p *plotter) polygon(points []image.Point, smooth bool) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range points {
		minX, maxX = min(minX, center(pt.X)), max(maxX, center(pt.X))
		minY, maxY = min(minY, center(pt.Y)), max(maxY, center(pt.Y))
	}
	s := p.newShape(minX, minY, maxX, maxY, smooth)
	if s == nil {
		return nil
	}
	s.dc.MoveTo(center(points[0].X), center(points[0].Y))
	for _, pt := range points[1:] {
		s.dc.LineTo(center(pt.X), center(pt.Y))
	}
	s.dc.ClosePath()
	s.fill(gg.FillRuleEvenOdd)
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		s.segment(center(a.X), center(a.Y), center(b.X), center(b.Y))
	}
	return s.composite()
}
