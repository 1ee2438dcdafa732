package render

import (
	"image"
)

// Coordinates given to the primitives below are relative to the viewport.

func (c *Canvas) DrawPoint(pt image.Point) error {
	c.plotter().plot(pt.X, pt.Y, 255)
	return nil
}

func (c *Canvas) DrawPoints(points []image.Point) error {
	if len(points) == 0 {
		return invalid("no points to draw")
	}
	p := c.plotter()
	for _, pt := range points {
		p.plot(pt.X, pt.Y, 255)
	}
	return nil
}

func (c *Canvas) DrawLine(start, end image.Point) error {
	return c.plotter().outline([]image.Point{start, end}, false, c.antiAlias)
}

// DrawLines draws a polyline through points.
func (c *Canvas) DrawLines(points []image.Point) error {
	if len(points) == 0 {
		return invalid("no points to draw")
	}
	return c.plotter().outline(points, false, c.antiAlias)
}

func (c *Canvas) DrawRect(r image.Rectangle) error {
	if r.Dx() < 0 || r.Dy() < 0 {
		return invalid("rectangle %v has a negative size", r)
	}
	return c.plotter().rect(r, true)
}

func (c *Canvas) DrawRects(rects []image.Rectangle) error {
	for _, r := range rects {
		if err := c.DrawRect(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) FillRect(r image.Rectangle) error {
	if r.Dx() < 0 || r.Dy() < 0 {
		return invalid("rectangle %v has a negative size", r)
	}
	return c.plotter().rect(r, false)
}

func (c *Canvas) FillRects(rects []image.Rectangle) error {
	for _, r := range rects {
		if err := c.FillRect(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) DrawCircle(center image.Point, radius int) error {
	return c.DrawEllipse(center, radius, radius)
}

func (c *Canvas) FillCircle(center image.Point, radius int) error {
	return c.FillEllipse(center, radius, radius)
}

func (c *Canvas) DrawEllipse(center image.Point, rx, ry int) error {
	checkShort(center.X, center.Y, rx, ry)
	if rx < 0 || ry < 0 {
		return invalid("negative radius %d,%d", rx, ry)
	}
	return c.plotter().ellipse(center.X, center.Y, rx, ry, true, c.antiAlias)
}

func (c *Canvas) FillEllipse(center image.Point, rx, ry int) error {
	checkShort(center.X, center.Y, rx, ry)
	if rx < 0 || ry < 0 {
		return invalid("negative radius %d,%d", rx, ry)
	}
	return c.plotter().ellipse(center.X, center.Y, rx, ry, false, c.antiAlias)
}

func (c *Canvas) DrawTriangle(a, b, d image.Point) error {
	return c.DrawPolygon([]image.Point{a, b, d})
}

func (c *Canvas) FillTriangle(a, b, d image.Point) error {
	return c.FillPolygon([]image.Point{a, b, d})
}

// DrawPolygon draws the closed outline through points.
func (c *Canvas) DrawPolygon(points []image.Point) error {
	checkShortPoints(points)
	if len(points) < 3 {
		return invalid("a polygon needs at least 3 points, got %d", len(points))
	}
	return c.plotter().outline(points, true, c.antiAlias)
}

func (c *Canvas) FillPolygon(points []image.Point) error {
	checkShortPoints(points)
	if len(points) < 3 {
		return invalid("a polygon needs at least 3 points, got %d", len(points))
	}
	return c.plotter().polygon(points, c.antiAlias)
}
