package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas is the drawable back buffer of a window. Every primitive writes
// into the back buffer only; the platform makes it visible when the frame
// is presented.
type Canvas struct {
	back *image.NRGBA

	drawColor color.NRGBA
	blendMode BlendMode
	clip      *image.Rectangle
	viewport  *image.Rectangle
	antiAlias bool
	face      font.Face
}

// NewCanvas allocates a back buffer of the given logical size.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("render: canvas size must be positive")
	}
	return &Canvas{
		back:      image.NewNRGBA(image.Rect(0, 0, width, height)),
		drawColor: White,
		blendMode: BlendNone,
		face:      basicfont.Face7x13,
	}
}

func (c *Canvas) Size() (int, int) {
	b := c.back.Bounds()
	return b.Dx(), b.Dy()
}

// Frame returns the back buffer. The returned image is only valid until
// the next draw call.
func (c *Canvas) Frame() *image.NRGBA {
	return c.back
}

func (c *Canvas) DrawColor() color.NRGBA {
	return c.drawColor
}

func (c *Canvas) SetDrawColor(col color.Color) {
	c.drawColor = toNRGBA(col)
}

func (c *Canvas) BlendMode() BlendMode {
	return c.blendMode
}

func (c *Canvas) SetBlendMode(mode BlendMode) {
	c.blendMode = mode
}

func (c *Canvas) AntiAlias() bool {
	return c.antiAlias
}

func (c *Canvas) SetAntiAlias(enabled bool) {
	c.antiAlias = enabled
}

// Font returns the face used by DrawString.
func (c *Canvas) Font() font.Face {
	return c.face
}

// SetFont changes the face used by DrawString. A nil face restores the
// built-in fixed face.
func (c *Canvas) SetFont(face font.Face) {
	if face == nil {
		face = basicfont.Face7x13
	}
	c.face = face
}

// ClipRect reports the clipping rectangle, relative to the viewport.
func (c *Canvas) ClipRect() (image.Rectangle, bool) {
	if c.clip == nil {
		return image.Rectangle{}, false
	}
	return *c.clip, true
}

// SetClipRect confines subsequent draws to r. A nil rectangle removes the
// clip and draws reach the whole viewport again.
func (c *Canvas) SetClipRect(r *image.Rectangle) {
	if r == nil {
		c.clip = nil
		return
	}
	clip := r.Canon()
	c.clip = &clip
}

// Viewport returns the drawing area. Without a viewport it is the whole
// back buffer.
func (c *Canvas) Viewport() image.Rectangle {
	if c.viewport == nil {
		return c.back.Bounds()
	}
	return *c.viewport
}

// SetViewport moves the drawing origin to the top-left corner of r and
// confines draws to r. A nil rectangle resets it to the whole back buffer.
func (c *Canvas) SetViewport(r *image.Rectangle) {
	if r == nil {
		c.viewport = nil
		return
	}
	vp := r.Canon()
	c.viewport = &vp
}

// target returns the drawing origin and the device rectangle draws are
// allowed to touch.
func (c *Canvas) target() (image.Point, image.Rectangle) {
	full := c.back.Bounds()
	origin := image.Point{}
	area := full
	if c.viewport != nil {
		origin = c.viewport.Min
		area = c.viewport.Intersect(full)
	}
	if c.clip != nil {
		area = c.clip.Add(origin).Intersect(area)
	}
	return origin, area
}

// Clear fills the whole back buffer with the draw color, ignoring the clip
// rectangle, the viewport and the blend mode.
func (c *Canvas) Clear() {
	col := c.drawColor
	pix := c.back.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// plotter writes pixels given in viewport coordinates.
type plotter struct {
	c      *Canvas
	origin image.Point
	area   image.Rectangle
	color  color.NRGBA
	mode   BlendMode
}

func (c *Canvas) plotter() *plotter {
	origin, area := c.target()
	return &plotter{c: c, origin: origin, area: area, color: c.drawColor, mode: c.blendMode}
}

func (p *plotter) plot(x, y int, coverage uint32) {
	x += p.origin.X
	y += p.origin.Y
	if !(image.Point{x, y}).In(p.area) {
		return
	}
	i := p.c.back.PixOffset(x, y)
	blend(p.c.back.Pix[i:i+4:i+4], p.color, coverage, p.mode)
}

// mask composites a coverage mask. Mask pixel (x, y) lands on device
// pixel (x, y) + at.
func (p *plotter) mask(m *image.Alpha, at image.Point) {
	r := m.Rect.Add(at).Intersect(p.area)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := m.PixOffset(r.Min.X-at.X, y-at.Y)
		di := p.c.back.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			if cov := uint32(m.Pix[mi]); cov != 0 {
				blend(p.c.back.Pix[di:di+4:di+4], p.color, cov, p.mode)
			}
			mi++
			di += 4
		}
	}
}
