package render

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func pixel(c *Canvas, x, y int) color.NRGBA {
	return c.Frame().NRGBAAt(x, y)
}

func countColor(c *Canvas, col color.NRGBA) int {
	n := 0
	b := c.Frame().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(c, x, y) == col {
				n++
			}
		}
	}
	return n
}

func newBlackCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.SetDrawColor(Black)
	c.Clear()
	c.SetDrawColor(White)
	return c
}

func TestClearIgnoresClipAndViewport(t *testing.T) {
	c := NewCanvas(8, 8)
	r := Rect(2, 2, 2, 2)
	c.SetClipRect(&r)
	c.SetViewport(&r)
	c.SetDrawColor(Red)
	c.Clear()
	if n := countColor(c, Red); n != 64 {
		t.Fatalf("expected the whole buffer cleared, got %d pixels", n)
	}
}

func TestFillRect(t *testing.T) {
	c := newBlackCanvas(10, 10)
	if err := c.FillRect(Rect(2, 3, 4, 2)); err != nil {
		t.Fatal(err)
	}
	if n := countColor(c, White); n != 8 {
		t.Fatalf("expected 8 pixels, got %d", n)
	}
	if pixel(c, 2, 3) != White || pixel(c, 5, 4) != White {
		t.Fatalf("rectangle corners not filled")
	}
	if pixel(c, 6, 3) == White || pixel(c, 2, 5) == White {
		t.Fatalf("rectangle overflowed")
	}
}

func TestDrawRectOutline(t *testing.T) {
	c := newBlackCanvas(10, 10)
	if err := c.DrawRect(Rect(1, 1, 5, 4)); err != nil {
		t.Fatal(err)
	}
	// Perimeter of a 5x4 rectangle.
	if n := countColor(c, White); n != 14 {
		t.Fatalf("expected 14 outline pixels, got %d", n)
	}
	if pixel(c, 3, 2) == White {
		t.Fatalf("outline must not fill the interior")
	}
}

func TestNegativeRectIsError(t *testing.T) {
	c := newBlackCanvas(4, 4)
	err := c.FillRect(image.Rectangle{Min: image.Pt(3, 3), Max: image.Pt(1, 1)})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestClipRectRoundTrip(t *testing.T) {
	c := newBlackCanvas(10, 10)
	if _, ok := c.ClipRect(); ok {
		t.Fatalf("new canvas must not have a clip rectangle")
	}
	if err := c.FillRect(Rect(0, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}
	r := Rect(1, 1, 3, 3)
	c.SetClipRect(&r)
	got, ok := c.ClipRect()
	if !ok || got != r {
		t.Fatalf("expected clip %v, got %v (%v)", r, got, ok)
	}
	r2 := Rect(4, 4, 2, 2)
	c.SetClipRect(&r2)
	if got, _ := c.ClipRect(); got != r2 {
		t.Fatalf("expected last clip %v, got %v", r2, got)
	}
	c.SetClipRect(nil)
	if _, ok := c.ClipRect(); ok {
		t.Fatalf("nil must clear the clip rectangle")
	}
}

func TestClipRectScopesDraws(t *testing.T) {
	c := newBlackCanvas(10, 10)
	r := Rect(2, 2, 3, 3)
	c.SetClipRect(&r)
	if err := c.FillRect(Rect(0, 0, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if n := countColor(c, White); n != 9 {
		t.Fatalf("expected 9 clipped pixels, got %d", n)
	}
	c.SetClipRect(nil)
	if err := c.FillRect(Rect(0, 0, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if n := countColor(c, White); n != 100 {
		t.Fatalf("expected full surface after clearing clip, got %d", n)
	}
}

func TestViewportOffsetsDraws(t *testing.T) {
	c := newBlackCanvas(10, 10)
	vp := Rect(5, 5, 3, 3)
	c.SetViewport(&vp)
	if got := c.Viewport(); got != vp {
		t.Fatalf("expected viewport %v, got %v", vp, got)
	}
	if err := c.DrawPoint(image.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 5, 5) != White {
		t.Fatalf("point must be offset by the viewport origin")
	}
	if err := c.FillRect(Rect(0, 0, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if n := countColor(c, White); n != 9 {
		t.Fatalf("viewport must confine draws, got %d pixels", n)
	}
	c.SetViewport(nil)
	if got := c.Viewport(); got != image.Rect(0, 0, 10, 10) {
		t.Fatalf("expected full viewport, got %v", got)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := newBlackCanvas(10, 10)
	if err := c.DrawLine(image.Pt(1, 1), image.Pt(8, 5)); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 1, 1) != White || pixel(c, 8, 5) != White {
		t.Fatalf("line end points missing")
	}
	// One or two pixels per column of a shallow line, all inside its box.
	if n := countColor(c, White); n < 8 || n > 16 {
		t.Fatalf("expected 8 to 16 pixels for a 7x4 line, got %d", n)
	}
	for _, pt := range []image.Point{{0, 0}, {9, 9}, {1, 6}, {8, 0}} {
		if pixel(c, pt.X, pt.Y) == White {
			t.Fatalf("pixel %v is off the line", pt)
		}
	}
}

func TestHugeCoordinatesAreClipped(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Canvas) error
		want []image.Point
		not  []image.Point
	}{
		{
			name: "line",
			draw: func(c *Canvas) error { return c.DrawLine(image.Pt(0, 0), image.Pt(1<<31, 0)) },
			want: []image.Point{{0, 0}, {63, 0}},
			not:  []image.Point{{0, 1}},
		},
		{
			name: "polyline",
			draw: func(c *Canvas) error {
				return c.DrawLines([]image.Point{{-(1 << 40), 10}, {1 << 40, 10}, {1 << 40, 1 << 40}})
			},
			want: []image.Point{{0, 10}, {63, 10}},
			not:  []image.Point{{0, 11}},
		},
		{
			name: "fill rect",
			draw: func(c *Canvas) error { return c.FillRect(Rect(0, -(1 << 31), 10, 1<<32)) },
			want: []image.Point{{0, 0}, {9, 63}},
			not:  []image.Point{{10, 30}},
		},
		{
			name: "rect outline",
			draw: func(c *Canvas) error { return c.DrawRect(image.Rect(5, -(1 << 31), 1<<31, 1<<31)) },
			want: []image.Point{{5, 0}, {5, 63}},
			not:  []image.Point{{6, 30}, {63, 30}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBlackCanvas(64, 64)
			if err := tt.draw(c); err != nil {
				t.Fatal(err)
			}
			for _, pt := range tt.want {
				if pixel(c, pt.X, pt.Y) != White {
					t.Fatalf("expected %v drawn", pt)
				}
			}
			for _, pt := range tt.not {
				if pixel(c, pt.X, pt.Y) != Black {
					t.Fatalf("expected %v untouched", pt)
				}
			}
		})
	}
}

func TestPolylineBlendsJointsOnce(t *testing.T) {
	c := newBlackCanvas(10, 10)
	c.SetBlendMode(BlendAdd)
	c.SetDrawColor(RGB(100, 100, 100))
	pts := []image.Point{{1, 1}, {5, 1}, {5, 5}}
	if err := c.DrawLines(pts); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 5, 1); got.R != 100 {
		t.Fatalf("joint blended more than once: %v", got)
	}
}

func TestCircleOutlineAndFill(t *testing.T) {
	c := newBlackCanvas(21, 21)
	if err := c.DrawCircle(image.Pt(10, 10), 5); err != nil {
		t.Fatal(err)
	}
	for _, pt := range []image.Point{{15, 10}, {5, 10}, {10, 15}, {10, 5}} {
		if pixel(c, pt.X, pt.Y) != White {
			t.Fatalf("expected outline pixel at %v", pt)
		}
	}
	if pixel(c, 10, 10) == White {
		t.Fatalf("outline must not fill the center")
	}

	if err := c.FillCircle(image.Pt(10, 10), 5); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 10, 10) != White || pixel(c, 12, 12) != White {
		t.Fatalf("fill must cover the disc")
	}
	if pixel(c, 15, 15) == White {
		t.Fatalf("fill must not cover the bounding box corner")
	}
}

func TestNegativeRadiusIsError(t *testing.T) {
	c := newBlackCanvas(4, 4)
	if err := c.DrawCircle(image.Pt(1, 1), -1); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestShortRangePanics(t *testing.T) {
	c := newBlackCanvas(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for coordinates beyond 16 bits")
		}
	}()
	_ = c.FillCircle(image.Pt(40000, 0), 3)
}

func TestFillTriangle(t *testing.T) {
	c := newBlackCanvas(12, 12)
	if err := c.FillTriangle(image.Pt(0, 0), image.Pt(10, 0), image.Pt(0, 10)); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 0, 0) != White || pixel(c, 2, 2) != White || pixel(c, 0, 10) != White {
		t.Fatalf("triangle interior and vertices expected")
	}
	if pixel(c, 9, 9) == White {
		t.Fatalf("pixel outside the triangle filled")
	}
}

func TestPolygonNeedsThreePoints(t *testing.T) {
	c := newBlackCanvas(4, 4)
	if err := c.FillPolygon([]image.Point{{0, 0}, {1, 1}}); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestAntiAliasProducesPartialCoverage(t *testing.T) {
	aliased := newBlackCanvas(32, 32)
	smooth := newBlackCanvas(32, 32)
	smooth.SetAntiAlias(true)
	for _, c := range []*Canvas{aliased, smooth} {
		if err := c.FillCircle(image.Pt(16, 16), 10); err != nil {
			t.Fatal(err)
		}
	}

	partial := func(c *Canvas) int {
		n := 0
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				if p := pixel(c, x, y); p.R != 0 && p.R != 255 {
					n++
				}
			}
		}
		return n
	}
	if n := partial(aliased); n != 0 {
		t.Fatalf("aliased path must not produce partial pixels, got %d", n)
	}
	if n := partial(smooth); n == 0 {
		t.Fatalf("anti-aliased path must produce partial pixels")
	}
	if pixel(smooth, 16, 16) != White {
		t.Fatalf("anti-aliased disc center must be fully covered")
	}
}

func TestBlendModes(t *testing.T) {
	tests := []struct {
		name string
		mode BlendMode
		dst  color.NRGBA
		src  color.NRGBA
		want color.NRGBA
	}{
		{"none", BlendNone, RGB(10, 20, 30), RGBA(100, 100, 100, 0), RGBA(100, 100, 100, 0)},
		{"blend", BlendAlpha, RGB(0, 0, 0), RGBA(255, 255, 255, 255), RGB(255, 255, 255)},
		{"blend transparent", BlendAlpha, RGB(10, 20, 30), RGBA(255, 255, 255, 0), RGB(10, 20, 30)},
		{"add", BlendAdd, RGB(200, 10, 0), RGB(100, 10, 5), RGB(255, 20, 5)},
		{"mod", BlendMod, RGB(200, 100, 50), RGB(255, 0, 255), RGB(200, 0, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(1, 1)
			c.SetDrawColor(tt.dst)
			c.Clear()
			c.SetDrawColor(tt.src)
			c.SetBlendMode(tt.mode)
			if err := c.DrawPoint(image.Pt(0, 0)); err != nil {
				t.Fatal(err)
			}
			if got := pixel(c, 0, 0); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestDrawString(t *testing.T) {
	c := newBlackCanvas(64, 32)
	if err := c.DrawString(image.Pt(2, 2), "Hi"); err != nil {
		t.Fatal(err)
	}
	if countColor(c, Black) == 64*32 {
		t.Fatalf("text produced no pixels")
	}
	w, h := c.MeasureString("Hi\nthere")
	if w != 5*7 || h != 2*13 {
		t.Fatalf("unexpected measure %dx%d", w, h)
	}
}

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, Red)
	img.SetNRGBA(1, 0, Green)
	img.SetNRGBA(0, 1, Blue)
	img.SetNRGBA(1, 1, Yellow)
	return img
}

func TestCopyScales(t *testing.T) {
	c := newBlackCanvas(8, 8)
	dst := Rect(0, 0, 4, 4)
	if err := c.Copy(checker(), nil, &dst); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 0, 0) != Red || pixel(c, 3, 0) != Green || pixel(c, 0, 3) != Blue || pixel(c, 3, 3) != Yellow {
		t.Fatalf("scaled copy quadrants are wrong")
	}
	if pixel(c, 4, 4) != Black {
		t.Fatalf("copy overflowed the destination")
	}
}

func TestCopyFlipAndRotate(t *testing.T) {
	c := newBlackCanvas(2, 2)
	opts := DefaultCopyOptions()
	opts.FlipH = true
	if err := c.CopyEx(checker(), nil, nil, opts); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 0, 0) != Green || pixel(c, 1, 0) != Red {
		t.Fatalf("horizontal flip failed")
	}

	opts = DefaultCopyOptions()
	opts.Angle = 180
	if err := c.CopyEx(checker(), nil, nil, opts); err != nil {
		t.Fatal(err)
	}
	if pixel(c, 0, 0) != Yellow || pixel(c, 1, 1) != Red {
		t.Fatalf("180 degree rotation failed: %v %v", pixel(c, 0, 0), pixel(c, 1, 1))
	}
}

func TestCopyModulates(t *testing.T) {
	c := newBlackCanvas(2, 2)
	opts := DefaultCopyOptions()
	opts.Mod = RGB(0, 255, 255)
	if err := c.CopyEx(checker(), nil, nil, opts); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 0, 0); got != RGB(0, 0, 0) {
		t.Fatalf("red texel modulated by cyan must be black, got %v", got)
	}
	if got := pixel(c, 1, 1); got != RGB(0, 255, 0) {
		t.Fatalf("yellow texel modulated by cyan must be green, got %v", got)
	}
}
