package engine

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/image/font"

	"github.com/spaghettifunk/anima2d/engine/assets"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
	"github.com/spaghettifunk/anima2d/engine/render"
)

// The windowing system is bound to the main OS thread, so a process runs
// at most one context at a time.
var live atomic.Pointer[Context]

// Context is the handle to the window, its canvas and the input state.
// Every callback receives it. Draw calls take it exclusively and queries
// take it shared; overlapping the two panics.
type Context struct {
	id      uuid.UUID
	title   string
	backend platform.Backend
	canvas  *render.Canvas
	input   *core.InputSnapshot
	watcher *assets.Watcher

	textures map[uuid.UUID]*Texture
	fps      float64

	guard borrowGuard
	alive bool
}

func newContext(s settings) (*Context, error) {
	ctx := &Context{
		id:       uuid.New(),
		title:    s.title,
		textures: make(map[uuid.UUID]*Texture),
	}
	if !live.CompareAndSwap(nil, ctx) {
		panic("engine: a context is already running in this process")
	}
	if err := ctx.build(s); err != nil {
		live.CompareAndSwap(ctx, nil)
		return nil, err
	}
	ctx.alive = true
	core.LogDebug("context %s created", ctx.id)
	return ctx, nil
}

func (ctx *Context) build(s settings) error {
	backend := s.backend
	if backend == nil {
		b, err := platform.Open(s.backendName)
		if err != nil {
			return &BuildError{Kind: KindSubsystem, Err: err}
		}
		backend = b
	}
	if err := backend.Init(); err != nil {
		return &BuildError{Kind: KindSubsystem, Err: err}
	}

	fail := func(kind BuildErrorKind, err error) error {
		if serr := backend.Shutdown(); serr != nil {
			core.LogWarn("backend shutdown failed: %s", serr)
		}
		return &BuildError{Kind: kind, Err: err}
	}

	if err := backend.OpenWindow(platform.WindowConfig{
		Title:      s.title,
		Width:      s.width,
		Height:     s.height,
		Fullscreen: s.fullscreen,
	}); err != nil {
		return fail(KindWindow, err)
	}
	if err := backend.CreateCanvas(s.vsync); err != nil {
		return fail(KindCanvas, err)
	}
	if err := backend.SetScale(s.scaleX, s.scaleY); err != nil {
		return fail(KindCanvas, err)
	}
	if s.assetsDir != "" {
		w, err := assets.NewWatcher(s.assetsDir)
		if err != nil {
			return fail(KindSubsystem, fmt.Errorf("failed to watch %s: %w", s.assetsDir, err))
		}
		ctx.watcher = w
	}

	ctx.backend = backend
	ctx.canvas = render.NewCanvas(
		max(1, int(float64(s.width)/s.scaleX)),
		max(1, int(float64(s.height)/s.scaleY)),
	)
	ctx.canvas.SetAntiAlias(s.antiAlias)
	ctx.input = core.NewInputSnapshot()
	ctx.input.Refresh(backend.Input())
	return nil
}

// update presents the back buffer, refreshes the input snapshot and
// collects the pending events, all under one exclusive borrow.
func (ctx *Context) update() ([]core.Event, error) {
	ctx.mustBeAlive()
	defer ctx.guard.borrowMut("update")()

	if err := ctx.backend.Present(ctx.canvas.Frame()); err != nil {
		return nil, err
	}
	ctx.input.Refresh(ctx.backend.Input())

	events := ctx.backend.PollEvents()
	if ctx.watcher != nil {
		changes := ctx.watcher.Drain()
		for _, e := range changes {
			ctx.reloadTextures(e.(core.AssetChangedEvent))
		}
		events = append(events, changes...)
	}
	return events, nil
}

func (ctx *Context) reloadTextures(e core.AssetChangedEvent) {
	if e.Op == core.AssetRemoved {
		return
	}
	path, err := filepath.Abs(e.Path)
	if err != nil {
		return
	}
	for _, t := range ctx.textures {
		if t.path != path {
			continue
		}
		if err := t.reload(); err != nil {
			core.LogWarn("failed to reload texture %s: %s", t.path, err)
			continue
		}
		core.LogInfo("reloaded texture %s", t.path)
	}
}

func (ctx *Context) setTitle(title string) error {
	ctx.mustBeAlive()
	defer ctx.guard.borrowMut("set title")()
	return ctx.backend.SetTitle(title)
}

// teardown releases textures, the asset watcher and the window.
func (ctx *Context) teardown() {
	if !ctx.alive {
		return
	}
	defer ctx.guard.borrowMut("teardown")()

	for id, t := range ctx.textures {
		t.img = nil
		delete(ctx.textures, id)
	}
	if ctx.watcher != nil {
		if err := ctx.watcher.Close(); err != nil {
			core.LogWarn("failed to close the asset watcher: %s", err)
		}
	}
	if err := ctx.backend.Shutdown(); err != nil {
		core.LogWarn("backend shutdown failed: %s", err)
	}
	ctx.alive = false
	live.CompareAndSwap(ctx, nil)
	core.LogDebug("context %s torn down", ctx.id)
}

func (ctx *Context) mustBeAlive() {
	if ctx == nil || !ctx.alive {
		panic("engine: context used after teardown")
	}
}

// draw runs fn with the canvas exclusively borrowed.
func (ctx *Context) draw(op string, fn func(c *render.Canvas) error) error {
	ctx.mustBeAlive()
	defer ctx.guard.borrowMut(op)()
	return fn(ctx.canvas)
}

func (ctx *Context) query(op string) (*render.Canvas, func()) {
	ctx.mustBeAlive()
	return ctx.canvas, ctx.guard.borrow(op)
}

func (ctx *Context) ID() uuid.UUID {
	return ctx.id
}

func (ctx *Context) Title() string {
	return ctx.title
}

// FPS is the frame rate measured over the last full second.
func (ctx *Context) FPS() float64 {
	_, release := ctx.query("fps")
	defer release()
	return ctx.fps
}

// Size returns the canvas size in canvas pixels.
func (ctx *Context) Size() (int, int) {
	c, release := ctx.query("size")
	defer release()
	return c.Size()
}

func (ctx *Context) Key(sc core.Scancode) core.Button {
	_, release := ctx.query("key")
	defer release()
	return ctx.input.Key(sc)
}

func (ctx *Context) MouseButton(b core.MouseButton) core.Button {
	_, release := ctx.query("mouse button")
	defer release()
	return ctx.input.MouseButton(b)
}

func (ctx *Context) MousePos() image.Point {
	_, release := ctx.query("mouse position")
	defer release()
	x, y := ctx.input.MousePosition()
	return image.Pt(x, y)
}

func (ctx *Context) PrevMousePos() image.Point {
	_, release := ctx.query("previous mouse position")
	defer release()
	x, y := ctx.input.PreviousMousePosition()
	return image.Pt(x, y)
}

func (ctx *Context) DrawColor() color.NRGBA {
	c, release := ctx.query("draw color")
	defer release()
	return c.DrawColor()
}

func (ctx *Context) SetDrawColor(col color.Color) {
	ctx.draw("set draw color", func(c *render.Canvas) error {
		c.SetDrawColor(col)
		return nil
	})
}

func (ctx *Context) BlendMode() render.BlendMode {
	c, release := ctx.query("blend mode")
	defer release()
	return c.BlendMode()
}

func (ctx *Context) SetBlendMode(mode render.BlendMode) {
	ctx.draw("set blend mode", func(c *render.Canvas) error {
		c.SetBlendMode(mode)
		return nil
	})
}

func (ctx *Context) AntiAlias() bool {
	c, release := ctx.query("anti alias")
	defer release()
	return c.AntiAlias()
}

func (ctx *Context) SetAntiAlias(enabled bool) {
	ctx.draw("set anti alias", func(c *render.Canvas) error {
		c.SetAntiAlias(enabled)
		return nil
	})
}

func (ctx *Context) ClipRect() (image.Rectangle, bool) {
	c, release := ctx.query("clip rect")
	defer release()
	return c.ClipRect()
}

// SetClipRect restricts drawing to r, relative to the viewport. Nil
// removes the restriction.
func (ctx *Context) SetClipRect(r *image.Rectangle) {
	ctx.draw("set clip rect", func(c *render.Canvas) error {
		c.SetClipRect(r)
		return nil
	})
}

func (ctx *Context) Viewport() image.Rectangle {
	c, release := ctx.query("viewport")
	defer release()
	return c.Viewport()
}

// SetViewport moves the drawing origin to the corner of r and restricts
// drawing to it. Nil selects the whole canvas.
func (ctx *Context) SetViewport(r *image.Rectangle) {
	ctx.draw("set viewport", func(c *render.Canvas) error {
		c.SetViewport(r)
		return nil
	})
}

func (ctx *Context) SetFont(face font.Face) {
	ctx.draw("set font", func(c *render.Canvas) error {
		c.SetFont(face)
		return nil
	})
}

// LoadFont replaces the canvas font. Files ending in .fnt are read as
// bitmap fonts and size is ignored; anything else as TrueType or OpenType.
func (ctx *Context) LoadFont(path string, size float64) error {
	ctx.mustBeAlive()
	var face font.Face
	var err error
	if assets.KindOf(path) == assets.KindBitmapFont {
		face, err = assets.LoadBitmapFace(path)
	} else {
		face, err = assets.LoadFace(path, size)
	}
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	ctx.SetFont(face)
	return nil
}

func (ctx *Context) MeasureString(text string) (int, int) {
	c, release := ctx.query("measure string")
	defer release()
	return c.MeasureString(text)
}

// Clear fills the whole canvas with the draw color, ignoring the clip
// rectangle, the viewport and the blend mode.
func (ctx *Context) Clear() {
	ctx.draw("clear", func(c *render.Canvas) error {
		c.Clear()
		return nil
	})
}

func (ctx *Context) DrawPoint(pt image.Point) error {
	return ctx.draw("draw point", func(c *render.Canvas) error { return c.DrawPoint(pt) })
}

func (ctx *Context) DrawPoints(points []image.Point) error {
	return ctx.draw("draw points", func(c *render.Canvas) error { return c.DrawPoints(points) })
}

func (ctx *Context) DrawLine(start, end image.Point) error {
	return ctx.draw("draw line", func(c *render.Canvas) error { return c.DrawLine(start, end) })
}

func (ctx *Context) DrawLines(points []image.Point) error {
	return ctx.draw("draw lines", func(c *render.Canvas) error { return c.DrawLines(points) })
}

func (ctx *Context) DrawRect(r image.Rectangle) error {
	return ctx.draw("draw rect", func(c *render.Canvas) error { return c.DrawRect(r) })
}

func (ctx *Context) DrawRects(rects []image.Rectangle) error {
	return ctx.draw("draw rects", func(c *render.Canvas) error { return c.DrawRects(rects) })
}

func (ctx *Context) FillRect(r image.Rectangle) error {
	return ctx.draw("fill rect", func(c *render.Canvas) error { return c.FillRect(r) })
}

func (ctx *Context) FillRects(rects []image.Rectangle) error {
	return ctx.draw("fill rects", func(c *render.Canvas) error { return c.FillRects(rects) })
}

func (ctx *Context) DrawCircle(center image.Point, radius int) error {
	return ctx.draw("draw circle", func(c *render.Canvas) error { return c.DrawCircle(center, radius) })
}

func (ctx *Context) FillCircle(center image.Point, radius int) error {
	return ctx.draw("fill circle", func(c *render.Canvas) error { return c.FillCircle(center, radius) })
}

func (ctx *Context) DrawEllipse(center image.Point, rx, ry int) error {
	return ctx.draw("draw ellipse", func(c *render.Canvas) error { return c.DrawEllipse(center, rx, ry) })
}

func (ctx *Context) FillEllipse(center image.Point, rx, ry int) error {
	return ctx.draw("fill ellipse", func(c *render.Canvas) error { return c.FillEllipse(center, rx, ry) })
}

func (ctx *Context) DrawTriangle(a, b, c image.Point) error {
	return ctx.draw("draw triangle", func(cv *render.Canvas) error { return cv.DrawTriangle(a, b, c) })
}

func (ctx *Context) FillTriangle(a, b, c image.Point) error {
	return ctx.draw("fill triangle", func(cv *render.Canvas) error { return cv.FillTriangle(a, b, c) })
}

func (ctx *Context) DrawPolygon(points []image.Point) error {
	return ctx.draw("draw polygon", func(c *render.Canvas) error { return c.DrawPolygon(points) })
}

func (ctx *Context) FillPolygon(points []image.Point) error {
	return ctx.draw("fill polygon", func(c *render.Canvas) error { return c.FillPolygon(points) })
}

func (ctx *Context) DrawChar(pt image.Point, r rune) error {
	return ctx.draw("draw char", func(c *render.Canvas) error { return c.DrawChar(pt, r) })
}

// DrawString draws text with its top-left corner at pt.
func (ctx *Context) DrawString(pt image.Point, text string) error {
	return ctx.draw("draw string", func(c *render.Canvas) error { return c.DrawString(pt, text) })
}

// Frame returns a copy of the back buffer as drawn so far.
func (ctx *Context) Frame() *image.NRGBA {
	c, release := ctx.query("frame")
	defer release()
	src := c.Frame()
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}
