package engine

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
	"github.com/spaghettifunk/anima2d/engine/render"
)

func newTestContext(t *testing.T) (*Context, *platform.Headless) {
	t.Helper()
	h := platform.NewHeadless()
	ctx, err := newContext(newTestBuilder(h).s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ctx.teardown)
	return ctx, h
}

func TestBorrowGuard(t *testing.T) {
	ctx, _ := newTestContext(t)

	release := ctx.guard.borrowMut("test")
	mustPanic(t, "query during a draw", func() { ctx.Size() })
	mustPanic(t, "draw during a draw", func() { ctx.Clear() })
	release()

	release = ctx.guard.borrow("test")
	mustPanic(t, "draw during a query", func() { ctx.FillRect(render.Rect(0, 0, 1, 1)) })
	if w, _ := ctx.Size(); w != 64 {
		t.Errorf("shared borrows may overlap, got width %d", w)
	}
	release()

	// Borrows never outlive a call.
	ctx.Clear()
	ctx.Size()
	if ctx.guard.state.Load() != 0 {
		t.Errorf("guard left at %d", ctx.guard.state.Load())
	}
}

func TestContextUseAfterTeardown(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.teardown()
	ctx.teardown()

	if h.Shutdowns() != 1 {
		t.Errorf("shutdowns = %d, want 1", h.Shutdowns())
	}
	mustPanic(t, "Clear", func() { ctx.Clear() })
	mustPanic(t, "Key", func() { ctx.Key(core.SCANCODE_A) })
	mustPanic(t, "DrawString", func() { ctx.DrawString(image.Point{}, "x") })
}

func TestContextDrawing(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.SetDrawColor(render.Blue)
	if ctx.DrawColor() != render.Blue {
		t.Errorf("draw color = %v", ctx.DrawColor())
	}
	if err := ctx.FillRect(render.Rect(2, 2, 4, 4)); err != nil {
		t.Fatal(err)
	}
	frame := ctx.Frame()
	if frame.NRGBAAt(3, 3) != render.Blue || frame.NRGBAAt(6, 6) == render.Blue {
		t.Error("FillRect did not cover exactly its rectangle")
	}

	if err := ctx.FillCircle(image.Pt(10, 10), -1); !errors.Is(err, render.ErrInvalidGeometry) {
		t.Errorf("negative radius: %v", err)
	}
	if err := ctx.DrawPolygon([]image.Point{{0, 0}, {1, 1}}); err == nil {
		t.Error("two points are not a polygon")
	}
	mustPanic(t, "coordinates beyond int16", func() { ctx.DrawCircle(image.Pt(40000, 0), 2) })
}

func TestContextStateRoundTrip(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.SetBlendMode(render.BlendAdd)
	if ctx.BlendMode() != render.BlendAdd {
		t.Errorf("blend mode = %v", ctx.BlendMode())
	}

	clip := render.Rect(1, 2, 3, 4)
	ctx.SetClipRect(&clip)
	if got, ok := ctx.ClipRect(); !ok || got != clip {
		t.Errorf("clip = %v, %v", got, ok)
	}
	ctx.SetClipRect(nil)
	if _, ok := ctx.ClipRect(); ok {
		t.Error("clip not cleared")
	}

	vp := render.Rect(10, 10, 20, 20)
	ctx.SetViewport(&vp)
	if ctx.Viewport() != vp {
		t.Errorf("viewport = %v", ctx.Viewport())
	}
	ctx.SetViewport(nil)
	if ctx.Viewport() != image.Rect(0, 0, 64, 48) {
		t.Errorf("viewport = %v, want the whole canvas", ctx.Viewport())
	}

	w, h := ctx.MeasureString("ab")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = %dx%d", w, h)
	}
}

func TestLoadFontErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	err := ctx.LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("LoadFont() = %v, want a LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%v does not wrap ErrNotExist", err)
	}
}

func TestAssetChangesReachApplication(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.png")

	var seen *core.AssetChangedEvent
	app := &testApp{
		create: func(*Context) (bool, error) {
			return true, os.WriteFile(path, []byte("x"), 0o644)
		},
		event: func(_ *Context, e core.Event) (bool, error) {
			if ac, ok := e.(core.AssetChangedEvent); ok && ac.Path == path {
				seen = &ac
			}
			return false, nil
		},
		update: func(_ *Context, n int) (bool, error) {
			time.Sleep(5 * time.Millisecond)
			return seen == nil && n < 600, nil
		},
	}

	if err := newTestBuilder(platform.NewHeadless()).WatchAssets(dir).Start(app); err != nil {
		t.Fatal(err)
	}
	if seen == nil {
		t.Fatal("no asset event for the new file")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := newTestBuilder(platform.NewHeadless()).
		WatchAssets(filepath.Join(t.TempDir(), "nope")).
		Start(&testApp{})
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != KindSubsystem {
		t.Fatalf("Start() = %v, want a subsystem BuildError", err)
	}
}

func TestReportPanicRepanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	func() {
		defer ReportPanic()
		panic("boom")
	}()
}
