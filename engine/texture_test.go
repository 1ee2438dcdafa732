package engine

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima2d/engine/platform"
	"github.com/spaghettifunk/anima2d/engine/render"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestTextureLifecycle(t *testing.T) {
	ctx, _ := newTestContext(t)
	path := filepath.Join(t.TempDir(), "green.png")
	writePNG(t, path, render.Green)

	tex, err := ctx.TextureFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := tex.Size(); w != 4 || h != 4 {
		t.Errorf("size = %dx%d", w, h)
	}
	if ctx.Textures() != 1 {
		t.Errorf("context owns %d textures, want 1", ctx.Textures())
	}

	dst := render.Rect(0, 0, 8, 8)
	if err := tex.Draw(nil, &dst); err != nil {
		t.Fatal(err)
	}
	frame := ctx.Frame()
	if frame.NRGBAAt(7, 7) != render.Green || frame.NRGBAAt(8, 8) == render.Green {
		t.Error("texture not scaled into its destination")
	}

	tex.Destroy()
	tex.Destroy()
	if ctx.Textures() != 0 {
		t.Errorf("context owns %d textures after Destroy", ctx.Textures())
	}
	mustPanic(t, "draw after Destroy", func() { tex.Draw(nil, nil) })
}

func TestTextureOutlivesContext(t *testing.T) {
	ctx, _ := newTestContext(t)
	tex := ctx.TextureFromImage(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	ctx.teardown()

	mustPanic(t, "draw through a dead context", func() { tex.Draw(nil, nil) })
	tex.Destroy()
}

func TestTextureModulation(t *testing.T) {
	ctx, _ := newTestContext(t)
	white, _ := NewSurface(2, 2)
	white.Fill(nil, color.White)
	tex := ctx.TextureFromImage(white.Image())
	tex.SetMod(color.NRGBA{255, 0, 0, 255})
	tex.SetBlendMode(render.BlendNone)

	dst := render.Rect(0, 0, 2, 2)
	if err := tex.DrawEx(nil, &dst, 90, nil, true, false); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Frame().NRGBAAt(1, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("modulated texel = %v", got)
	}
}

func TestTextureReload(t *testing.T) {
	ctx, _ := newTestContext(t)
	path := filepath.Join(t.TempDir(), "tex.png")
	writePNG(t, path, render.Red)

	tex, err := ctx.TextureFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	writePNG(t, path, render.Blue)
	if err := tex.Reload(); err != nil {
		t.Fatal(err)
	}
	if err := tex.Draw(nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Frame().NRGBAAt(0, 0); got != render.Blue {
		t.Errorf("pixel = %v, want the reloaded blue", got)
	}

	mem := ctx.TextureFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err := mem.Reload(); err == nil {
		t.Error("textures without a file cannot be reloaded")
	}
}

func TestTextureLoadError(t *testing.T) {
	ctx, _ := newTestContext(t)
	dir := t.TempDir()

	_, err := ctx.TextureFromFile(filepath.Join(dir, "missing.png"))
	var le *LoadError
	if !errors.As(err, &le) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.TextureFromFile(bad); !errors.As(err, &le) {
		t.Errorf("corrupt file: %v", err)
	}
	if ctx.Textures() != 0 {
		t.Error("failed loads must not register textures")
	}
}

func TestTexturesReleasedOnStop(t *testing.T) {
	h := platform.NewHeadless()
	var tex *Texture
	app := &testApp{create: func(ctx *Context) (bool, error) {
		tex = ctx.TextureFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
		return false, nil
	}}
	if err := newTestBuilder(h).Start(app); err != nil {
		t.Fatal(err)
	}
	if tex.img != nil {
		t.Error("teardown must release textures")
	}
	tex.Destroy()
}

func TestSurface(t *testing.T) {
	if _, err := NewSurface(0, 4); !errors.Is(err, render.ErrInvalidGeometry) {
		t.Errorf("NewSurface(0, 4) = %v", err)
	}

	src, err := NewSurface(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	src.Fill(nil, render.White)
	src.SetMod(color.NRGBA{0, 255, 0, 255})

	dst, _ := NewSurface(8, 8)
	r := render.Rect(2, 2, 4, 4)
	if err := src.Blit(dst, nil, &r); err != nil {
		t.Fatal(err)
	}
	img := dst.Image()
	if img.NRGBAAt(5, 5) != render.Green {
		t.Errorf("blitted pixel = %v, want green", img.NRGBAAt(5, 5))
	}
	if img.NRGBAAt(1, 1).A != 0 || img.NRGBAAt(6, 6).A != 0 {
		t.Error("blit escaped its destination rectangle")
	}
	if src.Image().NRGBAAt(0, 0) != render.White {
		t.Error("modulation must not change the source pixels")
	}
	if err := src.Blit(nil, nil, nil); err == nil {
		t.Error("blit to nil must fail")
	}

	ctx, _ := newTestContext(t)
	tex, err := src.AsTexture(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Mod() != src.Mod() {
		t.Error("texture must inherit the surface modulation")
	}
	src.Fill(nil, render.Black)
	if tex.img.NRGBAAt(0, 0) != render.White {
		t.Error("texture must not share pixels with the surface")
	}
}

func TestSurfaceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.png")
	writePNG(t, path, render.Yellow)
	s, err := SurfaceFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 4 || h != 4 {
		t.Errorf("size = %dx%d", w, h)
	}
	if _, err := SurfaceFromFile(path + ".missing"); err == nil {
		t.Error("missing surface file must fail")
	}
}
