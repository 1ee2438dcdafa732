package engine

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/spaghettifunk/anima2d/engine/assets"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/render"
)

var errNoFile = errors.New("texture was not loaded from a file")

// Texture is an image owned by a context and drawn onto its canvas. It is
// released by Destroy or, at the latest, when the context is torn down.
type Texture struct {
	id    uuid.UUID
	path  string
	ctx   *Context
	img   *image.NRGBA
	mod   color.NRGBA
	blend render.BlendMode

	destroyed bool
}

// TextureFromFile loads an image file into a texture.
func (ctx *Context) TextureFromFile(path string) (*Texture, error) {
	ctx.mustBeAlive()
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	img, err := assets.LoadImage(abs)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	t := ctx.newTexture(img, render.White)
	t.path = abs
	return t, nil
}

// TextureFromSurface copies the surface pixels and color modulation into
// a new texture.
func (ctx *Context) TextureFromSurface(s *Surface) (*Texture, error) {
	ctx.mustBeAlive()
	if s == nil || s.img == nil {
		return nil, &LoadError{Path: "<surface>", Err: render.ErrInvalidGeometry}
	}
	return ctx.newTexture(clone(s.img), s.mod), nil
}

func (ctx *Context) TextureFromImage(img image.Image) *Texture {
	ctx.mustBeAlive()
	return ctx.newTexture(clone(img), render.White)
}

func clone(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func (ctx *Context) newTexture(img *image.NRGBA, mod color.NRGBA) *Texture {
	defer ctx.guard.borrowMut("create texture")()
	t := &Texture{
		id:    uuid.New(),
		ctx:   ctx,
		img:   img,
		mod:   mod,
		blend: render.BlendAlpha,
	}
	ctx.textures[t.id] = t
	core.LogDebug("texture %s created (%dx%d)", t.id, img.Rect.Dx(), img.Rect.Dy())
	return t
}

// Textures is the number of textures the context currently owns.
func (ctx *Context) Textures() int {
	_, release := ctx.query("textures")
	defer release()
	return len(ctx.textures)
}

func (t *Texture) ID() uuid.UUID {
	return t.id
}

// Path is the absolute path the texture was loaded from, if any.
func (t *Texture) Path() string {
	return t.path
}

func (t *Texture) Size() (int, int) {
	t.mustBeUsable()
	return t.img.Rect.Dx(), t.img.Rect.Dy()
}

func (t *Texture) Mod() color.NRGBA {
	return t.mod
}

// SetMod multiplies every texel by c when the texture is drawn. The alpha
// of c scales the texture opacity.
func (t *Texture) SetMod(c color.Color) {
	t.mod = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (t *Texture) BlendMode() render.BlendMode {
	return t.blend
}

func (t *Texture) SetBlendMode(mode render.BlendMode) {
	t.blend = mode
}

// Draw copies the src part of the texture (nil for all of it) scaled into
// dst on the canvas (nil for the whole viewport).
func (t *Texture) Draw(src, dst *image.Rectangle) error {
	return t.DrawEx(src, dst, 0, nil, false, false)
}

// DrawEx is Draw with a clockwise rotation in degrees around center,
// relative to dst, and optional flips.
func (t *Texture) DrawEx(src, dst *image.Rectangle, angle float64, center *image.Point, flipH, flipV bool) error {
	t.mustBeUsable()
	opts := render.CopyOptions{
		Angle:  angle,
		Center: center,
		FlipH:  flipH,
		FlipV:  flipV,
		Mod:    t.mod,
		Blend:  t.blend,
	}
	return t.ctx.draw("draw texture", func(c *render.Canvas) error {
		return c.CopyEx(t.img, src, dst, opts)
	})
}

// Reload reads the texture file again. Textures not loaded from a file
// cannot be reloaded.
func (t *Texture) Reload() error {
	t.mustBeUsable()
	defer t.ctx.guard.borrowMut("reload texture")()
	return t.reload()
}

func (t *Texture) reload() error {
	if t.path == "" {
		return errNoFile
	}
	img, err := assets.LoadImage(t.path)
	if err != nil {
		return &LoadError{Path: t.path, Err: err}
	}
	t.img = img
	return nil
}

// Destroy releases the texture. Further calls do nothing; if the context
// was torn down first it already released the texture.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	if !t.ctx.alive {
		return
	}
	defer t.ctx.guard.borrowMut("destroy texture")()
	delete(t.ctx.textures, t.id)
	t.img = nil
}

func (t *Texture) mustBeUsable() {
	if t.destroyed {
		panic("engine: texture used after Destroy")
	}
	t.ctx.mustBeAlive()
}
