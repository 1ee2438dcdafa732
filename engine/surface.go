package engine

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/anima2d/engine/assets"
	"github.com/spaghettifunk/anima2d/engine/render"
)

// Surface is a pixel buffer in CPU memory, independent of any context.
// Use it to compose images before turning them into a texture.
type Surface struct {
	img *image.NRGBA
	mod color.NRGBA
}

func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", render.ErrInvalidGeometry, width, height)
	}
	return &Surface{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
		mod: render.White,
	}, nil
}

func SurfaceFromFile(path string) (*Surface, error) {
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &Surface{img: img, mod: render.White}, nil
}

func SurfaceFromImage(img image.Image) *Surface {
	return &Surface{img: assets.ToNRGBA(img), mod: render.White}
}

func (s *Surface) Size() (int, int) {
	return s.img.Rect.Dx(), s.img.Rect.Dy()
}

// Image exposes the surface pixels; writes to it change the surface.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}

func (s *Surface) Mod() color.NRGBA {
	return s.mod
}

// SetMod multiplies the surface pixels by c when it is blitted or turned
// into a texture.
func (s *Surface) SetMod(c color.Color) {
	s.mod = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Fill sets every pixel in r, or the whole surface when r is nil, to c.
func (s *Surface) Fill(r *image.Rectangle, c color.Color) {
	area := s.img.Rect
	if r != nil {
		area = r.Intersect(area)
	}
	draw.Draw(s.img, area, image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit composites the src part of s (nil for all of it) over dst, scaled
// to dstRect (nil for all of dst), applying the color modulation of s.
func (s *Surface) Blit(dst *Surface, src, dstRect *image.Rectangle) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination surface", render.ErrInvalidGeometry)
	}
	sr := s.img.Rect
	if src != nil {
		sr = src.Intersect(sr)
	}
	dr := dst.img.Rect
	if dstRect != nil {
		if dstRect.Dx() < 0 || dstRect.Dy() < 0 {
			return fmt.Errorf("%w: destination %v", render.ErrInvalidGeometry, *dstRect)
		}
		dr = *dstRect
	}
	if sr.Empty() || dr.Empty() {
		return nil
	}

	var img image.Image = s.img
	if s.mod != render.White {
		img = modulated(s.img, sr, s.mod)
	}
	draw.NearestNeighbor.Scale(dst.img, dr, img, sr, draw.Over, nil)
	return nil
}

// AsTexture uploads a copy of the surface to ctx.
func (s *Surface) AsTexture(ctx *Context) (*Texture, error) {
	return ctx.TextureFromSurface(s)
}

func modulated(src *image.NRGBA, r image.Rectangle, mod color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := out.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Pix[di+0] = uint8(uint32(src.Pix[si+0]) * uint32(mod.R) / 255)
			out.Pix[di+1] = uint8(uint32(src.Pix[si+1]) * uint32(mod.G) / 255)
			out.Pix[di+2] = uint8(uint32(src.Pix[si+2]) * uint32(mod.B) / 255)
			out.Pix[di+3] = uint8(uint32(src.Pix[si+3]) * uint32(mod.A) / 255)
			si += 4
			di += 4
		}
	}
	return out
}
