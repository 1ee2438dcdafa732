package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/anima2d/engine/core"
)

// LoadImage decodes the image file at path into a non-premultiplied RGBA
// buffer whose bounds start at the origin.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := DecodeImage(f)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	core.LogDebug("loaded %s image %s (%dx%d)", format, path, b.Dx(), b.Dy())
	return img, nil
}

// DecodeImage accepts PNG, JPEG, GIF, BMP, TIFF and WebP.
func DecodeImage(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return ToNRGBA(img), format, nil
}

// ToNRGBA returns img as an *image.NRGBA anchored at the origin, converting
// it when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
