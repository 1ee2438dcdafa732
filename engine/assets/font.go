package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const DefaultFontSize = 13

// DefaultFace returns Go Regular at the given size in points.
func DefaultFace(size float64) (font.Face, error) {
	return ParseFace(goregular.TTF, size)
}

// LoadFace opens a TrueType or OpenType font file. For collections the
// first font is used.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(filepath.Ext(path)) == ".ttc" {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font collection: %w", err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, err
		}
		return newFace(f, size)
	}
	return ParseFace(data, size)
}

func ParseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return newFace(f, size)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
