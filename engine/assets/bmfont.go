package assets

import (
	"fmt"
	"image"

	"github.com/fzipp/bmfont"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type bitmapGlyph struct {
	x, y          int
	width, height int
	xOffset       int
	yOffset       int
	xAdvance      int
	page          int
}

type kerningPair struct {
	first, second rune
}

// BitmapFace is a font.Face backed by an AngelCode BMFont descriptor and
// its page sheets.
type BitmapFace struct {
	Name       string
	Size       int
	lineHeight int
	base       int
	glyphs     map[rune]bitmapGlyph
	kernings   map[kerningPair]int
	pages      map[int]*image.Alpha
}

var _ font.Face = (*BitmapFace)(nil)

// LoadBitmapFace reads a .fnt descriptor together with the page sheets it
// names, which bmfont decodes from next to the descriptor.
func LoadBitmapFace(path string) (*BitmapFace, error) {
	bf, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}
	desc := bf.Descriptor

	face := &BitmapFace{
		Name:       desc.Info.Face,
		Size:       int(desc.Info.Size),
		lineHeight: int(desc.Common.LineHeight),
		base:       int(desc.Common.Base),
		glyphs:     make(map[rune]bitmapGlyph, len(desc.Chars)),
		kernings:   make(map[kerningPair]int, len(desc.Kerning)),
		pages:      make(map[int]*image.Alpha, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		sheet, ok := bf.PageSheets[int(p.ID)]
		if !ok {
			return nil, fmt.Errorf("page %d of %s has no sheet", p.ID, path)
		}
		face.pages[int(p.ID)] = coverageOf(ToNRGBA(sheet))
	}

	for _, g := range desc.Chars {
		face.glyphs[rune(g.ID)] = bitmapGlyph{
			x:        int(g.X),
			y:        int(g.Y),
			width:    int(g.Width),
			height:   int(g.Height),
			xOffset:  int(g.XOffset),
			yOffset:  int(g.YOffset),
			xAdvance: int(g.XAdvance),
			page:     int(g.Page),
		}
	}
	for p, k := range desc.Kerning {
		face.kernings[kerningPair{rune(p.First), rune(p.Second)}] = int(k.Amount)
	}
	return face, nil
}

// coverageOf turns a page sheet into a glyph mask. Sheets are either
// white glyphs on a transparent background or light glyphs on an opaque
// dark one; luminance times alpha covers both.
func coverageOf(sheet *image.NRGBA) *image.Alpha {
	b := sheet.Bounds()
	out := image.NewAlpha(b)
	for i, j := 0, 0; i < len(sheet.Pix); i, j = i+4, j+1 {
		r, g, bl, a := uint32(sheet.Pix[i]), uint32(sheet.Pix[i+1]), uint32(sheet.Pix[i+2]), uint32(sheet.Pix[i+3])
		lum := (299*r + 587*g + 114*bl) / 1000
		out.Pix[j] = uint8(lum * a / 255)
	}
	return out
}

func (f *BitmapFace) Close() error {
	return nil
}

func (f *BitmapFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := f.glyphs[r]
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	mask, ok := f.pages[g.page]
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round() + g.xOffset
	y := dot.Y.Round() - f.base + g.yOffset
	dr := image.Rect(x, y, x+g.width, y+g.height)
	return dr, mask, image.Pt(g.x, g.y), fixed.I(g.xAdvance), true
}

func (f *BitmapFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	g, ok := f.glyphs[r]
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds := fixed.R(g.xOffset, g.yOffset-f.base, g.xOffset+g.width, g.yOffset-f.base+g.height)
	return bounds, fixed.I(g.xAdvance), true
}

func (f *BitmapFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	g, ok := f.glyphs[r]
	if !ok {
		return 0, false
	}
	return fixed.I(g.xAdvance), true
}

func (f *BitmapFace) Kern(r0, r1 rune) fixed.Int26_6 {
	return fixed.I(f.kernings[kerningPair{r0, r1}])
}

func (f *BitmapFace) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(f.lineHeight),
		Ascent:     fixed.I(f.base),
		Descent:    fixed.I(f.lineHeight - f.base),
		XHeight:    fixed.I(f.base / 2),
		CapHeight:  fixed.I(f.base),
		CaretSlope: image.Pt(0, 1),
	}
}
