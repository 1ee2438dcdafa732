package render

import "image/color"

// Colors are stored without premultiplied alpha, the same way the back
// buffer keeps them.
var (
	Black       = color.NRGBA{0, 0, 0, 255}
	White       = color.NRGBA{255, 255, 255, 255}
	Red         = color.NRGBA{255, 0, 0, 255}
	Green       = color.NRGBA{0, 255, 0, 255}
	Blue        = color.NRGBA{0, 0, 255, 255}
	Yellow      = color.NRGBA{255, 255, 0, 255}
	Cyan        = color.NRGBA{0, 255, 255, 255}
	Magenta     = color.NRGBA{255, 0, 255, 255}
	Gray        = color.NRGBA{128, 128, 128, 255}
	Transparent = color.NRGBA{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{r, g, b, 255}
}

func RGBA(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{r, g, b, a}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return Transparent
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// BlendMode selects how a drawn color combines with the back buffer.
type BlendMode uint8

const (
	// dst = src
	BlendNone BlendMode = iota
	// dst = src*srcA + dst*(1-srcA)
	BlendAlpha
	// dst = src*srcA + dst
	BlendAdd
	// dst = src*dst
	BlendMod
)

func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "none"
	case BlendAlpha:
		return "blend"
	case BlendAdd:
		return "add"
	case BlendMod:
		return "mod"
	default:
		return "unknown"
	}
}

// blend combines src with the pixel p (4 bytes, non-premultiplied RGBA),
// scaling the effect by coverage in [0, 255].
func blend(p []uint8, src color.NRGBA, coverage uint32, mode BlendMode) {
	if coverage == 0 {
		return
	}
	switch mode {
	case BlendNone:
		p[0] = lerp(p[0], src.R, coverage)
		p[1] = lerp(p[1], src.G, coverage)
		p[2] = lerp(p[2], src.B, coverage)
		p[3] = lerp(p[3], src.A, coverage)
	case BlendAlpha:
		a := uint32(src.A) * coverage / 255
		inv := 255 - a
		p[0] = uint8((uint32(src.R)*a + uint32(p[0])*inv) / 255)
		p[1] = uint8((uint32(src.G)*a + uint32(p[1])*inv) / 255)
		p[2] = uint8((uint32(src.B)*a + uint32(p[2])*inv) / 255)
		p[3] = uint8(a + uint32(p[3])*inv/255)
	case BlendAdd:
		a := uint32(src.A) * coverage / 255
		p[0] = uint8(Clamp(uint32(p[0])+uint32(src.R)*a/255, 0, 255))
		p[1] = uint8(Clamp(uint32(p[1])+uint32(src.G)*a/255, 0, 255))
		p[2] = uint8(Clamp(uint32(p[2])+uint32(src.B)*a/255, 0, 255))
	case BlendMod:
		p[0] = lerp(p[0], uint8(uint32(src.R)*uint32(p[0])/255), coverage)
		p[1] = lerp(p[1], uint8(uint32(src.G)*uint32(p[1])/255), coverage)
		p[2] = lerp(p[2], uint8(uint32(src.B)*uint32(p[2])/255), coverage)
	}
}

func lerp(from, to uint8, t uint32) uint8 {
	if t >= 255 {
		return to
	}
	return uint8((uint32(from)*(255-t) + uint32(to)*t) / 255)
}

// modulate multiplies a texel by a modulation color.
func modulate(c color.NRGBA, mod color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint32(c.R) * uint32(mod.R) / 255),
		G: uint8(uint32(c.G) * uint32(mod.G) / 255),
		B: uint8(uint32(c.B) * uint32(mod.B) / 255),
		A: uint8(uint32(c.A) * uint32(mod.A) / 255),
	}
}
