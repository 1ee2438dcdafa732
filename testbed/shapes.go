package testbed

import (
	"fmt"
	"image"
	"math"

	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/render"
)

// Shapes draws every primitive. Space toggles anti-aliasing and B cycles
// the blend mode of the translucent overlay.
type Shapes struct {
	engine.BaseApplication
	angle float64
	blend render.BlendMode
}

var blendModes = []render.BlendMode{render.BlendAlpha, render.BlendAdd, render.BlendMod, render.BlendNone}

func (s *Shapes) OnCreate(ctx *engine.Context) (bool, error) {
	s.blend = render.BlendAlpha
	return true, nil
}

func (s *Shapes) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	if ctx.Key(core.SCANCODE_SPACE).Pressed {
		ctx.SetAntiAlias(!ctx.AntiAlias())
	}
	if ctx.Key(core.SCANCODE_B).Pressed {
		for i, m := range blendModes {
			if m == s.blend {
				s.blend = blendModes[(i+1)%len(blendModes)]
				break
			}
		}
	}
	s.angle += elapsed

	ctx.SetBlendMode(render.BlendNone)
	ctx.SetDrawColor(render.Black)
	ctx.Clear()

	ctx.SetDrawColor(render.Cyan)
	if err := ctx.DrawLines([]image.Point{{10, 10}, {110, 40}, {60, 90}, {10, 10}}); err != nil {
		return false, err
	}
	ctx.SetDrawColor(render.Yellow)
	if err := ctx.DrawRects([]image.Rectangle{render.Rect(130, 10, 60, 40), render.Rect(140, 20, 40, 60)}); err != nil {
		return false, err
	}
	ctx.SetDrawColor(render.Green)
	if err := ctx.FillCircle(image.Pt(260, 50), 35); err != nil {
		return false, err
	}
	if err := ctx.DrawEllipse(image.Pt(370, 50), 60, 25); err != nil {
		return false, err
	}

	// spinning triangle
	c := image.Pt(100, 200)
	var tri [3]image.Point
	for i := range tri {
		a := s.angle + float64(i)*2*math.Pi/3
		tri[i] = c.Add(image.Pt(int(60*math.Cos(a)), int(60*math.Sin(a))))
	}
	ctx.SetDrawColor(render.Magenta)
	if err := ctx.FillTriangle(tri[0], tri[1], tri[2]); err != nil {
		return false, err
	}
	ctx.SetDrawColor(render.White)
	if err := ctx.DrawPolygon([]image.Point{{220, 150}, {300, 170}, {320, 250}, {250, 280}, {200, 230}}); err != nil {
		return false, err
	}

	ctx.SetBlendMode(s.blend)
	ctx.SetDrawColor(render.RGBA(255, 64, 64, 128))
	if err := ctx.FillRect(render.Rect(60, 150, 300, 80)); err != nil {
		return false, err
	}

	ctx.SetBlendMode(render.BlendNone)
	ctx.SetDrawColor(render.White)
	status := fmt.Sprintf("aa: %v  blend: %v  fps: %.0f", ctx.AntiAlias(), s.blend, ctx.FPS())
	return true, ctx.DrawString(image.Pt(8, ScreenHeight-20), status)
}
