package testbed

import (
	"errors"
	"image"
	"os"

	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/render"
)

const movementSpeed = 200.0

// mover moves a point with the arrow keys, or jumps it to the mouse
// while the left button is held, keeping it inside [min, max].
type mover struct {
	x, y     float64
	min, max image.Point
}

func (m *mover) step(ctx *engine.Context, elapsed float64) {
	d := movementSpeed * elapsed
	if ctx.Key(core.SCANCODE_UP).Held {
		m.y -= d
	} else if ctx.Key(core.SCANCODE_DOWN).Held {
		m.y += d
	}
	if ctx.Key(core.SCANCODE_LEFT).Held {
		m.x -= d
	} else if ctx.Key(core.SCANCODE_RIGHT).Held {
		m.x += d
	}
	if ctx.MouseButton(core.MOUSE_BUTTON_LEFT).Held {
		pos := ctx.MousePos()
		m.x, m.y = float64(pos.X), float64(pos.Y)
	}
	m.x = render.Clamp(m.x, float64(m.min.X), float64(m.max.X))
	m.y = render.Clamp(m.y, float64(m.min.Y), float64(m.max.Y))
}

func (m *mover) pos() image.Point {
	return image.Pt(int(m.x), int(m.y))
}

const rectSize = 100

type MovingRect struct {
	engine.BaseApplication
	mover
}

func NewMovingRect() *MovingRect {
	return &MovingRect{mover: mover{
		x: 10, y: 10,
		max: image.Pt(ScreenWidth-rectSize, ScreenHeight-rectSize),
	}}
}

func (m *MovingRect) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	m.step(ctx, elapsed)
	ctx.SetDrawColor(render.Black)
	ctx.Clear()
	ctx.SetDrawColor(render.Gray)
	p := m.pos()
	return true, ctx.FillRect(render.Rect(p.X, p.Y, rectSize, rectSize))
}

const circleSize = 50

type MovingCircle struct {
	engine.BaseApplication
	mover
}

func NewMovingCircle() *MovingCircle {
	return &MovingCircle{mover: mover{
		x: 10 + circleSize, y: 10 + circleSize,
		min: image.Pt(circleSize, circleSize),
		max: image.Pt(ScreenWidth-circleSize, ScreenHeight-circleSize),
	}}
}

func (m *MovingCircle) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	m.step(ctx, elapsed)
	ctx.SetDrawColor(render.Black)
	ctx.Clear()
	ctx.SetDrawColor(render.Gray)
	return true, ctx.FillCircle(m.pos(), circleSize)
}

// MovingTexture moves an image loaded from Path. When the file does not
// exist a generated checkerboard is used instead.
type MovingTexture struct {
	engine.BaseApplication
	mover
	Path string
	tex  *engine.Texture
}

func NewMovingTexture(path string) *MovingTexture {
	return &MovingTexture{Path: path, mover: mover{x: 10, y: 10}}
}

func (m *MovingTexture) OnCreate(ctx *engine.Context) (bool, error) {
	tex, err := ctx.TextureFromFile(m.Path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("%s not found, using a checkerboard", m.Path)
		tex, err = checkerboard(ctx, 64, 8)
	}
	if err != nil {
		return false, err
	}
	m.tex = tex
	w, h := tex.Size()
	m.max = image.Pt(max(0, ScreenWidth-w), max(0, ScreenHeight-h))
	return true, nil
}

func (m *MovingTexture) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	ctx.SetDrawColor(render.Black)
	ctx.Clear()

	m.step(ctx, elapsed)
	w, h := m.tex.Size()
	p := m.pos()
	dst := render.Rect(p.X, p.Y, w, h)
	return true, m.tex.Draw(nil, &dst)
}

func checkerboard(ctx *engine.Context, size, cell int) (*engine.Texture, error) {
	s, err := engine.NewSurface(size, size)
	if err != nil {
		return nil, err
	}
	s.Fill(nil, render.White)
	for y := 0; y < size; y += cell {
		for x := (y / cell % 2) * cell; x < size; x += 2 * cell {
			r := render.Rect(x, y, cell, cell)
			s.Fill(&r, render.Magenta)
		}
	}
	return s.AsTexture(ctx)
}
