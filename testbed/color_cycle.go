package testbed

import (
	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/render"
)

const cycleSpeed = 130.0

// cycler bounces a color channel between 0 and 255.
type cycler struct {
	col     float64
	flipper bool
}

func (c *cycler) step(elapsed float64) uint8 {
	if c.col <= 0 || c.col >= 255 {
		c.flipper = !c.flipper
	}
	current := uint8(render.Clamp(c.col, 0, 255))
	if c.flipper {
		c.col += cycleSpeed * elapsed
	} else {
		c.col -= cycleSpeed * elapsed
	}
	return current
}

// ColorCycle fades the screen between blue and red.
type ColorCycle struct {
	engine.BaseApplication
	cycler
}

func NewColorCycle() *ColorCycle {
	return &ColorCycle{cycler: cycler{col: 255, flipper: true}}
}

func (c *ColorCycle) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	col := c.step(elapsed)
	ctx.SetDrawColor(render.RGB(col, 0, 255-col))
	ctx.Clear()
	return true, nil
}

// ColorCycleFunc is ColorCycle written as a closure.
func ColorCycleFunc() engine.UpdateFunc {
	c := &cycler{}
	return func(ctx *engine.Context, elapsed float64) (bool, error) {
		col := c.step(elapsed)
		ctx.SetDrawColor(render.RGB(col, 0, 255-col))
		ctx.Clear()
		return true, nil
	}
}
