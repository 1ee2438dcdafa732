package testbed

import (
	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/core"
)

// Hello logs the instantaneous frame rate and draws nothing.
type Hello struct {
	engine.BaseApplication
}

func (h *Hello) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	if elapsed > 0 {
		core.LogDebug("FPS: %.1f", 1.0/elapsed)
	}
	return true, nil
}
