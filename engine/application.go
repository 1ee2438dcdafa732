package engine

import "github.com/spaghettifunk/anima2d/engine/core"

// Application receives the engine callbacks. OnCreate and OnUpdate return
// false to stop the loop; OnEvent returns true when it handled the event.
// A non-nil error stops the loop and is returned by Start.
type Application interface {
	OnCreate(ctx *Context) (bool, error)
	OnUpdate(ctx *Context, elapsed float64) (bool, error)
	OnEvent(ctx *Context, event core.Event) (bool, error)
}

// BaseApplication provides the default callbacks. Embed it and override
// what you need.
type BaseApplication struct{}

func (BaseApplication) OnCreate(*Context) (bool, error) {
	return true, nil
}

func (BaseApplication) OnUpdate(*Context, float64) (bool, error) {
	return true, nil
}

func (BaseApplication) OnEvent(*Context, core.Event) (bool, error) {
	return false, nil
}

// UpdateFunc runs a plain function as the per-frame callback of an
// otherwise default application.
type UpdateFunc func(ctx *Context, elapsed float64) (bool, error)

func (f UpdateFunc) OnCreate(*Context) (bool, error) {
	return true, nil
}

func (f UpdateFunc) OnUpdate(ctx *Context, elapsed float64) (bool, error) {
	return f(ctx, elapsed)
}

func (f UpdateFunc) OnEvent(*Context, core.Event) (bool, error) {
	return false, nil
}
