package engine

import (
	"fmt"
	"math"

	"github.com/spaghettifunk/anima2d/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	StageUninitialized Stage = iota
	// Context is built and OnCreate is running
	StageCreated
	// Frame loop is running
	StageRunning
	// Loop ended and the context is torn down
	StageStopped
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "uninitialized"
	case StageCreated:
		return "created"
	case StageRunning:
		return "running"
	case StageStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Engine drives an Application: it builds the context, calls OnCreate and
// then, once per frame, presents, dispatches events and calls OnUpdate.
type Engine struct {
	settings     settings
	app          Application
	currentStage Stage
	ctx          *Context
	clock        *core.Clock
}

func New(b *Builder, app Application) *Engine {
	if app == nil {
		panic("engine: nil application")
	}
	return &Engine{
		settings:     b.s,
		app:          app,
		currentStage: StageUninitialized,
	}
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Run blocks until the application stops, an unhandled quit event
// arrives or a callback returns an error, which Run then returns as is.
func (e *Engine) Run() error {
	if e.currentStage != StageUninitialized {
		panic("engine: Run called more than once")
	}
	if e.settings.logLevel != nil {
		core.SetLogLevel(*e.settings.logLevel)
	}

	ctx, err := newContext(e.settings)
	if err != nil {
		e.currentStage = StageStopped
		core.LogError("%s", err)
		return err
	}
	e.ctx = ctx
	e.clock = core.NewClock(ctx.backend.Time)
	e.currentStage = StageCreated
	defer e.shutdown()

	core.LogInfo("%s started", e.settings.title)

	keepGoing, err := e.app.OnCreate(ctx)
	if err != nil {
		core.LogError("application create failed: %s", err)
		return err
	}
	if !keepGoing {
		return nil
	}

	e.currentStage = StageRunning
	for {
		elapsed := e.clock.Tick()
		if e.clock.Rolled() {
			ctx.fps = e.clock.FPS()
			if e.settings.showFPS {
				title := fmt.Sprintf("%s (%.0f FPS)", e.settings.title, math.Round(ctx.fps))
				if err := ctx.setTitle(title); err != nil {
					core.LogDebug("failed to set the window title: %s", err)
				}
			}
		}

		events, err := ctx.update()
		if err != nil {
			return fmt.Errorf("present failed: %w", err)
		}

		quit := false
		for _, event := range events {
			handled, err := e.app.OnEvent(ctx, event)
			if err != nil {
				core.LogError("application event handler failed: %s", err)
				return err
			}
			if _, ok := event.(core.QuitEvent); ok && !handled {
				quit = true
			}
		}
		if quit {
			core.LogInfo("quit requested, shutting down")
			return nil
		}

		keepGoing, err := e.app.OnUpdate(ctx, elapsed)
		if err != nil {
			core.LogError("application update failed: %s", err)
			return err
		}
		if !keepGoing {
			return nil
		}
	}
}

func (e *Engine) shutdown() {
	e.ctx.teardown()
	e.currentStage = StageStopped
	core.LogInfo("%s stopped", e.settings.title)
}
