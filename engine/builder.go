package engine

import (
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
)

type settings struct {
	title       string
	width       int
	height      int
	vsync       bool
	showFPS     bool
	fullscreen  platform.FullscreenMode
	scaleX      float64
	scaleY      float64
	antiAlias   bool
	backend     platform.Backend
	backendName string
	assetsDir   string
	logLevel    *core.LogLevel
}

// Builder collects the window and loop options before Start.
type Builder struct {
	s settings
}

func NewBuilder(title string, width, height int) *Builder {
	return &Builder{s: settings{
		title:   title,
		width:   width,
		height:  height,
		vsync:   true,
		showFPS: true,
		scaleX:  1,
		scaleY:  1,
	}}
}

func (b *Builder) PresentVsync(enabled bool) *Builder {
	b.s.vsync = enabled
	return b
}

// ShowFPS appends the frame rate to the window title once per second.
func (b *Builder) ShowFPS(enabled bool) *Builder {
	b.s.showFPS = enabled
	return b
}

func (b *Builder) Fullscreen(mode platform.FullscreenMode) *Builder {
	b.s.fullscreen = mode
	return b
}

// Scale sets how many window pixels a canvas pixel covers. The canvas is
// the window size divided by the scale.
func (b *Builder) Scale(x, y float64) *Builder {
	b.s.scaleX, b.s.scaleY = x, y
	return b
}

func (b *Builder) AntiAlias(enabled bool) *Builder {
	b.s.antiAlias = enabled
	return b
}

// Backend uses an already constructed backend instead of a registered one.
func (b *Builder) Backend(backend platform.Backend) *Builder {
	b.s.backend = backend
	return b
}

// BackendName selects a registered backend. Empty selects the default.
func (b *Builder) BackendName(name string) *Builder {
	b.s.backendName = name
	return b
}

// WatchAssets reports changes below dir as core.AssetChangedEvent and
// reloads textures loaded from changed files.
func (b *Builder) WatchAssets(dir string) *Builder {
	b.s.assetsDir = dir
	return b
}

func (b *Builder) LogLevel(level core.LogLevel) *Builder {
	b.s.logLevel = &level
	return b
}

// Start runs app until it stops, the window is closed or a callback fails.
func (b *Builder) Start(app Application) error {
	return New(b, app).Run()
}
