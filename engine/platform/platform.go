package platform

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/spaghettifunk/anima2d/engine/core"
)

// ErrNoBackend is returned when no backend has been registered under the
// requested name.
var ErrNoBackend = errors.New("no platform backend registered")

// DefaultBackend is opened when no backend name is configured.
const DefaultBackend = "desktop"

type FullscreenMode uint8

const (
	FullscreenOff FullscreenMode = iota
	// Exclusive fullscreen at the requested resolution.
	FullscreenOn
	// Borderless fullscreen at the desktop resolution.
	FullscreenDesktop
)

func (m FullscreenMode) String() string {
	switch m {
	case FullscreenOff:
		return "off"
	case FullscreenOn:
		return "on"
	case FullscreenDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen FullscreenMode
}

// Backend is the native side of the engine: window, drawable target,
// events and raw input. All calls happen on the thread that created it.
type Backend interface {
	// Init starts the windowing subsystem.
	Init() error
	OpenWindow(cfg WindowConfig) error
	// CreateCanvas builds the target the back buffer is presented to.
	CreateCanvas(vsync bool) error
	// SetScale sets how many window pixels one back buffer pixel covers.
	SetScale(x, y float64) error
	// Present makes frame visible.
	Present(frame *image.NRGBA) error
	// PollEvents returns every event queued since the previous call.
	PollEvents() []core.Event
	// Input returns the raw keyboard and mouse state, with the mouse in
	// back buffer coordinates.
	Input() (core.KeyboardState, core.MouseState)
	SetTitle(title string) error
	// Time returns monotonic seconds.
	Time() float64
	Shutdown() error
}

type Factory func() Backend

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend available by name. Backends register
// themselves from an init function so importing the package is enough.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("platform: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("platform: Register called twice for backend " + name)
	}
	registry[name] = factory
}

// Open creates the backend registered under name. An empty name opens
// DefaultBackend.
func Open(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoBackend, name)
	}
	return factory(), nil
}

// Backends lists the registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
