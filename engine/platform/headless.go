package platform

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spaghettifunk/anima2d/engine/core"
)

const HeadlessBackend = "headless"

func init() {
	Register(HeadlessBackend, func() Backend { return NewHeadless() })
}

var errNotStarted = errors.New("headless backend not started")

// Headless is a backend without a window. Frames are kept in memory, time
// advances by Step on every present and events are pushed by the caller.
// It drives tests and offscreen rendering.
type Headless struct {
	// Seconds added to the clock on every present.
	Step float64

	// Errors returned by the matching construction steps, when set.
	FailInit   error
	FailWindow error
	FailCanvas error
	FailTitle  error

	now      float64
	frames   int
	last     *image.NRGBA
	pending  *EventQueue
	keyboard core.KeyboardState
	mouse    core.MouseState
	hooks    map[int][]func(*Headless)

	window    WindowConfig
	vsync     bool
	scaleX    float64
	scaleY    float64
	titles    []string
	started   bool
	shutdowns int
}

func NewHeadless() *Headless {
	return &Headless{
		Step:    1.0 / 60.0,
		pending: NewEventQueue(),
		hooks:   make(map[int][]func(*Headless)),
		scaleX:  1,
		scaleY:  1,
	}
}

func (h *Headless) Init() error {
	if h.FailInit != nil {
		return h.FailInit
	}
	h.started = true
	return nil
}

func (h *Headless) OpenWindow(cfg WindowConfig) error {
	if h.FailWindow != nil {
		return h.FailWindow
	}
	if !h.started {
		return errNotStarted
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	h.window = cfg
	h.titles = append(h.titles, cfg.Title)
	return nil
}

func (h *Headless) CreateCanvas(vsync bool) error {
	if h.FailCanvas != nil {
		return h.FailCanvas
	}
	h.vsync = vsync
	return nil
}

func (h *Headless) SetScale(x, y float64) error {
	if x <= 0 || y <= 0 {
		return fmt.Errorf("invalid scale %gx%g", x, y)
	}
	h.scaleX, h.scaleY = x, y
	return nil
}

// Present copies frame, advances the clock and runs the hooks registered
// for the new frame number.
func (h *Headless) Present(frame *image.NRGBA) error {
	if !h.started {
		return errNotStarted
	}
	if h.last == nil || h.last.Bounds() != frame.Bounds() {
		h.last = image.NewNRGBA(frame.Bounds())
	}
	copy(h.last.Pix, frame.Pix)
	h.frames++
	h.now += h.Step
	for _, fn := range h.hooks[h.frames] {
		fn(h)
	}
	return nil
}

func (h *Headless) PollEvents() []core.Event {
	return h.pending.Drain()
}

func (h *Headless) Input() (core.KeyboardState, core.MouseState) {
	return h.keyboard, h.mouse
}

func (h *Headless) SetTitle(title string) error {
	if h.FailTitle != nil {
		return h.FailTitle
	}
	h.titles = append(h.titles, title)
	return nil
}

func (h *Headless) Time() float64 {
	return h.now
}

func (h *Headless) Shutdown() error {
	h.shutdowns++
	h.started = false
	return nil
}

// Push queues events for the next PollEvents call.
func (h *Headless) Push(events ...core.Event) {
	for _, e := range events {
		h.pending.Push(e)
	}
}

// OnFrame runs fn right after frame number n (starting at 1) is presented,
// before the events of that iteration are polled.
func (h *Headless) OnFrame(n int, fn func(*Headless)) {
	h.hooks[n] = append(h.hooks[n], fn)
}

func (h *Headless) SetKey(sc core.Scancode, down bool) {
	h.keyboard.Set(sc, down)
}

func (h *Headless) SetMouseButton(b core.MouseButton, down bool) {
	if b < core.MOUSE_BUTTON_MAX_BUTTONS {
		h.mouse.Buttons[b] = down
	}
}

func (h *Headless) SetMousePosition(x, y int) {
	h.mouse.X, h.mouse.Y = x, y
}

// Frames is the number of presented frames.
func (h *Headless) Frames() int {
	return h.frames
}

// LastFrame returns a copy of the last presented frame, or nil. Later
// presents do not change the returned image.
func (h *Headless) LastFrame() *image.NRGBA {
	if h.last == nil {
		return nil
	}
	frame := image.NewNRGBA(h.last.Rect)
	copy(frame.Pix, h.last.Pix)
	return frame
}

// Titles lists every title the window had, the initial one first.
func (h *Headless) Titles() []string {
	return h.titles
}

func (h *Headless) Window() WindowConfig {
	return h.window
}

func (h *Headless) VSync() bool {
	return h.vsync
}

func (h *Headless) Scale() (float64, float64) {
	return h.scaleX, h.scaleY
}

func (h *Headless) Shutdowns() int {
	return h.shutdowns
}

// SaveFrame writes the last presented frame as a PNG file.
func (h *Headless) SaveFrame(path string) error {
	if h.last == nil {
		return errors.New("no frame presented yet")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, h.last); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
