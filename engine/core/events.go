package core

// Event is a platform event delivered to the application once per frame.
// The set of events is closed; only the types in this file implement it.
type Event interface {
	isEvent()
}

// QuitEvent is raised when the user asks to close the window. When the
// application leaves it unhandled the engine stops.
type QuitEvent struct{}

// TextInputEvent carries committed text, already composed by the platform.
type TextInputEvent struct {
	Text string
}

type KeyEvent struct {
	Scancode Scancode
	Down     bool
	Repeat   bool
}

type MouseButtonEvent struct {
	Button MouseButton
	Down   bool
	X, Y   int
}

type MouseMotionEvent struct {
	X, Y   int
	DX, DY int
}

type MouseWheelEvent struct {
	DX, DY float64
}

// Resized/resolution changed from the OS.
type WindowResizedEvent struct {
	Width, Height int
}

type AssetOp uint8

const (
	AssetCreated AssetOp = iota + 1
	AssetModified
	AssetRemoved
)

func (o AssetOp) String() string {
	switch o {
	case AssetCreated:
		return "created"
	case AssetModified:
		return "modified"
	case AssetRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// AssetChangedEvent is raised when a watched asset file changes on disk.
type AssetChangedEvent struct {
	Path string
	Op   AssetOp
}

func (QuitEvent) isEvent()          {}
func (TextInputEvent) isEvent()     {}
func (KeyEvent) isEvent()           {}
func (MouseButtonEvent) isEvent()   {}
func (MouseMotionEvent) isEvent()   {}
func (MouseWheelEvent) isEvent()    {}
func (WindowResizedEvent) isEvent() {}
func (AssetChangedEvent) isEvent()  {}
