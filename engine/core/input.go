package core

// Scancode identifies a physical key independent of the keyboard layout.
// Values follow the USB HID usage table.
type Scancode uint16

const (
	SCANCODE_UNKNOWN Scancode = 0

	SCANCODE_A Scancode = 4
	SCANCODE_B Scancode = 5
	SCANCODE_C Scancode = 6
	SCANCODE_D Scancode = 7
	SCANCODE_E Scancode = 8
	SCANCODE_F Scancode = 9
	SCANCODE_G Scancode = 10
	SCANCODE_H Scancode = 11
	SCANCODE_I Scancode = 12
	SCANCODE_J Scancode = 13
	SCANCODE_K Scancode = 14
	SCANCODE_L Scancode = 15
	SCANCODE_M Scancode = 16
	SCANCODE_N Scancode = 17
	SCANCODE_O Scancode = 18
	SCANCODE_P Scancode = 19
	SCANCODE_Q Scancode = 20
	SCANCODE_R Scancode = 21
	SCANCODE_S Scancode = 22
	SCANCODE_T Scancode = 23
	SCANCODE_U Scancode = 24
	SCANCODE_V Scancode = 25
	SCANCODE_W Scancode = 26
	SCANCODE_X Scancode = 27
	SCANCODE_Y Scancode = 28
	SCANCODE_Z Scancode = 29

	SCANCODE_1 Scancode = 30
	SCANCODE_2 Scancode = 31
	SCANCODE_3 Scancode = 32
	SCANCODE_4 Scancode = 33
	SCANCODE_5 Scancode = 34
	SCANCODE_6 Scancode = 35
	SCANCODE_7 Scancode = 36
	SCANCODE_8 Scancode = 37
	SCANCODE_9 Scancode = 38
	SCANCODE_0 Scancode = 39

	SCANCODE_RETURN       Scancode = 40
	SCANCODE_ESCAPE       Scancode = 41
	SCANCODE_BACKSPACE    Scancode = 42
	SCANCODE_TAB          Scancode = 43
	SCANCODE_SPACE        Scancode = 44
	SCANCODE_MINUS        Scancode = 45
	SCANCODE_EQUALS       Scancode = 46
	SCANCODE_LEFTBRACKET  Scancode = 47
	SCANCODE_RIGHTBRACKET Scancode = 48
	SCANCODE_BACKSLASH    Scancode = 49
	SCANCODE_SEMICOLON    Scancode = 51
	SCANCODE_APOSTROPHE   Scancode = 52
	SCANCODE_GRAVE        Scancode = 53
	SCANCODE_COMMA        Scancode = 54
	SCANCODE_PERIOD       Scancode = 55
	SCANCODE_SLASH        Scancode = 56
	SCANCODE_CAPSLOCK     Scancode = 57

	SCANCODE_F1  Scancode = 58
	SCANCODE_F2  Scancode = 59
	SCANCODE_F3  Scancode = 60
	SCANCODE_F4  Scancode = 61
	SCANCODE_F5  Scancode = 62
	SCANCODE_F6  Scancode = 63
	SCANCODE_F7  Scancode = 64
	SCANCODE_F8  Scancode = 65
	SCANCODE_F9  Scancode = 66
	SCANCODE_F10 Scancode = 67
	SCANCODE_F11 Scancode = 68
	SCANCODE_F12 Scancode = 69

	SCANCODE_PRINTSCREEN Scancode = 70
	SCANCODE_SCROLLLOCK  Scancode = 71
	SCANCODE_PAUSE       Scancode = 72
	SCANCODE_INSERT      Scancode = 73
	SCANCODE_HOME        Scancode = 74
	SCANCODE_PAGEUP      Scancode = 75
	SCANCODE_DELETE      Scancode = 76
	SCANCODE_END         Scancode = 77
	SCANCODE_PAGEDOWN    Scancode = 78
	SCANCODE_RIGHT       Scancode = 79
	SCANCODE_LEFT        Scancode = 80
	SCANCODE_DOWN        Scancode = 81
	SCANCODE_UP          Scancode = 82

	SCANCODE_NUMLOCK     Scancode = 83
	SCANCODE_KP_DIVIDE   Scancode = 84
	SCANCODE_KP_MULTIPLY Scancode = 85
	SCANCODE_KP_MINUS    Scancode = 86
	SCANCODE_KP_PLUS     Scancode = 87
	SCANCODE_KP_ENTER    Scancode = 88
	SCANCODE_KP_1        Scancode = 89
	SCANCODE_KP_2        Scancode = 90
	SCANCODE_KP_3        Scancode = 91
	SCANCODE_KP_4        Scancode = 92
	SCANCODE_KP_5        Scancode = 93
	SCANCODE_KP_6        Scancode = 94
	SCANCODE_KP_7        Scancode = 95
	SCANCODE_KP_8        Scancode = 96
	SCANCODE_KP_9        Scancode = 97
	SCANCODE_KP_0        Scancode = 98
	SCANCODE_KP_PERIOD   Scancode = 99
	SCANCODE_KP_EQUALS   Scancode = 103

	SCANCODE_LCTRL  Scancode = 224
	SCANCODE_LSHIFT Scancode = 225
	SCANCODE_LALT   Scancode = 226
	SCANCODE_LGUI   Scancode = 227
	SCANCODE_RCTRL  Scancode = 228
	SCANCODE_RSHIFT Scancode = 229
	SCANCODE_RALT   Scancode = 230
	SCANCODE_RGUI   Scancode = 231

	NUM_SCANCODES = 512
)

type MouseButton uint8

const (
	MOUSE_BUTTON_LEFT MouseButton = iota
	MOUSE_BUTTON_MIDDLE
	MOUSE_BUTTON_RIGHT
	MOUSE_BUTTON_X1
	MOUSE_BUTTON_X2
	MOUSE_BUTTON_MAX_BUTTONS
)

// Button is the state of a key or mouse button derived from two
// consecutive input snapshots.
type Button struct {
	// Down in the current frame.
	Held bool
	// Down in the current frame and up in the previous one.
	Pressed bool
	// Up in the current frame and down in the previous one.
	Released bool
}

func newButton(now, before bool) Button {
	return Button{
		Held:     now,
		Pressed:  now && !before,
		Released: !now && before,
	}
}

// Keyboard state structure
type KeyboardState struct {
	Keys [NUM_SCANCODES]bool
}

// Set marks the scancode as down or up. Out of range scancodes are ignored.
func (k *KeyboardState) Set(sc Scancode, down bool) {
	if int(sc) < len(k.Keys) {
		k.Keys[sc] = down
	}
}

func (k *KeyboardState) IsDown(sc Scancode) bool {
	return int(sc) < len(k.Keys) && k.Keys[sc]
}

// Mouse state structure
type MouseState struct {
	X       int
	Y       int
	Buttons [MOUSE_BUTTON_MAX_BUTTONS]bool
}

func (m *MouseState) IsDown(b MouseButton) bool {
	return b < MOUSE_BUTTON_MAX_BUTTONS && m.Buttons[b]
}

// InputSnapshot holds the current and previous raw keyboard and mouse
// states. It is refreshed once per frame by the engine and read by the
// application.
type InputSnapshot struct {
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouseCurrent     MouseState
	mousePrevious    MouseState
	refreshed        bool
}

func NewInputSnapshot() *InputSnapshot {
	return &InputSnapshot{}
}

// Refresh moves the current state to previous and stores the new raw state
// as current.
func (s *InputSnapshot) Refresh(keyboard KeyboardState, mouse MouseState) {
	s.keyboardPrevious = s.keyboardCurrent
	s.mousePrevious = s.mouseCurrent
	s.keyboardCurrent = keyboard
	s.mouseCurrent = mouse
	s.refreshed = true
}

func (s *InputSnapshot) Refreshed() bool {
	return s.refreshed
}

// keyboard input
func (s *InputSnapshot) Key(sc Scancode) Button {
	if !s.refreshed {
		return Button{}
	}
	return newButton(s.keyboardCurrent.IsDown(sc), s.keyboardPrevious.IsDown(sc))
}

// mouse input
func (s *InputSnapshot) MouseButton(b MouseButton) Button {
	if !s.refreshed {
		return Button{}
	}
	return newButton(s.mouseCurrent.IsDown(b), s.mousePrevious.IsDown(b))
}

func (s *InputSnapshot) MousePosition() (int, int) {
	return s.mouseCurrent.X, s.mouseCurrent.Y
}

func (s *InputSnapshot) PreviousMousePosition() (int, int) {
	return s.mousePrevious.X, s.mousePrevious.Y
}
