package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/anima2d/engine/core"
)

var buttonMap = map[glfw.MouseButton]core.MouseButton{
	glfw.MouseButtonLeft:   core.MOUSE_BUTTON_LEFT,
	glfw.MouseButtonMiddle: core.MOUSE_BUTTON_MIDDLE,
	glfw.MouseButtonRight:  core.MOUSE_BUTTON_RIGHT,
	glfw.MouseButton4:      core.MOUSE_BUTTON_X1,
	glfw.MouseButton5:      core.MOUSE_BUTTON_X2,
}

// keyMap translates GLFW key tokens, which name keys by their US layout
// position, to physical scancodes.
var keyMap = map[glfw.Key]core.Scancode{
	glfw.KeyA: core.SCANCODE_A,
	glfw.KeyB: core.SCANCODE_B,
	glfw.KeyC: core.SCANCODE_C,
	glfw.KeyD: core.SCANCODE_D,
	glfw.KeyE: core.SCANCODE_E,
	glfw.KeyF: core.SCANCODE_F,
	glfw.KeyG: core.SCANCODE_G,
	glfw.KeyH: core.SCANCODE_H,
	glfw.KeyI: core.SCANCODE_I,
	glfw.KeyJ: core.SCANCODE_J,
	glfw.KeyK: core.SCANCODE_K,
	glfw.KeyL: core.SCANCODE_L,
	glfw.KeyM: core.SCANCODE_M,
	glfw.KeyN: core.SCANCODE_N,
	glfw.KeyO: core.SCANCODE_O,
	glfw.KeyP: core.SCANCODE_P,
	glfw.KeyQ: core.SCANCODE_Q,
	glfw.KeyR: core.SCANCODE_R,
	glfw.KeyS: core.SCANCODE_S,
	glfw.KeyT: core.SCANCODE_T,
	glfw.KeyU: core.SCANCODE_U,
	glfw.KeyV: core.SCANCODE_V,
	glfw.KeyW: core.SCANCODE_W,
	glfw.KeyX: core.SCANCODE_X,
	glfw.KeyY: core.SCANCODE_Y,
	glfw.KeyZ: core.SCANCODE_Z,

	glfw.Key1: core.SCANCODE_1,
	glfw.Key2: core.SCANCODE_2,
	glfw.Key3: core.SCANCODE_3,
	glfw.Key4: core.SCANCODE_4,
	glfw.Key5: core.SCANCODE_5,
	glfw.Key6: core.SCANCODE_6,
	glfw.Key7: core.SCANCODE_7,
	glfw.Key8: core.SCANCODE_8,
	glfw.Key9: core.SCANCODE_9,
	glfw.Key0: core.SCANCODE_0,

	glfw.KeyEnter:        core.SCANCODE_RETURN,
	glfw.KeyEscape:       core.SCANCODE_ESCAPE,
	glfw.KeyBackspace:    core.SCANCODE_BACKSPACE,
	glfw.KeyTab:          core.SCANCODE_TAB,
	glfw.KeySpace:        core.SCANCODE_SPACE,
	glfw.KeyMinus:        core.SCANCODE_MINUS,
	glfw.KeyEqual:        core.SCANCODE_EQUALS,
	glfw.KeyLeftBracket:  core.SCANCODE_LEFTBRACKET,
	glfw.KeyRightBracket: core.SCANCODE_RIGHTBRACKET,
	glfw.KeyBackslash:    core.SCANCODE_BACKSLASH,
	glfw.KeySemicolon:    core.SCANCODE_SEMICOLON,
	glfw.KeyApostrophe:   core.SCANCODE_APOSTROPHE,
	glfw.KeyGraveAccent:  core.SCANCODE_GRAVE,
	glfw.KeyComma:        core.SCANCODE_COMMA,
	glfw.KeyPeriod:       core.SCANCODE_PERIOD,
	glfw.KeySlash:        core.SCANCODE_SLASH,
	glfw.KeyCapsLock:     core.SCANCODE_CAPSLOCK,

	glfw.KeyF1:  core.SCANCODE_F1,
	glfw.KeyF2:  core.SCANCODE_F2,
	glfw.KeyF3:  core.SCANCODE_F3,
	glfw.KeyF4:  core.SCANCODE_F4,
	glfw.KeyF5:  core.SCANCODE_F5,
	glfw.KeyF6:  core.SCANCODE_F6,
	glfw.KeyF7:  core.SCANCODE_F7,
	glfw.KeyF8:  core.SCANCODE_F8,
	glfw.KeyF9:  core.SCANCODE_F9,
	glfw.KeyF10: core.SCANCODE_F10,
	glfw.KeyF11: core.SCANCODE_F11,
	glfw.KeyF12: core.SCANCODE_F12,

	glfw.KeyPrintScreen: core.SCANCODE_PRINTSCREEN,
	glfw.KeyScrollLock:  core.SCANCODE_SCROLLLOCK,
	glfw.KeyPause:       core.SCANCODE_PAUSE,
	glfw.KeyInsert:      core.SCANCODE_INSERT,
	glfw.KeyHome:        core.SCANCODE_HOME,
	glfw.KeyPageUp:      core.SCANCODE_PAGEUP,
	glfw.KeyDelete:      core.SCANCODE_DELETE,
	glfw.KeyEnd:         core.SCANCODE_END,
	glfw.KeyPageDown:    core.SCANCODE_PAGEDOWN,
	glfw.KeyRight:       core.SCANCODE_RIGHT,
	glfw.KeyLeft:        core.SCANCODE_LEFT,
	glfw.KeyDown:        core.SCANCODE_DOWN,
	glfw.KeyUp:          core.SCANCODE_UP,

	glfw.KeyNumLock:    core.SCANCODE_NUMLOCK,
	glfw.KeyKPDivide:   core.SCANCODE_KP_DIVIDE,
	glfw.KeyKPMultiply: core.SCANCODE_KP_MULTIPLY,
	glfw.KeyKPSubtract: core.SCANCODE_KP_MINUS,
	glfw.KeyKPAdd:      core.SCANCODE_KP_PLUS,
	glfw.KeyKPEnter:    core.SCANCODE_KP_ENTER,
	glfw.KeyKP1:        core.SCANCODE_KP_1,
	glfw.KeyKP2:        core.SCANCODE_KP_2,
	glfw.KeyKP3:        core.SCANCODE_KP_3,
	glfw.KeyKP4:        core.SCANCODE_KP_4,
	glfw.KeyKP5:        core.SCANCODE_KP_5,
	glfw.KeyKP6:        core.SCANCODE_KP_6,
	glfw.KeyKP7:        core.SCANCODE_KP_7,
	glfw.KeyKP8:        core.SCANCODE_KP_8,
	glfw.KeyKP9:        core.SCANCODE_KP_9,
	glfw.KeyKP0:        core.SCANCODE_KP_0,
	glfw.KeyKPDecimal:  core.SCANCODE_KP_PERIOD,
	glfw.KeyKPEqual:    core.SCANCODE_KP_EQUALS,

	glfw.KeyLeftControl:  core.SCANCODE_LCTRL,
	glfw.KeyLeftShift:    core.SCANCODE_LSHIFT,
	glfw.KeyLeftAlt:      core.SCANCODE_LALT,
	glfw.KeyLeftSuper:    core.SCANCODE_LGUI,
	glfw.KeyRightControl: core.SCANCODE_RCTRL,
	glfw.KeyRightShift:   core.SCANCODE_RSHIFT,
	glfw.KeyRightAlt:     core.SCANCODE_RALT,
	glfw.KeyRightSuper:   core.SCANCODE_RGUI,
}
