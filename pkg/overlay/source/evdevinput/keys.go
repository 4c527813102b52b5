package evdevinput

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/holoplot/go-evdev"
)

var codeKeys = map[evdev.EvCode]constants.Key{
	evdev.KEY_1: constants.Key1, evdev.KEY_2: constants.Key2, evdev.KEY_3: constants.Key3,
	evdev.KEY_4: constants.Key4, evdev.KEY_5: constants.Key5, evdev.KEY_6: constants.Key6,
	evdev.KEY_7: constants.Key7, evdev.KEY_8: constants.Key8, evdev.KEY_9: constants.Key9,
	evdev.KEY_0: constants.Key0,

	evdev.KEY_Q: constants.KeyQ, evdev.KEY_W: constants.KeyW, evdev.KEY_E: constants.KeyE,
	evdev.KEY_R: constants.KeyR, evdev.KEY_T: constants.KeyT, evdev.KEY_Y: constants.KeyY,
	evdev.KEY_U: constants.KeyU, evdev.KEY_I: constants.KeyI, evdev.KEY_O: constants.KeyO,
	evdev.KEY_P: constants.KeyP, evdev.KEY_A: constants.KeyA, evdev.KEY_S: constants.KeyS,
	evdev.KEY_D: constants.KeyD, evdev.KEY_F: constants.KeyF, evdev.KEY_G: constants.KeyG,
	evdev.KEY_H: constants.KeyH, evdev.KEY_J: constants.KeyJ, evdev.KEY_K: constants.KeyK,
	evdev.KEY_L: constants.KeyL, evdev.KEY_Z: constants.KeyZ, evdev.KEY_X: constants.KeyX,
	evdev.KEY_C: constants.KeyC, evdev.KEY_V: constants.KeyV, evdev.KEY_B: constants.KeyB,
	evdev.KEY_N: constants.KeyN, evdev.KEY_M: constants.KeyM,

	evdev.KEY_F1: constants.KeyF1, evdev.KEY_F2: constants.KeyF2, evdev.KEY_F3: constants.KeyF3,
	evdev.KEY_F4: constants.KeyF4, evdev.KEY_F5: constants.KeyF5, evdev.KEY_F6: constants.KeyF6,
	evdev.KEY_F7: constants.KeyF7, evdev.KEY_F8: constants.KeyF8, evdev.KEY_F9: constants.KeyF9,
	evdev.KEY_F10: constants.KeyF10, evdev.KEY_F11: constants.KeyF11, evdev.KEY_F12: constants.KeyF12,

	evdev.KEY_ESC: constants.KeyEsc, evdev.KEY_TAB: constants.KeyTab,
	evdev.KEY_BACKSPACE: constants.KeyBackspace, evdev.KEY_ENTER: constants.KeyEnter,
	evdev.KEY_SPACE: constants.KeySpace,

	evdev.KEY_LEFTALT: constants.KeyLeftAlt, evdev.KEY_RIGHTALT: constants.KeyRightAlt,
	evdev.KEY_LEFTCTRL: constants.KeyLeftCtrl, evdev.KEY_RIGHTCTRL: constants.KeyRightCtrl,
	evdev.KEY_LEFTSHIFT: constants.KeyLeftShift, evdev.KEY_RIGHTSHIFT: constants.KeyRightShift,
	evdev.KEY_CAPSLOCK: constants.KeyCapsLock, evdev.KEY_SCROLLLOCK: constants.KeyScrollLock,
	evdev.KEY_NUMLOCK: constants.KeyNumLock,

	evdev.KEY_GRAVE: constants.KeyGrave, evdev.KEY_MINUS: constants.KeyMinus,
	evdev.KEY_EQUAL: constants.KeyEquals, evdev.KEY_BACKSLASH: constants.KeyBackslash,
	evdev.KEY_LEFTBRACE: constants.KeyLeftBracket, evdev.KEY_RIGHTBRACE: constants.KeyRightBracket,
	evdev.KEY_SEMICOLON: constants.KeySemicolon, evdev.KEY_APOSTROPHE: constants.KeyQuote,
	evdev.KEY_DOT: constants.KeyPeriod, evdev.KEY_COMMA: constants.KeyComma,
	evdev.KEY_SLASH: constants.KeySlash, evdev.KEY_102ND: constants.KeyExtraLtGt,

	evdev.KEY_SYSRQ: constants.KeyPrintScreen, evdev.KEY_PAUSE: constants.KeyPause,
	evdev.KEY_INSERT: constants.KeyInsert, evdev.KEY_HOME: constants.KeyHome,
	evdev.KEY_PAGEUP: constants.KeyPageUp, evdev.KEY_DELETE: constants.KeyDelete,
	evdev.KEY_END: constants.KeyEnd, evdev.KEY_PAGEDOWN: constants.KeyPageDown,
	evdev.KEY_LEFT: constants.KeyLeft, evdev.KEY_UP: constants.KeyUp,
	evdev.KEY_DOWN: constants.KeyDown, evdev.KEY_RIGHT: constants.KeyRight,

	evdev.KEY_KP1: constants.KeyKP1, evdev.KEY_KP2: constants.KeyKP2, evdev.KEY_KP3: constants.KeyKP3,
	evdev.KEY_KP4: constants.KeyKP4, evdev.KEY_KP5: constants.KeyKP5, evdev.KEY_KP6: constants.KeyKP6,
	evdev.KEY_KP7: constants.KeyKP7, evdev.KEY_KP8: constants.KeyKP8, evdev.KEY_KP9: constants.KeyKP9,
	evdev.KEY_KP0: constants.KeyKP0, evdev.KEY_KPSLASH: constants.KeyKPDivide,
	evdev.KEY_KPASTERISK: constants.KeyKPMultiply, evdev.KEY_KPMINUS: constants.KeyKPMinus,
	evdev.KEY_KPPLUS: constants.KeyKPPlus, evdev.KEY_KPENTER: constants.KeyKPEnter,
	evdev.KEY_KPDOT: constants.KeyKPPeriod,
}

// Positional layout: the bottom face button is the pad's B.
var codeButtons = map[evdev.EvCode]uint8{
	evdev.BTN_SOUTH:      constants.JoypadB,
	evdev.BTN_EAST:       constants.JoypadA,
	evdev.BTN_NORTH:      constants.JoypadX,
	evdev.BTN_WEST:       constants.JoypadY,
	evdev.BTN_TL:         constants.JoypadL,
	evdev.BTN_TR:         constants.JoypadR,
	evdev.BTN_TL2:        constants.JoypadL2,
	evdev.BTN_TR2:        constants.JoypadR2,
	evdev.BTN_SELECT:     constants.JoypadSelect,
	evdev.BTN_START:      constants.JoypadStart,
	evdev.BTN_THUMBL:     constants.JoypadL3,
	evdev.BTN_THUMBR:     constants.JoypadR3,
	evdev.BTN_DPAD_UP:    constants.JoypadUp,
	evdev.BTN_DPAD_DOWN:  constants.JoypadDown,
	evdev.BTN_DPAD_LEFT:  constants.JoypadLeft,
	evdev.BTN_DPAD_RIGHT: constants.JoypadRight,
}

var codeMouseButtons = map[evdev.EvCode]uint8{
	evdev.BTN_LEFT:   constants.MouseLeft,
	evdev.BTN_RIGHT:  constants.MouseRight,
	evdev.BTN_MIDDLE: constants.MouseMiddle,
}

// KeyFor returns the PC key an evdev key code types.
func KeyFor(code evdev.EvCode) (constants.Key, bool) {
	k, ok := codeKeys[code]
	return k, ok
}
