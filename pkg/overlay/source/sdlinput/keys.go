package sdlinput

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var scancodeKeys = map[sdl.Scancode]constants.Key{
	sdl.SCANCODE_1: constants.Key1, sdl.SCANCODE_2: constants.Key2, sdl.SCANCODE_3: constants.Key3,
	sdl.SCANCODE_4: constants.Key4, sdl.SCANCODE_5: constants.Key5, sdl.SCANCODE_6: constants.Key6,
	sdl.SCANCODE_7: constants.Key7, sdl.SCANCODE_8: constants.Key8, sdl.SCANCODE_9: constants.Key9,
	sdl.SCANCODE_0: constants.Key0,

	sdl.SCANCODE_Q: constants.KeyQ, sdl.SCANCODE_W: constants.KeyW, sdl.SCANCODE_E: constants.KeyE,
	sdl.SCANCODE_R: constants.KeyR, sdl.SCANCODE_T: constants.KeyT, sdl.SCANCODE_Y: constants.KeyY,
	sdl.SCANCODE_U: constants.KeyU, sdl.SCANCODE_I: constants.KeyI, sdl.SCANCODE_O: constants.KeyO,
	sdl.SCANCODE_P: constants.KeyP, sdl.SCANCODE_A: constants.KeyA, sdl.SCANCODE_S: constants.KeyS,
	sdl.SCANCODE_D: constants.KeyD, sdl.SCANCODE_F: constants.KeyF, sdl.SCANCODE_G: constants.KeyG,
	sdl.SCANCODE_H: constants.KeyH, sdl.SCANCODE_J: constants.KeyJ, sdl.SCANCODE_K: constants.KeyK,
	sdl.SCANCODE_L: constants.KeyL, sdl.SCANCODE_Z: constants.KeyZ, sdl.SCANCODE_X: constants.KeyX,
	sdl.SCANCODE_C: constants.KeyC, sdl.SCANCODE_V: constants.KeyV, sdl.SCANCODE_B: constants.KeyB,
	sdl.SCANCODE_N: constants.KeyN, sdl.SCANCODE_M: constants.KeyM,

	sdl.SCANCODE_F1: constants.KeyF1, sdl.SCANCODE_F2: constants.KeyF2, sdl.SCANCODE_F3: constants.KeyF3,
	sdl.SCANCODE_F4: constants.KeyF4, sdl.SCANCODE_F5: constants.KeyF5, sdl.SCANCODE_F6: constants.KeyF6,
	sdl.SCANCODE_F7: constants.KeyF7, sdl.SCANCODE_F8: constants.KeyF8, sdl.SCANCODE_F9: constants.KeyF9,
	sdl.SCANCODE_F10: constants.KeyF10, sdl.SCANCODE_F11: constants.KeyF11, sdl.SCANCODE_F12: constants.KeyF12,

	sdl.SCANCODE_ESCAPE: constants.KeyEsc, sdl.SCANCODE_TAB: constants.KeyTab,
	sdl.SCANCODE_BACKSPACE: constants.KeyBackspace, sdl.SCANCODE_RETURN: constants.KeyEnter,
	sdl.SCANCODE_SPACE: constants.KeySpace,

	sdl.SCANCODE_LALT: constants.KeyLeftAlt, sdl.SCANCODE_RALT: constants.KeyRightAlt,
	sdl.SCANCODE_LCTRL: constants.KeyLeftCtrl, sdl.SCANCODE_RCTRL: constants.KeyRightCtrl,
	sdl.SCANCODE_LSHIFT: constants.KeyLeftShift, sdl.SCANCODE_RSHIFT: constants.KeyRightShift,
	sdl.SCANCODE_CAPSLOCK: constants.KeyCapsLock, sdl.SCANCODE_SCROLLLOCK: constants.KeyScrollLock,
	sdl.SCANCODE_NUMLOCKCLEAR: constants.KeyNumLock,

	sdl.SCANCODE_GRAVE: constants.KeyGrave, sdl.SCANCODE_MINUS: constants.KeyMinus,
	sdl.SCANCODE_EQUALS: constants.KeyEquals, sdl.SCANCODE_BACKSLASH: constants.KeyBackslash,
	sdl.SCANCODE_LEFTBRACKET: constants.KeyLeftBracket, sdl.SCANCODE_RIGHTBRACKET: constants.KeyRightBracket,
	sdl.SCANCODE_SEMICOLON: constants.KeySemicolon, sdl.SCANCODE_APOSTROPHE: constants.KeyQuote,
	sdl.SCANCODE_PERIOD: constants.KeyPeriod, sdl.SCANCODE_COMMA: constants.KeyComma,
	sdl.SCANCODE_SLASH: constants.KeySlash, sdl.SCANCODE_NONUSBACKSLASH: constants.KeyExtraLtGt,

	sdl.SCANCODE_PRINTSCREEN: constants.KeyPrintScreen, sdl.SCANCODE_PAUSE: constants.KeyPause,
	sdl.SCANCODE_INSERT: constants.KeyInsert, sdl.SCANCODE_HOME: constants.KeyHome,
	sdl.SCANCODE_PAGEUP: constants.KeyPageUp, sdl.SCANCODE_DELETE: constants.KeyDelete,
	sdl.SCANCODE_END: constants.KeyEnd, sdl.SCANCODE_PAGEDOWN: constants.KeyPageDown,
	sdl.SCANCODE_LEFT: constants.KeyLeft, sdl.SCANCODE_UP: constants.KeyUp,
	sdl.SCANCODE_DOWN: constants.KeyDown, sdl.SCANCODE_RIGHT: constants.KeyRight,

	sdl.SCANCODE_KP_1: constants.KeyKP1, sdl.SCANCODE_KP_2: constants.KeyKP2, sdl.SCANCODE_KP_3: constants.KeyKP3,
	sdl.SCANCODE_KP_4: constants.KeyKP4, sdl.SCANCODE_KP_5: constants.KeyKP5, sdl.SCANCODE_KP_6: constants.KeyKP6,
	sdl.SCANCODE_KP_7: constants.KeyKP7, sdl.SCANCODE_KP_8: constants.KeyKP8, sdl.SCANCODE_KP_9: constants.KeyKP9,
	sdl.SCANCODE_KP_0: constants.KeyKP0, sdl.SCANCODE_KP_DIVIDE: constants.KeyKPDivide,
	sdl.SCANCODE_KP_MULTIPLY: constants.KeyKPMultiply, sdl.SCANCODE_KP_MINUS: constants.KeyKPMinus,
	sdl.SCANCODE_KP_PLUS: constants.KeyKPPlus, sdl.SCANCODE_KP_ENTER: constants.KeyKPEnter,
	sdl.SCANCODE_KP_PERIOD: constants.KeyKPPeriod,
}

var keyScancodes [constants.KeyCount]sdl.Scancode

func init() {
	for sc, k := range scancodeKeys {
		keyScancodes[k] = sc
	}
}

// KeyFor returns the PC key a physical key position types.
func KeyFor(sc sdl.Scancode) (constants.Key, bool) {
	k, ok := scancodeKeys[sc]
	return k, ok
}

// ScancodeFor returns the physical key position of k.
func ScancodeFor(k constants.Key) (sdl.Scancode, bool) {
	if k == constants.KeyNone || k >= constants.KeyCount {
		return sdl.SCANCODE_UNKNOWN, false
	}
	return keyScancodes[k], true
}
