package constants

// Key is a key of the emulated PC keyboard.
type Key uint8

const (
	KeyNone Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEsc
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyLeftAlt
	KeyRightAlt
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyGrave
	KeyMinus
	KeyEquals
	KeyBackslash
	KeyLeftBracket
	KeyRightBracket
	KeySemicolon
	KeyQuote
	KeyPeriod
	KeyComma
	KeySlash
	KeyExtraLtGt
	KeyPrintScreen
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyLeft
	KeyUp
	KeyDown
	KeyRight
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKP0
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKPPeriod
	KeyCount
)

var keyNames = [KeyCount]string{
	"None", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P",
	"A", "S", "D", "F", "G", "H", "J", "K", "L",
	"Z", "X", "C", "V", "B", "N", "M",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Esc", "Tab", "Backspace", "Enter", "Space",
	"Left Alt", "Right Alt", "Left Ctrl", "Right Ctrl", "Left Shift", "Right Shift",
	"Caps Lock", "Scroll Lock", "Num Lock",
	"Grave `", "Minus -", "Equals =", "Backslash \\", "Left Bracket [", "Right Bracket ]",
	"Semicolon ;", "Quote '", "Period .", "Comma ,", "Slash /", "Extra <>",
	"Print Screen", "Pause", "Insert", "Home", "Page Up", "Delete", "End", "Page Down",
	"Left", "Up", "Down", "Right",
	"Numpad 1", "Numpad 2", "Numpad 3", "Numpad 4", "Numpad 5",
	"Numpad 6", "Numpad 7", "Numpad 8", "Numpad 9", "Numpad 0",
	"Numpad /", "Numpad *", "Numpad -", "Numpad +", "Numpad Enter", "Numpad .",
}

// Short labels for keys whose full name does not fit an on-screen key cap.
var keyCaps = map[Key]string{
	KeyEsc: "Esc", KeyBackspace: "<-", KeyEnter: "Enter", KeyTab: "Tab", KeyCapsLock: "Caps",
	KeyLeftShift: "Shift", KeyRightShift: "Shift", KeyLeftCtrl: "Ctrl", KeyRightCtrl: "Ctrl",
	KeyLeftAlt: "Alt", KeyRightAlt: "Alt", KeySpace: "", KeyGrave: "`", KeyMinus: "-", KeyEquals: "=",
	KeyBackslash: "\\", KeyLeftBracket: "[", KeyRightBracket: "]", KeySemicolon: ";", KeyQuote: "'",
	KeyPeriod: ".", KeyComma: ",", KeySlash: "/", KeyExtraLtGt: "<>", KeyPrintScreen: "PS",
	KeyScrollLock: "SL", KeyPause: "Pa", KeyInsert: "Ins", KeyHome: "Hm", KeyPageUp: "PU",
	KeyDelete: "Del", KeyEnd: "End", KeyPageDown: "PD", KeyLeft: "<", KeyUp: "^", KeyDown: "v",
	KeyRight: ">", KeyNumLock: "NL", KeyKPDivide: "/", KeyKPMultiply: "*", KeyKPMinus: "-",
	KeyKPPlus: "+", KeyKPEnter: "E", KeyKPPeriod: ".", KeyKP0: "0", KeyKP1: "1", KeyKP2: "2",
	KeyKP3: "3", KeyKP4: "4", KeyKP5: "5", KeyKP6: "6", KeyKP7: "7", KeyKP8: "8", KeyKP9: "9",
}

func (k Key) GetName() string {
	if k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Cap returns the label printed on the key's on-screen key cap.
func (k Key) Cap() string {
	if c, ok := keyCaps[k]; ok {
		return c
	}
	return k.GetName()
}

// IsModifier reports whether the key is an alt, ctrl or shift key.
func (k Key) IsModifier() bool {
	return k >= KeyLeftAlt && k <= KeyRightShift
}

// MapperOrder lists keys the way the gamepad mapper presents them:
// letters alphabetically, then digits, then everything else in key order.
func MapperOrder() []Key {
	keys := make([]Key, 0, KeyCount-1)
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		keys = append(keys, keyByName[string(r)])
	}
	for k := Key1; k <= Key0; k++ {
		keys = append(keys, k)
	}
	for k := KeyF1; k < KeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

var keyByName = func() map[string]Key {
	m := make(map[string]Key, KeyCount)
	for k := KeyNone + 1; k < KeyCount; k++ {
		m[keyNames[k]] = k
	}
	return m
}()

// KeyByName looks a key up by its GetName value.
func KeyByName(name string) (Key, bool) {
	k, ok := keyByName[name]
	return k, ok
}
