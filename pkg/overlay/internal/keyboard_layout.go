package internal

import (
	"image"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// KeyMapper is the on-screen keyboard key that opens the gamepad mapper
// instead of pressing a key on the machine.
const KeyMapper = constants.KeyCount

// On-screen keyboard size in layout units.
const (
	OSKWidth  = oskSplit2 + oskMapperWidth
	OSKHeight = 3 + 5*10 + 8
)

const (
	oskKey         = 10
	oskRowHeight   = 8
	oskTallHeight  = 18
	oskSpacing     = 2
	oskSplit1      = 192
	oskSplit2      = 234
	oskMapperWidth = oskKey*4 + oskSpacing*3
)

// KeySlot is one key cap of the on-screen keyboard in layout units.
type KeySlot struct {
	Key        constants.Key
	X, Y, W, H int
}

type oskToken struct {
	key   constants.Key
	w, h  int
	inset int
	gap   int
	split bool
}

func key(k constants.Key, w int) oskToken { return oskToken{key: k, w: w, h: oskRowHeight} }
func keys(ks ...constants.Key) []oskToken {
	out := make([]oskToken, len(ks))
	for i, k := range ks {
		out[i] = key(k, oskKey)
	}
	return out
}
func gap(n int) oskToken { return oskToken{gap: n} }
func split() oskToken    { return oskToken{split: true} }

func row(parts ...any) []oskToken {
	var out []oskToken
	for _, p := range parts {
		switch v := p.(type) {
		case oskToken:
			out = append(out, v)
		case []oskToken:
			out = append(out, v...)
		}
	}
	return out
}

var oskRows = [][]oskToken{
	row(key(constants.KeyEsc, oskKey), gap(12),
		keys(constants.KeyF1, constants.KeyF2, constants.KeyF3, constants.KeyF4), gap(9),
		keys(constants.KeyF5, constants.KeyF6, constants.KeyF7, constants.KeyF8), gap(9),
		keys(constants.KeyF9, constants.KeyF10, constants.KeyF11, constants.KeyF12), split(),
		keys(constants.KeyPrintScreen, constants.KeyScrollLock, constants.KeyPause), split(),
		key(KeyMapper, oskMapperWidth)),
	row(keys(constants.KeyGrave, constants.Key1, constants.Key2, constants.Key3, constants.Key4, constants.Key5,
		constants.Key6, constants.Key7, constants.Key8, constants.Key9, constants.Key0, constants.KeyMinus, constants.KeyEquals),
		key(constants.KeyBackspace, 28), split(),
		keys(constants.KeyInsert, constants.KeyHome, constants.KeyPageUp), split(),
		keys(constants.KeyNumLock, constants.KeyKPDivide, constants.KeyKPMultiply, constants.KeyKPMinus)),
	row(key(constants.KeyTab, 15),
		keys(constants.KeyQ, constants.KeyW, constants.KeyE, constants.KeyR, constants.KeyT, constants.KeyY,
			constants.KeyU, constants.KeyI, constants.KeyO, constants.KeyP, constants.KeyLeftBracket, constants.KeyRightBracket),
		oskToken{key: constants.KeyEnter, w: 18, h: oskTallHeight, inset: 5}, split(),
		keys(constants.KeyDelete, constants.KeyEnd, constants.KeyPageDown), split(),
		keys(constants.KeyKP7, constants.KeyKP8, constants.KeyKP9),
		oskToken{key: constants.KeyKPPlus, w: oskKey, h: oskTallHeight}),
	row(key(constants.KeyCapsLock, 20),
		keys(constants.KeyA, constants.KeyS, constants.KeyD, constants.KeyF, constants.KeyG, constants.KeyH,
			constants.KeyJ, constants.KeyK, constants.KeyL, constants.KeySemicolon, constants.KeyQuote, constants.KeyBackslash),
		split(), split(),
		keys(constants.KeyKP4, constants.KeyKP5, constants.KeyKP6)),
	row(key(constants.KeyLeftShift, 17),
		keys(constants.KeyExtraLtGt, constants.KeyZ, constants.KeyX, constants.KeyC, constants.KeyV, constants.KeyB,
			constants.KeyN, constants.KeyM, constants.KeyComma, constants.KeyPeriod, constants.KeySlash),
		key(constants.KeyRightShift, 33), split(),
		gap(12), key(constants.KeyUp, oskKey), gap(12), split(),
		keys(constants.KeyKP1, constants.KeyKP2, constants.KeyKP3),
		oskToken{key: constants.KeyKPEnter, w: oskKey, h: oskTallHeight}),
	row(key(constants.KeyLeftCtrl, 16), gap(12), key(constants.KeyLeftAlt, 16),
		key(constants.KeySpace, 88),
		key(constants.KeyRightAlt, 16), gap(12), key(constants.KeyRightCtrl, 16), split(),
		keys(constants.KeyLeft, constants.KeyDown, constants.KeyRight), split(),
		key(constants.KeyKP0, 22), key(constants.KeyKPPeriod, oskKey)),
}

var oskLayout = buildOSKLayout()

func buildOSKLayout() []KeySlot {
	var slots []KeySlot
	for r, tokens := range oskRows {
		x, y := 0, 0
		if r > 0 {
			y = 3 + r*10
		}
		for _, t := range tokens {
			switch {
			case t.split:
				if x < oskSplit1 {
					x = oskSplit1
				} else {
					x = oskSplit2
				}
				continue
			case t.gap > 0:
				x += t.gap
				continue
			}
			x += t.inset
			slots = append(slots, KeySlot{Key: t.key, X: x, Y: y, W: t.w, H: t.h})
			x += t.w + oskSpacing
		}
	}
	return slots
}

// OSKLayout returns the key caps of the on-screen keyboard.
func OSKLayout() []KeySlot {
	return oskLayout
}

// Thickness is the pixel scale of outlines and the cursor on a canvas this wide.
func Thickness(width int) int {
	if width < OSKWidth+10 {
		return 1
	}
	return (width - 10) / OSKWidth
}

// OSKPlacement maps layout units to canvas pixels.
type OSKPlacement struct {
	FX, FY           float64
	OriginX, OriginY int
}

// PlaceOSK scales the keyboard to the canvas and docks it at the bottom, or
// at the top while the pointer is in the lower half.
func PlaceOSK(width, height int, ratio float64, pointerY float64) OSKPlacement {
	fx := float64(Thickness(width))
	if width < OSKWidth {
		fx = float64(width-10) / OSKWidth
	}
	fy := fx * ratio * float64(height) / float64(width)
	if fy < 1 {
		fy = 1
	}

	p := OSKPlacement{FX: fx, FY: fy}
	p.OriginX = int(float64(width)/fx/2) - OSKWidth/2
	if pointerY > 0 && pointerY < float64(height)/2 {
		p.OriginY = 3
	} else {
		p.OriginY = int(float64(height)/fy) - 3 - 65
	}
	return p
}

// Rect returns the canvas rectangle of a key cap.
func (p OSKPlacement) Rect(s KeySlot) image.Rectangle {
	return image.Rect(
		int(float64(p.OriginX+s.X)*p.FX),
		int(float64(p.OriginY+s.Y)*p.FY),
		int(float64(p.OriginX+s.X+s.W)*p.FX),
		int(float64(p.OriginY+s.Y+s.H)*p.FY),
	)
}

// KeyAt returns the key under canvas position (x, y), or KeyNone. Each cap's
// one pixel outline counts as part of the key.
func (p OSKPlacement) KeyAt(x, y int) constants.Key {
	hit := constants.KeyNone
	for _, s := range oskLayout {
		r := p.Rect(s)
		if x >= r.Min.X-1 && x <= r.Max.X && y >= r.Min.Y-1 && y <= r.Max.Y {
			hit = s.Key
		}
	}
	return hit
}
