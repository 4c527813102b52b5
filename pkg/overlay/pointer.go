package overlay

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// analogDeadzone is the stick deflection below which the pointer ignores a stick.
const analogDeadzone = constants.AxisMax * 15 / 100

// Pointer is the overlay's cursor. It follows the host's absolute pointer
// when there is one and otherwise, while the on-screen keyboard is open,
// the sticks and arrow keys.
type Pointer struct {
	X, Y float64

	width, height int
	speed         int

	absX, absY  int
	seenAbs     bool
	pendingAbs  bool
	jx, jy      float64
	kx, ky      int
	realMouse   bool
	ignoreMove  bool
	leftPressed bool
	leftUp      bool
	rightUp     bool
	wheelUp     bool
	wheelDown   bool
}

// NewPointer creates a pointer that starts centred on the first canvas it sees.
func NewPointer() *Pointer {
	return &Pointer{speed: 2}
}

// Reset drops button state and speed changes, and snaps back to the host
// pointer position when one is known.
func (p *Pointer) Reset() {
	p.speed = 2
	p.leftPressed = false
	p.jx, p.jy, p.kx, p.ky = 0, 0, 0, 0
	if p.seenAbs {
		p.pendingAbs = true
	}
}

// SetIgnoreMove makes the next Update keep the current position.
func (p *Pointer) SetIgnoreMove(ignore bool) {
	p.ignoreMove = ignore
}

// RealMouse reports whether the pointer follows a real pointing device.
func (p *Pointer) RealMouse() bool {
	return p.realMouse
}

// LeftPressed reports whether the left button is down.
func (p *Pointer) LeftPressed() bool { return p.leftPressed }

// LeftUp reports whether the left button was released this frame.
func (p *Pointer) LeftUp() bool { return p.leftUp }

// RightUp reports whether the right button was released this frame.
func (p *Pointer) RightUp() bool { return p.rightUp }

// WheelUp reports whether the wheel turned up this frame.
func (p *Pointer) WheelUp() bool { return p.wheelUp }

// WheelDown reports whether the wheel turned down this frame.
func (p *Pointer) WheelDown() bool { return p.wheelDown }

// Pos returns the position rounded to pixels.
func (p *Pointer) Pos() (int, int) {
	return int(p.X + .499), int(p.Y + .499)
}

func analogValue(v int) float64 {
	switch {
	case v > analogDeadzone:
		return float64(v-analogDeadzone) / float64(constants.AxisMax-analogDeadzone)
	case v < -analogDeadzone:
		return float64(v+analogDeadzone) / float64(constants.AxisMax-analogDeadzone)
	default:
		return 0
	}
}

// Input feeds one event to the pointer.
func (p *Pointer) Input(ev Event) {
	switch ev.Type {
	case constants.EventMouseMove:
		p.absX, p.absY = ev.Value, ev.Value2
		p.seenAbs, p.pendingAbs = true, true
	case constants.EventMouseDown:
		if ev.Value == 0 {
			p.leftPressed = true
		}
		if p.seenAbs {
			p.pendingAbs = true
		}
	case constants.EventMouseUp:
		switch ev.Value {
		case 0:
			p.leftPressed = false
			p.leftUp = true
		case 1:
			p.rightUp = true
		}
	case constants.EventJoy1X, constants.EventJoy2X:
		p.jx = analogValue(ev.Value)
	case constants.EventJoy1Y, constants.EventJoy2Y:
		p.jy = analogValue(ev.Value)
	case constants.EventKeyDown:
		switch ev.Key() {
		case constants.KeyLeft, constants.KeyKP4:
			p.kx = -1
		case constants.KeyRight, constants.KeyKP6:
			p.kx = 1
		case constants.KeyUp, constants.KeyKP8:
			p.ky = -1
		case constants.KeyDown, constants.KeyKP2:
			p.ky = 1
		case constants.KeyKPMinus:
			p.wheelUp = true
		case constants.KeyKPPlus:
			p.wheelDown = true
		}
	case constants.EventKeyUp:
		switch ev.Key() {
		case constants.KeyLeft, constants.KeyRight, constants.KeyKP4, constants.KeyKP6:
			p.kx = 0
		case constants.KeyUp, constants.KeyDown, constants.KeyKP8, constants.KeyKP2:
			p.ky = 0
		}
	case constants.EventMouseSetSpeed:
		if ev.Value > 0 {
			p.speed = 4
		} else {
			p.speed = 1
		}
	case constants.EventMouseResetSpeed:
		p.speed = 2
	}
}

// Update moves the pointer for this frame on a width x height canvas and
// reports whether it moved. A change of canvas size remaps the position
// proportionally. Sticks and arrow keys only move it when joyKbd is set.
func (p *Pointer) Update(width, height int, joyKbd bool) bool {
	if p.width == 0 || p.height == 0 {
		p.X, p.Y = float64(width/2), float64(height/2)
	} else if width != p.width || height != p.height {
		p.X = p.X * float64(width) / float64(p.width)
		p.Y = p.Y * float64(height) / float64(p.height)
	}
	p.width, p.height = width, height

	oldX, oldY := p.X, p.Y
	switch {
	case p.pendingAbs:
		p.pendingAbs = false
		p.realMouse = true
		if p.ignoreMove {
			break
		}
		p.X = float64((p.absX+0x7fff)*width) / 0xFFFE
		p.Y = float64((p.absY+0x7fff)*height) / 0xFFFE
	case p.jx != 0 || p.jy != 0 || p.kx != 0 || p.ky != 0:
		p.realMouse = false
		if !joyKbd {
			return false
		}
		p.X += (p.jx + float64(p.kx)) * float64(p.speed) * float64(width) / 320
		p.Y += (p.jy + float64(p.ky)) * float64(p.speed) * float64(height) / 240
	default:
		return false
	}
	p.ignoreMove = false

	p.X = clampf(p.X, 1, float64(width-2))
	p.Y = clampf(p.Y, 1, float64(height-2))
	return p.X != oldX || p.Y != oldY
}

// EndFrame clears the one-frame button and wheel flags.
func (p *Pointer) EndFrame() {
	p.leftUp, p.rightUp, p.wheelUp, p.wheelDown = false, false, false, false
}

// Draw renders the cursor when it follows a real mouse or steers the keyboard.
func (p *Pointer) Draw(c Canvas, joyKbd bool) {
	if !p.realMouse && !joyKbd {
		return
	}
	x, y := p.Pos()
	c.DrawCursor(x, y, internal.Thickness(c.Width()))
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
