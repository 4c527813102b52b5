package overlay

import (
	"image/color"
	"math"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// WheelState is the lifecycle of one port's action wheel.
type WheelState uint8

const (
	WheelClosed WheelState = iota
	WheelOpen
	WheelOpenPressed
	WheelClosingPressed
	WheelClosingReleased
)

func (s WheelState) String() string {
	switch s {
	case WheelClosed:
		return "closed"
	case WheelOpen:
		return "open"
	case WheelOpenPressed:
		return "open_pressed"
	case WheelClosingPressed:
		return "closing_pressed"
	case WheelClosingReleased:
		return "closing_released"
	default:
		return "unknown"
	}
}

func (s WheelState) pressed() bool {
	return s == WheelOpenPressed || s == WheelClosingPressed
}

// steering reports whether the wheel still reads the sticks.
func (s WheelState) steering() bool {
	return s == WheelOpen || s == WheelOpenPressed
}

// Wheel is the radial selector of one controller port.
type Wheel struct {
	state      WheelState
	openReq    bool
	usePointer bool
	buttonDown bool
	x, y       int
	result     int
	active     int
	tick       time.Time
}

// State returns the lifecycle state.
func (w *Wheel) State() WheelState { return w.state }

// Pos returns the steering vector in axis units.
func (w *Wheel) Pos() (int, int) { return w.x, w.y }

// Result returns the wheel option the wheel points at, or -1.
func (w *Wheel) Result() int { return w.result }

// UsingPointer reports whether the mouse steers the wheel.
func (w *Wheel) UsingPointer() bool { return w.usePointer }

func (w *Wheel) live() bool {
	return w.openReq || w.state != WheelClosed
}

// wheelStart is the centre angle of the first sector. Even counts that
// would put a sector boundary straight left rotate slightly.
func wheelStart(n int) float64 {
	if n%2 == 0 && (n >= 8 || n%4 == 0) {
		return -3.0
	}
	return -math.Pi
}

func wheelStep(n int) float64 {
	return 2 * math.Pi / float64(n)
}

// SectorCenter returns the centre angle in radians of sector i of n.
func SectorCenter(n, i int) float64 {
	return wheelStart(n) + float64(i)*wheelStep(n)
}

func inAngleRange(a, b, halfStep float64) bool {
	off := a - b
	if off < -math.Pi {
		off += 2 * math.Pi
	}
	if off > math.Pi {
		off -= 2 * math.Pi
	}
	return off > -halfStep && off < halfStep
}

// SectorAt returns the sector of n holding angle, or -1 for an empty wheel.
func SectorAt(n int, angle float64) int {
	if n <= 0 {
		return -1
	}
	half := wheelStep(n)/2 + 0.01
	for i := 0; i < n; i++ {
		if inAngleRange(SectorCenter(n, i), angle, half) {
			return i
		}
	}
	return -1
}

// WheelSet owns the action wheels of every port and the game binding
// filter that keeps steering inputs from reaching the machine while a
// wheel is open.
type WheelSet struct {
	wheels [constants.MaxPorts]Wheel

	table       *BindingTable
	clock       Clock
	mask        constants.WheelInput
	mouseSpeed  float64
	releaseHold time.Duration
	fadeOut     time.Duration
	emit        func(Event)
}

// NewWheelSet creates closed wheels for every port. emit receives the events
// of activated wheel options.
func NewWheelSet(table *BindingTable, clock Clock, cfg Config, emit func(Event)) *WheelSet {
	ws := &WheelSet{
		table:       table,
		clock:       clock,
		mask:        cfg.WheelInputMask(),
		mouseSpeed:  cfg.MouseSpeed,
		releaseHold: constants.DefaultWheelReleaseHold,
		fadeOut:     constants.DefaultWheelFadeOut,
		emit:        emit,
	}
	for i := range ws.wheels {
		ws.wheels[i].result = -1
		ws.wheels[i].active = -1
	}
	return ws
}

// Wheel returns the wheel of port.
func (ws *WheelSet) Wheel(port uint8) *Wheel {
	return &ws.wheels[port]
}

// Open asks the wheel of port to open at its next update.
func (ws *WheelSet) Open(port uint8) {
	ws.wheels[port].openReq = true
	logger().Debug("Action wheel requested", "port", port)
}

// Active reports whether any wheel is open, closing or about to open.
func (ws *WheelSet) Active() bool {
	for i := range ws.wheels {
		if ws.wheels[i].live() {
			return true
		}
	}
	return false
}

// ActionWheelInput applies the action wheel button of port: press opens,
// release starts closing and fires the selected option.
func (ws *WheelSet) ActionWheelInput(port uint8, pressed bool) {
	w := &ws.wheels[port]
	switch {
	case pressed && !w.live():
		ws.Open(port)
	case pressed:
		ws.SetState(port, WheelOpen)
	default:
		ws.SetState(port, WheelClosingPressed)
	}
}

// CloseAll forces every wheel closed, releasing anything still pressed.
func (ws *WheelSet) CloseAll() {
	for p := range ws.wheels {
		ws.wheels[p].openReq = false
		if ws.wheels[p].state != WheelClosed {
			ws.SetState(uint8(p), WheelClosed)
		}
	}
}

// SetState moves the wheel of port to s. Entering a pressed state presses
// the selected option; leaving the pressed states releases it. Only Open
// leaves Closed.
func (ws *WheelSet) SetState(port uint8, s WheelState) {
	w := &ws.wheels[port]
	if s == w.state {
		return
	}
	if w.state == WheelClosed && s != WheelOpen {
		return
	}
	now := ws.clock.Now()

	if s == WheelOpen && w.state == WheelClosed {
		w.x, w.y = 0, 0
		w.result = -1
		w.usePointer = false
	}

	if s != WheelClosingPressed || w.state != WheelOpenPressed {
		switch {
		case s.pressed() && w.result >= 0 && w.active < 0:
			w.active = w.result
			ws.table.ActivateWheel(w.active, true, ws.emit)
		case !s.pressed() && w.state.pressed() && w.active >= 0:
			ws.table.ActivateWheel(w.active, false, ws.emit)
			w.active = -1
		}
	}

	if w.state == WheelOpenPressed {
		w.tick = w.tick.Add(-time.Second)
	} else if s != WheelClosingReleased {
		w.tick = now
	}

	logger().Debug("Action wheel state", "port", port, "from", w.state.String(), "to", s.String(), "result", w.result)
	w.state = s
}

// Update advances the wheel of port for this frame: applies an open
// request, runs the closing timers and steers from the polled inputs.
func (ws *WheelSet) Update(port uint8, src InputSource) {
	w := &ws.wheels[port]
	if w.openReq {
		ws.SetState(port, WheelOpen)
		w.openReq = false
	}
	now := ws.clock.Now()
	if w.state == WheelClosingPressed && now.Sub(w.tick) > ws.releaseHold {
		ws.SetState(port, WheelClosingReleased)
	}
	if w.state == WheelClosingReleased && now.Sub(w.tick) > ws.fadeOut {
		ws.SetState(port, WheelClosed)
	}
	if !w.state.steering() {
		return
	}

	sx, sy := ws.steer(port, src)
	smag := sx*sx + sy*sy
	if smag != 0 && smag >= w.x*w.x+w.y*w.y {
		w.x, w.y = sx, sy
		w.usePointer = false
	} else if !w.usePointer {
		w.x = (w.x*5 + sx) / 6
		w.y = (w.y*5 + sy) / 6
	}

	down := src.Poll(port, constants.DeviceJoypad, 0, constants.JoypadB) != 0 ||
		(w.usePointer && src.Poll(0, constants.DeviceMouse, 0, constants.MouseLeft) != 0)
	if down && !w.buttonDown {
		ws.SetState(port, WheelOpenPressed)
	}
	if !down && w.buttonDown {
		ws.SetState(port, WheelOpen)
	}
	w.buttonDown = down

	if port == 0 && ws.mask&constants.WheelInputMouse != 0 {
		mx := int(src.Poll(0, constants.DeviceMouse, 0, constants.MouseX))
		my := int(src.Poll(0, constants.DeviceMouse, 0, constants.MouseY))
		if mx != 0 || my != 0 {
			w.usePointer = true
			scale := int(ws.mouseSpeed * constants.WheelMouseScale)
			w.x += mx * scale
			w.y += my * scale
		}
	}
	w.clampPos()

	if w.state == WheelOpen {
		ws.resolve(port)
	}
}

// steer picks the strongest of the enabled sources: the larger stick beyond
// the deadzone, unless the d-pad is pushed further.
func (ws *WheelSet) steer(port uint8, src InputSource) (int, int) {
	stick := func(bit constants.WheelInput, index uint8) (int, int, int) {
		if ws.mask&bit == 0 {
			return 0, 0, 0
		}
		x := int(src.Poll(port, constants.DeviceAnalog, index, constants.AnalogX))
		y := int(src.Poll(port, constants.DeviceAnalog, index, constants.AnalogY))
		d := x*x + y*y
		if d < constants.WheelDeadzoneSq {
			return 0, 0, 0
		}
		return x, y, d
	}
	x0, y0, d0 := stick(constants.WheelInputLeftStick, constants.AnalogLeft)
	x1, y1, d1 := stick(constants.WheelInputRightStick, constants.AnalogRight)
	if d1 >= d0 {
		x0, y0, d0 = x1, y1, d1
	}

	var x2, y2 int
	if ws.mask&constants.WheelInputDPad != 0 {
		pressed := func(id uint8) bool { return src.Poll(port, constants.DeviceJoypad, 0, id) != 0 }
		if pressed(constants.JoypadLeft) {
			x2 -= constants.AxisMax
		}
		if pressed(constants.JoypadRight) {
			x2 += constants.AxisMax
		}
		if pressed(constants.JoypadUp) {
			y2 -= constants.AxisMax
		}
		if pressed(constants.JoypadDown) {
			y2 += constants.AxisMax
		}
	}
	if d0 > x2*x2+y2*y2 {
		return x0, y0
	}
	return x2, y2
}

func (w *Wheel) clampPos() {
	d := w.x*w.x + w.y*w.y
	if d <= constants.AxisMax*constants.AxisMax {
		return
	}
	f := constants.AxisMax / math.Sqrt(float64(d))
	w.x = int(float64(w.x) * f)
	w.y = int(float64(w.y) * f)
}

// resolve commits the sector under the steering vector once it is beyond
// the activation radius. Inside it the previous result stays.
func (ws *WheelSet) resolve(port uint8) {
	w := &ws.wheels[port]
	items := ws.table.WheelItems(port)
	if !containsInt(items, w.result) {
		w.result = -1
	}
	if len(items) == 0 || w.x*w.x+w.y*w.y <= constants.WheelActivationRadius*constants.WheelActivationRadius {
		return
	}
	if s := SectorAt(len(items), math.Atan2(float64(w.y), float64(w.x))); s >= 0 {
		w.result = items[s]
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Filter suppresses the game bindings that steer or press an open wheel.
// The action wheel binding itself always passes.
func (ws *WheelSet) Filter(b *Binding, val int16) int16 {
	if int(b.Port) >= len(ws.wheels) {
		return val
	}
	st := ws.wheels[b.Port].state
	if !st.steering() && st != WheelClosingPressed {
		return val
	}
	if b.Action.Event == constants.EventActionWheel {
		return val
	}
	m := ws.mask
	switch b.Device {
	case constants.DeviceAnalog:
		if (b.Index == constants.AnalogLeft && m&constants.WheelInputLeftStick != 0) ||
			(b.Index == constants.AnalogRight && m&constants.WheelInputRightStick != 0) {
			return 0
		}
	case constants.DeviceJoypad:
		if b.ID == constants.JoypadB {
			return 0
		}
		switch b.ID {
		case constants.JoypadUp, constants.JoypadDown, constants.JoypadLeft, constants.JoypadRight:
			if m&constants.WheelInputDPad != 0 {
				return 0
			}
		}
	case constants.DeviceMouse:
		if m&constants.WheelInputMouse != 0 {
			return 0
		}
	}
	return val
}

// Draw renders every live wheel.
func (ws *WheelSet) Draw(c Canvas) {
	for p := range ws.wheels {
		if ws.wheels[p].live() {
			ws.drawWheel(c, uint8(p))
		}
	}
}

func withAlpha(rgb uint32, alpha int) color.NRGBA {
	c := ARGB(rgb)
	c.A = uint8(alpha)
	return c
}

func (ws *WheelSet) drawWheel(c Canvas, port uint8) {
	w := &ws.wheels[port]
	tickd := int(ws.clock.Now().Sub(w.tick) / time.Millisecond)
	alpha := 0
	switch w.state {
	case WheelOpen:
		alpha = tickd * 2
	case WheelOpenPressed:
		alpha = 0xFF
	case WheelClosingPressed, WheelClosingReleased:
		if w.result == -1 {
			alpha = 0xFF - tickd*2
		} else {
			alpha = 0xFF - tickd/2
		}
	}
	if alpha <= 0 {
		return
	}
	if alpha > 0xFF {
		alpha = 0xFF
	}

	items := ws.table.WheelItems(port)
	n := len(items)
	if n == 0 {
		return
	}

	width, height := c.Width(), c.Height()
	cx, cy := width*5/8, height*2/3
	if port != 0 {
		cx = width * 2 / 8
	}
	rad := height / 6
	if height > 900 {
		rad = 150
	}
	srad := rad / 9
	maxdist := rad - srad + 3
	seldist := rad / 2

	div := constants.WheelRadius / rad
	wx, wy := w.x/div, w.y/div
	wdistsq := wx*wx + wy*wy
	wa := 0.0
	if wdistsq != 0 {
		wa = math.Atan2(float64(wy), float64(wx))
	}
	if wdistsq > maxdist*maxdist {
		wx = int(math.Cos(wa) * float64(maxdist))
		wy = int(math.Sin(wa) * float64(maxdist))
	}

	step := wheelStep(n)
	half := step/2 + 0.01
	selSector := -1
	for i, item := range items {
		if w.state == WheelOpen && wdistsq != 0 && inAngleRange(SectorCenter(n, i), wa, half) ||
			w.state != WheelOpen && item == w.result {
			selSector = i
			break
		}
	}
	selected := selSector >= 0 && (w.state != WheelOpen || wdistsq > seldist*seldist)

	white20 := withAlpha(0xFFFFFF, alpha*30/100)
	white30 := withAlpha(0xFFFFFF, alpha*40/100)
	white50 := withAlpha(0xFFFFFF, alpha*50/100)
	white80 := withAlpha(0xFFFFFF, alpha*80/100)
	black := withAlpha(0x000000, alpha)
	white := withAlpha(0xFFFFFF, alpha)
	selColor := withAlpha(0xFF8000, alpha)
	if w.state == WheelOpen || tickd&64 != 0 {
		selColor = withAlpha(0xFFFF00, alpha)
	}
	hl := 50
	if w.state == WheelOpen {
		hl = 40 + 10*wdistsq/(maxdist*maxdist)
	}
	highlight := withAlpha(0xFFFFFF, alpha*hl/100)

	c.FillCircle(cx, cy, 2, white80)
	c.FillRing(cx, cy, 2, rad/2, white20)
	if selSector >= 0 {
		a := SectorCenter(n, selSector)
		c.FillWedge(cx, cy, rad/2, rad, a-half, a+half, highlight)
		c.FillWedge(cx, cy, rad/2, rad, a+half, a-half+2*math.Pi, white30)
	} else {
		c.FillRing(cx, cy, rad/2, rad, white30)
	}
	c.FillRing(cx, cy, rad, rad+1, white50)
	c.FillRing(cx, cy, rad+1, rad+3, white80)
	c.FillRing(cx, cy, rad+3, rad+4, white50)

	c.FillRing(cx+wx, cy+wy, srad+2, srad+3, black)
	c.FillCircle(cx+wx, cy+wy, srad, white50)
	c.FillRing(cx+wx, cy+wy, srad, srad+2, white80)

	lh := lineHeight(height)
	radtxt := rad + 7
	var selLabel string
	var selX, selY int
	for i, item := range items {
		a := SectorCenter(n, i)
		label := ws.table.WheelItem(item).Label()
		nx := int(math.Cos(a)*float64(radtxt)) + 1
		ny := int(math.Sin(a) * float64(radtxt+5))
		if math.Abs(math.Abs(a)-math.Pi/2) < 0.2 {
			nx -= textWidth(label) / 2
		} else if nx < -5 {
			nx -= textWidth(label)
		}
		if selected && i == selSector {
			selLabel, selX, selY = label, nx, ny
			continue
		}
		printOutlined(c, lh, cx+nx, cy+ny-3, label, white, black)
	}
	if selLabel != "" {
		printOutlined(c, lh, cx+selX, cy+selY-3, selLabel, selColor, black)
	}
}
