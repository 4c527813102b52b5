package internal

import (
	"fmt"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// Event is one normalized input notification.
//
// Value carries the key, button index or axis value depending on Type.
// MouseMove carries the absolute pointer position in Value and Value2.
type Event struct {
	Type   constants.EventType
	Port   uint8
	Value  int
	Value2 int
}

// Key returns the key of a KeyDown/KeyUp event.
func (e Event) Key() constants.Key {
	return constants.Key(e.Value)
}

func (e Event) String() string {
	if e.Type == constants.EventKeyDown || e.Type == constants.EventKeyUp {
		return fmt.Sprintf("%s(%s)", e.Type.GetName(), e.Key().GetName())
	}
	return fmt.Sprintf("%s(%d,%d)", e.Type.GetName(), e.Value, e.Value2)
}

// InputSource yields the current raw value of a (port, device, index, id) input.
// Inputs a source does not support report zero.
type InputSource interface {
	Poll(port uint8, device constants.Device, index, id uint8) int16
}

// Action is the logical action a binding drives: the event it emits and the
// meta value carried with it (key, mouse button, speed sign). For axis events
// a non-zero Meta is the direction a digital input pushes the axis.
type Action struct {
	Event constants.EventType
	Meta  int
}

// KeyAction returns the action pressing a keyboard key.
func KeyAction(k constants.Key) Action {
	return Action{Event: constants.EventKeyDown, Meta: int(k)}
}

// Binding maps one polled input to an action. Half selects the positive (1)
// or negative (-1) half of an analog axis, read as a button beyond the axis
// threshold unless the action itself is an axis.
type Binding struct {
	Port   uint8
	Device constants.Device
	Index  uint8
	ID     uint8
	Half   int8
	Action Action

	last int16
}

// SameInput reports whether two bindings read the same physical input.
func (b Binding) SameInput(o Binding) bool {
	return b.Port == o.Port && b.Device == o.Device && b.Index == o.Index && b.ID == o.ID && b.Half == o.Half
}

// Read polls the binding's input and applies its axis half.
func (b *Binding) Read(src InputSource) int16 {
	v := src.Poll(b.Port, b.Device, b.Index, b.ID)
	if b.Half == 0 {
		return v
	}
	h := int(v) * int(b.Half)
	if h < 0 {
		h = 0
	}
	if h > constants.AxisMax {
		h = constants.AxisMax
	}
	if b.Action.Event.IsAxis() {
		return int16(h)
	}
	if h > constants.AxisThreshold {
		return 1
	}
	return 0
}

// Prime records val as seen without emitting anything.
func (b *Binding) Prime(val int16) {
	b.last = val
}

// Update records val and returns the event the change produces. Button-like
// actions only report edges: a change in magnitude while pressed is no event.
func (b *Binding) Update(val int16) (Event, bool) {
	if val == b.last {
		return Event{}, false
	}
	prev := b.last
	b.last = val

	a := b.Action
	if a.Event.IsAxis() {
		v := int(val)
		if a.Meta != 0 {
			if b.Device != constants.DeviceAnalog && v != 0 {
				v = constants.AxisMax
			}
			v *= a.Meta
		}
		return Event{Type: a.Event, Port: b.Port, Value: v}, true
	}

	down := val != 0
	if down == (prev != 0) {
		return Event{}, false
	}

	release := a.Event.Release()
	if release == a.Event {
		v := 0
		if down {
			v = 1
		}
		return Event{Type: a.Event, Port: b.Port, Value: v, Value2: a.Meta}, true
	}

	if down {
		return Event{Type: a.Event, Port: b.Port, Value: a.Meta}, true
	}
	return Event{Type: release, Port: b.Port, Value: a.Meta}, true
}

// DefaultInterceptBinds returns the fixed port 0 bindings used while the
// on-screen display intercepts input.
func DefaultInterceptBinds() []Binding {
	joy := func(id uint8, ev constants.EventType, meta int) Binding {
		return Binding{Device: constants.DeviceJoypad, ID: id, Action: Action{Event: ev, Meta: meta}}
	}
	mouse := func(id uint8, ev constants.EventType, meta int) Binding {
		return Binding{Device: constants.DeviceMouse, ID: id, Action: Action{Event: ev, Meta: meta}}
	}
	stick := func(index, id uint8, ev constants.EventType) Binding {
		return Binding{Device: constants.DeviceAnalog, Index: index, ID: id, Action: Action{Event: ev}}
	}

	return []Binding{
		mouse(constants.MouseLeft, constants.EventMouseDown, 0),
		mouse(constants.MouseRight, constants.EventMouseDown, 1),
		mouse(constants.MouseMiddle, constants.EventMouseDown, 2),
		mouse(constants.MouseWheelUp, constants.EventKeyDown, int(constants.KeyKPMinus)),
		mouse(constants.MouseWheelDown, constants.EventKeyDown, int(constants.KeyKPPlus)),
		joy(constants.JoypadL3, constants.EventOnScreenKeyboard, 0),
		joy(constants.JoypadUp, constants.EventKeyDown, int(constants.KeyUp)),
		joy(constants.JoypadDown, constants.EventKeyDown, int(constants.KeyDown)),
		joy(constants.JoypadLeft, constants.EventKeyDown, int(constants.KeyLeft)),
		joy(constants.JoypadRight, constants.EventKeyDown, int(constants.KeyRight)),
		stick(constants.AnalogLeft, constants.AnalogX, constants.EventJoy1X),
		stick(constants.AnalogLeft, constants.AnalogY, constants.EventJoy1Y),
		stick(constants.AnalogRight, constants.AnalogX, constants.EventJoy2X),
		stick(constants.AnalogRight, constants.AnalogY, constants.EventJoy2Y),
		joy(constants.JoypadY, constants.EventJoy1Down, 0),
		joy(constants.JoypadX, constants.EventJoy1Down, 1),
		joy(constants.JoypadB, constants.EventJoy2Down, 0),
		joy(constants.JoypadA, constants.EventJoy2Down, 1),
		joy(constants.JoypadL, constants.EventKeyDown, int(constants.KeyGrave)),
		joy(constants.JoypadR, constants.EventKeyDown, int(constants.KeyTab)),
		joy(constants.JoypadSelect, constants.EventKeyDown, int(constants.KeyEsc)),
		joy(constants.JoypadStart, constants.EventKeyDown, int(constants.KeyEnter)),
		joy(constants.JoypadL2, constants.EventMouseSetSpeed, 1),
		joy(constants.JoypadR2, constants.EventMouseSetSpeed, -1),
	}
}
