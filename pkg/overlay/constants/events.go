package constants

// EventType is a normalized input notification produced from polled values.
type EventType uint8

const (
	EventNone EventType = iota
	EventJoy1X
	EventJoy1Y
	EventJoy2X
	EventJoy2Y
	EventJoyMX
	EventJoyMY
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseSetSpeed
	EventMouseResetSpeed
	EventJoy1Down
	EventJoy1Up
	EventJoy2Down
	EventJoy2Up
	EventOnScreenKeyboard
	EventOnScreenKeyboardUp
	EventActionWheel
	EventChangeMounts
	EventRefreshSystem
)

// IsAxis reports whether the event carries an analog value as its payload.
func (e EventType) IsAxis() bool {
	return e >= EventJoy1X && e <= EventJoyMY
}

// Release returns the event a button-like binding emits when it goes back to zero.
// Axis events and events without a release counterpart return themselves.
func (e EventType) Release() EventType {
	switch e {
	case EventKeyDown:
		return EventKeyUp
	case EventMouseDown:
		return EventMouseUp
	case EventJoy1Down:
		return EventJoy1Up
	case EventJoy2Down:
		return EventJoy2Up
	case EventMouseSetSpeed:
		return EventMouseResetSpeed
	case EventOnScreenKeyboard:
		return EventOnScreenKeyboardUp
	default:
		return e
	}
}

// IsPress reports whether the event is the down edge of a button-like input.
func (e EventType) IsPress() bool {
	switch e {
	case EventKeyDown, EventMouseDown, EventJoy1Down, EventJoy2Down:
		return true
	}
	return false
}

// IsRelease reports whether the event is the up edge of a button-like input.
func (e EventType) IsRelease() bool {
	switch e {
	case EventKeyUp, EventMouseUp, EventJoy1Up, EventJoy2Up:
		return true
	}
	return false
}

func (e EventType) GetName() string {
	switch e {
	case EventNone:
		return "None"
	case EventJoy1X:
		return "Joy1X"
	case EventJoy1Y:
		return "Joy1Y"
	case EventJoy2X:
		return "Joy2X"
	case EventJoy2Y:
		return "Joy2Y"
	case EventJoyMX:
		return "JoyMX"
	case EventJoyMY:
		return "JoyMY"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseSetSpeed:
		return "MouseSetSpeed"
	case EventMouseResetSpeed:
		return "MouseResetSpeed"
	case EventJoy1Down:
		return "Joy1Down"
	case EventJoy1Up:
		return "Joy1Up"
	case EventJoy2Down:
		return "Joy2Down"
	case EventJoy2Up:
		return "Joy2Up"
	case EventOnScreenKeyboard:
		return "OnScreenKeyboard"
	case EventOnScreenKeyboardUp:
		return "OnScreenKeyboardUp"
	case EventActionWheel:
		return "ActionWheel"
	case EventChangeMounts:
		return "ChangeMounts"
	case EventRefreshSystem:
		return "RefreshSystem"
	default:
		return "Unknown"
	}
}
