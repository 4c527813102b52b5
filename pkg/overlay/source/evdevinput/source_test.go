package evdevinput

import (
	"testing"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/holoplot/go-evdev"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		keys []evdev.EvCode
		want kind
	}{
		{"keyboard", []evdev.EvCode{evdev.KEY_ESC, evdev.KEY_A, evdev.KEY_ENTER}, kindKeyboard},
		{"mouse", []evdev.EvCode{evdev.BTN_LEFT, evdev.BTN_RIGHT}, kindMouse},
		{"gamepad", []evdev.EvCode{evdev.BTN_SOUTH, evdev.BTN_START}, kindGamepad},
		{"power button", []evdev.EvCode{evdev.KEY_POWER}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.keys); got != tt.want {
				t.Errorf("classify = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestScaleAxis(t *testing.T) {
	stick := evdev.AbsInfo{Minimum: -512, Maximum: 511}
	trigger := evdev.AbsInfo{Minimum: 0, Maximum: 255}
	tests := []struct {
		name  string
		value int32
		info  evdev.AbsInfo
		known bool
		want  int32
	}{
		{"stick minimum", -512, stick, true, -constants.AxisMax},
		{"stick maximum", 511, stick, true, constants.AxisMax},
		{"trigger released", 0, trigger, true, -constants.AxisMax},
		{"trigger pressed", 255, trigger, true, constants.AxisMax},
		{"unknown range clamps", 40000, evdev.AbsInfo{}, false, constants.AxisMax},
		{"unknown range passes through", -1200, evdev.AbsInfo{}, false, -1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleAxis(tt.value, tt.info, tt.known); got != tt.want {
				t.Errorf("scaleAxis = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEveryKeyHasACode(t *testing.T) {
	seen := make(map[constants.Key]bool)
	for code, k := range codeKeys {
		if back, ok := KeyFor(code); !ok || back != k {
			t.Errorf("KeyFor(%d) = %v", code, back)
		}
		seen[k] = true
	}
	for k := constants.KeyNone + 1; k < constants.KeyCount; k++ {
		if !seen[k] {
			t.Errorf("%s has no evdev code", k.GetName())
		}
	}
}

func TestApplyGamepadEvents(t *testing.T) {
	s := &Source{}
	d := &device{kind: kindGamepad, port: 1, abs: map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: {Minimum: 0, Maximum: 255},
		evdev.ABS_Z: {Minimum: 0, Maximum: 255},
	}}

	events := []evdev.InputEvent{
		{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 1},
		{Type: evdev.EV_KEY, Code: evdev.BTN_EAST, Value: 1},
		{Type: evdev.EV_KEY, Code: evdev.BTN_EAST, Value: 0},
		{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: 255},
		{Type: evdev.EV_ABS, Code: evdev.ABS_HAT0Y, Value: -1},
		{Type: evdev.EV_ABS, Code: evdev.ABS_Z, Value: 200},
	}
	for i := range events {
		s.apply(d, &events[i])
	}

	tests := []struct {
		name   string
		port   uint8
		device constants.Device
		index  uint8
		id     uint8
		want   int16
	}{
		{"south is B", 1, constants.DeviceJoypad, 0, constants.JoypadB, 1},
		{"east released", 1, constants.DeviceJoypad, 0, constants.JoypadA, 0},
		{"hat up", 1, constants.DeviceJoypad, 0, constants.JoypadUp, 1},
		{"hat not down", 1, constants.DeviceJoypad, 0, constants.JoypadDown, 0},
		{"trigger as L2", 1, constants.DeviceJoypad, 0, constants.JoypadL2, 1},
		{"stick", 1, constants.DeviceAnalog, constants.AnalogLeft, constants.AnalogX, constants.AxisMax},
		{"other port", 0, constants.DeviceJoypad, 0, constants.JoypadB, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Poll(tt.port, tt.device, tt.index, tt.id); got != tt.want {
				t.Errorf("Poll = %d, want %d", got, tt.want)
			}
		})
	}

	s.pads[1].reset()
	if s.Poll(1, constants.DeviceJoypad, 0, constants.JoypadB) != 0 {
		t.Error("button held after reset")
	}
}

func TestApplyKeyboardAndMouse(t *testing.T) {
	s := &Source{}
	kbd := &device{kind: kindKeyboard, port: -1}
	mouse := &device{kind: kindMouse, port: -1}

	s.apply(kbd, &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_ENTER, Value: 1})
	s.apply(kbd, &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 1})
	s.apply(mouse, &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_LEFT, Value: 1})
	s.apply(mouse, &evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 3})
	s.apply(mouse, &evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 4})
	s.apply(mouse, &evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_Y, Value: -1000})
	s.apply(mouse, &evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: 1})

	if s.Poll(0, constants.DeviceKeyboard, 0, uint8(constants.KeyEnter)) != 1 {
		t.Error("enter not held")
	}
	if s.Poll(0, constants.DeviceJoypad, 0, constants.JoypadB) != 0 {
		t.Error("gamepad button from a keyboard reached port 0")
	}
	if s.Poll(0, constants.DeviceMouse, 0, constants.MouseX) != 0 {
		t.Error("relative motion visible before Frame")
	}

	s.Frame()
	tests := []struct {
		name   string
		device constants.Device
		id     uint8
		want   int16
	}{
		{"relative x", constants.DeviceMouse, constants.MouseX, 7},
		{"relative y", constants.DeviceMouse, constants.MouseY, -1000},
		{"wheel up", constants.DeviceMouse, constants.MouseWheelUp, 1},
		{"left button", constants.DeviceMouse, constants.MouseLeft, 1},
		{"pointer x", constants.DevicePointer, constants.PointerX, 7 * pointerScale},
		{"pointer y clamps", constants.DevicePointer, constants.PointerY, -constants.AxisMax},
		{"pointer pressed", constants.DevicePointer, constants.PointerPressed, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Poll(0, tt.device, 0, tt.id); got != tt.want {
				t.Errorf("Poll = %d, want %d", got, tt.want)
			}
		})
	}

	s.Frame()
	if s.Poll(0, constants.DeviceMouse, 0, constants.MouseX) != 0 {
		t.Error("relative motion carried into the next frame")
	}
}
