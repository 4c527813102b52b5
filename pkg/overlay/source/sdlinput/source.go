// Package sdlinput polls SDL2 game controllers, the keyboard and the mouse
// as an overlay input source.
package sdlinput

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Positional layout: the bottom face button is the pad's B.
var controllerButtons = [...]sdl.GameControllerButton{
	constants.JoypadB:      sdl.CONTROLLER_BUTTON_A,
	constants.JoypadY:      sdl.CONTROLLER_BUTTON_X,
	constants.JoypadSelect: sdl.CONTROLLER_BUTTON_BACK,
	constants.JoypadStart:  sdl.CONTROLLER_BUTTON_START,
	constants.JoypadUp:     sdl.CONTROLLER_BUTTON_DPAD_UP,
	constants.JoypadDown:   sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	constants.JoypadLeft:   sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	constants.JoypadRight:  sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
	constants.JoypadA:      sdl.CONTROLLER_BUTTON_B,
	constants.JoypadX:      sdl.CONTROLLER_BUTTON_Y,
	constants.JoypadL:      sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	constants.JoypadR:      sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	constants.JoypadL2:     sdl.CONTROLLER_BUTTON_INVALID,
	constants.JoypadR2:     sdl.CONTROLLER_BUTTON_INVALID,
	constants.JoypadL3:     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	constants.JoypadR3:     sdl.CONTROLLER_BUTTON_RIGHTSTICK,
}

var controllerAxes = [2][2]sdl.GameControllerAxis{
	constants.AnalogLeft:  {sdl.CONTROLLER_AXIS_LEFTX, sdl.CONTROLLER_AXIS_LEFTY},
	constants.AnalogRight: {sdl.CONTROLLER_AXIS_RIGHTX, sdl.CONTROLLER_AXIS_RIGHTY},
}

var mouseButtons = map[uint8]uint32{
	constants.MouseLeft:   uint32(sdl.BUTTON_LEFT),
	constants.MouseRight:  uint32(sdl.BUTTON_RIGHT),
	constants.MouseMiddle: uint32(sdl.BUTTON_MIDDLE),
}

// mouseState is the mouse as seen by one frame.
type mouseState struct {
	x, y       int32
	relX, relY int32
	buttons    uint32
	wheel      int32
}

// Source reads controllers in the order they were attached, one per port.
// Keyboard and mouse answer on every port.
type Source struct {
	pads  [constants.MaxPorts]*sdl.GameController
	keys  []uint8
	frame mouseState
	wheel int32
	viewW int32
	viewH int32
}

// New opens every attached game controller. Raw joysticks without a
// controller mapping are skipped.
func New() *Source {

	n := sdl.NumJoysticks()
	internal.GetInternalLogger().Debug("Detecting controllers", "joystick_count", n)
	for i := 0; i < n; i++ {
		s.open(i)
	}
	return s
}

func (s *Source) open(index int) {
	if !sdl.IsGameController(index) {
		internal.GetInternalLogger().Debug("Skipping joystick without controller mapping", "index", index)
		return
	}
	for port, pad := range s.pads {
		if pad != nil {
			continue
		}
		pad = sdl.GameControllerOpen(index)
		if pad == nil {
			internal.GetInternalLogger().Error("Failed to open game controller", "index", index)
			return
		}
		s.pads[port] = pad
		internal.GetInternalLogger().Debug("Opened game controller", "index", index, "port", port, "name", pad.Name())
		return
	}
	internal.GetInternalLogger().Warn("No free port for game controller", "index", index)
}

func (s *Source) remove(id sdl.JoystickID) {
	for port, pad := range s.pads {
		if pad != nil && pad.Joystick().InstanceID() == id {
			internal.GetInternalLogger().Debug("Closed game controller", "port", port)
			pad.Close()
			s.pads[port] = nil
		}
	}
}

// SetViewport sets the window size pointer positions are scaled from.
func (s *Source) SetViewport(w, h int32) {
	s.viewW, s.viewH = w, h
}

// HandleEvent tracks controller hotplug and mouse wheel motion. It reports
// whether the event was consumed.
func (s *Source) HandleEvent(ev sdl.Event) bool {
	switch e := ev.(type) {
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			s.open(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			s.remove(e.Which)
		}
		return true
	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			y = -y
		}
		s.wheel += y
		return true
	}
	return false
}

// Frame latches the mouse for the coming frame. Call it once before the
// overlay polls.
func (s *Source) Frame() {
	x, y, buttons := sdl.GetMouseState()
	rx, ry, _ := sdl.GetRelativeMouseState()
	s.frame = mouseState{x: x, y: y, relX: rx, relY: ry, buttons: buttons, wheel: s.wheel}
	s.wheel = 0
}

func (s *Source) Poll(port uint8, device constants.Device, index, id uint8) int16 {
	switch device {
	case constants.DeviceJoypad:
		return s.button(port, id)
	case constants.DeviceAnalog:
		if int(port) >= len(s.pads) || s.pads[port] == nil || int(index) >= len(controllerAxes) || int(id) > 1 {
			return 0
		}
		return s.pads[port].Axis(controllerAxes[index][id])
	case constants.DeviceKeyboard:
		sc, ok := ScancodeFor(constants.Key(id))
		if !ok || int(sc) >= len(s.keys) || s.keys[sc] == 0 {
			return 0
		}
		return 1
	case constants.DeviceMouse:
		return s.mouse(id)
	case constants.DevicePointer:
		switch id {
		case constants.PointerX:
			return toAxis(s.frame.x, s.viewW)
		case constants.PointerY:
			return toAxis(s.frame.y, s.viewH)
		case constants.PointerPressed:
			return s.mouse(constants.MouseLeft)
		}
	}
	return 0
}

func (s *Source) button(port, id uint8) int16 {
	if int(port) >= len(s.pads) || s.pads[port] == nil || int(id) >= len(controllerButtons) {
		return 0
	}
	pad := s.pads[port]
	switch id {
	case constants.JoypadL2:
		return triggerButton(pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT))
	case constants.JoypadR2:
		return triggerButton(pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT))
	}
	return int16(pad.Button(controllerButtons[id]))
}

func (s *Source) mouse(id uint8) int16 {
	switch id {
	case constants.MouseX:
		return clampAxis(s.frame.relX)
	case constants.MouseY:
		return clampAxis(s.frame.relY)
	case constants.MouseWheelUp:
		return boolValue(s.frame.wheel > 0)
	case constants.MouseWheelDown:
		return boolValue(s.frame.wheel < 0)
	}
	if b, ok := mouseButtons[id]; ok {
		return boolValue(s.frame.buttons&(1<<(b-1)) != 0)
	}
	return 0
}

// Close closes every open controller.
func (s *Source) Close() {
	for port, pad := range s.pads {
		if pad != nil {
			pad.Close()
			s.pads[port] = nil
		}
	}
}

// toAxis scales a window coordinate to the pointer range.
func toAxis(v, size int32) int16 {
	if size <= 1 {
		return 0
	}
	a := int64(v)*2*constants.AxisMax/int64(size-1) - constants.AxisMax
	return clampAxis(int32(a))
}

func clampAxis(v int32) int16 {
	return int16(max(-constants.AxisMax, min(constants.AxisMax, v)))
}

func triggerButton(v int16) int16 {
	return boolValue(v > constants.AxisThreshold)
}

func boolValue(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
