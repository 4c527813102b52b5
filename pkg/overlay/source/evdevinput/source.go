// Package evdevinput reads Linux input devices as an overlay input source.
// Every device is read on its own goroutine and Poll sees the latest values
// without blocking the frame.
package evdevinput

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// ErrNoDevices is returned when no keyboard, mouse or gamepad could be opened.
var ErrNoDevices = errors.New("no usable input devices")

// pointerScale is the pointer travel in axis units per mouse count.
const pointerScale = 100

type kind uint8

const (
	kindKeyboard kind = 1 << iota
	kindMouse
	kindGamepad
)

func classify(keys []evdev.EvCode) kind {
	var k kind
	for _, c := range keys {
		switch c {
		case evdev.BTN_SOUTH:
			k |= kindGamepad
		case evdev.BTN_LEFT:
			k |= kindMouse
		case evdev.KEY_A:
			k |= kindKeyboard
		}
	}
	return k
}

type pad struct {
	buttons [constants.JoypadR3 + 1]atomic.Int32
	axes    [2][2]atomic.Int32
}

func (p *pad) reset() {
	for i := range p.buttons {
		p.buttons[i].Store(0)
	}
	for i := range p.axes {
		p.axes[i][0].Store(0)
		p.axes[i][1].Store(0)
	}
}

type device struct {
	dev  *evdev.InputDevice
	name string
	kind kind
	port int // -1 unless the device is a gamepad
	abs  map[evdev.EvCode]evdev.AbsInfo
}

// Source merges every opened device. Gamepads take ports in the order they
// were opened. Keyboards and mice answer on every port.
type Source struct {
	pads         [constants.MaxPorts]pad
	keys         [constants.KeyCount]atomic.Int32
	mouseButtons [constants.MouseMiddle + 1]atomic.Int32
	relX, relY   atomic.Int64
	wheel        atomic.Int64
	posX, posY   atomic.Int32

	// Latched by Frame and read only from the frame goroutine.
	frame struct {
		relX, relY, wheel int64
	}

	devices []*device
	closed  atomic.Bool
	wg      sync.WaitGroup
}

// Open opens the given event device paths, or every /dev/input/event*
// device when none are given, and starts reading them.
func Open(paths ...string) (*Source, error) {
	logger := internal.GetInternalLogger()

	if len(paths) == 0 {
		found, err := evdev.ListDevicePaths()
		if err != nil {
			return nil, fmt.Errorf("failed to list input devices: %w", err)
		}
		for _, p := range found {
			paths = append(paths, p.Path)
		}
	}

	s := &Source{}
	port := 0
	for _, path := range paths {
		dev, err := evdev.Open(path)
		if err != nil {
			logger.Warn("Failed to open input device", "path", path, "error", err)
			continue
		}

		d := &device{dev: dev, port: -1, kind: classify(dev.CapableEvents(evdev.EV_KEY))}
		d.name, _ = dev.Name()
		if d.kind == 0 {
			dev.Close()
			continue
		}
		if d.kind&kindGamepad != 0 && port < constants.MaxPorts {
			d.port = port
			port++
			if d.abs, err = dev.AbsInfos(); err != nil {
				logger.Warn("Failed to read axis ranges", "name", d.name, "error", err)
			}
		}

		logger.Debug("Opened input device", "path", path, "name", d.name, "port", d.port)
		s.devices = append(s.devices, d)
	}

	if len(s.devices) == 0 {
		return nil, ErrNoDevices
	}
	for _, d := range s.devices {
		s.wg.Add(1)
		go s.read(d)
	}
	return s, nil
}

func (s *Source) read(d *device) {
	defer s.wg.Done()
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !s.closed.Load() {
				internal.GetInternalLogger().Warn("Input device stopped", "name", d.name, "error", err)
			}
			if d.port >= 0 {
				s.pads[d.port].reset()
			}
			return
		}
		s.apply(d, ev)
	}
}

func (s *Source) apply(d *device, ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_KEY:
		s.key(d, ev.Code, ev.Value != 0)
	case evdev.EV_ABS:
		if d.port >= 0 {
			s.abs(&s.pads[d.port], d.abs, ev.Code, ev.Value)
		}
	case evdev.EV_REL:
		switch ev.Code {
		case evdev.REL_X:
			s.relX.Add(int64(ev.Value))
			movePointer(&s.posX, ev.Value)
		case evdev.REL_Y:
			s.relY.Add(int64(ev.Value))
			movePointer(&s.posY, ev.Value)
		case evdev.REL_WHEEL:
			s.wheel.Add(int64(ev.Value))
		}
	}
}

func (s *Source) key(d *device, code evdev.EvCode, down bool) {
	var v int32
	if down {
		v = 1
	}
	if b, ok := codeButtons[code]; ok {
		if d.port >= 0 {
			s.pads[d.port].buttons[b].Store(v)
		}
		return
	}
	if b, ok := codeMouseButtons[code]; ok {
		s.mouseButtons[b].Store(v)
		return
	}
	if k, ok := codeKeys[code]; ok {
		s.keys[k].Store(v)
	}
}

func (s *Source) abs(p *pad, ranges map[evdev.EvCode]evdev.AbsInfo, code evdev.EvCode, value int32) {
	info, ok := ranges[code]
	switch code {
	case evdev.ABS_X:
		p.axes[constants.AnalogLeft][constants.AnalogX].Store(scaleAxis(value, info, ok))
	case evdev.ABS_Y:
		p.axes[constants.AnalogLeft][constants.AnalogY].Store(scaleAxis(value, info, ok))
	case evdev.ABS_RX:
		p.axes[constants.AnalogRight][constants.AnalogX].Store(scaleAxis(value, info, ok))
	case evdev.ABS_RY:
		p.axes[constants.AnalogRight][constants.AnalogY].Store(scaleAxis(value, info, ok))
	case evdev.ABS_HAT0X:
		p.buttons[constants.JoypadLeft].Store(boolValue(value < 0))
		p.buttons[constants.JoypadRight].Store(boolValue(value > 0))
	case evdev.ABS_HAT0Y:
		p.buttons[constants.JoypadUp].Store(boolValue(value < 0))
		p.buttons[constants.JoypadDown].Store(boolValue(value > 0))
	case evdev.ABS_Z:
		p.buttons[constants.JoypadL2].Store(boolValue(scaleAxis(value, info, ok) > 0))
	case evdev.ABS_RZ:
		p.buttons[constants.JoypadR2].Store(boolValue(scaleAxis(value, info, ok) > 0))
	}
}

// scaleAxis maps a value in the device's range onto the axis range.
// Without a known range the value is only clamped.
func scaleAxis(value int32, info evdev.AbsInfo, known bool) int32 {
	if !known || info.Maximum <= info.Minimum {
		return clamp(value)
	}
	v := int64(value-info.Minimum)*2*constants.AxisMax/int64(info.Maximum-info.Minimum) - constants.AxisMax
	return clamp(int32(v))
}

func movePointer(pos *atomic.Int32, delta int32) {
	for {
		old := pos.Load()
		if pos.CompareAndSwap(old, clamp(old+delta*pointerScale)) {
			return
		}
	}
}

func clamp(v int32) int32 {
	return max(-constants.AxisMax, min(constants.AxisMax, v))
}

func boolValue(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Frame latches relative mouse motion and wheel turns for the coming frame.
// Call it once before the overlay polls.
func (s *Source) Frame() {
	s.frame.relX = s.relX.Swap(0)
	s.frame.relY = s.relY.Swap(0)
	s.frame.wheel = s.wheel.Swap(0)
}

func (s *Source) Poll(port uint8, device constants.Device, index, id uint8) int16 {
	switch device {
	case constants.DeviceJoypad:
		if int(port) < len(s.pads) && int(id) < len(s.pads[port].buttons) {
			return int16(s.pads[port].buttons[id].Load())
		}
	case constants.DeviceAnalog:
		if int(port) < len(s.pads) && index <= constants.AnalogRight && id <= constants.AnalogY {
			return int16(s.pads[port].axes[index][id].Load())
		}
	case constants.DeviceKeyboard:
		if int(id) < len(s.keys) {
			return int16(s.keys[id].Load())
		}
	case constants.DeviceMouse:
		switch id {
		case constants.MouseX:
			return int16(max(-constants.AxisMax, min(constants.AxisMax, s.frame.relX)))
		case constants.MouseY:
			return int16(max(-constants.AxisMax, min(constants.AxisMax, s.frame.relY)))
		case constants.MouseWheelUp:
			return int16(boolValue(s.frame.wheel > 0))
		case constants.MouseWheelDown:
			return int16(boolValue(s.frame.wheel < 0))
		}
		if int(id) < len(s.mouseButtons) {
			return int16(s.mouseButtons[id].Load())
		}
	case constants.DevicePointer:
		switch id {
		case constants.PointerX:
			return int16(s.posX.Load())
		case constants.PointerY:
			return int16(s.posY.Load())
		case constants.PointerPressed:
			return int16(s.mouseButtons[constants.MouseLeft].Load())
		}
	}
	return 0
}

// Close stops the readers and closes every device.
func (s *Source) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	var errs []error
	for _, d := range s.devices {
		if err := d.dev.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", d.name, err))
		}
	}
	s.wg.Wait()
	return errors.Join(errs...)
}
