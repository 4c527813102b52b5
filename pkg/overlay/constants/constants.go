// Package constants defines shared constants, types, and configuration values
// used throughout the overlay: input devices and ids, event types, keys and
// the timing windows of the menu and wheel state machines.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the overlay and its demo host.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ConfigPathEnvVar   = "OVERLAY_CONFIG"
	InputSourceEnvVar  = "OVERLAY_INPUT"
	LogLevelEnvVar     = "OVERLAY_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// MaxPorts is the number of controller ports a session tracks.
const MaxPorts = 4

// Device identifies the class of a polled input.
type Device uint8

const (
	DeviceNone Device = iota
	DeviceJoypad
	DeviceMouse
	DeviceKeyboard
	DeviceLightgun
	DeviceAnalog
	DevicePointer
)

func (d Device) GetName() string {
	switch d {
	case DeviceNone:
		return "None"
	case DeviceJoypad:
		return "Joypad"
	case DeviceMouse:
		return "Mouse"
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceLightgun:
		return "Lightgun"
	case DeviceAnalog:
		return "Analog"
	case DevicePointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}

// Joypad button ids.
const (
	JoypadB uint8 = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
	JoypadL2
	JoypadR2
	JoypadL3
	JoypadR3
)

// Analog stick indexes and axis ids.
const (
	AnalogLeft  uint8 = 0
	AnalogRight uint8 = 1

	AnalogX uint8 = 0
	AnalogY uint8 = 1
)

// Mouse ids. X and Y report relative motion since the last poll.
const (
	MouseX uint8 = iota
	MouseY
	MouseLeft
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseMiddle
)

// Pointer ids. X and Y report absolute positions in [-0x7FFF, 0x7FFF].
const (
	PointerX uint8 = iota
	PointerY
	PointerPressed
)

// AxisMax is the largest magnitude an axis reports.
const AxisMax = 0x7FFF

// AxisThreshold is the deflection at which a stick counts as a directional press.
const AxisThreshold = 16000

// Selection deltas produced by list navigation.
const (
	PageStep    = 12
	HomeEndJump = 99999
)

// WheelInput selects which sources steer the action wheel.
type WheelInput uint8

const (
	WheelInputLeftStick WheelInput = 1 << iota
	WheelInputRightStick
	WheelInputDPad
	WheelInputMouse

	WheelInputDefault = WheelInputLeftStick | WheelInputRightStick | WheelInputDPad
)

// Wheel geometry in axis units.
const (
	WheelDeadzoneSq       = 45000000
	WheelRadius           = 32400
	WheelActivationRadius = WheelRadius / 2
	WheelMouseScale       = 350
)

// Default timing windows.
const (
	DefaultDebounce         = 200 * time.Millisecond // Confirm/cancel ignored after a screen opens
	DefaultRepeatDelay      = 300 * time.Millisecond // Held direction delay before the first repeat
	DefaultRepeatInterval   = 60 * time.Millisecond  // Held direction repeat cadence
	DefaultRepeatStall      = 60 * time.Millisecond  // Lateness that re-anchors the repeat schedule
	DefaultStickyHold       = 500 * time.Millisecond // On-screen key press that latches the key
	DefaultAnyKeyGrace      = 300 * time.Millisecond // Any-key prompt input grace period
	DefaultWheelReleaseHold = 70 * time.Millisecond  // Activation hold after a wheel close request
	DefaultWheelFadeOut     = 250 * time.Millisecond // Wheel fade before it is fully closed
)

// DefaultMenuAlpha is the blend alpha for menu colours that carry none of their own.
const DefaultMenuAlpha uint8 = 0xB0
