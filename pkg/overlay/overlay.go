// Package overlay provides the input-intercepting on-screen display that sits
// on top of an emulated PC: the start menu, the on-screen keyboard, the
// gamepad mapper, the action wheel and the "press any key" prompt.
//
// The overlay is frame driven. Each frame the host calls Session.OnFrameInput
// once and Session.OnFrameDraw once with the frame's canvas. While a screen,
// wheel or prompt is open it owns the input; otherwise game bindings are
// polled and their events dispatched to the machine.
package overlay

import (
	"log/slog"

	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

type (
	Event       = internal.Event
	InputSource = internal.InputSource
	Clock       = internal.Clock
	Binding     = internal.Binding
	Action      = internal.Action
	Config      = internal.Config
	Theme       = internal.Theme
)

// SystemClock reads the wall clock.
type SystemClock = internal.SystemClock

// NewManualClock returns a clock that only moves when advanced.
func NewManualClock() *internal.ManualClock {
	return internal.NewManualClock()
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// DefaultTheme returns the stock overlay palette.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// SetTheme replaces the palette used by sessions created afterwards.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// SetLogPath sets the full path for the log file, including filename.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogLevel sets the level of the application logger.
func SetLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the overlay's own logger.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// CloseLogger flushes and closes the log file.
func CloseLogger() {
	internal.CloseLogger()
}
