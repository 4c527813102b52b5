package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// Config holds the tunable timing windows, wheel sources, menu bindings and
// mapper presets. Durations are in milliseconds.
type Config struct {
	DebounceMS       int      `toml:"debounce_ms"`
	RepeatDelayMS    int      `toml:"repeat_delay_ms"`
	RepeatIntervalMS int      `toml:"repeat_interval_ms"`
	RepeatStallMS    int      `toml:"repeat_stall_ms"`
	StickyHoldMS     int      `toml:"sticky_hold_ms"`
	AnyKeyGraceMS    int      `toml:"any_key_grace_ms"`
	MenuTimeS        int      `toml:"menu_time_s"`
	WheelInputs      []string `toml:"wheel_inputs"`
	MouseSpeed       float64  `toml:"mouse_speed"`
	MenuAlpha        int      `toml:"menu_alpha"`
	StrictMode       bool     `toml:"strict_mode"`
	LogLevel         string   `toml:"log_level"`
	Language         string   `toml:"language"`

	Intercept []BindingConfig `toml:"intercept"`
	Presets   []PresetConfig  `toml:"preset"`
}

// BindingConfig is the file form of a Binding. Device and Event are names as
// returned by GetName; Key names a keyboard key and takes precedence over Meta.
type BindingConfig struct {
	Port   int    `toml:"port"`
	Device string `toml:"device"`
	Index  int    `toml:"index"`
	ID     int    `toml:"id"`
	Half   int    `toml:"half"`
	Event  string `toml:"event"`
	Key    string `toml:"key"`
	Meta   int    `toml:"meta"`
}

// PresetConfig names a set of bindings the mapper can apply to a port.
type PresetConfig struct {
	Name  string          `toml:"name"`
	Binds []BindingConfig `toml:"bind"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		DebounceMS:       int(constants.DefaultDebounce / time.Millisecond),
		RepeatDelayMS:    int(constants.DefaultRepeatDelay / time.Millisecond),
		RepeatIntervalMS: int(constants.DefaultRepeatInterval / time.Millisecond),
		RepeatStallMS:    int(constants.DefaultRepeatStall / time.Millisecond),
		StickyHoldMS:     int(constants.DefaultStickyHold / time.Millisecond),
		AnyKeyGraceMS:    int(constants.DefaultAnyKeyGrace / time.Millisecond),
		MenuTimeS:        5,
		WheelInputs:      []string{"left_stick", "right_stick", "dpad"},
		MouseSpeed:       1,
		MenuAlpha:        int(constants.DefaultMenuAlpha),
		LogLevel:         "info",
		Language:         "en",
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML over the defaults and validates the bindings.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := cfg.InterceptBinds(); err != nil {
		return Config{}, err
	}
	for _, p := range cfg.Presets {
		if _, err := ToBindings(p.Binds); err != nil {
			return Config{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return cfg, nil
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (c Config) Debounce() time.Duration       { return ms(c.DebounceMS) }
func (c Config) RepeatDelay() time.Duration    { return ms(c.RepeatDelayMS) }
func (c Config) RepeatInterval() time.Duration { return ms(c.RepeatIntervalMS) }
func (c Config) RepeatStall() time.Duration    { return ms(c.RepeatStallMS) }
func (c Config) StickyHold() time.Duration     { return ms(c.StickyHoldMS) }
func (c Config) AnyKeyGrace() time.Duration    { return ms(c.AnyKeyGraceMS) }
func (c Config) MenuTime() time.Duration       { return time.Duration(c.MenuTimeS) * time.Second }

// NewHeldRepeat builds a held-key timer with the configured cadence.
func (c Config) NewHeldRepeat() HeldRepeat {
	return NewHeldRepeatWithTiming(c.RepeatDelay(), c.RepeatInterval(), c.RepeatStall())
}

// WheelInputMask converts the wheel_inputs names to a mask.
func (c Config) WheelInputMask() constants.WheelInput {
	var mask constants.WheelInput
	for _, name := range c.WheelInputs {
		switch strings.ToLower(name) {
		case "left_stick":
			mask |= constants.WheelInputLeftStick
		case "right_stick":
			mask |= constants.WheelInputRightStick
		case "dpad":
			mask |= constants.WheelInputDPad
		case "mouse":
			mask |= constants.WheelInputMouse
		}
	}
	return mask
}

// InterceptBinds returns the configured menu bindings, or the fixed defaults
// when none are configured.
func (c Config) InterceptBinds() ([]Binding, error) {
	if len(c.Intercept) == 0 {
		return DefaultInterceptBinds(), nil
	}
	binds, err := ToBindings(c.Intercept)
	if err != nil {
		return nil, fmt.Errorf("intercept: %w", err)
	}
	return binds, nil
}

// ToBindings converts file bindings to Bindings.
func ToBindings(cfgs []BindingConfig) ([]Binding, error) {
	binds := make([]Binding, 0, len(cfgs))
	for i, bc := range cfgs {
		b, err := bc.Binding()
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		binds = append(binds, b)
	}
	return binds, nil
}

// Binding converts the file form to a Binding.
func (bc BindingConfig) Binding() (Binding, error) {
	dev, ok := deviceByName(bc.Device)
	if !ok {
		return Binding{}, fmt.Errorf("unknown device %q", bc.Device)
	}
	ev, ok := eventByName(bc.Event)
	if !ok {
		return Binding{}, fmt.Errorf("unknown event %q", bc.Event)
	}
	if bc.Port < 0 || bc.Port >= constants.MaxPorts {
		return Binding{}, fmt.Errorf("port %d out of range", bc.Port)
	}
	if bc.Half < -1 || bc.Half > 1 {
		return Binding{}, fmt.Errorf("half %d must be -1, 0 or 1", bc.Half)
	}

	meta := bc.Meta
	if bc.Key != "" {
		k, ok := constants.KeyByName(bc.Key)
		if !ok {
			return Binding{}, fmt.Errorf("unknown key %q", bc.Key)
		}
		meta = int(k)
	}

	return Binding{
		Port:   uint8(bc.Port),
		Device: dev,
		Index:  uint8(bc.Index),
		ID:     uint8(bc.ID),
		Half:   int8(bc.Half),
		Action: Action{Event: ev, Meta: meta},
	}, nil
}

func deviceByName(name string) (constants.Device, bool) {
	for d := constants.DeviceNone; d <= constants.DevicePointer; d++ {
		if strings.EqualFold(d.GetName(), name) {
			return d, true
		}
	}
	return constants.DeviceNone, false
}

func eventByName(name string) (constants.EventType, bool) {
	for e := constants.EventNone; e <= constants.EventRefreshSystem; e++ {
		if strings.EqualFold(e.GetName(), name) {
			return e, true
		}
	}
	return constants.EventNone, false
}
