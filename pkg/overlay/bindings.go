package overlay

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// MaxBindsPerInput is how many actions one controller input or one wheel
// option can drive at once.
const MaxBindsPerInput = 4

// ErrTooManyBindings is returned when an input or wheel option is already full.
var ErrTooManyBindings = errors.New("too many bindings")

// MapperDevice is the device class a mapper target belongs to.
type MapperDevice uint8

const (
	MapperNone MapperDevice = iota
	MapperKeyboard
	MapperMouse
	MapperJoystick
)

func (d MapperDevice) GetName() string {
	switch d {
	case MapperKeyboard:
		return "Keyboard"
	case MapperMouse:
		return "Mouse"
	case MapperJoystick:
		return "Joystick"
	default:
		return ""
	}
}

type specialMapping struct {
	device MapperDevice
	name   string
	action Action
}

var specialMappings = []specialMapping{
	{MapperNone, "On Screen Keyboard", Action{Event: constants.EventOnScreenKeyboard}},
	{MapperNone, "Action Wheel", Action{Event: constants.EventActionWheel}},
	{MapperMouse, "Move Left", Action{Event: constants.EventJoyMX, Meta: -1}},
	{MapperMouse, "Move Right", Action{Event: constants.EventJoyMX, Meta: 1}},
	{MapperMouse, "Move Up", Action{Event: constants.EventJoyMY, Meta: -1}},
	{MapperMouse, "Move Down", Action{Event: constants.EventJoyMY, Meta: 1}},
	{MapperMouse, "Left Click", Action{Event: constants.EventMouseDown, Meta: 0}},
	{MapperMouse, "Right Click", Action{Event: constants.EventMouseDown, Meta: 1}},
	{MapperMouse, "Middle Click", Action{Event: constants.EventMouseDown, Meta: 2}},
	{MapperMouse, "Speed Up", Action{Event: constants.EventMouseSetSpeed, Meta: 1}},
	{MapperMouse, "Slow Down", Action{Event: constants.EventMouseSetSpeed, Meta: -1}},
	{MapperJoystick, "Up", Action{Event: constants.EventJoy1Y, Meta: -1}},
	{MapperJoystick, "Down", Action{Event: constants.EventJoy1Y, Meta: 1}},
	{MapperJoystick, "Left", Action{Event: constants.EventJoy1X, Meta: -1}},
	{MapperJoystick, "Right", Action{Event: constants.EventJoy1X, Meta: 1}},
	{MapperJoystick, "Button 1", Action{Event: constants.EventJoy1Down, Meta: 0}},
	{MapperJoystick, "Button 2", Action{Event: constants.EventJoy1Down, Meta: 1}},
	{MapperJoystick, "Button 3", Action{Event: constants.EventJoy2Down, Meta: 0}},
	{MapperJoystick, "Button 4", Action{Event: constants.EventJoy2Down, Meta: 1}},
	{MapperJoystick, "Hat Up", Action{Event: constants.EventJoy2Y, Meta: -1}},
	{MapperJoystick, "Hat Down", Action{Event: constants.EventJoy2Y, Meta: 1}},
	{MapperJoystick, "Hat Left", Action{Event: constants.EventJoy2X, Meta: -1}},
	{MapperJoystick, "Hat Right", Action{Event: constants.EventJoy2X, Meta: 1}},
}

// Target is what a mapped input drives: a keyboard key or a special mapping
// such as a mouse click or the action wheel.
type Target int

const (
	TargetNone    Target = 0
	targetSpecial Target = 0x100

	TargetOnScreenKeyboard = targetSpecial
	TargetActionWheel      = targetSpecial + 1
)

// KeyTarget returns the target pressing k.
func KeyTarget(k constants.Key) Target {
	return Target(k)
}

// TargetFor finds the target an action belongs to.
func TargetFor(a Action) Target {
	if a.Event == constants.EventKeyDown {
		return KeyTarget(constants.Key(a.Meta))
	}
	for i, sm := range specialMappings {
		if sm.action == a {
			return targetSpecial + Target(i)
		}
	}
	return TargetNone
}

// Key returns the keyboard key of a key target.
func (t Target) Key() (constants.Key, bool) {
	if t > TargetNone && t < Target(constants.KeyCount) {
		return constants.Key(t), true
	}
	return constants.KeyNone, false
}

func (t Target) special() (specialMapping, bool) {
	i := int(t - targetSpecial)
	if i < 0 || i >= len(specialMappings) {
		return specialMapping{}, false
	}
	return specialMappings[i], true
}

// Device returns the mapper device the target is listed under.
func (t Target) Device() MapperDevice {
	if _, ok := t.Key(); ok {
		return MapperKeyboard
	}
	sm, _ := t.special()
	return sm.device
}

// Name is the target's label, prefixed with its device for mouse and joystick targets.
func (t Target) Name() string {
	if k, ok := t.Key(); ok {
		return k.GetName()
	}
	sm, ok := t.special()
	if !ok {
		return "None"
	}
	switch sm.device {
	case MapperMouse:
		return "Mouse " + sm.name
	case MapperJoystick:
		return "Joy " + sm.name
	}
	return sm.name
}

// ShortName is the target's label without a device prefix.
func (t Target) ShortName() string {
	if sm, ok := t.special(); ok {
		return sm.name
	}
	return t.Name()
}

// Action returns the action the target drives.
func (t Target) Action() Action {
	if k, ok := t.Key(); ok {
		return internal.KeyAction(k)
	}
	sm, _ := t.special()
	return sm.action
}

// DeviceTargets lists the targets the mapper offers for a device.
func DeviceTargets(d MapperDevice) []Target {
	var out []Target
	if d == MapperKeyboard {
		for _, k := range constants.MapperOrder() {
			out = append(out, KeyTarget(k))
		}
		return out
	}
	for i, sm := range specialMappings {
		if sm.device == d && d != MapperNone {
			out = append(out, targetSpecial+Target(i))
		}
	}
	return out
}

// PadInput is one mappable controller input.
type PadInput struct {
	Name  string
	Index uint8
	ID    uint8
	Half  int8
	Stick bool
}

var joypadInputs = []struct {
	id   uint8
	name string
}{
	{constants.JoypadUp, "Up"},
	{constants.JoypadDown, "Down"},
	{constants.JoypadLeft, "Left"},
	{constants.JoypadRight, "Right"},
	{constants.JoypadB, "B (Down)"},
	{constants.JoypadA, "A (Right)"},
	{constants.JoypadY, "Y (Left)"},
	{constants.JoypadX, "X (Up)"},
	{constants.JoypadSelect, "SELECT"},
	{constants.JoypadStart, "START"},
	{constants.JoypadL, "L"},
	{constants.JoypadR, "R"},
	{constants.JoypadL2, "L2"},
	{constants.JoypadR2, "R2"},
	{constants.JoypadL3, "L3"},
	{constants.JoypadR3, "R3"},
}

// PadInputCount is the number of joypad buttons plus analog stick halves.
var PadInputCount = len(joypadInputs) + 8

// PadInputAt returns mappable input n: the joypad buttons in mapper order,
// then up, down, left and right of the left and right sticks.
func PadInputAt(n int) PadInput {
	if n < len(joypadInputs) {
		return PadInput{Name: joypadInputs[n].name, ID: joypadInputs[n].id}
	}
	a := n - len(joypadInputs)
	stick := uint8(a / 4)
	dir := a % 4
	half := int8(-1)
	if dir%2 == 1 {
		half = 1
	}
	id := constants.AnalogY
	if dir >= 2 {
		id = constants.AnalogX
	}
	side := "Left"
	if stick == constants.AnalogRight {
		side = "Right"
	}
	return PadInput{
		Name:  side + " Analog " + joypadInputs[dir].name,
		Index: stick,
		ID:    id,
		Half:  half,
		Stick: true,
	}
}

// Binding returns an unbound Binding reading this input on port.
func (in PadInput) Binding(port uint8) Binding {
	dev := constants.DeviceJoypad
	if in.Stick {
		dev = constants.DeviceAnalog
	}
	return Binding{Port: port, Device: dev, Index: in.Index, ID: in.ID, Half: in.Half}
}

// genericKeys is what FillGeneric binds each unbound pad input to.
var genericKeys = []constants.Key{
	constants.KeyUp, constants.KeyDown, constants.KeyLeft, constants.KeyRight,
	constants.KeySpace, constants.KeyLeftShift, constants.KeyLeftCtrl, constants.KeyLeftAlt,
	constants.KeyEsc, constants.KeyEnter, constants.KeyTab, constants.KeyBackspace,
	constants.KeyPageUp, constants.KeyPageDown, constants.KeyF1, constants.KeyF2,
	constants.KeyW, constants.KeyS, constants.KeyA, constants.KeyD,
	constants.KeyKP8, constants.KeyKP2, constants.KeyKP4, constants.KeyKP6,
}

// Preset is a named set of bindings the mapper can apply to a port.
type Preset struct {
	Name  string
	Binds []Binding
}

// PortMode says how a controller port is driven.
type PortMode uint8

const (
	PortDisabled PortMode = iota
	PortMapper
	PortFixed
)

// WheelItem is one action wheel option: up to four targets activated together.
type WheelItem struct {
	Port    uint8
	Targets []Target
}

// Label is the wheel option's text, the name of its last target.
func (w WheelItem) Label() string {
	if len(w.Targets) == 0 {
		return ""
	}
	return w.Targets[len(w.Targets)-1].Name()
}

const customPreset = -1

// BindingTable holds the game bindings of every port and the action wheel
// options. The mapper edits it; the wheel and the game input pass read it.
type BindingTable struct {
	binds   []Binding
	wheel   []WheelItem
	presets []Preset
	modes   [constants.MaxPorts]PortMode
	preset  [constants.MaxPorts]int
	changed bool
}

// NewBindingTable creates a table with port 0 in mapper mode and the first
// preset, if any, applied to it.
func NewBindingTable(presets []Preset) *BindingTable {
	t := &BindingTable{presets: presets}
	for i := range t.preset {
		t.preset[i] = customPreset
	}
	t.modes[0] = PortMapper
	if len(presets) > 0 {
		t.ApplyPreset(0, 0)
		t.changed = false
	}
	return t
}

// PresetsFromConfig converts the configured presets.
func PresetsFromConfig(cfg Config) ([]Preset, error) {
	out := make([]Preset, 0, len(cfg.Presets))
	for _, pc := range cfg.Presets {
		binds, err := internal.ToBindings(pc.Binds)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", pc.Name, err)
		}
		out = append(out, Preset{Name: pc.Name, Binds: binds})
	}
	return out, nil
}

// Binds returns the live binding slice. Pollers keep edge state in it.
func (t *BindingTable) Binds() []Binding {
	return t.binds
}

// Bind returns binding i.
func (t *BindingTable) Bind(i int) Binding {
	return t.binds[i]
}

// Changed reports whether the table was edited since the last ClearChanged.
func (t *BindingTable) Changed() bool { return t.changed }

// ClearChanged resets the edited flag.
func (t *BindingTable) ClearChanged() { t.changed = false }

// PortMode returns how port is driven.
func (t *BindingTable) PortMode(port uint8) PortMode {
	return t.modes[port]
}

// SetPortMode sets how port is driven.
func (t *BindingTable) SetPortMode(port uint8, m PortMode) {
	t.modes[port] = m
}

// ActivePorts is the number of leading ports that are not disabled, at least one.
func (t *BindingTable) ActivePorts() int {
	n := 1
	for n < constants.MaxPorts && t.modes[n] != PortDisabled {
		n++
	}
	return n
}

// BindsFor returns the indexes of the bindings reading the same input as in.
func (t *BindingTable) BindsFor(in Binding) []int {
	var out []int
	for i, b := range t.binds {
		if b.SameInput(in) {
			out = append(out, i)
		}
	}
	return out
}

// AddBind binds input in to target.
func (t *BindingTable) AddBind(in Binding, target Target) error {
	if len(t.BindsFor(in)) >= MaxBindsPerInput {
		return ErrTooManyBindings
	}
	in.Action = target.Action()
	in.Prime(0)
	t.binds = append(t.binds, in)
	t.edited(in.Port)
	return nil
}

// SetBindTarget points binding i at a new target.
func (t *BindingTable) SetBindTarget(i int, target Target) {
	b := &t.binds[i]
	b.Action = target.Action()
	b.Prime(0)
	t.edited(b.Port)
}

// RemoveBind deletes binding i.
func (t *BindingTable) RemoveBind(i int) {
	port := t.binds[i].Port
	t.binds = append(t.binds[:i], t.binds[i+1:]...)
	t.edited(port)
}

// WheelBound reports whether any input of port opens the action wheel.
func (t *BindingTable) WheelBound(port uint8) bool {
	for _, b := range t.binds {
		if b.Port == port && b.Action.Event == constants.EventActionWheel {
			return true
		}
	}
	return false
}

// WheelItems returns the indexes of the wheel options of port, in order.
func (t *BindingTable) WheelItems(port uint8) []int {
	var out []int
	for i, w := range t.wheel {
		if w.Port == port {
			out = append(out, i)
		}
	}
	return out
}

// WheelItem returns wheel option i.
func (t *BindingTable) WheelItem(i int) WheelItem {
	return t.wheel[i]
}

// AddWheelItem appends a wheel option for port driving target.
func (t *BindingTable) AddWheelItem(port uint8, target Target) int {
	t.wheel = append(t.wheel, WheelItem{Port: port, Targets: []Target{target}})
	t.edited(port)
	return len(t.wheel) - 1
}

// AddWheelTarget adds another target to wheel option i.
func (t *BindingTable) AddWheelTarget(i int, target Target) error {
	w := &t.wheel[i]
	if len(w.Targets) >= MaxBindsPerInput {
		return ErrTooManyBindings
	}
	w.Targets = append(w.Targets, target)
	t.edited(w.Port)
	return nil
}

// SetWheelTarget replaces target slot of wheel option i.
func (t *BindingTable) SetWheelTarget(i, slot int, target Target) {
	w := &t.wheel[i]
	w.Targets[slot] = target
	t.edited(w.Port)
}

// RemoveWheelTarget removes target slot of wheel option i, and the option
// itself with its last target.
func (t *BindingTable) RemoveWheelTarget(i, slot int) {
	w := &t.wheel[i]
	port := w.Port
	w.Targets = append(w.Targets[:slot], w.Targets[slot+1:]...)
	if len(w.Targets) == 0 {
		t.wheel = append(t.wheel[:i], t.wheel[i+1:]...)
	}
	t.edited(port)
}

// ActivateWheel presses (down) or releases every target of wheel option i
// and emits the resulting events.
func (t *BindingTable) ActivateWheel(i int, down bool, emit func(Event)) {
	if i < 0 || i >= len(t.wheel) {
		return
	}
	w := t.wheel[i]
	val, prev := int16(1), int16(0)
	if !down {
		val, prev = 0, 1
	}
	for _, target := range w.Targets {
		b := Binding{Port: w.Port, Device: constants.DeviceJoypad, Action: target.Action()}
		b.Prime(prev)
		if ev, ok := b.Update(val); ok {
			emit(ev)
		}
	}
}

// Presets returns the available presets.
func (t *BindingTable) Presets() []Preset {
	return t.presets
}

// PresetIndex returns the preset applied to port, or -1 once it was edited.
func (t *BindingTable) PresetIndex(port uint8) int {
	return t.preset[port]
}

// PresetName names the preset applied to port.
func (t *BindingTable) PresetName(port uint8) string {
	i := t.preset[port]
	if i < 0 || i >= len(t.presets) {
		return "Custom"
	}
	return t.presets[i].Name
}

// IsCustomized reports whether port's bindings differ from any applied preset.
func (t *BindingTable) IsCustomized(port uint8) bool {
	return t.preset[port] == customPreset
}

// ApplyPreset replaces the bindings of port with preset i.
func (t *BindingTable) ApplyPreset(port uint8, i int) {
	t.clearPort(port)
	if i >= 0 && i < len(t.presets) {
		for _, b := range t.presets[i].Binds {
			b.Port = port
			b.Prime(0)
			t.binds = append(t.binds, b)
		}
	}
	t.preset[port] = i
	t.changed = true
}

// ResetPort applies the default (first) preset to port.
func (t *BindingTable) ResetPort(port uint8) {
	t.ApplyPreset(port, 0)
}

// FillGeneric binds every unbound pad input of port to a generic key.
func (t *BindingTable) FillGeneric(port uint8) {
	for n := 0; n < PadInputCount; n++ {
		in := PadInputAt(n).Binding(port)
		if len(t.BindsFor(in)) == 0 {
			_ = t.AddBind(in, KeyTarget(genericKeys[n]))
		}
	}
}

func (t *BindingTable) clearPort(port uint8) {
	kept := t.binds[:0]
	for _, b := range t.binds {
		if b.Port != port {
			kept = append(kept, b)
		}
	}
	t.binds = kept
}

func (t *BindingTable) edited(port uint8) {
	t.preset[port] = customPreset
	t.changed = true
}
