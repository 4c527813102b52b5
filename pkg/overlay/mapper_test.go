package overlay

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

func openMapper(t *testing.T, h *harness) *Mapper {
	t.Helper()
	h.s.StartOSD(ModeMapper)
	return handler[*Mapper](t, h.s)
}

// pick selects the first row of kind whose Ref is ref, or any row of kind
// when ref is nil, and confirms it.
func pick(t *testing.T, m *Mapper, kind ItemKind, ref ItemRef) {
	t.Helper()
	for i, it := range m.list.Items {
		if it.Kind == kind && (ref == nil || it.Ref == ref) {
			m.list.ResetSel(i, false)
			m.handle(ResultOK, kind, 0)
			return
		}
	}
	t.Fatalf("no %v row with ref %v on page %d", kind, ref, m.page)
}

func TestMapperAddsBind(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	m := openMapper(t, h)

	pick(t, m, ItemAddBind, InputRef{Pad: 0})
	if m.page != pageDevices || m.list.Selected().Ref != DeviceRef(MapperKeyboard) {
		t.Fatalf("page %d, selected %+v", m.page, m.list.Selected())
	}
	if got := m.list.Items[0].Text; got != "Up" {
		t.Errorf("device page header = %q, want the input name", got)
	}

	m.handle(ResultOK, ItemDevice, 0)
	if m.page != pageKeys || m.stack().Len() != 2 {
		t.Fatalf("page %d, stack depth %d", m.page, m.stack().Len())
	}
	pick(t, m, ItemTarget, TargetRef(KeyTarget(constants.KeyA)))

	binds := h.table.BindsFor(PadInputAt(0).Binding(0))
	if len(binds) != 1 || TargetFor(h.table.Bind(binds[0]).Action) != KeyTarget(constants.KeyA) {
		t.Fatalf("binds for Up = %v", binds)
	}
	if m.page != pageTop || !m.stack().IsEmpty() {
		t.Errorf("page %d, stack depth %d after commit", m.page, m.stack().Len())
	}
	if sel := m.list.Selected(); sel.Kind != ItemBind || sel.Ref != BindRef(binds[0]) {
		t.Errorf("selected %+v, want the new bind", sel)
	}
	if !h.table.Changed() {
		t.Error("table not marked changed")
	}
}

func TestMapperCancelWalksBack(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	m := openMapper(t, h)

	pick(t, m, ItemAddBind, InputRef{Pad: 2})
	topSel := m.mainSel
	pick(t, m, ItemDevice, DeviceRef(MapperMouse))
	if m.page != pageKeys {
		t.Fatalf("page = %d, want keys", m.page)
	}

	m.handle(ResultCancel, ItemNone, 0)
	if m.page != pageDevices || m.list.Selected().Ref != DeviceRef(MapperMouse) {
		t.Fatalf("page %d, selected %+v; want the mouse row", m.page, m.list.Selected())
	}
	if m.edit.mode != editNew || m.edit.input != 2 {
		t.Errorf("edit = %+v", m.edit)
	}

	m.handle(ResultCancel, ItemNone, 0)
	if m.page != pageTop || m.list.Sel() != topSel {
		t.Fatalf("page %d, sel %d; want top at %d", m.page, m.list.Sel(), topSel)
	}

	m.handle(ResultCancel, ItemNone, 0)
	if h.s.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", h.s.Mode())
	}
	if len(h.table.Binds()) != 0 {
		t.Errorf("cancel left binds: %v", h.table.Binds())
	}
}

func countStyle(items []MenuItem, style TextStyle) int {
	n := 0
	for _, it := range items {
		if it.Kind == ItemNone && it.Style == style {
			n++
		}
	}
	return n
}

func TestMapperWheelOption(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	m := openMapper(t, h)
	if n := countStyle(m.list.Items, StyleWarn); n != 0 {
		t.Fatalf("%d warning rows on an empty mapping", n)
	}

	pick(t, m, ItemAddWheel, nil)
	for _, it := range m.list.Items {
		if it.Ref == TargetRef(TargetActionWheel) {
			t.Fatal("wheel option offered the action wheel as a target")
		}
	}
	pick(t, m, ItemTarget, TargetRef(TargetOnScreenKeyboard))

	items := h.table.WheelItems(0)
	if len(items) != 1 || h.table.WheelItem(items[0]).Targets[0] != TargetOnScreenKeyboard {
		t.Fatalf("wheel items = %v", items)
	}
	if n := countStyle(m.list.Items, StyleWarn); n != 2 {
		t.Errorf("%d warning rows with an unreachable wheel, want 2", n)
	}

	pick(t, m, ItemAddBind, InputRef{Pad: 10})
	pick(t, m, ItemTarget, TargetRef(TargetActionWheel))
	if n := countStyle(m.list.Items, StyleWarn); n != 0 {
		t.Errorf("%d warning rows once the wheel is bound", n)
	}
}

func TestMapperEditsExistingBind(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	in := PadInputAt(4).Binding(0)
	if err := h.table.AddBind(in, KeyTarget(constants.KeySpace)); err != nil {
		t.Fatal(err)
	}
	m := openMapper(t, h)

	pick(t, m, ItemBind, BindRef(0))
	if m.list.Selected().Ref != DeviceRef(MapperKeyboard) {
		t.Errorf("selected %+v, want the keyboard row", m.list.Selected())
	}
	pick(t, m, ItemAdditional, nil)
	pick(t, m, ItemDevice, DeviceRef(MapperJoystick))
	pick(t, m, ItemTarget, TargetRef(DeviceTargets(MapperJoystick)[4]))
	if n := len(h.table.BindsFor(in)); n != 2 {
		t.Fatalf("binds = %d, want 2", n)
	}

	pick(t, m, ItemBind, BindRef(0))
	pick(t, m, ItemRemove, nil)
	binds := h.table.BindsFor(in)
	if len(binds) != 1 || TargetFor(h.table.Bind(binds[0]).Action).Device() != MapperJoystick {
		t.Errorf("binds after remove = %v", binds)
	}
}

func TestMapperSwitchesPorts(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	h.table.SetPortMode(1, PortFixed)
	m := openMapper(t, h)

	m.handle(ResultNone, ItemNone, 1)
	if m.Port() != 1 || !m.disabled {
		t.Fatalf("port %d, disabled %v", m.Port(), m.disabled)
	}
	if n := countStyle(m.list.Items, StyleDisabled); n != 4 {
		t.Errorf("%d disabled rows, want 4", n)
	}
	m.handle(ResultNone, ItemNone, 1)
	if m.Port() != 0 || m.disabled {
		t.Errorf("port %d, disabled %v; want back on port 0", m.Port(), m.disabled)
	}
	m.handle(ResultNone, ItemNone, -1)
	if m.Port() != 1 {
		t.Errorf("port = %d, want 1 after wrapping back", m.Port())
	}
}

func TestMapperDisabledPortFullscreen(t *testing.T) {
	h := newHarness(t, &fakeMachine{programs: []string{`C:\GAME.EXE`}})
	h.table.SetPortMode(1, PortFixed)
	h.s.StartMenu(true)
	h.post(keyUp(constants.KeyTab))
	m := handler[*Mapper](t, h.s)

	m.Input(keyDown(constants.KeyRight))
	if m.Port() != 1 {
		t.Fatalf("port = %d, want 1", m.Port())
	}
	m.Input(keyDown(constants.KeyDown))
	h.clock.Advance(250 * time.Millisecond)
	m.Input(keyUp(constants.KeyEsc))
	if h.s.Mode() != ModeMapper {
		t.Errorf("fullscreen mapper closed: mode %v", h.s.Mode())
	}
}

func TestMapperPresets(t *testing.T) {
	presets := []Preset{
		{Name: "Keys", Binds: []Binding{{Device: constants.DeviceJoypad, ID: constants.JoypadB, Action: KeyTarget(constants.KeySpace).Action()}}},
		{Name: "Mouse", Binds: []Binding{{Device: constants.DeviceJoypad, ID: constants.JoypadB, Action: Action{Event: constants.EventMouseDown}}}},
	}
	h := newHarness(t, &fakeMachine{}, presets...)
	m := openMapper(t, h)

	pick(t, m, ItemPreset, nil)
	if m.page != pagePresets || m.list.Selected().Ref != PresetRef(0) {
		t.Fatalf("page %d, selected %+v", m.page, m.list.Selected())
	}
	pick(t, m, ItemPresetChoice, PresetRef(1))
	if h.table.PresetName(0) != "Mouse" || m.page != pageTop {
		t.Fatalf("preset %q, page %d", h.table.PresetName(0), m.page)
	}

	pick(t, m, ItemPreset, nil)
	pick(t, m, ItemFillGeneric, nil)
	if !h.table.IsCustomized(0) {
		t.Fatal("filled port not customized")
	}
	pick(t, m, ItemPreset, nil)
	pick(t, m, ItemResetMapping, nil)
	if h.table.IsCustomized(0) || h.table.PresetName(0) != "Keys" {
		t.Errorf("preset after reset = %q", h.table.PresetName(0))
	}
}
