package overlay

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// hover opens the keyboard docked at the bottom of a 640x480 frame and
// moves the pointer onto key.
func hover(t *testing.T, h *harness, key constants.Key) *Keyboard {
	t.Helper()
	if h.s.Mode() != ModeKeyboard {
		h.s.StartOSD(ModeKeyboard)
	}
	place := internal.PlaceOSK(640, 480, 640.0/480.0, 400)
	for _, slot := range internal.OSKLayout() {
		if slot.Key != key {
			continue
		}
		r := place.Rect(slot)
		p := h.s.osd.pointer
		p.Update(640, 480, true)
		p.X, p.Y = float64((r.Min.X+r.Max.X)/2), float64((r.Min.Y+r.Max.Y)/2)
		h.frame(16 * time.Millisecond)
		return handler[*Keyboard](t, h.s)
	}
	t.Fatalf("%s is not on the keyboard", key.GetName())
	return nil
}

func press(h *harness)   { h.post(Event{Type: constants.EventJoy1Down, Value: 0}) }
func release(h *harness) { h.post(Event{Type: constants.EventJoy1Up, Value: 0}) }

func TestKeyboardTapsKey(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	k := hover(t, h, constants.KeyA)
	press(h)
	release(h)

	want := []Event{keyDown(constants.KeyA), keyUp(constants.KeyA)}
	if len(mc.events) != 2 || mc.events[0] != want[0] || mc.events[1] != want[1] {
		t.Fatalf("events = %v, want %v", mc.events, want)
	}
	if k.Held(constants.KeyA) {
		t.Error("tapped key latched")
	}
}

func TestKeyboardModifierToggles(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	k := hover(t, h, constants.KeyLeftShift)

	press(h)
	release(h)
	if !k.Held(constants.KeyLeftShift) {
		t.Fatal("modifier not latched")
	}
	press(h)
	release(h)
	if k.Held(constants.KeyLeftShift) {
		t.Fatal("modifier still latched after a second press")
	}

	want := []Event{keyDown(constants.KeyLeftShift), keyUp(constants.KeyLeftShift)}
	if len(mc.events) != 2 || mc.events[0] != want[0] || mc.events[1] != want[1] {
		t.Errorf("events = %v, want %v", mc.events, want)
	}
}

func TestKeyboardStickyHold(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	k := hover(t, h, constants.KeyA)

	press(h)
	h.frame(constants.DefaultStickyHold + 100*time.Millisecond)
	release(h)
	if !k.Held(constants.KeyA) {
		t.Fatal("long press did not latch the key")
	}
	if len(mc.events) != 1 || mc.events[0] != keyDown(constants.KeyA) {
		t.Errorf("events = %v, want only the key down", mc.events)
	}

	press(h)
	release(h)
	if k.Held(constants.KeyA) || len(mc.events) != 2 || mc.events[1] != keyUp(constants.KeyA) {
		t.Errorf("held = %v, events = %v", k.Held(constants.KeyA), mc.events)
	}
}

func TestKeyboardMapperKey(t *testing.T) {
	mc := &fakeMachine{}
	h := newHarness(t, mc)
	hover(t, h, internal.KeyMapper)
	press(h)
	if h.s.Mode() != ModeKeyboard {
		t.Fatalf("mode = %v before release", h.s.Mode())
	}
	release(h)
	if h.s.Mode() != ModeMapper {
		t.Errorf("mode = %v, want mapper", h.s.Mode())
	}
	if len(mc.events) != 0 {
		t.Errorf("mapper key reached the machine: %v", mc.events)
	}
}

func TestKeyboardEscCloses(t *testing.T) {
	h := newHarness(t, &fakeMachine{})
	hover(t, h, constants.KeyLeftShift)
	press(h)
	release(h)
	h.post(keyUp(constants.KeyEsc))
	if h.s.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", h.s.Mode())
	}
}
