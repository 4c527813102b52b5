package internal

import (
	"testing"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

type inputKey struct {
	port   uint8
	device constants.Device
	index  uint8
	id     uint8
}

type fakeSource map[inputKey]int16

func (f fakeSource) Poll(port uint8, device constants.Device, index, id uint8) int16 {
	return f[inputKey{port, device, index, id}]
}

func (f fakeSource) joy(id uint8, v int16) {
	f[inputKey{0, constants.DeviceJoypad, 0, id}] = v
}

func TestBindingUpdateEdges(t *testing.T) {
	b := Binding{Device: constants.DeviceJoypad, ID: constants.JoypadStart, Action: KeyAction(constants.KeyEnter)}

	if _, ok := b.Update(0); ok {
		t.Fatal("unchanged value produced an event")
	}
	ev, ok := b.Update(1)
	if !ok || ev.Type != constants.EventKeyDown || ev.Key() != constants.KeyEnter {
		t.Fatalf("press = %v, %v", ev, ok)
	}
	if _, ok := b.Update(2); ok {
		t.Fatal("magnitude change while pressed produced an event")
	}
	ev, ok = b.Update(0)
	if !ok || ev.Type != constants.EventKeyUp || ev.Key() != constants.KeyEnter {
		t.Fatalf("release = %v, %v", ev, ok)
	}
}

func TestBindingAxisAndHalf(t *testing.T) {
	src := fakeSource{}
	axis := Binding{Device: constants.DeviceAnalog, ID: constants.AnalogX, Action: Action{Event: constants.EventJoy1X}}
	src[inputKey{0, constants.DeviceAnalog, 0, constants.AnalogX}] = -20000

	ev, ok := axis.Update(axis.Read(src))
	if !ok || ev.Type != constants.EventJoy1X || ev.Value != -20000 {
		t.Fatalf("axis event = %v, %v", ev, ok)
	}

	right := Binding{Device: constants.DeviceAnalog, ID: constants.AnalogX, Half: 1, Action: KeyAction(constants.KeyRight)}
	left := Binding{Device: constants.DeviceAnalog, ID: constants.AnalogX, Half: -1, Action: KeyAction(constants.KeyLeft)}
	if v := right.Read(src); v != 0 {
		t.Errorf("positive half of -20000 = %d, want 0", v)
	}
	if v := left.Read(src); v != 1 {
		t.Errorf("negative half of -20000 = %d, want 1", v)
	}

	src[inputKey{0, constants.DeviceAnalog, 0, constants.AnalogX}] = -constants.AxisThreshold
	if v := left.Read(src); v != 0 {
		t.Errorf("negative half at threshold = %d, want 0", v)
	}
}

func TestBindingWithoutReleaseEvent(t *testing.T) {
	b := Binding{Device: constants.DeviceJoypad, ID: constants.JoypadL3, Action: Action{Event: constants.EventActionWheel}}
	ev, ok := b.Update(1)
	if !ok || ev.Type != constants.EventActionWheel || ev.Value != 1 {
		t.Fatalf("press = %v, %v", ev, ok)
	}
	ev, ok = b.Update(0)
	if !ok || ev.Type != constants.EventActionWheel || ev.Value != 0 {
		t.Fatalf("release = %v, %v", ev, ok)
	}
}

func TestProcessorPrimesFirstPoll(t *testing.T) {
	src := fakeSource{}
	src.joy(constants.JoypadStart, 1)

	p := NewProcessor(src, DefaultInterceptBinds())
	var got []Event
	emit := func(ev Event) { got = append(got, ev) }

	if !p.Poll(emit) {
		t.Error("first Poll did not report priming")
	}
	if len(got) != 0 {
		t.Fatalf("priming poll emitted %v", got)
	}

	src.joy(constants.JoypadStart, 0)
	src.joy(constants.JoypadDown, 1)
	if p.Poll(emit) {
		t.Error("second Poll reported priming")
	}

	want := []Event{
		{Type: constants.EventKeyDown, Value: int(constants.KeyDown)},
		{Type: constants.EventKeyUp, Value: int(constants.KeyEnter)},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	got = nil
	p.Reset()
	src.joy(constants.JoypadDown, 0)
	p.Poll(emit)
	if len(got) != 0 {
		t.Errorf("poll after Reset emitted %v", got)
	}
}

func TestProcessorPointerMove(t *testing.T) {
	src := fakeSource{}
	p := NewProcessor(src, nil)
	var got []Event
	emit := func(ev Event) { got = append(got, ev) }

	p.Poll(emit)
	src[inputKey{0, constants.DevicePointer, 0, constants.PointerX}] = 100
	src[inputKey{0, constants.DevicePointer, 0, constants.PointerY}] = -200
	p.Poll(emit)
	p.Poll(emit)

	if len(got) != 1 {
		t.Fatalf("events = %v, want one MouseMove", got)
	}
	if got[0].Type != constants.EventMouseMove || got[0].Value != 100 || got[0].Value2 != -200 {
		t.Errorf("move = %v", got[0])
	}
}

func TestPollBindsFilter(t *testing.T) {
	src := fakeSource{}
	binds := []Binding{{Device: constants.DeviceJoypad, ID: constants.JoypadB, Action: KeyAction(constants.KeySpace)}}
	PrimeBinds(src, binds)

	src.joy(constants.JoypadB, 1)
	zero := func(*Binding, int16) int16 { return 0 }
	n := 0
	PollBinds(src, binds, zero, func(*Binding, Event) { n++ })
	if n != 0 {
		t.Fatalf("filtered input emitted %d events", n)
	}
	PollBinds(src, binds, nil, func(*Binding, Event) { n++ })
	if n != 1 {
		t.Fatalf("unfiltered input emitted %d events, want 1", n)
	}
}

func TestBindingDigitalAxis(t *testing.T) {
	b := Binding{Device: constants.DeviceJoypad, ID: constants.JoypadLeft, Action: Action{Event: constants.EventJoyMX, Meta: -1}}
	ev, ok := b.Update(1)
	if !ok || ev.Type != constants.EventJoyMX || ev.Value != -constants.AxisMax {
		t.Fatalf("press = %v, %v", ev, ok)
	}
	ev, ok = b.Update(0)
	if !ok || ev.Value != 0 {
		t.Fatalf("release = %v, %v", ev, ok)
	}
}
