package overlay

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

func ExampleSectorCenter() {
	for i := 0; i < 6; i++ {
		fmt.Print(int(math.Round(SectorCenter(6, i)*180/math.Pi)), " ")
	}
	fmt.Println()
	// Output: -180 -120 -60 0 60 120
}

func TestSectorAt(t *testing.T) {
	tests := []struct {
		n     int
		angle float64
		want  int
	}{
		{6, 0, 3},
		{6, math.Pi, 0},
		{6, -math.Pi, 0},
		{6, math.Pi / 2, 4},
		{4, 0, 2},
		{1, 2, 0},
		{0, 0, -1},
	}
	for _, tt := range tests {
		if got := SectorAt(tt.n, tt.angle); got != tt.want {
			t.Errorf("SectorAt(%d, %v) = %d, want %d", tt.n, tt.angle, got, tt.want)
		}
	}
}

type wheelFixture struct {
	ws     *WheelSet
	table  *BindingTable
	src    fakeSource
	clock  interface{ Advance(time.Duration) }
	events []Event
}

func newWheelFixture(t *testing.T, keys ...constants.Key) *wheelFixture {
	t.Helper()
	table := NewBindingTable(nil)
	for _, k := range keys {
		table.AddWheelItem(0, KeyTarget(k))
	}
	clock := NewManualClock()
	f := &wheelFixture{table: table, src: fakeSource{}, clock: clock}
	f.ws = NewWheelSet(table, clock, DefaultConfig(), func(ev Event) {
		f.events = append(f.events, ev)
	})
	return f
}

func TestWheelSteersAndActivates(t *testing.T) {
	f := newWheelFixture(t, constants.KeyA, constants.KeyB, constants.KeyC, constants.KeyD)
	w := f.ws.Wheel(0)

	f.ws.Open(0)
	f.src.stick(constants.AnalogLeft, constants.AnalogX, constants.AxisMax)
	f.ws.Update(0, f.src)
	if w.State() != WheelOpen {
		t.Fatalf("state = %s, want open", w.State())
	}
	if x, y := w.Pos(); x != constants.AxisMax || y != 0 {
		t.Errorf("pos = %d,%d", x, y)
	}
	if w.Result() != 2 {
		t.Fatalf("result = %d, want 2", w.Result())
	}

	f.src.joy(constants.JoypadB, 1)
	f.ws.Update(0, f.src)
	if w.State() != WheelOpenPressed {
		t.Fatalf("state = %s, want open_pressed", w.State())
	}
	f.ws.CloseAll()

	want := []Event{
		{Type: constants.EventKeyDown, Value: int(constants.KeyC)},
		{Type: constants.EventKeyUp, Value: int(constants.KeyC)},
	}
	if fmt.Sprint(f.events) != fmt.Sprint(want) {
		t.Errorf("events = %v, want %v", f.events, want)
	}
	if f.ws.Active() {
		t.Error("wheel still active after CloseAll")
	}
}

func TestWheelKeepsResultInsideActivationRadius(t *testing.T) {
	f := newWheelFixture(t, constants.KeyA, constants.KeyB)
	w := f.ws.Wheel(0)
	f.ws.Open(0)
	f.ws.Update(0, f.src)
	if w.Result() != -1 {
		t.Errorf("centred wheel result = %d, want -1", w.Result())
	}
}

func TestWheelClosingTimers(t *testing.T) {
	f := newWheelFixture(t, constants.KeyA)
	w := f.ws.Wheel(0)
	f.ws.ActionWheelInput(0, true)
	f.ws.Update(0, f.src)
	f.ws.ActionWheelInput(0, false)
	if w.State() != WheelClosingPressed {
		t.Fatalf("state = %s, want closing_pressed", w.State())
	}

	f.clock.Advance(constants.DefaultWheelReleaseHold + time.Millisecond)
	f.ws.Update(0, f.src)
	if w.State() != WheelClosingReleased {
		t.Fatalf("state = %s, want closing_released", w.State())
	}

	f.clock.Advance(constants.DefaultWheelFadeOut)
	f.ws.Update(0, f.src)
	if w.State() != WheelClosed {
		t.Errorf("state = %s, want closed", w.State())
	}
}

func TestWheelFilter(t *testing.T) {
	f := newWheelFixture(t, constants.KeyA)
	b := Binding{Device: constants.DeviceJoypad, ID: constants.JoypadB, Action: KeyTarget(constants.KeySpace).Action()}
	wheelBind := Binding{Device: constants.DeviceJoypad, ID: constants.JoypadL, Action: TargetActionWheel.Action()}
	stick := Binding{Device: constants.DeviceAnalog, Index: constants.AnalogRight, ID: constants.AnalogX, Action: Action{Event: constants.EventJoy1X}}

	if v := f.ws.Filter(&b, 1); v != 1 {
		t.Fatalf("closed wheel filtered a button to %d", v)
	}

	f.ws.Open(0)
	f.ws.Update(0, f.src)
	if v := f.ws.Filter(&b, 1); v != 0 {
		t.Errorf("open wheel passed the select button: %d", v)
	}
	if v := f.ws.Filter(&wheelBind, 1); v != 1 {
		t.Errorf("open wheel blocked its own button: %d", v)
	}
	if v := f.ws.Filter(&stick, 1000); v != 0 {
		t.Errorf("open wheel passed a steering stick: %d", v)
	}
}

func TestWheelMouseSteering(t *testing.T) {
	table := NewBindingTable(nil)
	table.AddWheelItem(0, KeyTarget(constants.KeyA))
	table.AddWheelItem(0, KeyTarget(constants.KeyB))
	cfg := DefaultConfig()
	cfg.WheelInputs = []string{"mouse"}
	src := fakeSource{}
	ws := NewWheelSet(table, NewManualClock(), cfg, func(Event) {})
	w := ws.Wheel(0)

	ws.Open(0)
	src[inputKey{0, constants.DeviceMouse, 0, constants.MouseX}] = 50
	ws.Update(0, src)
	if !w.UsingPointer() {
		t.Fatal("mouse motion did not take over the wheel")
	}
	if x, _ := w.Pos(); x <= 0 {
		t.Errorf("x = %d, want right of centre", x)
	}

	src[inputKey{0, constants.DeviceMouse, 0, constants.MouseLeft}] = 1
	ws.Update(0, src)
	if w.State() != WheelOpenPressed {
		t.Errorf("state after click = %s, want open_pressed", w.State())
	}
}

func TestWheelStartAngle(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{2, -math.Pi},
		{3, -math.Pi},
		{4, -3.0},
		{6, -math.Pi},
		{8, -3.0},
		{10, -3.0},
	}
	for _, tt := range tests {
		if got := SectorCenter(tt.n, 0); got != tt.want {
			t.Errorf("SectorCenter(%d, 0) = %v, want %v", tt.n, got, tt.want)
		}
	}
	// Only a start of -3.0 puts -0.72 into the second of four sectors.
	if got := SectorAt(4, -0.72); got != 1 {
		t.Errorf("SectorAt(4, -0.72) = %d, want 1", got)
	}
}

type stickFrame struct {
	lx, ly, rx, ry int16
	up             bool
}

func TestWheelSteeringSources(t *testing.T) {
	tests := []struct {
		name   string
		frames []stickFrame
		x, y   int
	}{
		{"swing to an equal stick", []stickFrame{{lx: 32767}, {ly: 32767}}, 0, 32767},
		{"weaker stick smooths", []stickFrame{{lx: 30000}, {lx: 12000}}, 27000, 0},
		{"deadzone decays", []stickFrame{{lx: 30000}, {lx: 6000}}, 25000, 0},
		{"deadzone alone", []stickFrame{{lx: 6000, ly: 2000}}, 0, 0},
		{"right stick beats weaker left", []stickFrame{{lx: 20000, ry: -30000}}, 0, -30000},
		{"stronger left beats right", []stickFrame{{lx: -30000, ry: 20000}}, -30000, 0},
		{"d-pad beats weaker stick", []stickFrame{{lx: 20000, up: true}}, 0, -32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWheelFixture(t, constants.KeyA, constants.KeyB, constants.KeyC, constants.KeyD)
			f.ws.Open(0)
			for _, fr := range tt.frames {
				f.src.stick(constants.AnalogLeft, constants.AnalogX, fr.lx)
				f.src.stick(constants.AnalogLeft, constants.AnalogY, fr.ly)
				f.src.stick(constants.AnalogRight, constants.AnalogX, fr.rx)
				f.src.stick(constants.AnalogRight, constants.AnalogY, fr.ry)
				var up int16
				if fr.up {
					up = 1
				}
				f.src.joy(constants.JoypadUp, up)
				f.ws.Update(0, f.src)
			}
			if x, y := f.ws.Wheel(0).Pos(); x != tt.x || y != tt.y {
				t.Errorf("pos = %d,%d, want %d,%d", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestWheelResultFollowsItemChanges(t *testing.T) {
	f := newWheelFixture(t, constants.KeyA, constants.KeyB, constants.KeyC, constants.KeyD)
	w := f.ws.Wheel(0)
	f.ws.Open(0)
	f.src.stick(constants.AnalogLeft, constants.AnalogY, constants.AxisMax)
	f.ws.Update(0, f.src)
	if w.Result() != 3 {
		t.Fatalf("result = %d, want 3", w.Result())
	}

	f.table.RemoveWheelTarget(0, 0)
	f.ws.Update(0, f.src)
	if w.Result() != 2 {
		t.Fatalf("result after removal = %d, want 2", w.Result())
	}
	if got := f.table.WheelItem(w.Result()).Targets[0]; got != KeyTarget(constants.KeyD) {
		t.Errorf("result target = %v, want KeyD", got)
	}

	for len(f.table.WheelItems(0)) > 0 {
		f.table.RemoveWheelTarget(0, 0)
	}
	f.ws.Update(0, f.src)
	if w.Result() != -1 {
		t.Errorf("result on an empty wheel = %d, want -1", w.Result())
	}
}
