package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

func TestHeldRepeatCadence(t *testing.T) {
	clock := NewManualClock()
	t0 := clock.Now()
	h := NewHeldRepeat()
	h.Register(constants.EventKeyDown, DirectionDown, t0)

	var fired []time.Duration
	for ms := 0; ms <= 500; ms += 10 {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		if d := h.Update(now); d != DirectionNone {
			if d != DirectionDown {
				t.Fatalf("Update() = %v, want down", d)
			}
			fired = append(fired, now.Sub(t0))
		}
	}

	want := []time.Duration{300 * time.Millisecond, 360 * time.Millisecond, 420 * time.Millisecond, 480 * time.Millisecond}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("repeat %d at %v, want %v", i, fired[i], want[i])
		}
	}
}

func TestHeldRepeatStallReanchors(t *testing.T) {
	t0 := time.Unix(1000, 0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	h := NewHeldRepeat()
	h.Register(constants.EventJoy1Y, DirectionUp, t0)

	if d := h.Update(at(300)); d != DirectionUp {
		t.Fatalf("first repeat = %v, want up", d)
	}

	// One long frame: a single repeat, not a burst.
	if d := h.Update(at(600)); d != DirectionUp {
		t.Fatalf("repeat after stall = %v, want up", d)
	}
	if d := h.Update(at(610)); d != DirectionNone {
		t.Fatalf("queued repeat fired at 610ms: %v", d)
	}
	if d := h.Update(at(659)); d != DirectionNone {
		t.Fatalf("repeat fired early at 659ms: %v", d)
	}
	if d := h.Update(at(660)); d != DirectionUp {
		t.Fatalf("repeat at 660ms = %v, want up", d)
	}
}

func TestHeldRepeatRegister(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldRepeat()

	h.Register(constants.EventKeyDown, DirectionDown, t0)
	h.Register(constants.EventKeyDown, DirectionDown, t0.Add(200*time.Millisecond))
	if d := h.Update(t0.Add(300 * time.Millisecond)); d != DirectionDown {
		t.Errorf("re-registering the held direction restarted the timer")
	}

	h.Register(constants.EventKeyDown, DirectionUp, t0.Add(310*time.Millisecond))
	if d := h.Update(t0.Add(400 * time.Millisecond)); d != DirectionNone {
		t.Errorf("new direction fired before its delay: %v", d)
	}
	if d := h.Update(t0.Add(610 * time.Millisecond)); d != DirectionUp {
		t.Errorf("new direction = %v, want up", d)
	}

	h.Cancel()
	if h.Active() {
		t.Error("Active() after Cancel")
	}
	if d := h.Update(t0.Add(2 * time.Second)); d != DirectionNone {
		t.Errorf("cancelled timer fired %v", d)
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		sel, x int
		want   Direction
	}{
		{-1, 0, DirectionUp},
		{1, 0, DirectionDown},
		{-constants.PageStep, 0, DirectionPageUp},
		{constants.PageStep, 0, DirectionPageDown},
		{0, -1, DirectionLeft},
		{0, 1, DirectionRight},
		{constants.HomeEndJump, 0, DirectionNone},
		{0, 0, DirectionNone},
	}
	for _, tt := range tests {
		if got := DirectionFor(tt.sel, tt.x); got != tt.want {
			t.Errorf("DirectionFor(%d, %d) = %v, want %v", tt.sel, tt.x, got, tt.want)
		}
	}
}
