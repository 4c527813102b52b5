package internal

import (
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// Direction is a repeatable navigation step.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionPageUp
	DirectionPageDown
)

// DirectionFor maps a selection delta and x-change to the direction that repeats them.
// Home/end jumps and combined deltas do not repeat.
func DirectionFor(selChange, xChange int) Direction {
	switch {
	case selChange == -1:
		return DirectionUp
	case selChange == 1:
		return DirectionDown
	case selChange == -constants.PageStep:
		return DirectionPageUp
	case selChange == constants.PageStep:
		return DirectionPageDown
	case xChange == -1:
		return DirectionLeft
	case xChange == 1:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Key returns the navigation key a repeat of this direction re-issues.
func (d Direction) Key() constants.Key {
	switch d {
	case DirectionUp:
		return constants.KeyUp
	case DirectionDown:
		return constants.KeyDown
	case DirectionLeft:
		return constants.KeyLeft
	case DirectionRight:
		return constants.KeyRight
	case DirectionPageUp:
		return constants.KeyPageUp
	case DirectionPageDown:
		return constants.KeyPageDown
	default:
		return constants.KeyNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionPageUp:
		return "pageup"
	case DirectionPageDown:
		return "pagedown"
	default:
		return ""
	}
}

// HeldRepeat re-issues a held navigation direction while the input that
// registered it stays active. The first repeat fires after the delay, later
// ones every interval. A repeat that fires later than the stall window
// re-anchors the schedule at that moment, so a long frame yields one repeat
// instead of a burst.
type HeldRepeat struct {
	source    constants.EventType
	direction Direction
	nextFire  time.Time
	delay     time.Duration
	interval  time.Duration
	stall     time.Duration
}

// NewHeldRepeat creates a HeldRepeat with the default 300ms delay and 60ms cadence.
func NewHeldRepeat() HeldRepeat {
	return NewHeldRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, constants.DefaultRepeatStall)
}

// NewHeldRepeatWithTiming creates a HeldRepeat with custom timing.
func NewHeldRepeatWithTiming(delay, interval, stall time.Duration) HeldRepeat {
	return HeldRepeat{
		delay:    delay,
		interval: interval,
		stall:    stall,
	}
}

// Register starts the timer for a direction produced by source. Registering
// the direction that is already held from the same source keeps the schedule.
func (h *HeldRepeat) Register(source constants.EventType, d Direction, now time.Time) {
	if d == DirectionNone {
		h.Cancel()
		return
	}
	if h.direction == d && h.source == source {
		return
	}
	h.source = source
	h.direction = d
	h.nextFire = now.Add(h.delay)
}

// Cancel stops repeating.
func (h *HeldRepeat) Cancel() {
	h.direction = DirectionNone
	h.source = constants.EventNone
}

// Active reports whether a direction is held.
func (h *HeldRepeat) Active() bool {
	return h.direction != DirectionNone
}

// Source returns the event type that registered the held direction.
func (h *HeldRepeat) Source() constants.EventType {
	return h.source
}

// Held returns the held direction.
func (h *HeldRepeat) Held() Direction {
	return h.direction
}

// Update checks if a repeat should fire at now. Call it once per frame.
func (h *HeldRepeat) Update(now time.Time) Direction {
	if h.direction == DirectionNone || now.Before(h.nextFire) {
		return DirectionNone
	}

	if now.Sub(h.nextFire) > h.stall {
		h.nextFire = now.Add(h.interval)
	} else {
		h.nextFire = h.nextFire.Add(h.interval)
	}

	return h.direction
}
