package router

import (
	"errors"
	"fmt"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenMain Screen = iota
//	    ScreenKeyboard
//	    ScreenMapper
//	)
type Screen int

// ScreenClosed is the screen of a router with nothing active.
const ScreenClosed Screen = -1

// ErrUnknownScreen is returned when switching to a screen that was never registered.
var ErrUnknownScreen = errors.New("router: screen not registered")

// Lifecycle is implemented by every screen handler a router drives.
type Lifecycle interface {
	OnEnter()
	OnExit()
}

// Factory builds a fresh handler for a screen.
type Factory[H Lifecycle] func(input any) H

// TransitionFunc is called after the router moved from one screen to another.
// Either side may be ScreenClosed.
type TransitionFunc func(from, to Screen)

// Router owns the active screen of a frame-driven UI. Switching discards the
// outgoing handler after its OnExit and builds the incoming one through its
// registered factory. Nothing blocks: the host keeps calling into Handler
// every frame.
type Router[H Lifecycle] struct {
	factories  map[Screen]Factory[H]
	order      []Screen
	current    Screen
	handler    H
	transition TransitionFunc
	stack      *Stack
}

// New creates a router with no active screen.
func New[H Lifecycle]() *Router[H] {
	return &Router[H]{
		factories: make(map[Screen]Factory[H]),
		current:   ScreenClosed,
		stack:     NewStack(),
	}
}

// Register adds a screen. Registration order is the order Cycle walks.
func (r *Router[H]) Register(screen Screen, factory Factory[H]) *Router[H] {
	if _, ok := r.factories[screen]; !ok {
		r.order = append(r.order, screen)
	}
	r.factories[screen] = factory
	return r
}

// OnTransition sets the function called after every screen change.
func (r *Router[H]) OnTransition(fn TransitionFunc) *Router[H] {
	r.transition = fn
	return r
}

// Switch exits the active screen and enters a freshly built one.
// Switching to ScreenClosed is the same as Close.
func (r *Router[H]) Switch(screen Screen, input any) error {
	if screen == ScreenClosed {
		r.Close()
		return nil
	}
	factory, ok := r.factories[screen]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownScreen, screen)
	}
	r.enter(screen, func() H { return factory(input) })
	return nil
}

// Enter exits the active screen and makes handler the active one, for
// callers that keep a screen instance alive across switches.
func (r *Router[H]) Enter(screen Screen, handler H) error {
	if _, ok := r.factories[screen]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownScreen, screen)
	}
	r.enter(screen, func() H { return handler })
	return nil
}

func (r *Router[H]) enter(screen Screen, build func() H) {
	from := r.exit()
	r.stack.Clear()
	r.current = screen
	r.handler = build()
	r.handler.OnEnter()
	if r.transition != nil {
		r.transition(from, screen)
	}
}

// Close exits the active screen, leaving the router closed.
func (r *Router[H]) Close() {
	if r.current == ScreenClosed {
		return
	}
	from := r.exit()
	r.stack.Clear()
	if r.transition != nil {
		r.transition(from, ScreenClosed)
	}
}

func (r *Router[H]) exit() Screen {
	from := r.current
	if from != ScreenClosed {
		r.handler.OnExit()
	}
	var zero H
	r.handler = zero
	r.current = ScreenClosed
	return from
}

// Cycle switches step registered screens forward (or backward when step is
// negative) from the active one, wrapping around and passing over every
// screen skip reports true for.
func (r *Router[H]) Cycle(step int, skip func(Screen) bool) error {
	n := len(r.order)
	if n == 0 {
		return ErrUnknownScreen
	}
	idx := 0
	for i, s := range r.order {
		if s == r.current {
			idx = i
		}
	}
	for tries := 0; tries < n; tries++ {
		idx = ((idx+step)%n + n) % n
		if skip == nil || !skip(r.order[idx]) {
			return r.Switch(r.order[idx], nil)
		}
	}
	return fmt.Errorf("%w: every screen skipped", ErrUnknownScreen)
}

// Current returns the active screen, or ScreenClosed.
func (r *Router[H]) Current() Screen {
	return r.current
}

// Active reports whether a screen is active.
func (r *Router[H]) Active() bool {
	return r.current != ScreenClosed
}

// Handler returns the active screen's handler.
func (r *Router[H]) Handler() (H, bool) {
	return r.handler, r.current != ScreenClosed
}

// Stack returns the page stack of the active screen. It is cleared on every
// screen change.
func (r *Router[H]) Stack() *Stack {
	return r.stack
}
