package router

import (
	"errors"
	"testing"
)

type countingHandler struct {
	enters, exits int
}

func (h *countingHandler) OnEnter() { h.enters++ }
func (h *countingHandler) OnExit()  { h.exits++ }

func TestSwitchUnknownScreen(t *testing.T) {
	r := New[*countingHandler]()
	if err := r.Switch(3, nil); !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("Switch() error = %v, want ErrUnknownScreen", err)
	}
	if r.Active() {
		t.Error("router active after failed switch")
	}
}

func TestEnterKeepsInstance(t *testing.T) {
	r := New[*countingHandler]()
	r.Register(0, func(any) *countingHandler { return &countingHandler{} })
	r.Register(1, func(any) *countingHandler { return &countingHandler{} })

	kept := &countingHandler{}
	if err := r.Enter(0, kept); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	r.Stack().Push(0, nil, 5)

	if err := r.Switch(1, nil); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if kept.enters != 1 || kept.exits != 1 {
		t.Errorf("kept handler enters=%d exits=%d, want 1/1", kept.enters, kept.exits)
	}
	if !r.Stack().IsEmpty() {
		t.Error("page stack survived a screen change")
	}

	if err := r.Enter(0, kept); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if h, _ := r.Handler(); h != kept {
		t.Error("Enter did not reuse the given handler")
	}
}

func TestCycleAllSkipped(t *testing.T) {
	r := New[*countingHandler]()
	r.Register(0, func(any) *countingHandler { return &countingHandler{} })
	_ = r.Switch(0, nil)
	if err := r.Cycle(1, func(Screen) bool { return true }); !errors.Is(err, ErrUnknownScreen) {
		t.Errorf("Cycle() error = %v", err)
	}
	if r.Current() != 0 {
		t.Errorf("Current() = %d after failed cycle", r.Current())
	}
}

func TestCloseIdempotent(t *testing.T) {
	r := New[*countingHandler]()
	h := &countingHandler{}
	r.Register(0, func(any) *countingHandler { return h })
	calls := 0
	r.OnTransition(func(from, to Screen) { calls++ })

	_ = r.Switch(0, nil)
	r.Close()
	r.Close()
	if h.exits != 1 || calls != 2 {
		t.Errorf("exits=%d transitions=%d, want 1/2", h.exits, calls)
	}
}
