package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/overlay/pkg/overlay/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenMenu router.Screen = iota
	ScreenKeyboard
	ScreenMapper
)

// Handlers carry whatever per-frame capability the host needs.
type page interface {
	router.Lifecycle
	Name() string
}

type namedPage struct{ name string }

func (p *namedPage) OnEnter()     { fmt.Println("enter", p.name) }
func (p *namedPage) OnExit()      { fmt.Println("exit", p.name) }
func (p *namedPage) Name() string { return p.name }

func newRouter() *router.Router[page] {
	r := router.New[page]()
	r.Register(ScreenMenu, func(any) page { return &namedPage{name: "menu"} })
	r.Register(ScreenKeyboard, func(any) page { return &namedPage{name: "keyboard"} })
	r.Register(ScreenMapper, func(any) page { return &namedPage{name: "mapper"} })
	return r
}

// Example demonstrates switching screens and closing the router.
func Example() {
	r := newRouter()
	r.OnTransition(func(from, to router.Screen) {
		fmt.Printf("transition %d -> %d\n", from, to)
	})

	_ = r.Switch(ScreenMenu, nil)
	if h, ok := r.Handler(); ok {
		fmt.Println("active:", h.Name())
	}
	_ = r.Switch(ScreenMapper, nil)
	r.Close()
	fmt.Println("active after close:", r.Active())

	// Output:
	// enter menu
	// transition -1 -> 0
	// active: menu
	// exit menu
	// enter mapper
	// transition 0 -> 2
	// exit mapper
	// transition 2 -> -1
	// active after close: false
}

// Example_cycle demonstrates tab-style cycling that passes over a screen.
func Example_cycle() {
	r := newRouter()
	fullscreen := true
	skipKeyboard := func(s router.Screen) bool { return fullscreen && s == ScreenKeyboard }

	_ = r.Switch(ScreenMenu, nil)
	_ = r.Cycle(1, skipKeyboard)
	_ = r.Cycle(1, skipKeyboard)
	_ = r.Cycle(-1, nil)

	// Output:
	// enter menu
	// exit menu
	// enter mapper
	// exit mapper
	// enter menu
	// exit menu
	// enter mapper
}

// Example_pageStack demonstrates walking back through sub-pages of one screen.
func Example_pageStack() {
	const (
		pageTop router.Screen = iota
		pageDevices
		pageKeys
	)

	stack := router.NewStack()
	stack.Push(pageTop, nil, 7)
	stack.Push(pageDevices, nil, 4)

	for !stack.IsEmpty() {
		entry := stack.Pop()
		fmt.Printf("back to page %d at row %d\n", entry.Screen, entry.Resume.(int))
	}

	// Output:
	// back to page 1 at row 4
	// back to page 0 at row 7
}
