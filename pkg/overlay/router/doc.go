// Package router provides frame-driven screen dispatch.
//
// A Router holds at most one active screen. Screens are registered with a
// factory; switching calls OnExit on the outgoing handler, builds the
// incoming handler and calls its OnEnter. The host loop then reaches the
// active handler through Handler every frame. Nothing in the router blocks
// or runs screens to completion.
//
// # Basic Usage
//
//	const (
//	    ScreenMain router.Screen = iota
//	    ScreenKeyboard
//	    ScreenMapper
//	)
//
//	r := router.New[ScreenHandler]()
//	r.Register(ScreenMain, func(any) ScreenHandler { return newMainMenu() })
//	r.Register(ScreenKeyboard, func(any) ScreenHandler { return newKeyboard() })
//	r.Register(ScreenMapper, func(any) ScreenHandler { return newMapper() })
//
//	r.OnTransition(func(from, to router.Screen) {
//	    releaseKeys()
//	})
//
//	_ = r.Switch(ScreenMain, nil)
//
//	// each frame
//	if h, ok := r.Handler(); ok {
//	    h.HandleInput(ev)
//	}
//
//	// tab cycles forward, skipping the keyboard in fullscreen
//	_ = r.Cycle(1, func(s router.Screen) bool { return fullscreen && s == ScreenKeyboard })
//
// # Page Stack
//
// Screens with sub-pages push the page they leave onto Stack together with
// the selection to restore, and pop it when the user walks back. The stack
// is cleared whenever the active screen changes.
package router
