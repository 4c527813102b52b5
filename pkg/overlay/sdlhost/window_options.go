package sdlhost

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects the SDL window flags the host window opens with.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool // Fullscreen at the desktop resolution
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

// DefaultWindowOptions is a resizable window, borderless outside
// development mode.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Resizable: true, Borderless: !constants.IsDevMode()}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32
	for _, f := range []struct {
		on   bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
	} {
		if f.on {
			flags |= f.flag
		}
	}
	return flags
}
