// Package sdlhost opens an SDL window and presents an overlay canvas on it
// once per frame.
package sdlhost

import (
	"fmt"

	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Init starts video, controller and image support.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("failed to initialise SDL: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("Image support unavailable; backgrounds disabled", "error", err)
	}
	return nil
}

// Quit shuts down everything Init started.
func Quit() {
	img.Quit()
	sdl.Quit()
}
