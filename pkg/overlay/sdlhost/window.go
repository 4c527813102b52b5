package sdlhost

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const (
	devWidth  = 1024
	devHeight = 768
)

// Window is an SDL window with a streaming texture the frame's canvas is
// copied into.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	frame           *sdl.Texture
	frameW, frameH  int32
	blend           sdl.BlendMode
	hasVSync        bool
	lastPresentTime uint64
	quit            atomic.Bool
}

// New opens a window the size of the current display mode. In development
// mode it is a 1024x768 window unless WINDOW_WIDTH and WINDOW_HEIGHT say
// otherwise.
func New(title string, opts WindowOptions) (*Window, error) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode!", "error", err)
		mode.W, mode.H = devWidth, devHeight
	}
	return newWithSize(title, mode.W, mode.H, opts)
}

func newWithSize(title string, width, height int32, opts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, devWidth)
		height = envSize(constants.WindowHeightEnvVar, devHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	// Canvas pixels are premultiplied.
	blend := sdl.ComposeCustomBlendMode(
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
		sdl.BLENDFACTOR_ONE, sdl.BLENDFACTOR_ONE_MINUS_SRC_ALPHA, sdl.BLENDOPERATION_ADD,
	)

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		blend:    blend,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, def int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return def
	}
	return int32(n)
}

// LoadBackground shows the image at path behind the canvas. An empty path
// removes the background.
func (w *Window) LoadBackground(path string) error {
	if w.Background != nil {
		w.Background.Destroy()
		w.Background = nil
	}
	if path == "" {
		return nil
	}
	bg, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		return fmt.Errorf("failed to load background %s: %w", path, err)
	}
	w.Background = bg
	return nil
}

// Size returns the drawable size of the window.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// HandleEvent records quit requests. It reports whether the event was consumed.
func (w *Window) HandleEvent(ev sdl.Event) bool {
	if _, ok := ev.(*sdl.QuitEvent); ok {
		w.RequestQuit()
		return true
	}
	return false
}

// RequestQuit asks the frame loop to stop. It is safe from any goroutine.
func (w *Window) RequestQuit() {
	w.quit.Store(true)
}

// ShouldQuit reports whether a quit was requested.
func (w *Window) ShouldQuit() bool {
	return w.quit.Load()
}

// Present copies frame into the window over the background, stretched to
// the window, and enforces ~60fps frame timing when VSync is not available.
func (w *Window) Present(frame *image.RGBA) error {
	if err := w.upload(frame); err != nil {
		return err
	}

	w.Renderer.SetDrawColor(0, 0, 0, 0xFF)
	w.Renderer.Clear()
	if w.Background != nil {
		w.Renderer.Copy(w.Background, nil, nil)
	}
	if err := w.Renderer.Copy(w.frame, nil, nil); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	w.Renderer.Present()

	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
	return nil
}

// upload copies frame into the streaming texture, recreating the texture
// when the frame size changed.
func (w *Window) upload(frame *image.RGBA) error {
	fw, fh := int32(frame.Rect.Dx()), int32(frame.Rect.Dy())
	if w.frame == nil || fw != w.frameW || fh != w.frameH {
		if w.frame != nil {
			w.frame.Destroy()
		}
		tex, err := w.Renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING, fw, fh)
		if err != nil {
			w.frame = nil
			return fmt.Errorf("failed to create frame texture: %w", err)
		}
		tex.SetBlendMode(w.blend)
		w.frame, w.frameW, w.frameH = tex, fw, fh
	}

	pixels, pitch, err := w.frame.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock frame texture: %w", err)
	}
	defer w.frame.Unlock()

	row := int(fw) * 4
	for y := 0; y < int(fh); y++ {
		src := frame.Pix[frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y+y):]
		copy(pixels[y*pitch:y*pitch+row], src[:row])
	}
	return nil
}

// Close destroys the window and everything drawn on it.
func (w *Window) Close() {
	if w.frame != nil {
		w.frame.Destroy()
	}
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
