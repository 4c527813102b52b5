// Command overlay-demo runs the overlay in an SDL window on top of a
// stand-in machine. F12 opens and closes the on-screen display.
//
// OVERLAY_CONFIG names the TOML config (default overlay.toml),
// OVERLAY_INPUT picks the "sdl" or "evdev" input source and
// OVERLAY_LOG_LEVEL overrides the configured log level.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BrandonKowalski/overlay/pkg/overlay"
	"github.com/BrandonKowalski/overlay/pkg/overlay/canvas"
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/i18n"
	"github.com/BrandonKowalski/overlay/pkg/overlay/sdlhost"
	"github.com/BrandonKowalski/overlay/pkg/overlay/source/evdevinput"
	"github.com/BrandonKowalski/overlay/pkg/overlay/source/sdlinput"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultConfigPath = "overlay.toml"

// frameSource is an input source that latches per-frame state before the
// overlay polls it.
type frameSource interface {
	overlay.InputSource
	Frame()
}

func main() {
	os.Exit(run())
}

func run() int {
	background := flag.String("background", "", "image shown behind the machine screen")
	logPath := flag.String("log", "", "log file path")
	messages := flag.String("messages", "", "comma-separated message files replacing the built-in translations")
	flag.Parse()

	if *logPath != "" {
		overlay.SetLogPath(*logPath)
	}
	if constants.IsDevMode() {
		overlay.SetInternalLogLevel(slog.LevelDebug)
	} else {
		overlay.SetInternalLogLevel(slog.LevelError)
	}
	defer overlay.CloseLogger()
	logger := overlay.GetLogger()

	path := os.Getenv(constants.ConfigPathEnvVar)
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := overlay.LoadConfig(path)
	if err != nil {
		logger.Error("Failed to load config", "path", path, "error", err)
		return 1
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}
	if cfg.LogLevel != "" {
		overlay.SetLogLevel(cfg.LogLevel)
	}

	if *messages != "" {
		if err := i18n.InitI18N(strings.Split(*messages, ",")); err != nil {
			logger.Error("Failed to load message files", "files", *messages, "error", err)
			return 1
		}
	}

	presets, err := overlay.PresetsFromConfig(cfg)
	if err != nil {
		logger.Error("Invalid binding presets", "path", path, "error", err)
		return 1
	}
	table := overlay.NewBindingTable(presets)
	if len(presets) == 0 {
		table.FillGeneric(0)
	}

	if err := sdlhost.Init(); err != nil {
		logger.Error("Failed to start SDL", "error", err)
		return 1
	}
	defer sdlhost.Quit()

	win, err := sdlhost.New("Overlay Demo", sdlhost.DefaultWindowOptions())
	if err != nil {
		logger.Error("Failed to open window", "error", err)
		return 1
	}
	defer win.Close()
	if err := win.LoadBackground(*background); err != nil {
		logger.Warn("Running without background", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		win.RequestQuit()
	}()

	var (
		src    frameSource
		sdlSrc *sdlinput.Source
	)
	switch name := os.Getenv(constants.InputSourceEnvVar); name {
	case "", "sdl":
		sdlSrc = sdlinput.New()
		defer sdlSrc.Close()
		src = sdlSrc
	case "evdev":
		evSrc, err := evdevinput.Open()
		if err != nil {
			logger.Error("Failed to open input devices", "error", err)
			return 1
		}
		defer evSrc.Close()
		src = evSrc
	default:
		logger.Error("Unknown input source", "source", name)
		return 1
	}

	machine := newDemoMachine(win.RequestQuit)
	session, err := overlay.NewSession(src, machine, table, overlay.SystemClock{}, cfg)
	if err != nil {
		logger.Error("Failed to start overlay", "error", err)
		return 1
	}

	w, h := win.Size()
	buf := canvas.New(int(w), int(h))
	session.RunMenu(overlay.MenuBoot)

	for !win.ShouldQuit() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if win.HandleEvent(ev) || (sdlSrc != nil && sdlSrc.HandleEvent(ev)) {
				continue
			}
			if kev, ok := ev.(*sdl.KeyboardEvent); ok {
				keyEvent(session, kev)
			}
		}

		w, h := win.Size()
		if int(w) != buf.Width() || int(h) != buf.Height() {
			buf.Resize(int(w), int(h))
		}
		if sdlSrc != nil {
			sdlSrc.SetViewport(w, h)
		}

		src.Frame()
		session.OnFrameInput()
		if machine.takeEnded() {
			session.RunMenu(overlay.MenuFinish)
		}

		machine.draw(buf, win.Background != nil)
		session.OnFrameDraw(buf)
		if err := win.Present(buf.Image()); err != nil {
			logger.Error("Failed to present frame", "error", err)
			return 1
		}
	}

	session.OnScreenClosed()
	if table.Changed() {
		logger.Info("Bindings were edited this session", "ports", table.ActivePorts())
	}
	return 0
}

// keyEvent forwards a typed key to the session. F12 toggles the display
// instead.
func keyEvent(s *overlay.Session, ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}
	k, ok := sdlinput.KeyFor(ev.Keysym.Scancode)
	if !ok {
		return
	}
	down := ev.State == sdl.PRESSED

	if k == constants.KeyF12 {
		switch {
		case !down:
		case s.Mode() == overlay.ModeClosed && !s.Intercepting():
			s.StartOSD(overlay.ModeMain)
		case s.Mode() != overlay.ModeClosed && !s.Fullscreen():
			s.CloseOSD()
		}
		return
	}

	typ := constants.EventKeyUp
	if down {
		typ = constants.EventKeyDown
	}
	s.Post(overlay.Event{Type: typ, Value: int(k)})
}
