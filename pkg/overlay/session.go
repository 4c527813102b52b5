package overlay

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/i18n"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// interceptor owns the frame's input and drawing while it is installed.
type interceptor interface {
	input()
	draw(c Canvas)
	close()
}

// Session ties the overlay to one machine. The host calls OnFrameInput and
// OnFrameDraw once per frame, in that order, from a single goroutine.
type Session struct {
	source  InputSource
	machine Machine
	table   *BindingTable
	clock   Clock
	cfg     Config
	theme   Theme

	osd    *osd
	wheels *WheelSet
	anyKey *anyKeyPrompt

	intercept interceptor
	pending   []Event
	rescan    bool

	autoStart AutoStart
	startup   startupChoice
	lastRun   time.Time
}

// startupChoice is the last thing the start menu ran. name is the menu
// row it was started from.
type startupChoice struct {
	req  RunRequest
	name string
	set  bool
}

// NewSession creates a session with every screen closed.
func NewSession(src InputSource, m Machine, table *BindingTable, clock Clock, cfg Config) (*Session, error) {
	binds, err := cfg.InterceptBinds()
	if err != nil {
		return nil, fmt.Errorf("intercept bindings: %w", err)
	}

	if cfg.Language != "" {
		if err := i18n.SetWithCode(cfg.Language); err != nil {
			logger().Warn("Unknown language, keeping the default", "language", cfg.Language, "error", err)
		}
	}

	theme := internal.GetTheme()
	if cfg.MenuAlpha > 0 && cfg.MenuAlpha <= 0xFF {
		theme.BlendAlpha = uint8(cfg.MenuAlpha)
	}

	s := &Session{
		source:  src,
		machine: m,
		table:   table,
		clock:   clock,
		cfg:     cfg,
		theme:   theme,
	}
	s.osd = newOSD(s, binds)
	s.wheels = NewWheelSet(table, clock, cfg, m.Dispatch)
	s.anyKey = newAnyKeyPrompt(s, binds)
	return s, nil
}

// Table returns the binding table the session polls and the mapper edits.
func (s *Session) Table() *BindingTable { return s.table }

// Wheels returns the action wheels.
func (s *Session) Wheels() *WheelSet { return s.wheels }

// Mode returns the open on-screen display screen, or ModeClosed.
func (s *Session) Mode() Mode { return s.osd.screens.Current() }

// Fullscreen reports whether the open display is the fullscreen start menu.
func (s *Session) Fullscreen() bool { return s.osd.fullscreen }

// Intercepting reports whether a screen, wheel or prompt owns the input.
func (s *Session) Intercepting() bool { return s.intercept != nil }

// AutoStart returns the auto start setting the start menu edits.
func (s *Session) AutoStart() AutoStart { return s.autoStart }

// SetAutoStart restores a saved auto start setting.
func (s *Session) SetAutoStart(a AutoStart) { s.autoStart = a }

// Post queues an event the host produced outside the input source, such as
// a typed key or a change of mounted media. It is handled at the next
// OnFrameInput.
func (s *Session) Post(ev Event) {
	s.pending = append(s.pending, ev)
}

func (s *Session) takePending() []Event {
	evs := s.pending
	s.pending = nil
	return evs
}

// OnFrameInput polls the input source once. An installed interceptor gets
// the input; otherwise game bindings are polled and their events go to the
// machine.
func (s *Session) OnFrameInput() {
	if s.intercept != nil {
		s.intercept.input()
		return
	}
	internal.PollBinds(s.source, s.table.Binds(), nil, func(_ *Binding, ev Event) {
		s.gameEvent(ev)
	})
	for _, ev := range s.takePending() {
		s.gameEvent(ev)
	}
}

// OnFrameDraw draws the installed interceptor over the frame.
func (s *Session) OnFrameDraw(c Canvas) {
	if s.intercept != nil {
		s.intercept.draw(c)
	}
}

// OnScreenClosed is called when the host hides the overlay. Every screen,
// wheel and prompt is closed.
func (s *Session) OnScreenClosed() {
	if s.osd.screens.Active() {
		s.osd.setMode(ModeClosed, nil)
	}
	s.setIntercept(nil)
}

// StartOSD opens the on-screen display on mode over the running program.
func (s *Session) StartOSD(mode Mode) {
	s.osd.start(mode, nil)
}

// StartMenu opens the start menu. Fullscreen covers the whole frame, hides
// the keyboard tab and cannot be closed without running something.
func (s *Session) StartMenu(fullscreen bool) {
	if !fullscreen {
		s.osd.start(ModeMain, nil)
		return
	}
	s.osd.start(ModeMain, newStartMenu(s, true))
}

// MenuPhase is when the host asks for the start menu.
type MenuPhase uint8

const (
	MenuNormal MenuPhase = iota // Opened on request, never skipped
	MenuBoot                    // The machine just booted
	MenuFinish                  // The program started from the menu exited
)

// shortRun is how long a program must have run before a finished game may
// exit without asking.
const shortRun = 500 * time.Millisecond

// RunMenu shows the fullscreen start menu for phase. Menu time 0 exits
// right after a game started by auto start or as the only program ends,
// -1 never skips the menu at boot and 99 always shows it.
func (s *Session) RunMenu(phase MenuPhase) {
	menuTime := s.cfg.MenuTimeS
	if phase == MenuBoot && menuTime >= 0 && s.autoStart.Enabled && s.startup.set {
		logger().Debug("Auto starting", "kind", s.startup.req.Kind, "entry", s.startup.name)
		if err := s.machine.Run(s.startup.req); err != nil {
			logger().Warn("Failed to auto start", "entry", s.startup.name, "error", err)
		} else {
			s.lastRun = s.clock.Now()
			return
		}
	}

	m := newStartMenu(s, true)
	solo := m.exeCount == 1 && m.fsCount <= 1
	open := func(pressed bool) {
		if pressed {
			s.osd.start(ModeMain, m)
		} else {
			s.machine.Exit()
		}
	}

	if phase == MenuFinish {
		ranLong := s.clock.Now().Sub(s.lastRun) >= shortRun
		if menuTime >= 0 && menuTime < 99 && (solo || s.autoStart.Enabled) && ranLong {
			if menuTime == 0 {
				s.machine.Exit()
				return
			}
			s.WaitAnyKey(AnyKeyGameEnded, open)
			return
		}
		s.WaitAnyKey(AnyKeyReturnToMenu, open)
		return
	}

	if phase == MenuBoot && solo && menuTime != -1 {
		m.handle(ResultOK, m.list.Selected().Kind, 0)
		return
	}
	if phase != MenuBoot || m.exeCount != 0 || m.fsCount != 0 || len(m.images) != 0 {
		s.osd.start(ModeMain, m)
	}
}

// CloseOSD closes the on-screen display.
func (s *Session) CloseOSD() {
	s.osd.setMode(ModeClosed, nil)
}

// OpenWheel opens the action wheel of port. It does nothing while the
// on-screen display is open.
func (s *Session) OpenWheel(port uint8) {
	if int(port) >= constants.MaxPorts || s.osd.screens.Active() {
		return
	}
	s.wheels.Open(port)
	s.setIntercept(wheelInterceptor{s})
}

// WaitAnyKey shows a prompt until a key is pressed and released. done is
// called with true on a key press, or false when a game ended prompt runs out.
func (s *Session) WaitAnyKey(msg AnyKeyMessage, done func(pressed bool)) {
	s.machine.ReleaseKeys()
	s.anyKey.start(msg, done)
	s.setIntercept(s.anyKey)
}

func (s *Session) setIntercept(next interceptor) {
	if s.intercept == next {
		return
	}
	if s.intercept != nil {
		s.intercept.close()
	}
	s.intercept = next
}

// gameEvent routes an event from the game bindings.
func (s *Session) gameEvent(ev Event) {
	switch ev.Type {
	case constants.EventOnScreenKeyboard:
		s.StartOSD(ModeKeyboard)
	case constants.EventOnScreenKeyboardUp:
	case constants.EventActionWheel:
		if ev.Value != 0 {
			s.OpenWheel(ev.Port)
		}
	default:
		s.machine.Dispatch(ev)
	}
}

// primeGame records the current value of every game binding so inputs held
// while something else owned them never reach the machine.
func (s *Session) primeGame() {
	internal.PrimeBinds(s.source, s.table.Binds())
	s.machine.ReleaseKeys()
	logger().Debug("Primed game bindings", "count", len(s.table.Binds()))
}

// wheelInterceptor runs the open wheels while game bindings keep flowing to
// the machine, minus the inputs that steer a wheel.
type wheelInterceptor struct {
	s *Session
}

func (w wheelInterceptor) input() {
	s, ws := w.s, w.s.wheels
	for p := range ws.wheels {
		if ws.wheels[p].live() {
			ws.Update(uint8(p), s.source)
		}
	}

	internal.PollBinds(s.source, s.table.Binds(), ws.Filter, func(b *Binding, ev Event) {
		if ev.Type == constants.EventActionWheel {
			ws.ActionWheelInput(b.Port, ev.Value != 0)
			return
		}
		s.gameEvent(ev)
	})
	for _, ev := range s.takePending() {
		s.gameEvent(ev)
	}

	if s.intercept == interceptor(w) && !ws.Active() {
		s.setIntercept(nil)
	}
}

func (w wheelInterceptor) draw(c Canvas) {
	w.s.wheels.Draw(c)
}

func (w wheelInterceptor) close() {
	w.s.wheels.CloseAll()
}
