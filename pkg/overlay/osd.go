package overlay

import (
	"image/color"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/i18n"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/BrandonKowalski/overlay/pkg/overlay/router"
)

// Mode is a screen of the on-screen display.
type Mode = router.Screen

const (
	ModeMain Mode = iota
	ModeKeyboard
	ModeMapper

	ModeClosed = router.ScreenClosed
)

// frame is what a screen draws with.
type frame struct {
	c      Canvas
	p      *Pointer
	theme  Theme
	lh     int
	ftr    int
	opaque bool
	moved  bool
}

func (f frame) fill(c color.NRGBA) color.NRGBA {
	return f.theme.Fill(c, f.opaque)
}

type screen interface {
	router.Lifecycle
	Input(ev Event)
	Draw(f frame)
}

// osd is the interceptor behind the start menu, the on-screen keyboard and
// the mapper. Input comes from the fixed intercept bindings.
type osd struct {
	s          *Session
	screens    *router.Router[screen]
	pointer    *Pointer
	proc       *internal.Processor
	fullscreen bool
	shift      bool
}

func newOSD(s *Session, binds []Binding) *osd {
	o := &osd{
		s:       s,
		pointer: NewPointer(),
		proc:    internal.NewProcessor(s.source, binds),
	}
	o.screens = router.New[screen]()
	o.screens.Register(ModeMain, func(any) screen { return newStartMenu(s, o.fullscreen) })
	o.screens.Register(ModeKeyboard, func(any) screen { return newKeyboard(s) })
	o.screens.Register(ModeMapper, func(any) screen { return newMapper(s) })
	o.screens.OnTransition(o.transition)
	return o
}

// start opens the display. Passing main re-enters an existing start menu
// and makes the display fullscreen.
func (o *osd) start(mode Mode, main *StartMenu) {
	o.fullscreen = main != nil
	o.pointer.Reset()
	o.setMode(mode, main)
}

func (o *osd) setMode(mode Mode, main *StartMenu) {
	var err error
	if mode == ModeMain && main != nil {
		err = o.screens.Enter(mode, main)
	} else {
		err = o.screens.Switch(mode, nil)
	}
	if err != nil {
		logger().Error("Failed to switch screen", "mode", mode, "error", err)
	}
}

func (o *osd) transition(from, to Mode) {
	logger().Debug("OSD mode switch", "from", from, "to", to, "fullscreen", o.fullscreen)
	if to == ModeClosed {
		if o.s.intercept == interceptor(o) {
			o.s.setIntercept(nil)
		}
		o.fullscreen = false
	} else {
		o.proc.Reset()
		o.s.setIntercept(o)
	}
	if h, ok := o.screens.Handler(); ok {
		if m, isMain := h.(*StartMenu); isMain && !m.list.hoverOnce {
			o.pointer.SetIgnoreMove(true)
		}
	}
	o.s.machine.ReleaseKeys()
}

func (o *osd) input() {
	if o.proc.Poll(o.event) {
		o.s.machine.ReleaseKeys()
	}
	for _, ev := range o.s.takePending() {
		o.event(ev)
	}
	if o.s.rescan {
		o.s.rescan = false
		o.s.machine.RescanSystem()
		o.event(Event{Type: constants.EventRefreshSystem})
	}
}

func (o *osd) event(ev Event) {
	if ev.Type == constants.EventKeyDown || ev.Type == constants.EventKeyUp {
		switch ev.Key() {
		case constants.KeyLeftShift, constants.KeyRightShift:
			o.shift = ev.Type == constants.EventKeyDown
		}
	}

	o.pointer.Input(ev)
	h, ok := o.screens.Handler()
	if !ok {
		return
	}
	h.Input(ev)

	if ev.Type != constants.EventKeyUp || !o.screens.Active() {
		return
	}
	if k := ev.Key(); k == constants.KeyTab || k == constants.KeyGrave {
		step := -1
		if k == constants.KeyTab && !o.shiftHeld() {
			step = 1
		}
		if err := o.screens.Cycle(step, o.skip); err != nil {
			logger().Error("Failed to cycle screens", "error", err)
		}
	}
}

func (o *osd) shiftHeld() bool {
	return o.shift || o.s.machine.KeyDown(constants.KeyLeftShift) || o.s.machine.KeyDown(constants.KeyRightShift)
}

// skip passes over the keyboard while fullscreen.
func (o *osd) skip(m Mode) bool {
	return o.fullscreen && m == ModeKeyboard
}

type tab struct {
	mode  Mode
	label *i18n.Message
	short *i18n.Message
}

var tabs = []tab{
	{ModeMain, msgTabStart, msgTabStartShort},
	{ModeKeyboard, msgTabKeyboard, msgTabKeyboardShort},
	{ModeMapper, msgTabMapper, msgTabMapperShort},
}

func (o *osd) draw(c Canvas) {
	w, h := c.Width(), c.Height()
	lh := lineHeight(h)
	f := frame{c: c, p: o.pointer, theme: o.s.theme, lh: lh, ftr: lh + 20, opaque: o.fullscreen}
	mode := o.screens.Current()
	isOSK := mode == ModeKeyboard
	f.moved = o.pointer.Update(w, h, isOSK)

	next := ModeClosed
	if o.fullscreen || !isOSK {
		if o.fullscreen {
			c.FillRect(0, 0, w, h, internal.Solid(f.theme.StartMenu))
		}
		shown := make([]tab, 0, len(tabs))
		for _, t := range tabs {
			if !o.skip(t.mode) {
				shown = append(shown, t)
			}
		}
		btny := h - 13 - lh
		for i, t := range shown {
			label := t.label
			if w < 500 {
				label = t.short
			}
			if drawButton(c, f.theme, f.opaque, btny, lh, i, len(shown), mode == t.mode, o.pointer, tr(label)) && o.pointer.LeftUp() {
				next = t.mode
			}
		}
	}
	if next != ModeClosed {
		o.setMode(next, nil)
		mode = next
		isOSK = mode == ModeKeyboard
	}

	if h, ok := o.screens.Handler(); ok {
		h.Draw(f)
	}

	o.pointer.Draw(c, isOSK)
	o.pointer.EndFrame()
}

// close hands the input back to the game.
func (o *osd) close() {
	o.s.primeGame()
}
