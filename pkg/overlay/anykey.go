package overlay

import (
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// AnyKeyMessage picks the text of the any-key prompt.
type AnyKeyMessage uint8

const (
	// AnyKeyReturnToMenu waits for a key before the start menu comes back.
	AnyKeyReturnToMenu AnyKeyMessage = iota
	// AnyKeyGameEnded counts down the menu time and gives up when it runs out.
	AnyKeyGameEnded
)

// anyKeyPrompt waits for one complete press and release of any key, button
// or mouse button.
type anyKeyPrompt struct {
	s      *Session
	proc   *internal.Processor
	msg    AnyKeyMessage
	opened time.Time
	key    uint32
	done   func(pressed bool)
}

func newAnyKeyPrompt(s *Session, binds []Binding) *anyKeyPrompt {
	return &anyKeyPrompt{s: s, proc: internal.NewProcessor(s.source, binds)}
}

func (a *anyKeyPrompt) start(msg AnyKeyMessage, done func(pressed bool)) {
	a.msg = msg
	a.opened = a.s.clock.Now()
	a.key = 0
	a.done = done
	a.proc.Reset()
}

func (a *anyKeyPrompt) input() {
	if a.proc.Poll(a.event) {
		a.s.machine.ReleaseKeys()
	}
	if a.s.intercept != interceptor(a) {
		return
	}
	if a.msg == AnyKeyGameEnded && a.elapsed() > a.s.cfg.MenuTime() {
		a.finish(false)
	}
}

func (a *anyKeyPrompt) elapsed() time.Duration {
	return a.s.clock.Now().Sub(a.opened)
}

// anyKeyID identifies a press so only the release of the same input
// completes the prompt.
func anyKeyID(typ constants.EventType, down bool, val int) uint32 {
	id := uint32(typ) + uint32(val+1)<<8
	if down {
		id++
	}
	return id
}

func (a *anyKeyPrompt) event(ev Event) {
	if a.s.intercept != interceptor(a) {
		return
	}
	down, up := ev.Type.IsPress(), ev.Type.IsRelease()
	if (!down && !up) || a.elapsed() < a.s.cfg.AnyKeyGrace() {
		return
	}
	id := anyKeyID(ev.Type, down, ev.Value)
	switch {
	case down:
		a.key = id
	case a.key == id:
		a.finish(true)
	}
}

func (a *anyKeyPrompt) finish(pressed bool) {
	logger().Debug("Any key prompt finished", "pressed", pressed)
	done := a.done
	a.done = nil
	a.s.setIntercept(nil)
	if done != nil {
		done(pressed)
	}
}

func (a *anyKeyPrompt) draw(c Canvas) {
	w, h := c.Width(), c.Height()
	lh := lineHeight(h)
	y := h - lh*5/2

	text := tr(msgAnyKeyReturn)
	if a.msg == AnyKeyGameEnded {
		left := int((a.s.cfg.MenuTime() - a.elapsed()) / time.Second)
		if left < 0 {
			left = 0
		}
		text = trCount(msgAnyKeyExit, left)
	}
	th := a.s.theme
	c.DrawBox(8, y-3, w-16, lh+6, th.Fill(th.Menu, false), th.LineBox)
	printCenteredOutlined(c, lh, 0, w, y, text, th.White)
}

func (a *anyKeyPrompt) close() {
	a.s.primeGame()
}
