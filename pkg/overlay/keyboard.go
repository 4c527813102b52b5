package overlay

import (
	"image/color"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// Keyboard is the on-screen keyboard. The pointer picks a key; a button
// press presses it on the machine until the button is released. Modifiers
// and keys held past the sticky hold time stay down until pressed again.
type Keyboard struct {
	s         *Session
	hovered   constants.Key
	pressed   constants.Key
	pressedAt time.Time
	held      [internal.KeyMapper + 1]bool
}

func newKeyboard(s *Session) *Keyboard {
	return &Keyboard{s: s}
}

func (k *Keyboard) OnEnter() {}
func (k *Keyboard) OnExit()  {}

// Held reports whether key is latched down.
func (k *Keyboard) Held(key constants.Key) bool {
	return k.held[key]
}

func (k *Keyboard) send(key constants.Key, down bool) {
	typ := constants.EventKeyDown
	if !down {
		typ = constants.EventKeyUp
	}
	k.s.machine.Dispatch(Event{Type: typ, Value: int(key)})
}

func (k *Keyboard) Input(ev Event) {
	switch ev.Type {
	case constants.EventMouseDown:
		if ev.Value == 0 {
			k.press()
		}
	case constants.EventJoy1Down, constants.EventJoy2Down:
		k.press()
	case constants.EventMouseUp:
		if ev.Value == 0 {
			k.release()
		}
	case constants.EventJoy1Up, constants.EventJoy2Up:
		k.release()
	case constants.EventKeyDown:
		switch ev.Key() {
		case constants.KeyEnter, constants.KeyKPEnter, constants.KeySpace:
			k.press()
		}
	case constants.EventKeyUp:
		switch ev.Key() {
		case constants.KeyEnter, constants.KeyKPEnter, constants.KeySpace:
			k.release()
		case constants.KeyEsc:
			k.close()
		}
	case constants.EventOnScreenKeyboard:
		k.close()
	}
}

func (k *Keyboard) press() {
	key := k.hovered
	if k.pressed != constants.KeyNone || key == constants.KeyNone {
		return
	}
	switch {
	case k.held[key]:
		k.held[key] = false
		k.send(key, false)
	case key.IsModifier():
		k.held[key] = true
		k.send(key, true)
	default:
		k.pressedAt = k.s.clock.Now()
		k.pressed = key
		if key != internal.KeyMapper {
			k.send(key, true)
		}
	}
}

func (k *Keyboard) release() {
	switch k.pressed {
	case constants.KeyNone:
	case internal.KeyMapper:
		k.pressed = constants.KeyNone
		k.s.StartOSD(ModeMapper)
	default:
		k.send(k.pressed, false)
		k.pressed = constants.KeyNone
	}
}

func (k *Keyboard) close() {
	k.pressed = constants.KeyNone
	clear(k.held[:])
	k.s.CloseOSD()
}

func (k *Keyboard) Draw(f frame) {
	c, p, th := f.c, f.p, f.theme
	if k.pressed != constants.KeyNone && k.pressed != internal.KeyMapper &&
		k.s.clock.Now().Sub(k.pressedAt) > k.s.cfg.StickyHold() {
		k.held[k.pressed] = true
		k.pressed = constants.KeyNone
	}

	place := internal.PlaceOSK(c.Width(), c.Height(), c.Ratio(), p.Y)
	px, py := p.Pos()
	k.hovered = place.KeyAt(px, py)

	for _, slot := range internal.OSKLayout() {
		r := place.Rect(slot)
		col := th.Key
		switch {
		case k.pressed == slot.Key:
			col = th.KeyPress
		case k.held[slot.Key]:
			col = th.KeyHeld
		case k.hovered == slot.Key:
			col = th.KeyHover
		}
		c.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), th.Fill(col, false))
		strokeRect(c, r.Min.X-1, r.Min.Y-1, r.Dx()+2, r.Dy()+2, th.Fill(th.KeyOutline, false))

		label := tr(msgKeyMapper)
		if slot.Key != internal.KeyMapper {
			label = slot.Key.Cap()
		}
		label = fit(label, r.Dx())
		printCentered(c, 8, r.Min.X, r.Dx(), r.Min.Y+(r.Dy()-8)/2, label, th.KeyText)
	}
}

func strokeRect(c Canvas, x, y, w, h int, col color.NRGBA) {
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y+1, 1, h-2, col)
	c.FillRect(x+w-1, y+1, 1, h-2, col)
}
