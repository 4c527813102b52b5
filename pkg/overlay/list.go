package overlay

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// Selection visibility. A hidden selection is still tracked but not drawn
// and cannot be confirmed; the first navigation step shows it again.
type selectionState uint8

const (
	selectionShown selectionState = iota
	selectionHidden
)

// Viewport modes. Recenter centres the selection at the next layout, follow
// keeps it inside the margins and unlocked leaves the scroll position to the
// pointer.
type viewportMode uint8

const (
	viewportRecenter viewportMode = iota
	viewportFollow
	viewportUnlocked
)

const (
	clickNone = -1
	clickDrag = -2

	followMargin = 4
	wheelJump    = 4
)

// Viewport is the on-canvas rectangle a list is laid out in. While the
// list follows the selection it keeps up to four rows above and below it
// in view, fewer when Rows is too small for both margins.
type Viewport struct {
	Left, Right int
	Top         int
	Rows        int
	LineHeight  int
}

func (v Viewport) extra() int {
	if v.LineHeight == 8 {
		return 0
	}
	return 1
}

// Height is the pixel height of the rows.
func (v Viewport) Height() int {
	return v.Rows*v.LineHeight + v.extra()
}

func (v Viewport) scrollbarX() int {
	return v.Right - 11
}

// MenuList is a scrollable list of rows with a single selection. It turns
// navigation input into selection movement and commands, repeats held
// directions and keeps the selected row in view.
type MenuList struct {
	Items []MenuItem

	sel        int
	scroll     int
	visibility selectionState
	viewport   viewportMode
	scrollJump int
	dragJump   bool
	clickSel   int
	hoverOnce  bool
	frozen     bool
	joyX, joyY int

	openedAt time.Time
	held     internal.HeldRepeat
	clock    Clock
	debounce time.Duration
}

// NewMenuList creates an empty list. Confirm and cancel are ignored for the
// debounce window after Open.
func NewMenuList(clock Clock, cfg Config) *MenuList {
	l := &MenuList{
		clickSel: clickNone,
		held:     cfg.NewHeldRepeat(),
		clock:    clock,
		debounce: cfg.Debounce(),
	}
	l.Open()
	return l
}

// Open restarts the debounce window and clears any held direction.
func (l *MenuList) Open() {
	l.openedAt = l.clock.Now()
	l.held.Cancel()
	l.joyX, l.joyY = 0, 0
}

// Sel returns the selected row index.
func (l *MenuList) Sel() int { return l.sel }

// Scroll returns the first visible row.
func (l *MenuList) Scroll() int { return l.scroll }

// Hidden reports whether the selection is hidden.
func (l *MenuList) Hidden() bool { return l.visibility == selectionHidden }

// Selected returns the selected row.
func (l *MenuList) Selected() MenuItem {
	l.check("selected")
	return l.Items[l.sel]
}

// SetFrozen stops selection movement while a popup owns the input.
func (l *MenuList) SetFrozen(frozen bool) { l.frozen = frozen }

// Reset replaces the rows, selects sel and recentres the view.
func (l *MenuList) Reset(items []MenuItem, sel int, refreshHover bool) {
	l.Items = items
	l.ResetSel(sel, refreshHover)
}

// Replace swaps the rows in place and selects sel, keeping the scroll
// position and viewport mode.
func (l *MenuList) Replace(items []MenuItem, sel int) {
	l.Items = items
	l.sel = sel
	if l.scroll >= len(items) {
		l.scroll = 0
	}
}

// ResetSel selects sel, shows the selection and recentres the view. With
// refreshHover the next layout takes the selection from the pointer.
func (l *MenuList) ResetSel(sel int, refreshHover bool) {
	l.sel = sel
	l.viewport = viewportRecenter
	l.visibility = selectionShown
	l.hoverOnce = refreshHover
}

// Settle moves a selection resting on an inert row forward to the next
// selectable row, wrapping once.
func (l *MenuList) Settle() {
	n := len(l.Items)
	if n == 0 {
		return
	}
	l.sel = clamp(l.sel, 0, n-1)
	for i := 0; i < n; i++ {
		idx := (l.sel + i) % n
		if l.Items[idx].Kind.Selectable() {
			l.sel = idx
			return
		}
	}
}

// HideSelection keeps the selection but stops drawing it.
func (l *MenuList) HideSelection() {
	l.visibility = selectionHidden
}

func (l *MenuList) check(op string) {
	if len(l.Items) == 0 {
		panic(NewInvariantError(op, ErrNoSelectableItem))
	}
	if l.sel < 0 || l.sel >= len(l.Items) {
		panic(NewInvariantError(op, fmt.Errorf("%w: %d of %d", ErrSelectionOutOfRange, l.sel, len(l.Items))))
	}
}

// Input turns one event into a command. ok is false when the event changed nothing.
func (l *MenuList) Input(ev Event) (Command, bool) {
	return l.input(ev, false)
}

// UpdateHeld re-issues a held direction when its repeat is due.
func (l *MenuList) UpdateHeld() (Command, bool) {
	d := l.held.Update(l.clock.Now())
	if d == internal.DirectionNone {
		return Command{}, false
	}
	return l.input(Event{Type: constants.EventKeyDown, Value: int(d.Key())}, true)
}

func (l *MenuList) input(ev Event, repeat bool) (Command, bool) {
	l.check("input")

	res := ResultNone
	selChange, xChange := 0, 0

	switch ev.Type {
	case constants.EventKeyDown:
		switch ev.Key() {
		case constants.KeyLeft, constants.KeyKP4:
			xChange = -1
		case constants.KeyRight, constants.KeyKP6:
			xChange = 1
		case constants.KeyUp, constants.KeyKP8:
			selChange = -1
		case constants.KeyDown, constants.KeyKP2:
			selChange = 1
		case constants.KeyPageUp:
			selChange = -constants.PageStep
		case constants.KeyPageDown:
			selChange = constants.PageStep
		case constants.KeyHome:
			selChange = -constants.HomeEndJump
		case constants.KeyEnd:
			selChange = constants.HomeEndJump
		}
	case constants.EventKeyUp:
		switch ev.Key() {
		case constants.KeyEnter, constants.KeyKPEnter:
			res = ResultOK
		case constants.KeyEsc:
			res = ResultCancel
		}
		if l.held.Source() == constants.EventKeyDown {
			l.held.Cancel()
		}
	case constants.EventOnScreenKeyboardUp:
		res = ResultCloseKeyboard
	case constants.EventChangeMounts:
		res = ResultChangeMounts
	case constants.EventRefreshSystem:
		res = ResultRefreshSystem
	case constants.EventMouseMove:
		if l.viewport != viewportRecenter {
			l.viewport = viewportUnlocked
		}
	case constants.EventMouseDown:
		if ev.Value == 0 {
			if l.visibility == selectionHidden {
				l.clickSel = clickNone
			} else {
				l.clickSel = l.sel
			}
		}
	case constants.EventMouseUp:
		if ev.Value == 0 && l.clickSel == l.sel {
			res = ResultOK
		} else if ev.Value == 1 {
			res = ResultCancel
		}
	case constants.EventJoy1X, constants.EventJoy2X:
		xChange = axisStep(l.joyX, ev.Value, 1)
		if xChange == 0 && l.held.Source() == ev.Type && absInt(ev.Value) < constants.AxisThreshold {
			l.held.Cancel()
		}
		l.joyX = ev.Value
	case constants.EventJoy1Y, constants.EventJoy2Y:
		step := 1
		if ev.Type == constants.EventJoy2Y {
			step = constants.PageStep
		}
		selChange = axisStep(l.joyY, ev.Value, step)
		if selChange == 0 && l.held.Source() == ev.Type && absInt(ev.Value) < constants.AxisThreshold {
			l.held.Cancel()
		}
		l.joyY = ev.Value
	case constants.EventJoy1Down, constants.EventJoy2Down:
		if ev.Value == 0 {
			res = ResultOK
		}
	case constants.EventJoy1Up, constants.EventJoy2Up:
		if ev.Value == 1 {
			res = ResultCancel
		}
	}

	if res != ResultNone && l.clock.Now().Sub(l.openedAt) < l.debounce {
		res = ResultNone
	}

	if selChange != 0 || xChange != 0 {
		if !repeat {
			l.held.Register(ev.Type, internal.DirectionFor(selChange, xChange), l.clock.Now())
		}
		if l.viewport != viewportRecenter {
			l.viewport = viewportFollow
		}
	}

	moved := false
	if res == ResultNone && selChange != 0 && !l.frozen {
		moved = l.step(selChange)
	}

	if l.visibility == selectionHidden {
		switch res {
		case ResultCancel, ResultCloseKeyboard, ResultChangeMounts, ResultRefreshSystem:
		default:
			return Command{}, false
		}
	}

	if selChange == 0 && xChange == 0 && res == ResultNone {
		return Command{}, false
	}
	cmd := Command{Result: res, XChange: xChange, Moved: moved}
	if res == ResultOK {
		cmd.Kind = l.Items[l.sel].Kind
	}
	return cmd, true
}

// step moves the selection by delta until it rests on a selectable row.
// Leaving the list wraps: stepping back past the start or jumping past the
// end lands on the last row, stepping forward past the end on the first.
func (l *MenuList) step(delta int) bool {
	count := len(l.Items)
	from := l.sel
	for tries := 0; ; tries++ {
		if tries > 2*count+1 {
			panic(NewInvariantError("select", ErrNoSelectableItem))
		}
		if l.visibility == selectionHidden {
			l.visibility = selectionShown
			if l.Items[l.sel].Kind.Selectable() {
				break
			}
		}
		l.sel += delta
		if l.sel < 0 || l.sel >= count {
			switch {
			case delta > 1, delta == -1:
				l.sel = count - 1
			default:
				l.sel = 0
				l.scroll = 0
			}
		}
		if l.Items[l.sel].Kind.Selectable() {
			break
		}
		if delta != -1 {
			delta = 1
		}
	}
	return l.sel != from
}

// axisStep returns step (signed) when an axis crosses the threshold away
// from neutral.
func axisStep(prev, cur, step int) int {
	switch {
	case prev < constants.AxisThreshold && cur >= constants.AxisThreshold:
		return step
	case prev > -constants.AxisThreshold && cur <= -constants.AxisThreshold:
		return -step
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Layout updates the scroll position and the pointer hover for this frame.
// moved says whether the pointer moved since the previous frame.
func (l *MenuList) Layout(v Viewport, p *Pointer, moved bool) {
	l.check("layout")
	count := len(l.Items)
	rows := v.Rows
	menuh := v.Height()
	scrx := v.scrollbarX()
	scrollbar := count > rows
	px, py := p.Pos()

	if l.frozen {
		return
	}

	if scrollbar && p.LeftPressed() && (px >= scrx || l.clickSel == clickDrag) &&
		py >= v.Top && py < v.Top+menuh && l.viewport != viewportRecenter {
		scrollh := menuh * rows / count / 2
		l.scrollJump = (count-rows)*(py-v.Top-scrollh)/(menuh-2*scrollh) - l.scroll
		l.dragJump = true
		l.clickSel = clickDrag
	}

	if l.viewport == viewportRecenter && p.RealMouse() {
		moved = l.hoverOnce
	}

	switch {
	case count <= rows:
		l.scroll = 0
		if l.viewport == viewportRecenter {
			l.viewport = viewportFollow
		}
	case l.viewport == viewportRecenter:
		l.scroll = clamp(l.sel-rows/2, 0, count-rows)
		l.viewport = viewportFollow
	default:
		if p.RealMouse() && py >= v.Top && py < v.Top+menuh {
			if p.WheelUp() {
				l.viewport = viewportUnlocked
				l.scrollJump -= wheelJump
			}
			if p.WheelDown() {
				l.viewport = viewportUnlocked
				l.scrollJump += wheelJump
			}
		}
		if l.scrollJump != 0 {
			old := l.scroll
			l.scroll = clamp(l.scroll+l.scrollJump, 0, count-rows)
			if l.dragJump {
				l.sel = clamp(l.sel+l.scroll-old, 0, count-1)
			}
			l.scrollJump = 0
		}
		l.dragJump = false
		if l.viewport != viewportUnlocked {
			m := min(followMargin, (rows-1)/2)
			if l.sel < l.scroll+m {
				l.scroll = max(l.sel-m, 0)
			}
			if l.sel > l.scroll+rows-m-1 {
				if l.sel > count-m-1 {
					l.scroll = count - rows
				} else {
					l.scroll = l.sel - rows + m + 1
				}
			}
		}
	}

	if moved {
		l.sel = l.scroll + (py-v.Top)/v.LineHeight
		switch {
		case py < v.Top:
			l.sel = l.scroll
			l.visibility = selectionHidden
		case l.sel >= count:
			l.sel = count - 1
			l.visibility = selectionHidden
		case px >= scrx && scrollbar:
			l.visibility = selectionHidden
		case py >= v.Top+rows*v.LineHeight:
			l.sel = l.scroll + rows - 1
			l.visibility = selectionHidden
		default:
			l.visibility = selectionShown
		}
		l.viewport = viewportUnlocked
	}
}

// DrawBase draws the list box, the selection bar and the scrollbar.
func (l *MenuList) DrawBase(c Canvas, v Viewport, theme Theme, opaque bool) {
	count := len(l.Items)
	menuh := v.Height()
	scrollbar := count > v.Rows

	c.DrawBox(v.Left, v.Top-3, v.Right-v.Left, menuh+6, theme.Fill(theme.Menu, opaque), theme.LineBox)

	if l.Items[l.sel].Kind.Selectable() && l.visibility == selectionShown {
		w := v.Right - v.Left - 6
		if scrollbar {
			w -= 10
		}
		c.FillRect(v.Left+3, v.Top+(l.sel-l.scroll)*v.LineHeight, w, v.LineHeight+v.extra(), theme.Fill(theme.Selection, opaque))
	}

	if scrollbar {
		scrx := v.scrollbarX()
		scrollu := menuh * l.scroll / count
		scrolld := menuh * (l.scroll + v.Rows) / count
		c.FillRect(scrx, v.Top, 8, menuh, theme.Fill(theme.Scroll, opaque))
		c.FillRect(scrx, v.Top+scrollu, 8, scrolld-scrollu, theme.Fill(theme.Selection, opaque))
	}
}

// Visible returns the index range of rows on screen.
func (l *MenuList) Visible(rows int) (from, to int) {
	from = l.scroll
	to = l.scroll + rows
	if to > len(l.Items) {
		to = len(l.Items)
	}
	return from, to
}
