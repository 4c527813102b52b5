package overlay

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
	"github.com/BrandonKowalski/overlay/pkg/overlay/router"
)

// Mapper pages. Every page but the top one is reached by pushing the page
// it was opened from onto the display's page stack.
const (
	pageTop router.Screen = iota
	pagePresets
	pageDevices
	pageKeys
)

type editMode uint8

const (
	notEditing editMode = iota
	editExisting
	editNew
	editAdditional
)

// mapperEdit is the binding or wheel option the device and key pages pick
// a target for.
type mapperEdit struct {
	mode  editMode
	wheel bool
	bind  int      // Binding table index of an existing bind
	input int      // Pad input of a new bind
	slot  WheelRef // Wheel option and target slot
	label string   // Header above the edited row
	path  string   // The edited row
}

// Mapper edits the bindings of one controller port: its preset, the
// targets of every pad input and the action wheel options.
type Mapper struct {
	s    *Session
	list *MenuList

	page     router.Screen
	port     uint8
	mainSel  int
	disabled bool
	haveAdd  bool
	edit     mapperEdit
}

func newMapper(s *Session) *Mapper {
	m := &Mapper{s: s, list: NewMenuList(s.clock, s.cfg)}
	m.top()
	return m
}

func (m *Mapper) OnEnter() { m.list.Open() }

func (m *Mapper) OnExit() {
	if m.s.table.Changed() {
		logger().Debug("Mapper closed with edits", "port", m.port)
	}
}

// Port returns the controller port being edited.
func (m *Mapper) Port() uint8 { return m.port }

func (m *Mapper) stack() *router.Stack {
	return m.s.osd.screens.Stack()
}

// setItems shows a page. A page without selectable rows freezes the
// selection so only port switching remains.
func (m *Mapper) setItems(items []MenuItem, sel int, refreshHover bool) {
	m.list.Reset(items, clamp(sel, 0, len(items)-1), refreshHover)
	frozen := true
	for _, it := range items {
		if it.Kind.Selectable() {
			frozen = false
			break
		}
	}
	m.list.SetFrozen(frozen)
	m.disabled = false
}

func editLabel(t Target) string {
	label := "  " + tr(msgMapperEdit)
	if d := t.Device(); d != MapperNone {
		label += " " + deviceLabel(d)
	}
	return label + " " + t.ShortName()
}

func (m *Mapper) top() {
	t := m.s.table
	m.page = pageTop
	m.edit = mapperEdit{}
	m.haveAdd = false
	m.stack().Clear()

	var items []MenuItem
	disabled := t.PortMode(m.port) != PortMapper
	if disabled {
		items = append(items,
			blankItem(),
			textItem(StyleDisabled, tr(msgMapperDisabled1)),
			textItem(StyleDisabled, tr(msgMapperDisabled2)),
			blankItem(),
			textItem(StyleDisabled, tr(msgMapperDisabled3)),
			textItem(StyleDisabled, tr(msgMapperDisabled4)),
		)
	} else {
		items = append(items,
			textItem(StyleHeader, tr(msgMapperPreset)),
			MenuItem{Kind: ItemPreset, Text: "  " + t.PresetName(m.port)},
			textItem(StyleDivider, ""),
		)

		haveWheel := false
		for n := 0; n < PadInputCount; n++ {
			in := PadInputAt(n)
			items = append(items, textItem(StyleHeader, in.Name))
			binds := t.BindsFor(in.Binding(m.port))
			for _, i := range binds {
				target := TargetFor(t.Bind(i).Action)
				items = append(items, MenuItem{Kind: ItemBind, Text: editLabel(target), Ref: BindRef(i)})
			}
			if len(binds) == 0 {
				m.haveAdd = true
				items = append(items, MenuItem{Kind: ItemAddBind, Text: "  " + tr(msgMapperCreate), Ref: InputRef{Pad: n}})
			}
		}

		items = append(items, textItem(StyleDivider, ""), textItem(StyleHeader, tr(msgMapperWheelOptions)))
		for _, wi := range t.WheelItems(m.port) {
			for slot, target := range t.WheelItem(wi).Targets {
				items = append(items, MenuItem{Kind: ItemWheelSlot, Text: editLabel(target), Ref: WheelRef{Item: wi, Slot: slot}})
			}
			items = append(items, blankItem())
			haveWheel = true
		}
		items = append(items, MenuItem{Kind: ItemAddWheel, Text: "  " + tr(msgMapperAddOption)})
		if haveWheel != t.WheelBound(m.port) {
			second := msgMapperNoWheelOptions
			if haveWheel {
				second = msgMapperNoWheelBind
			}
			items = append(items,
				textItem(StyleHeader, tr(msgMapperWarning)),
				textItem(StyleWarn, "  "+tr(msgMapperWheelNoAccess)),
				textItem(StyleWarn, "  "+tr(second)),
			)
		}
		items = append(items, blankItem())
	}
	if !m.s.osd.fullscreen {
		items = append(items, blankItem(), MenuItem{Kind: ItemCloseMapper, Text: "    " + tr(msgMapperClose)})
	}

	sel := min(m.mainSel, len(items)-1)
	for sel > 0 && !items[sel].Kind.Selectable() {
		sel--
	}
	m.setItems(items, max(sel, 1), sel < 1)
	m.disabled = disabled
}

func (m *Mapper) switchPort(step int) {
	n := m.s.table.ActivePorts()
	m.port = uint8((int(m.port) + n + step) % n)
	m.mainSel = 0
	logger().Debug("Mapper port switched", "port", m.port)
	m.top()
}

func (m *Mapper) presets() {
	t := m.s.table
	m.stack().Push(pageTop, nil, m.list.Sel())
	m.page = pagePresets

	items := []MenuItem{textItem(StyleHeader, tr(msgMapperSelectPreset)), blankItem()}
	for i, p := range t.Presets() {
		items = append(items, MenuItem{Kind: ItemPresetChoice, Text: p.Name, Ref: PresetRef(i)})
	}
	if m.haveAdd {
		items = append(items, blankItem(), MenuItem{Kind: ItemFillGeneric, Text: tr(msgMapperFillGeneric)})
	}
	if t.IsCustomized(m.port) {
		items = append(items, blankItem(), MenuItem{Kind: ItemResetMapping, Text: tr(msgMapperReset)})
	}
	m.setItems(items, 2+max(t.PresetIndex(m.port), 0), true)
	m.list.Settle()
}

// headerAbove returns the text of the nearest inert row above row i.
func (m *Mapper) headerAbove(i int) string {
	for i--; i >= 0; i-- {
		if it := m.list.Items[i]; !it.Kind.Selectable() {
			return it.Text
		}
	}
	return ""
}

func (m *Mapper) openDevices(kind ItemKind) {
	sel := m.list.Sel()
	switch {
	case m.edit.mode == notEditing:
		item := m.list.Items[sel]
		m.mainSel = sel
		m.stack().Push(pageTop, nil, sel)
		m.edit = mapperEdit{mode: editExisting, label: m.headerAbove(sel), path: " >" + item.Text}
		switch ref := item.Ref.(type) {
		case BindRef:
			m.edit.bind = int(ref)
		case InputRef:
			m.edit.mode = editNew
			m.edit.input = ref.Pad
		case WheelRef:
			m.edit.wheel = true
			m.edit.slot = ref
		}
		if kind == ItemAddWheel {
			m.edit.mode = editNew
			m.edit.wheel = true
		}
	case kind == ItemAdditional:
		m.stack().Push(pageDevices, m.edit, sel)
		m.edit.mode = editAdditional
		m.edit.path = " >  " + tr(msgMapperAdditional)
	}
	m.devices()
}

// current returns the target of the edited bind or wheel slot.
func (m *Mapper) current() Target {
	e, t := m.edit, m.s.table
	switch {
	case e.mode != editExisting:
		return TargetNone
	case e.wheel:
		return t.WheelItem(e.slot.Item).Targets[e.slot.Slot]
	default:
		return TargetFor(t.Bind(e.bind).Action)
	}
}

func (m *Mapper) targetCount() int {
	e, t := m.edit, m.s.table
	if e.wheel {
		return len(t.WheelItem(e.slot.Item).Targets)
	}
	return len(t.BindsFor(t.Bind(e.bind)))
}

func (m *Mapper) devices() {
	m.page = pageDevices
	e := m.edit
	items := []MenuItem{
		textItem(StyleHeader, e.label),
		textItem(StyleHeader, e.path),
		blankItem(),
		{Kind: ItemDevice, Text: "  " + deviceLabel(MapperKeyboard), Ref: DeviceRef(MapperKeyboard)},
		{Kind: ItemDevice, Text: "  " + deviceLabel(MapperMouse), Ref: DeviceRef(MapperMouse)},
		{Kind: ItemDevice, Text: "  " + deviceLabel(MapperJoystick), Ref: DeviceRef(MapperJoystick)},
		{Kind: ItemTarget, Text: "  " + tr(msgMapperOSK), Ref: TargetRef(TargetOnScreenKeyboard)},
	}
	if !e.wheel {
		items = append(items, MenuItem{Kind: ItemTarget, Text: "  " + tr(msgMapperActionWheel), Ref: TargetRef(TargetActionWheel)})
	}
	if e.mode == editExisting {
		items = append(items, blankItem(), MenuItem{Kind: ItemRemove, Text: "  " + tr(msgMapperRemove)})
		if m.targetCount() < MaxBindsPerInput {
			items = append(items, blankItem(), MenuItem{Kind: ItemAdditional, Text: "  " + tr(msgMapperAdditional)})
		}
	}
	items = append(items, blankItem(), MenuItem{Kind: ItemCancel, Text: tr(msgMapperCancel)})

	sel := 3
	switch m.current().Device() {
	case MapperMouse:
		sel = 4
	case MapperJoystick:
		sel = 5
	}
	m.setItems(items, sel, false)
}

func (m *Mapper) keys() {
	sel := m.list.Sel()
	dev := MapperDevice(m.list.Selected().Ref.(DeviceRef))
	m.stack().Push(pageDevices, m.edit, sel)
	m.page = pageKeys

	e := m.edit
	items := []MenuItem{
		textItem(StyleHeader, e.label),
		textItem(StyleHeader, e.path),
		textItem(StyleHeader, "   > "+deviceLabel(dev)),
		blankItem(),
	}
	cur := m.current()
	sel, found := 4, false
	for _, t := range DeviceTargets(dev) {
		if t == cur {
			sel, found = len(items), true
		}
		items = append(items, MenuItem{Kind: ItemTarget, Text: "  " + t.ShortName(), Ref: TargetRef(t)})
	}
	items = append(items, blankItem(), MenuItem{Kind: ItemCancel, Text: tr(msgMapperCancel)})
	m.setItems(items, sel, !found)
}

// back returns to the page the current one was opened from.
func (m *Mapper) back() bool {
	e := m.stack().Pop()
	if e == nil {
		return false
	}
	resume, _ := e.Resume.(int)
	switch e.Screen {
	case pageTop:
		m.mainSel = resume
		m.top()
	case pageDevices:
		if edit, ok := e.Input.(mapperEdit); ok {
			m.edit = edit
		}
		m.devices()
		m.list.ResetSel(resume, false)
	}
	return true
}

// commit applies the picked target, or removes the edited one, and goes
// back to the top page.
func (m *Mapper) commit(kind ItemKind) {
	t, e := m.s.table, m.edit
	target := TargetNone
	if kind == ItemTarget {
		target = Target(m.list.Selected().Ref.(TargetRef))
	}

	var err error
	switch {
	case e.wheel && kind == ItemRemove:
		t.RemoveWheelTarget(e.slot.Item, e.slot.Slot)
	case e.wheel && e.mode == editNew:
		t.AddWheelItem(m.port, target)
	case e.wheel && e.mode == editAdditional:
		err = t.AddWheelTarget(e.slot.Item, target)
	case e.wheel:
		t.SetWheelTarget(e.slot.Item, e.slot.Slot, target)
	case kind == ItemRemove:
		t.RemoveBind(e.bind)
	case e.mode == editNew:
		err = t.AddBind(PadInputAt(e.input).Binding(m.port), target)
	case e.mode == editAdditional:
		err = t.AddBind(t.Bind(e.bind), target)
	default:
		t.SetBindTarget(e.bind, target)
	}

	if err != nil {
		logger().Warn("Failed to edit binding", "port", m.port, "target", target.Name(), "error", err)
	} else {
		logger().Debug("Mapper edit",
			"port", m.port,
			"wheel", e.wheel,
			"remove", kind == ItemRemove,
			"target", target.Name(),
		)
	}
	m.top()
}

func (m *Mapper) Input(ev Event) {
	if cmd, ok := m.list.Input(ev); ok {
		m.handle(cmd.Result, cmd.Kind, cmd.XChange)
	}
}

func (m *Mapper) handle(res Result, kind ItemKind, xChange int) {
	if res == ResultCancel {
		kind = ItemCancel
	}
	if xChange != 0 && m.edit.mode == notEditing {
		m.switchPort(xChange)
	}

	t := m.s.table
	switch {
	case (kind == ItemTarget || kind == ItemRemove) && m.edit.mode != notEditing:
		m.commit(kind)
	case kind == ItemBind, kind == ItemAddBind, kind == ItemWheelSlot, kind == ItemAddWheel, kind == ItemAdditional:
		m.openDevices(kind)
	case kind == ItemDevice:
		m.keys()
	case kind == ItemCancel && m.page != pageTop:
		m.back()
	case kind == ItemPreset:
		m.presets()
	case kind == ItemPresetChoice:
		i := int(m.list.Selected().Ref.(PresetRef))
		t.ApplyPreset(m.port, i)
		logger().Debug("Mapper preset applied", "port", m.port, "preset", t.PresetName(m.port))
		m.mainSel = 0
		m.top()
	case kind == ItemFillGeneric:
		t.FillGeneric(m.port)
		logger().Debug("Mapper filled unbound inputs", "port", m.port)
		m.mainSel = 0
		m.top()
	case kind == ItemResetMapping:
		t.ResetPort(m.port)
		logger().Debug("Mapper reset", "port", m.port)
		m.mainSel = 0
		m.top()
	case (kind == ItemCancel || kind == ItemCloseMapper || res == ResultCloseKeyboard) && !m.s.osd.fullscreen:
		m.s.CloseOSD()
	}
}

func (m *Mapper) Draw(f frame) {
	if cmd, ok := m.list.UpdateHeld(); ok {
		m.handle(cmd.Result, cmd.Kind, cmd.XChange)
	}
	if (m.s.table.PortMode(m.port) == PortMapper) == m.disabled {
		m.top()
	}

	c, p, th, lh := f.c, f.p, f.theme, f.lh
	w, h := c.Width(), c.Height()
	hdr := lh * 3
	rows := (h-hdr-f.ftr)/lh - 1
	l, r := w/2-150, w/2+150
	if l < 0 {
		l, r = 0, w
	}
	onTop := m.page == pageTop
	wide := onTop && w > 500
	grow := 0
	if wide {
		grow = 50
	}

	c.DrawBox(l, hdr-7-lh*2, r-l, lh+3, f.fill(th.Header), th.LineBox)
	printCenteredOutlined(c, lh, 0, w, hdr-lh*2-5, tr(msgMapperTitle), th.MenuTitle)
	c.DrawBox(l-grow, hdr-5-lh, r-l+2*grow, lh+3, f.fill(th.Header), th.LineBox)
	port := trData(msgMapperPort, map[string]any{"Port": int(m.port) + 1})
	printCenteredOutlined(c, lh, 0, w, hdr-lh-3, port, th.Content)

	if wide {
		m.drawWide(f, l, r, hdr, rows)
	} else {
		m.drawNarrow(f, l, r, hdr, rows)
	}

	if !onTop {
		return
	}
	pad := internal.Padding{Top: 3, Bottom: 2}
	x1, x2 := l-grow, r-25+grow
	xChange := 0
	if drawButtonAt(c, th, false, hdr-lh-6, lh, pad, x1, x1+25, false, p, "<") && p.LeftUp() {
		xChange = -1
	}
	if drawButtonAt(c, th, false, hdr-lh-6, lh, pad, x2, x2+25, false, p, ">") && p.LeftUp() {
		xChange = 1
	}
	if xChange != 0 {
		m.switchPort(xChange)
	}
	if _, py := p.Pos(); py >= 0 && py <= hdr {
		if p.WheelUp() {
			m.handle(ResultNone, ItemNone, 1)
		}
		if p.WheelDown() {
			m.handle(ResultNone, ItemNone, -1)
		}
	}
}

// drawWide draws the top page with each group's header in a column left
// of its rows.
func (m *Mapper) drawWide(f frame, l, r, hdr, rows int) {
	c, th, lh := f.c, f.theme, f.lh
	xtra := 1
	if lh == 8 {
		xtra = 0
	}
	c.DrawBox(l-100, hdr-3, 201, rows*lh+6+xtra, f.fill(th.Menu), th.LineBox)
	v := Viewport{Left: l + 100, Right: r + 100, Top: hdr, Rows: rows, LineHeight: lh}
	m.list.Layout(v, f.p, f.moved)
	m.list.DrawBase(c, v, th, f.opaque)

	items := m.list.Items
	sel, hidden := m.list.Sel(), m.list.Hidden()
	from, to := m.list.Visible(rows)
	grouped := false
	for i := from; i < to; i++ {
		item := items[i]
		if !item.Kind.Selectable() && (item.Style == StyleNormal || item.Style == StyleHeader) {
			grouped = false
			continue
		}
		y := hdr + (i-from)*lh
		if !grouped {
			grouped = true
			head := i - 1
			for head >= 0 && items[head].Kind.Selectable() {
				head--
			}
			next := i + 1
			for next < len(items) && items[next].Kind.Selectable() {
				next++
			}
			if items[sel].Kind.Selectable() && !hidden && sel > head && sel < next {
				c.FillRect(l-97, y, 195, lh+xtra, f.fill(th.Selection))
			}
			if head >= 0 {
				c.Print(lh, l-84, y, items[head].Text, th.HeaderText)
			}
		}

		col := th.Normal
		switch {
		case (i == sel && !hidden) || !item.Kind.Selectable():
			col = th.Highlight
		case item.Kind == ItemAddBind || item.Kind == ItemAddWheel:
			col = th.Dim
		}
		printFit(c, lh, l+100, y, item.Text, col, r-l-11)
		if item.Style == StyleDivider {
			c.FillRect(l-100, y+lh, r+189-l, 1, th.LineBox)
		}
	}
}

func (m *Mapper) drawNarrow(f frame, l, r, hdr, rows int) {
	c, th, lh := f.c, f.theme, f.lh
	v := Viewport{Left: l, Right: r, Top: hdr, Rows: rows, LineHeight: lh}
	m.list.Layout(v, f.p, f.moved)
	m.list.DrawBase(c, v, th, f.opaque)

	sel, hidden := m.list.Sel(), m.list.Hidden()
	from, to := m.list.Visible(rows)
	for i := from; i < to; i++ {
		item := m.list.Items[i]
		y := hdr + (i-from)*lh
		col := th.HeaderText
		switch {
		case !item.Kind.Selectable():
		case item.Kind == ItemRemove || item.Kind == ItemResetMapping:
			col = th.Warn
		case i == sel && !hidden:
			col = th.Highlight
		case item.Kind == ItemAddBind || item.Kind == ItemAddWheel:
			col = th.Dim
		default:
			col = th.Normal
		}
		printFit(c, lh, l+16, y, item.Text, col, r-l-27)
		if item.Style == StyleDivider {
			c.FillRect(l, y+lh/2, r-12-l, 1, th.LineBox)
		}
	}
}
