package overlay

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/BrandonKowalski/overlay/pkg/overlay/i18n"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

// machineNames are the boot system modes offered for a disk image. The
// lower case first letter is the machine mode.
var machineNames = []string{
	"SVGA (Super Video Graphics Array)",
	"VGA (Video Graphics Array)",
	"EGA (Enhanced Graphics Adapter)",
	"CGA (Color Graphics Adapter)",
	"Tandy (Tandy Graphics Adapter)",
	"Hercules (Hercules Graphics Card)",
	"PCjr",
}

var programExts = []string{".EXE", ".COM", ".BAT"}

// StartMenu is the main screen: mountable images, boot and install entries
// and the programs found on the machine's drives.
type StartMenu struct {
	s    *Session
	list *MenuList

	fullscreen bool
	images     []Image
	exeCount   int
	fsCount    int
	multidrive bool
	popup      bool
	popupSel   int
}

func newStartMenu(s *Session, fullscreen bool) *StartMenu {
	m := &StartMenu{
		s:          s,
		list:       NewMenuList(s.clock, s.cfg),
		fullscreen: fullscreen,
	}
	m.refresh(true)
	if s.autoStart.Enabled && s.startup.set {
		switch s.startup.req.Kind {
		case RunBootOS:
			m.goToSubMenu(ItemBootOSList)
		case RunShell:
			m.goToSubMenu(ItemShellList)
		case RunBootImage:
			m.goToSubMenu(ItemBootImage)
		}
		if idx := m.indexByText(s.startup.name); idx >= 0 {
			m.list.ResetSel(idx, false)
		}
	}
	return m
}

func (m *StartMenu) OnEnter() { m.list.Open() }
func (m *StartMenu) OnExit()  {}

// refresh rebuilds the top list. The initial scan picks the first program;
// later scans keep the selection where it was.
func (m *StartMenu) refresh(initial bool) {
	mc := m.s.machine
	strict := m.s.cfg.StrictMode
	var items []MenuItem
	m.exeCount, m.fsCount = 0, 0
	cds, hds, bootable := 0, 0, false

	m.images = mc.Images()
	for i, img := range m.images {
		items = append(items, MenuItem{Kind: ItemMount, Text: img.Label, Ref: ImageRef(i)})
		if img.CD {
			cds++
		} else {
			hds++
		}
		if img.Bootable {
			bootable = true
		}
		m.fsCount++
	}
	add := func(kind ItemKind, msg string) {
		items = append(items, MenuItem{Kind: kind, Text: msg})
		m.fsCount++
	}
	if bootable {
		add(ItemBootImage, tr(msgMenuBootImage))
	}
	if !strict && len(mc.OSImages()) > 0 {
		add(ItemBootOSList, tr(msgMenuBootOS))
	}
	if !strict && len(mc.Shells()) > 0 {
		add(ItemShellList, tr(msgMenuRunShell))
	}
	if !strict && (mc.CanInstallOS() || (hds == 1 && cds == 1)) {
		add(ItemInstallOSSize, tr(msgMenuInstallOS))
	}
	if m.fsCount > 0 {
		items = append(items, blankItem())
	}

	programs := programList(mc.Programs())
	m.multidrive = false
	for i, prog := range programs {
		items = append(items, MenuItem{Kind: ItemRun, Text: prog, Ref: ProgramRef(i)})
		if !strings.HasPrefix(strings.ToUpper(prog), `C:\`) {
			m.multidrive = true
		}
	}
	m.exeCount = len(programs)
	if m.exeCount > 0 {
		items = append(items, blankItem())
	}

	sel := 0
	if m.fsCount > 0 && m.exeCount > 0 {
		sel = m.fsCount + 1
	}
	if len(items) == 0 {
		items = append(items, textItem(StyleNormal, tr(msgMenuNoExecutable)), blankItem())
		sel = 2
	}
	switch {
	case m.fullscreen && !strict:
		items = append(items, MenuItem{Kind: ItemCloseOSD, Text: tr(msgMenuCommandLine)})
	case mc.Running() && !strict:
		items = append(items, MenuItem{Kind: ItemCommandLine, Text: tr(msgMenuCommandLine)})
	}
	if !m.fullscreen || !hasSelectable(items) {
		items = append(items, MenuItem{Kind: ItemCloseOSD, Text: tr(msgMenuClose)})
	}
	if items[len(items)-1].Kind == ItemNone {
		items = items[:len(items)-1]
	}

	if initial {
		m.list.Reset(items, clamp(sel, 0, len(items)-1), false)
	} else {
		old := m.list.Sel()
		if old < len(items) {
			sel = old
		}
		m.list.Replace(items, clamp(sel, 0, len(items)-1))
	}
	m.list.Settle()
}

// programList keeps the runnable programs and sorts them by path.
func programList(all []string) []string {
	var out []string
	for _, p := range all {
		if slices.Contains(programExts, strings.ToUpper(path.Ext(p))) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}

func hasSelectable(items []MenuItem) bool {
	return slices.ContainsFunc(items, func(it MenuItem) bool { return it.Kind.Selectable() })
}

func (m *StartMenu) indexByText(text string) int {
	for i, it := range m.list.Items {
		switch it.Kind {
		case ItemRun, ItemBootOS, ItemBootMachine, ItemRunShell:
			if it.Text == text {
				return i
			}
		}
	}
	return -1
}

func (m *StartMenu) goToSubMenu(kind ItemKind) {
	for i, it := range m.list.Items {
		if it.Kind == kind {
			m.list.ResetSel(i, false)
			m.handle(ResultNone, kind, 0)
			return
		}
	}
	logger().Debug("Start menu entry missing", "kind", kind)
}

func (m *StartMenu) Input(ev Event) {
	if cmd, ok := m.list.Input(ev); ok {
		m.handle(cmd.Result, cmd.Kind, cmd.XChange)
	}
}

func (m *StartMenu) setPopup(show bool) {
	m.popup = show
	m.list.SetFrozen(show)
}

func (m *StartMenu) handle(res Result, kind ItemKind, xChange int) {
	if m.popup {
		if xChange != 0 {
			m.popupSel = 2
			if xChange < 0 {
				m.popupSel = 1
			}
		}
		if res == ResultCancel {
			m.setPopup(false)
		}
		if kind == ItemNone {
			return
		}
		if m.popupSel != 1 {
			m.setPopup(false)
			return
		}
	}

	item := m.list.Selected()
	if xChange != 0 {
		m.s.autoStart.Adjust(xChange)
	}
	last := m.list.Items[len(m.list.Items)-1].Kind

	switch {
	case kind == ItemMount:
		if err := m.s.machine.ToggleMount(int(item.Ref.(ImageRef))); err != nil {
			logger().Warn("Failed to toggle mount", "image", item.Text, "error", err)
		}
		m.refresh(false)
	case kind == ItemBootImage:
		m.machineList()
	case kind == ItemInstallOSSize:
		m.installSizeList()
	case kind == ItemSystemRefresh:
		m.s.rescan = true
	case res == ResultRefreshSystem:
		next := ItemShellList
		if len(m.list.Items) > 2 && m.list.Items[2].Kind == ItemBootOS {
			next = ItemBootOSList
		}
		m.handle(ResultNone, next, 0)
	case kind == ItemBootOSList:
		m.systemList(msgMenuSelectOS, ItemBootOS, m.s.machine.OSImages())
	case kind == ItemShellList:
		m.systemList(msgMenuSelectShell, ItemRunShell, m.s.machine.Shells())
	case ((res == ResultCancel && last == ItemCloseOSD) || res == ResultCloseKeyboard) && !m.fullscreen:
		m.run(ItemCloseOSD, item)
	case kind == ItemCancel || (res == ResultCancel && last != ItemCloseOSD):
		m.list.ResetSel(0, true)
		m.refresh(false)
	case kind != ItemNone:
		m.run(kind, item)
	case res == ResultChangeMounts:
		m.refresh(false)
	}
}

// run starts the chosen item, asking first when a program is already running.
func (m *StartMenu) run(kind ItemKind, item MenuItem) {
	if m.s.cfg.StrictMode {
		switch kind {
		case ItemBootOS, ItemInstallOS, ItemRunShell, ItemCommandLine:
			return
		case ItemCloseOSD:
			if m.fullscreen {
				return
			}
		}
	}

	if kind != ItemCloseOSD {
		if !m.popup && m.s.machine.Running() {
			m.popupSel = 0
			m.setPopup(true)
			return
		}
		req := m.request(kind, item)
		err := m.s.machine.Run(req)
		switch {
		case IsCancelled(err):
			logger().Debug("Start menu entry cancelled", "kind", req.Kind, "entry", item.Text)
			m.setPopup(false)
			return
		case err != nil:
			logger().Warn("Failed to run start menu entry", "kind", req.Kind, "entry", item.Text, "error", err)
		default:
			m.s.startup = startupChoice{req: req, name: item.Text, set: true}
			m.s.lastRun = m.s.clock.Now()
		}
		m.setPopup(false)
	} else if m.fullscreen {
		if err := m.s.machine.Run(RunRequest{Kind: RunCommandLine, AutoStart: m.s.autoStart}); err != nil {
			logger().Warn("Failed to go to the command line", "error", err)
		}
	}
	m.s.CloseOSD()
}

func (m *StartMenu) request(kind ItemKind, item MenuItem) RunRequest {
	req := RunRequest{AutoStart: m.s.autoStart}
	switch kind {
	case ItemRun:
		req.Kind = RunProgram
		req.Path = item.Text
	case ItemBootImage:
		req.Kind = RunBootImage
		req.Machine = m.s.machine.MachineMode()
	case ItemBootMachine:
		req.Kind = RunBootImage
		req.Machine = byte(item.Ref.(MachineRef))
	case ItemBootOS:
		req.Kind = RunBootOS
		req.Index = int(item.Ref.(SystemRef))
	case ItemInstallOS:
		req.Kind = RunInstallOS
		req.DiskMB = int(item.Ref.(DiskSizeRef))
	case ItemRunShell:
		req.Kind = RunShell
		req.Index = int(item.Ref.(SystemRef))
	case ItemCommandLine:
		req.Kind = RunCommandLine
	}
	return req
}

func (m *StartMenu) machineList() {
	items := []MenuItem{textItem(StyleHeader, tr(msgMenuSelectMachine)), blankItem()}
	for _, name := range machineNames {
		items = append(items, MenuItem{Kind: ItemBootMachine, Text: name, Ref: MachineRef(name[0] | 0x20)})
	}
	items = append(items, blankItem(), MenuItem{Kind: ItemCancel, Text: tr(msgMenuCancel)})

	want := m.s.machine.MachineMode()
	if isPCjrCart(m.images) {
		want = 'p'
	}
	m.list.Reset(items, 2, false)
	for i, it := range items {
		if ref, ok := it.Ref.(MachineRef); ok && byte(ref) == want {
			m.list.ResetSel(i, false)
			break
		}
	}
}

// isPCjrCart reports whether the image to boot is a PCjr cartridge dump.
func isPCjrCart(images []Image) bool {
	if len(images) == 0 {
		return false
	}
	img := images[0]
	for _, i := range images {
		if i.Mounted {
			img = i
			break
		}
	}
	ext := strings.ToUpper(path.Ext(img.Label))
	return ext == ".JRC" || ext == ".JTC"
}

func (m *StartMenu) installSizeList() {
	items := []MenuItem{
		textItem(StyleHeader, tr(msgMenuInstallSize)),
		blankItem(),
		textItem(StyleWarn, tr(msgMenuInstallWhere)),
	}
	target := m.s.machine.NewDiskPath()
	sel := 10
	if i := strings.LastIndexAny(target, `/\`); i >= 0 {
		items = append(items, textItem(StyleWarn, target[:i+1]))
		target = target[i+1:]
		sel = 11
	}
	items = append(items, textItem(StyleWarn, target), blankItem())

	// Sizes in 8 MB units, doubling up to 4 GB, then in 4 GB and 8 GB steps.
	for sz := 2; sz <= 64*1024/8; {
		mb := sz * 8
		size, unit := mb, "M"
		if mb >= 1024 {
			size, unit = mb/1024, "G"
		}
		text := trData(msgMenuDiskSize, map[string]any{"Size": fmt.Sprintf("%3d", size), "Unit": unit})
		items = append(items, MenuItem{Kind: ItemInstallOS, Text: text, Ref: DiskSizeRef(mb)})
		if mb == 2048 {
			items = append(items,
				blankItem(),
				textItem(StyleWarn, tr(msgMenuFAT32Warning)),
				textItem(StyleWarn, tr(msgMenuFAT32Note)),
				blankItem())
		}
		switch {
		case sz < 4096/8:
			sz += sz
		case sz < 32*1024/8:
			sz += 4096 / 8
		default:
			sz += 8192 / 8
		}
	}
	items = append(items, blankItem(), MenuItem{Kind: ItemInstallOS, Text: tr(msgMenuBootNoDisk), Ref: DiskSizeRef(0)})
	m.list.Reset(items, sel, false)
}

func (m *StartMenu) systemList(title *i18n.Message, kind ItemKind, names []string) {
	items := []MenuItem{textItem(StyleHeader, tr(title)), blankItem()}
	for i, name := range names {
		items = append(items, MenuItem{Kind: kind, Text: strings.TrimSuffix(name, path.Ext(name)), Ref: SystemRef(i)})
	}
	if m.s.machine.SystemCached() {
		items = append(items, blankItem(), MenuItem{Kind: ItemSystemRefresh, Text: tr(msgMenuRefreshList)})
	}
	m.list.Reset(items, 2, true)
	m.list.Settle()
}

func (m *StartMenu) Draw(f frame) {
	if cmd, ok := m.list.UpdateHeld(); ok {
		m.handle(cmd.Result, cmd.Kind, cmd.XChange)
	}

	c, p, th, lh := f.c, f.p, f.theme, f.lh
	w, h := c.Width(), c.Height()

	c.DrawBox(w/10, 5, w-w/5, lh+3, f.fill(th.Header), th.LineBox)
	c.DrawBox(8, lh+7, w-16, lh+3, f.fill(th.Header), th.LineBox)
	printCenteredOutlined(c, lh, 0, w, 7, tr(msgMenuTitle), th.MenuTitle)
	name := m.s.machine.ContentName()
	if name == "" {
		name = tr(msgMenuNoContent)
	}
	printCenteredOutlined(c, lh, 0, w, 7+lh+2, name, th.Content)

	inforow := 0
	if w > 319 {
		inforow = 1
	}
	hdr := lh*2 + 12
	rows := (h-hdr-f.ftr)/lh - inforow
	bot := hdr + rows*lh + 3
	if lh == 8 {
		bot--
	}
	v := Viewport{Left: 8, Right: w - 8, Top: hdr, Rows: rows, LineHeight: lh}
	m.list.Layout(v, p, f.moved)
	m.list.DrawBase(c, v, th, f.opaque)

	se := m.list.Sel()
	if m.list.Hidden() {
		se = -1
	}
	from, to := m.list.Visible(rows)
	for i := from; i < to; i++ {
		m.drawRow(c, th, lh, w, hdr+(i-from)*lh, i, i == se)
	}

	if inforow != 0 {
		m.drawInfoRow(f, w, bot)
	}
	if m.popup {
		m.drawPopup(f, w, h)
	}
}

func (m *StartMenu) drawRow(c Canvas, th Theme, lh, w, y, i int, selected bool) {
	item := m.list.Items[i]
	col := th.Normal
	if selected {
		col = th.Highlight
	}

	switch item.Kind {
	case ItemMount:
		label := tr(msgMenuMount)
		if ref := int(item.Ref.(ImageRef)); ref < len(m.images) && m.images[ref].Mounted {
			label = tr(msgMenuUnmount)
		}
		label += " "
		x := (w - textWidth(label+item.Text)) / 2
		c.Print(lh, x, y, label, col)
		c.Print(lh, x+textWidth(label), y, item.Text, col)
	case ItemRun, ItemBootOS, ItemBootMachine, ItemRunShell:
		text := item.Text
		if item.Kind == ItemRun && !m.multidrive && len(text) > 3 {
			text = text[3:]
		}
		x := (w - textWidth(text)) / 2
		c.Print(lh, x, y, text, col)
		if !selected {
			return
		}
		c.Print(lh, x-2*CharWidth, y, "*", th.White)
		after := x + textWidth(text) + CharWidth
		if m.s.autoStart.Enabled {
			c.Print(lh, after, y, "* "+tr(msgMenuSetAutoStart), th.White)
		} else {
			c.Print(lh, after, y, "*", th.White)
		}
	default:
		if item.Kind == ItemNone {
			switch item.Style {
			case StyleHeader:
				col = th.HeaderText
			case StyleWarn:
				col = th.Warn
			default:
				col = th.Normal
			}
		}
		printCentered(c, lh, 0, w, y, item.Text, col)
	}
}

// drawInfoRow draws the hint boxes under the list. Clicking or scrolling on
// the row adjusts auto start.
func (m *StartMenu) drawInfoRow(f frame, w, bot int) {
	c, p, th, lh := f.c, f.p, f.theme, f.lh
	box := f.fill(th.Header)
	auto := m.s.autoStart

	skip := ""
	switch {
	case auto.Enabled && auto.Skip > 0:
		skip = trCount(msgMenuSkipFrames, auto.Skip)
	case auto.Enabled:
		skip = tr(msgMenuComeBack)
	}

	switch {
	case w > 639:
		c.DrawBox(8, bot, w-319, lh+3, box, th.LineBox)
		printCenteredOutlined(c, lh, 8, w-319, bot+2, skip, th.ButtonText)
	case w > 320:
		c.DrawBox(8, bot, w-319, lh+3, box, th.LineBox)
	}

	if w < 640 && auto.Enabled {
		c.DrawBox(8, bot, w-16, lh+3, box, th.LineBox)
		printCenteredOutlined(c, lh, 0, w, bot+2, skip, th.ButtonText)
	} else {
		c.DrawBox(w-68, bot, 60, lh+3, box, th.LineBox)
		c.DrawBox(w-217, bot, 150, lh+3, box, th.LineBox)
		c.DrawBox(w-312, bot, 96, lh+3, box, th.LineBox)
		printCenteredOutlined(c, lh, w-68, 60, bot+2, "* "+tr(msgMenuHintRun), th.ButtonText)
		printCenteredOutlined(c, lh, w-217, 150, bot+2, "<> "+tr(msgMenuHintAutoStart), th.ButtonText)
		printCenteredOutlined(c, lh, w-312, 96, bot+2, "^v "+tr(msgMenuHintScroll), th.ButtonText)
	}

	if _, py := p.Pos(); py >= bot && py <= bot+lh+3 {
		if p.LeftUp() || p.WheelUp() {
			m.handle(ResultNone, ItemNone, 1)
		}
		if p.RightUp() || p.WheelDown() {
			m.handle(ResultNone, ItemNone, -1)
		}
	}
}

func (m *StartMenu) drawPopup(f frame, w, h int) {
	c, p, th, lh := f.c, f.p, f.theme, f.lh
	halfw := w / 2
	boxw := halfw/2 + 8
	if w < 640 {
		boxw = halfw - 16
	}
	c.DrawBox(halfw-boxw, h/2-lh*3, boxw*2, lh*6+8, internal.Solid(th.Header), th.LineBox)
	line1, line2 := tr(msgPopupReset1), tr(msgPopupReset2)
	if w < 320 {
		line1, line2 = tr(msgPopupResetShort1), tr(msgPopupResetShort2)
	}
	printCenteredOutlined(c, lh, 0, w, h/2-lh*2, line1, th.ButtonText)
	printCenteredOutlined(c, lh, 0, w, h/2-lh+2, line2, th.ButtonText)

	if p.RealMouse() {
		m.popupSel = 0
	}
	if drawButton(c, th, false, h/2+lh, lh, 1, 4, !p.RealMouse() && m.popupSel == 1, p, tr(msgButtonOK)) {
		m.popupSel = 1
	}
	if drawButton(c, th, false, h/2+lh, lh, 2, 4, !p.RealMouse() && m.popupSel == 2, p, tr(msgButtonCancel)) {
		m.popupSel = 2
	}
}
