package main

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/overlay/pkg/overlay"
	"github.com/BrandonKowalski/overlay/pkg/overlay/canvas"
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

const maxLogLines = 12

// demoMachine stands in for the emulator. Programs "run" until F10 is
// pressed, and every input event that reaches it is listed on screen.
type demoMachine struct {
	programs []string
	images   []overlay.Image
	osImages []string
	shells   []string
	cached   bool
	mode     byte

	running string
	ended   bool
	held    map[constants.Key]bool
	log     []string
	exit    func()
}

func newDemoMachine(exit func()) *demoMachine {
	return &demoMachine{
		programs: []string{`C:\GAME\GAME.EXE`, `C:\GAME\SETUP.EXE`, `C:\UTIL\EDIT.COM`},
		images: []overlay.Image{
			{Label: "GAME.IMG", Mounted: true},
			{Label: "GAMECD.ISO", CD: true},
			{Label: "BOOTDISK.IMG", Bootable: true},
		},
		osImages: []string{"WIN98.IMG"},
		shells:   []string{"Windows 3.11"},
		cached:   true,
		mode:     's',
		held:     make(map[constants.Key]bool),
		exit:     exit,
	}
}

func (m *demoMachine) ContentName() string     { return "DEMO.ZIP" }
func (m *demoMachine) Running() bool           { return m.running != "" }
func (m *demoMachine) Images() []overlay.Image { return m.images }
func (m *demoMachine) Programs() []string      { return m.programs }
func (m *demoMachine) OSImages() []string      { return m.osImages }
func (m *demoMachine) Shells() []string        { return m.shells }
func (m *demoMachine) CanInstallOS() bool      { return true }
func (m *demoMachine) NewDiskPath() string     { return `C:\HDD.IMG` }
func (m *demoMachine) SystemCached() bool      { return m.cached }
func (m *demoMachine) MachineMode() byte       { return m.mode }
func (m *demoMachine) Exit()                   { m.exit() }

func (m *demoMachine) RescanSystem() {
	m.cached = false
	m.record("rescan system")
}

func (m *demoMachine) ToggleMount(i int) error {
	if i < 0 || i >= len(m.images) {
		return fmt.Errorf("no image %d", i)
	}
	m.images[i].Mounted = !m.images[i].Mounted
	m.record(fmt.Sprintf("mount %s: %v", m.images[i].Label, m.images[i].Mounted))
	return nil
}

func (m *demoMachine) Run(req overlay.RunRequest) error {
	switch req.Kind {
	case overlay.RunProgram:
		m.running = req.Path
	case overlay.RunBootImage:
		m.mode = req.Machine
		m.running = fmt.Sprintf("boot machine %c", req.Machine)
	case overlay.RunBootOS:
		if req.Index < 0 || req.Index >= len(m.osImages) {
			return fmt.Errorf("no OS image %d", req.Index)
		}
		m.running = m.osImages[req.Index]
	case overlay.RunInstallOS:
		m.running = fmt.Sprintf("install OS on a %d MB disk", req.DiskMB)
	case overlay.RunShell:
		if req.Index < 0 || req.Index >= len(m.shells) {
			return fmt.Errorf("no shell %d", req.Index)
		}
		m.running = m.shells[req.Index]
	default:
		m.running = req.Kind.String()
	}
	m.ended = false
	m.record("run " + m.running)
	return nil
}

func (m *demoMachine) Dispatch(ev overlay.Event) {
	switch ev.Type {
	case constants.EventKeyDown:
		m.held[ev.Key()] = true
		if ev.Key() == constants.KeyF10 && m.Running() {
			m.record("exit " + m.running)
			m.running = ""
			m.ended = true
			return
		}
	case constants.EventKeyUp:
		delete(m.held, ev.Key())
	}
	m.record(ev.String())
}

func (m *demoMachine) KeyDown(k constants.Key) bool { return m.held[k] }

func (m *demoMachine) ReleaseKeys() {
	clear(m.held)
}

// takeEnded reports whether the running program exited since the last call.
func (m *demoMachine) takeEnded() bool {
	ended := m.ended
	m.ended = false
	return ended
}

func (m *demoMachine) record(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

var (
	screenColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xAA, A: 0xFF}
	textColor   = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
)

// draw paints the machine's screen. With a background the screen stays
// transparent.
func (m *demoMachine) draw(c *canvas.Buffer, background bool) {
	if background {
		c.Clear(color.NRGBA{})
	} else {
		c.Clear(screenColor)
	}

	const lh = 14
	title := "No program running"
	if m.Running() {
		title = m.running + "  (F10 ends it)"
	}
	c.Print(lh, canvas.CharWidth, lh, title, textColor)
	for i, line := range m.log {
		c.Print(lh, canvas.CharWidth, lh*(i+3), line, textColor)
	}
}
