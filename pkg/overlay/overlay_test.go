package overlay

import (
	"image/color"
	"testing"
	"time"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

type inputKey struct {
	port   uint8
	device constants.Device
	index  uint8
	id     uint8
}

type fakeSource map[inputKey]int16

func (f fakeSource) Poll(port uint8, device constants.Device, index, id uint8) int16 {
	return f[inputKey{port, device, index, id}]
}

func (f fakeSource) joy(id uint8, v int16) {
	f[inputKey{0, constants.DeviceJoypad, 0, id}] = v
}

func (f fakeSource) stick(index, id uint8, v int16) {
	f[inputKey{0, constants.DeviceAnalog, index, id}] = v
}

type fakeMachine struct {
	programs []string
	images   []Image
	running  bool
	runErr   error

	runs     []RunRequest
	events   []Event
	released int
	exited   bool
}

func (m *fakeMachine) ContentName() string        { return "TEST.ZIP" }
func (m *fakeMachine) Running() bool              { return m.running }
func (m *fakeMachine) Images() []Image            { return m.images }
func (m *fakeMachine) Programs() []string         { return m.programs }
func (m *fakeMachine) OSImages() []string         { return nil }
func (m *fakeMachine) Shells() []string           { return nil }
func (m *fakeMachine) CanInstallOS() bool         { return false }
func (m *fakeMachine) NewDiskPath() string        { return `C:\DISK.IMG` }
func (m *fakeMachine) SystemCached() bool         { return false }
func (m *fakeMachine) RescanSystem()              {}
func (m *fakeMachine) MachineMode() byte          { return 's' }
func (m *fakeMachine) Exit()                      { m.exited = true }
func (m *fakeMachine) Dispatch(ev Event)          { m.events = append(m.events, ev) }
func (m *fakeMachine) KeyDown(constants.Key) bool { return false }
func (m *fakeMachine) ReleaseKeys()               { m.released++ }

func (m *fakeMachine) ToggleMount(i int) error {
	m.images[i].Mounted = !m.images[i].Mounted
	return nil
}

func (m *fakeMachine) Run(req RunRequest) error {
	m.runs = append(m.runs, req)
	return m.runErr
}

type fakeCanvas struct {
	w, h   int
	prints []string
}

func (c *fakeCanvas) Width() int                 { return c.w }
func (c *fakeCanvas) Height() int                { return c.h }
func (c *fakeCanvas) Ratio() float64             { return float64(c.w) / float64(c.h) }
func (c *fakeCanvas) DrawCursor(x, y, scale int) {}

func (c *fakeCanvas) FillRect(x, y, w, h int, col color.NRGBA)                              {}
func (c *fakeCanvas) DrawBox(x, y, w, h int, fill, line color.NRGBA)                        {}
func (c *fakeCanvas) FillCircle(cx, cy, r int, col color.NRGBA)                             {}
func (c *fakeCanvas) FillRing(cx, cy, inner, outer int, col color.NRGBA)                    {}
func (c *fakeCanvas) FillWedge(cx, cy, inner, outer int, from, to float64, col color.NRGBA) {}

func (c *fakeCanvas) Print(lh, x, y int, s string, col color.NRGBA) {
	c.prints = append(c.prints, s)
}

type harness struct {
	s     *Session
	src   fakeSource
	mc    *fakeMachine
	clock *internal.ManualClock
	table *BindingTable
}

func newHarness(t *testing.T, mc *fakeMachine, presets ...Preset) *harness {
	t.Helper()
	h := &harness{
		src:   fakeSource{},
		mc:    mc,
		clock: NewManualClock(),
		table: NewBindingTable(presets),
	}
	s, err := NewSession(h.src, mc, h.table, h.clock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	h.s = s
	return h
}

// frame runs one host frame after moving the clock forward by d.
func (h *harness) frame(d time.Duration) {
	h.clock.Advance(d)
	h.s.OnFrameInput()
	h.s.OnFrameDraw(&fakeCanvas{w: 640, h: 480})
}

// post delivers ev to the open screen at the next frame.
func (h *harness) post(ev Event) {
	h.s.Post(ev)
	h.frame(16 * time.Millisecond)
}

func keyUp(k constants.Key) Event {
	return Event{Type: constants.EventKeyUp, Value: int(k)}
}

func keyDown(k constants.Key) Event {
	return Event{Type: constants.EventKeyDown, Value: int(k)}
}

func handler[T any](t *testing.T, s *Session) T {
	t.Helper()
	h, ok := s.osd.screens.Handler()
	if !ok {
		t.Fatal("no screen is open")
	}
	v, ok := h.(T)
	if !ok {
		t.Fatalf("open screen is %T", h)
	}
	return v
}
