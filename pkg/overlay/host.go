package overlay

import (
	"image/color"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// CharWidth is the advance of one glyph. Every Canvas prints fixed width.
const CharWidth = 8

// Canvas is the drawing surface the overlay renders onto each frame. Colours
// are straight alpha and blended over what the frame already holds.
type Canvas interface {
	Width() int
	Height() int
	// Ratio is the display aspect ratio of the frame, which may differ from
	// Width/Height when pixels are not square.
	Ratio() float64

	FillRect(x, y, w, h int, c color.NRGBA)
	// DrawBox fills a rectangle with rounded corners and outlines it.
	DrawBox(x, y, w, h int, fill, line color.NRGBA)
	FillCircle(cx, cy, r int, c color.NRGBA)
	// FillRing fills the area between two concentric circles.
	FillRing(cx, cy, inner, outer int, c color.NRGBA)
	// FillWedge fills the part of a ring between two angles in radians,
	// measured clockwise from the positive x axis with y pointing down.
	FillWedge(cx, cy, inner, outer int, from, to float64, c color.NRGBA)
	// Print draws s with its top left corner at (x, y), advancing CharWidth
	// per glyph, on a text line lh pixels high.
	Print(lh, x, y int, s string, c color.NRGBA)
	DrawCursor(x, y, scale int)
}

// Image is one disk or CD image the machine knows about.
type Image struct {
	Label    string
	Mounted  bool
	CD       bool
	Bootable bool
}

// RunKind says what a run request starts.
type RunKind uint8

const (
	RunProgram RunKind = iota
	RunBootImage
	RunBootOS
	RunInstallOS
	RunShell
	RunCommandLine
)

func (k RunKind) String() string {
	switch k {
	case RunProgram:
		return "program"
	case RunBootImage:
		return "boot_image"
	case RunBootOS:
		return "boot_os"
	case RunInstallOS:
		return "install_os"
	case RunShell:
		return "shell"
	case RunCommandLine:
		return "command_line"
	default:
		return "unknown"
	}
}

// AutoStart is the remembered start choice. Skip is the number of frames to
// run before showing output on the next automatic start.
type AutoStart struct {
	Enabled bool
	Skip    int
}

// Adjust applies one auto start step. A step right enables auto start, or
// once enabled skips more frames; a step left skips fewer frames and turns
// auto start off when the count would drop below zero.
func (a *AutoStart) Adjust(change int) {
	switch {
	case change > 0 && a.Enabled:
		a.Skip += skipStep(a.Skip, false)
	case change > 0:
		a.Enabled = true
	case change < 0:
		a.Skip -= skipStep(a.Skip, true)
	}
	if a.Skip < 0 {
		a.Enabled = false
		a.Skip = 0
	}
}

func skipStep(skip int, down bool) int {
	if down {
		skip--
	}
	switch {
	case skip < 50:
		return 10
	case skip < 150:
		return 25
	case skip < 300:
		return 50
	}
	return 100
}

// RunRequest is what the start menu asks the machine to run.
type RunRequest struct {
	Kind      RunKind
	Path      string // Program path for RunProgram
	Index     int    // OS image or shell index
	Machine   byte   // Machine mode letter for RunBootImage
	DiskMB    int    // New disk size for RunInstallOS, 0 for none
	AutoStart AutoStart
}

// Machine is the emulated computer the overlay sits on top of. All calls
// happen on the frame goroutine.
type Machine interface {
	ContentName() string
	Running() bool

	Images() []Image
	ToggleMount(index int) error
	Programs() []string
	OSImages() []string
	Shells() []string
	CanInstallOS() bool
	// NewDiskPath is where an OS install creates its hard disk image.
	NewDiskPath() string
	// SystemCached reports whether the OS and shell lists come from a cache
	// a rescan could refresh.
	SystemCached() bool
	RescanSystem()
	MachineMode() byte
	// Run starts req. An error wrapping ErrCancelled leaves the menu open.
	Run(req RunRequest) error
	// Exit ends the session, as when the game ended prompt runs out.
	Exit()

	// Dispatch delivers an input event to the running program.
	Dispatch(ev Event)
	KeyDown(k constants.Key) bool
	ReleaseKeys()
}
