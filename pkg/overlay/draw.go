package overlay

import (
	"image/color"
	"log/slog"
	"unicode/utf8"

	"github.com/BrandonKowalski/overlay/pkg/overlay/internal"
)

func logger() *slog.Logger {
	return internal.GetInternalLogger()
}

// ARGB converts a 0xAARRGGBB value.
func ARGB(v uint32) color.NRGBA {
	return internal.ARGB(v)
}

// lineHeight is the text line height used on a canvas this tall.
func lineHeight(height int) int {
	if height >= 400 {
		return 14
	}
	return 8
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s) * CharWidth
}

// fit cuts s to at most maxw pixels.
func fit(s string, maxw int) string {
	if maxw <= 0 {
		return s
	}
	n := maxw / CharWidth
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func printFit(c Canvas, lh, x, y int, s string, col color.NRGBA, maxw int) {
	c.Print(lh, x, y, fit(s, maxw), col)
}

func printOutlined(c Canvas, lh, x, y int, s string, col, outline color.NRGBA) {
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		c.Print(lh, x+d[0], y+d[1], s, outline)
	}
	c.Print(lh, x, y, s, col)
}

func printCentered(c Canvas, lh, x, w, y int, s string, col color.NRGBA) {
	c.Print(lh, x+(w-textWidth(s))/2, y, s, col)
}

func printCenteredOutlined(c Canvas, lh, x, w, y int, s string, col color.NRGBA) {
	printOutlined(c, lh, x+(w-textWidth(s))/2, y, s, col, color.NRGBA{A: 0xFF})
}

// drawButtonAt draws a labelled button spanning x to r with its top at y and
// reports whether a real pointer hovers it while it is off.
func drawButtonAt(c Canvas, theme Theme, opaque bool, y, lh int, pad internal.Padding, x, r int, on bool, p *Pointer, label string) bool {
	px, py := p.Pos()
	bottom := y + lh + pad.Vertical()
	hover := p.RealMouse() && px >= x && px < r && py >= y && py < bottom
	fill, line := theme.ButtonOff, internal.Solid(theme.ButtonOn)
	switch {
	case on:
		fill, line = theme.ButtonOn, internal.Solid(theme.ButtonOff)
	case hover:
		fill = theme.ButtonHover
	}
	c.DrawBox(x, y, r-x, bottom-y, theme.Fill(fill, opaque), line)
	printCenteredOutlined(c, lh, x, r-x, y+pad.Top, label, theme.ButtonText)
	return hover && !on
}

// drawButton draws button i of n spread across the canvas width.
func drawButton(c Canvas, theme Theme, opaque bool, y, lh, i, n int, on bool, p *Pointer, label string) bool {
	w := c.Width()
	x := w*i/n + 2
	if i == 0 {
		x = 8
	}
	r := w*(i+1)/n - 2
	if i == n-1 {
		r = w - 8
	}
	return drawButtonAt(c, theme, opaque, y, lh, internal.UniformPadding(4), x, r, on, p, label)
}
