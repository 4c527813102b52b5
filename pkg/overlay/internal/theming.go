package internal

import (
	"image/color"

	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// Theme defines the colours of every overlay screen. A colour whose alpha is
// zero is blended with the theme's BlendAlpha, or drawn opaque in fullscreen.
type Theme struct {
	Selection  color.NRGBA // Selected row and scrollbar thumb
	Scroll     color.NRGBA // Scrollbar track
	Menu       color.NRGBA // List background
	Header     color.NRGBA // Title and info boxes
	StartMenu  color.NRGBA // Fullscreen background
	MenuTitle  color.NRGBA
	Content    color.NRGBA // Content name under the title
	LineBox    color.NRGBA // Box outlines and separators
	Highlight  color.NRGBA // Selected row text
	Normal     color.NRGBA // Selectable row text
	Dim        color.NRGBA // "Add" rows
	White      color.NRGBA
	Warn       color.NRGBA
	HeaderText color.NRGBA

	ButtonOff   color.NRGBA
	ButtonOn    color.NRGBA
	ButtonHover color.NRGBA
	ButtonText  color.NRGBA

	Key        color.NRGBA
	KeyHover   color.NRGBA
	KeyPress   color.NRGBA
	KeyHeld    color.NRGBA
	KeyOutline color.NRGBA
	KeyText    color.NRGBA

	BlendAlpha uint8
}

// ARGB converts a 0xAARRGGBB value.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// DefaultTheme returns the stock overlay palette.
func DefaultTheme() Theme {
	return Theme{
		Selection:  ARGB(0x117EB7),
		Scroll:     ARGB(0x093F5B),
		Menu:       ARGB(0x1A1E20),
		Header:     ARGB(0x582204),
		StartMenu:  ARGB(0xFF111111),
		MenuTitle:  ARGB(0xFFFBD655),
		Content:    ARGB(0xFFFFAB91),
		LineBox:    ARGB(0xFFFF7126),
		Highlight:  ARGB(0xFFBDCDFB),
		Normal:     ARGB(0xFF4DCCF5),
		Dim:        ARGB(0xFF4B7A93),
		White:      ARGB(0xFFFFFFFF),
		Warn:       ARGB(0xFFFF7126),
		HeaderText: ARGB(0xFF9ECADE),

		ButtonOff:   ARGB(0x5F3B27),
		ButtonOn:    ARGB(0xAB6037),
		ButtonHover: ARGB(0x895133),
		ButtonText:  ARGB(0xFFFBC6A3),

		Key:        ARGB(0x5F3B27),
		KeyHover:   ARGB(0xAB6037),
		KeyPress:   ARGB(0xE46E2E),
		KeyHeld:    ARGB(0xC9CB35),
		KeyOutline: ARGB(0x000000),
		KeyText:    ARGB(0xFFF8EEE8),

		BlendAlpha: constants.DefaultMenuAlpha,
	}
}

// Fill resolves a theme colour for drawing. Colours without alpha take the
// blend alpha, or full opacity when opaque is set.
func (t Theme) Fill(c color.NRGBA, opaque bool) color.NRGBA {
	switch {
	case opaque:
		c.A = 0xFF
	case c.A == 0:
		c.A = t.BlendAlpha
	}
	return c
}

// Solid returns c at full opacity.
func Solid(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}
