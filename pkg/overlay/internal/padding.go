package internal

// Padding defines spacing on the sides of a button label.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}
