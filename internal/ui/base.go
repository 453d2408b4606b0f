package ui

// Base is embedded by the components for their size and focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// SetFocused selects the focused border style.
func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool          { return b.focused }

// ListHeight is the height left for rows after overhead lines.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
