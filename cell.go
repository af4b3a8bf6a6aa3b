package wlrender

// Attrs is a bitmask of per-cell rendering attributes, grounded on
// amantus-ai-vibetunnel's BufferCell.Flags byte (pkg/terminal/buffer.go)
// but widened to cover every SGR-adjacent flag this renderer cares
// about.
type Attrs uint16

const (
	AttrBold Attrs = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrBlink
	AttrReverse
	AttrDim
	AttrConceal
	AttrHaveFg
	AttrHaveBg
	AttrClean
	AttrURL
)

// Cell is one character slot in the grid: a code point plus attributes and
// the colors that apply when HaveFg/HaveBg are set.
type Cell struct {
	WC    rune
	Attrs Attrs
	Fg    Color
	Bg    Color
}

func (c Cell) has(a Attrs) bool { return c.Attrs&a != 0 }

// Clean reports whether the cell's pixel region already matches its
// current attrs.
func (c Cell) Clean() bool { return c.has(AttrClean) }

// MarkClean sets the Clean bit. Called by CellCompositor on a successful
// paint and nowhere else.
func (c *Cell) MarkClean() { c.Attrs |= AttrClean }

// Set replaces the code point and/or attributes and clears Clean, per the
// invariant "mutation of any attribute field or wc must clear clean."
// Colors are left untouched when HaveFg/HaveBg stay unset by the caller.
func (c *Cell) Set(wc rune, attrs Attrs) {
	c.WC = wc
	c.Attrs = attrs &^ AttrClean
}

// SetFg sets the foreground color and the HaveFg flag, clearing Clean.
func (c *Cell) SetFg(col Color) {
	c.Fg = col
	c.Attrs |= AttrHaveFg
	c.Attrs &^= AttrClean
}

// SetBg sets the background color and the HaveBg flag, clearing Clean.
func (c *Cell) SetBg(col Color) {
	c.Bg = col
	c.Attrs |= AttrHaveBg
	c.Attrs &^= AttrClean
}

// Reset clears a cell back to a blank space with no attributes, the state
// freshly allocated or erased rows are filled with.
func (c *Cell) Reset() {
	*c = Cell{WC: ' '}
}
