package wlrender

import rw "github.com/mattn/go-runewidth"

// CellCompositor paints a single cell into a Surface. It never looks at
// any cell but the one it was given: scroll damage is realized separately
// by DamageLog before the compositor runs. Paint has no shared mutable
// state of its own, so many goroutines may call it concurrently on
// disjoint cells.
//
// Grounded on bubbletea's framebuffer.go Set/Background/Foreground
// shape, generalized from string-terminal escape sequences to pixel
// rects.
type CellCompositor struct {
	Font    Font
	Palette Palette
}

// PaintParams bundles the per-frame state a cell's appearance depends on
// beyond the cell itself.
type PaintParams struct {
	IsCursor   bool
	CursorSt   CursorStyle
	Selected   bool
	BlinkOn    bool
	CellWidth  int
	CellHeight int
}

// cellCols reports how many grid columns a glyph for wc occupies. When the
// font has no glyph for wc we still need a width to advance the cursor, so
// we fall back to go-runewidth; advancing by 1 column is the degenerate
// case of that fallback when runewidth itself reports 0 or less.
func cellCols(wc rune, g Glyph, haveGlyph bool) int {
	if haveGlyph && g.Cols > 0 {
		return g.Cols
	}
	if w := rw.RuneWidth(wc); w > 0 {
		return w
	}
	return 1
}

// Paint composites one cell into surf at pixel origin (x, y), returning
// the number of columns the cell's glyph occupies so the caller can
// advance past wide glyphs. A clean cell is left untouched and still
// reports that column count.
func (cc *CellCompositor) Paint(surf Surface, cell *Cell, x, y int, p PaintParams) int {
	glyph, haveGlyph := cc.glyphFor(cell.WC)
	cols := cellCols(cell.WC, glyph, haveGlyph)

	if cell.Clean() {
		return cols
	}

	fg, bg := cc.resolveColors(cell)

	// Triple-XOR reverse video: a block cursor inverts like AttrReverse
	// does, and selection inverts again, so all three compound via XOR
	// instead of a branch per combination.
	blockCursor := p.IsCursor && p.CursorSt == CursorBlock
	reverse := blockCursor != cell.has(AttrReverse)
	reverse = reverse != p.Selected
	if reverse {
		fg, bg = bg, fg
	}
	if cell.has(AttrDim) {
		fg = fg.Dim()
	}
	if blockCursor && cc.Palette.CursorText.Set() && cc.Palette.CursorCursor.Set() {
		fg, bg = cc.Palette.CursorText.Color(), cc.Palette.CursorCursor.Color()
	}

	rect := Rect{X: x, Y: y, W: p.CellWidth * cols, H: p.CellHeight}
	bgOp := OpSrc
	if cc.Palette.Alpha < 0xffff && !blockCursor {
		bgOp = OpOver
	}
	surf.FillRect(bgOp, bg, cc.Palette.Alpha, rect)

	blinkSuppressed := cell.has(AttrBlink) && !p.BlinkOn
	concealed := cell.has(AttrConceal)
	if haveGlyph && cell.WC != 0 && !blinkSuppressed && !concealed {
		surf.Composite(OpOver, glyph, fg, rect)
	}

	cc.paintDecoration(surf, cell, rect, p)
	cell.MarkClean()
	return cols
}

// paintDecoration draws underline/strikeout and non-block cursor shapes.
// The block cursor is already realized above via the reverse-video XOR;
// Underline and Bar styles paint an additional filled strip instead.
func (cc *CellCompositor) paintDecoration(surf Surface, cell *Cell, rect Rect, p PaintParams) {
	fg, _ := cc.resolveColors(cell)
	if cell.has(AttrUnderline) {
		surf.FillRect(OpOver, fg, 0xffff, lineRect(rect, cc.Font.Underline()))
	}
	if cell.has(AttrStrikethrough) {
		surf.FillRect(OpOver, fg, 0xffff, lineRect(rect, cc.Font.Strikeout()))
	}
	if !p.IsCursor {
		return
	}
	cursorColor := fg
	if cc.Palette.CursorCursor.Set() {
		cursorColor = cc.Palette.CursorCursor.Color()
	}
	switch p.CursorSt {
	case CursorUnderline:
		m := cc.Font.Underline()
		baseline := rect.Y + cc.Font.Extents().Ascent
		surf.FillRect(OpOver, cursorColor, 0xffff, Rect{X: rect.X, Y: baseline - m.Position - m.Thickness/2, W: rect.W, H: m.Thickness})
	case CursorBar:
		surf.FillRect(OpOver, cursorColor, 0xffff, Rect{X: rect.X, Y: rect.Y, W: 1, H: rect.H})
	}
}

func lineRect(cell Rect, m LineMetric) Rect {
	return Rect{X: cell.X, Y: cell.Y + m.Position, W: cell.W, H: m.Thickness}
}

func (cc *CellCompositor) glyphFor(wc rune) (Glyph, bool) {
	if cc.Font == nil {
		return Glyph{}, false
	}
	return cc.Font.GlyphFor(wc)
}

// resolveColors applies HaveFg/HaveBg against the palette defaults; a
// cell without an explicit color inherits the terminal's base palette.
func (cc *CellCompositor) resolveColors(cell *Cell) (fg, bg Color) {
	fg, bg = cc.Palette.Fg, cc.Palette.Bg
	if cell.has(AttrHaveFg) {
		fg = cell.Fg
	}
	if cell.has(AttrHaveBg) {
		bg = cell.Bg
	}
	return fg, bg
}
