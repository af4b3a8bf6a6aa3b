package wlrender

// Grid is a fixed-capacity circular row buffer. Logical row r of the
// emulator lives at index (Offset+r) mod NumRows; View is the viewport's
// top row. NumRows >= TermRows; the extra rows are scrollback. The
// alternate grid is constructed with NumRows == TermRows, i.e. no
// scrollback.
//
// Grounded on amantus-ai-vibetunnel's TerminalBuffer (lazy row slices,
// resize-by-copy) generalized into ring-indexed storage; the ring itself
// is not materialized as a growable list.
type Grid struct {
	Rows     []*Row // len == NumRows; entries may be nil until first use
	Offset   int    // write head
	View     int    // scroll position (viewport top)
	NumRows  int
	NumCols  int
	TermRows int // viewport height, <= NumRows
}

// NewGrid allocates a ring with the given capacity. Rows are NOT
// pre-allocated; they come into existence lazily via AllocRow.
func NewGrid(numCols, numRows, termRows int) *Grid {
	return &Grid{
		Rows:     make([]*Row, numRows),
		NumRows:  numRows,
		NumCols:  numCols,
		TermRows: termRows,
	}
}

func (g *Grid) wrap(i int) int {
	i %= g.NumRows
	if i < 0 {
		i += g.NumRows
	}
	return i
}

// RowAbs returns the row at absolute ring index i (mod NumRows), allocating
// it lazily if it has never been used.
func (g *Grid) RowAbs(i int) *Row {
	idx := g.wrap(i)
	if g.Rows[idx] == nil {
		g.Rows[idx] = NewRow(g.NumCols)
	}
	return g.Rows[idx]
}

// RowInView returns the row at view-relative index i, i.e. the row shown
// at viewport line i.
func (g *Grid) RowInView(i int) *Row {
	return g.RowAbs(g.View + i)
}

// RowLogical returns the row at emulator-relative index r, i.e. (Offset+r)
// mod NumRows, the row the terminal-emulator state machine addresses.
func (g *Grid) RowLogical(r int) *Row {
	return g.RowAbs(g.Offset + r)
}

// AllocRow forces allocation of the row at absolute index i, replacing any
// existing content. Used by Resizer when rebuilding a grid.
func (g *Grid) AllocRow(i, numCols int) *Row {
	row := NewRow(numCols)
	g.Rows[g.wrap(i)] = row
	return row
}

// FreeRow releases the row at absolute index i back to nil, allowing the
// backing array to be garbage collected on teardown or resize.
func (g *Grid) FreeRow(i int) {
	g.Rows[g.wrap(i)] = nil
}

// ViewEnd returns the absolute index of the last viewport row, i.e.
// (View + TermRows - 1) mod NumRows.
func (g *Grid) ViewEnd() int {
	return g.wrap(g.View + g.TermRows - 1)
}

// ViewWraps reports whether the viewport wraps past the top of the ring,
// i.e. viewEnd < View.
func (g *Grid) ViewWraps() bool {
	return g.ViewEnd() < g.View
}

// InView reports whether absolute row index abs currently falls inside the
// viewport, accounting for ring wrap.
func (g *Grid) InView(abs int) bool {
	abs = g.wrap(abs)
	end := g.ViewEnd()
	if g.ViewWraps() {
		return abs >= g.View || abs <= end
	}
	return abs >= g.View && abs <= end
}
