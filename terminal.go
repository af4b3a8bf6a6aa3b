package wlrender

// Coord is a grid-space coordinate: Row is an absolute ring index (mod
// NumRows), not a viewport-relative one. Selection.Start/End are expressed
// in this space so that scrolling the viewport does not by itself
// invalidate them; Cursor, by contrast, is Offset-relative.
type Coord struct {
	Row, Col int
}

// Selection is the closed interval between two grid coordinates, anchored
// in the grid rather than the viewport.
type Selection struct {
	Active     bool
	Start, End Coord
}

// normalized returns Start/End ordered so Start <= End lexicographically
// by (row, col); membership tests require this ordering.
func (s Selection) normalized() (start, end Coord) {
	start, end = s.Start, s.End
	if start.Row > end.Row || (start.Row == end.Row && start.Col > end.Col) {
		start, end = end, start
	}
	return start, end
}

// Contains reports whether absolute grid coordinate (row, col) falls
// inside the selection.
func (s Selection) Contains(row, col int) bool {
	if !s.Active {
		return false
	}
	start, end := s.normalized()
	switch {
	case start.Row == end.Row:
		return row == start.Row && col >= start.Col && col <= end.Col
	case row == start.Row:
		return col >= start.Col
	case row == end.Row:
		return col <= end.Col
	default:
		return row > start.Row && row < end.Row
	}
}

// Terminal ties together the two ring grids, cursor, selection, palette
// and pixel geometry a Renderer needs to produce a frame. It is the
// rendering core's top-level handle, constructed with NewTerminal the way
// bubbletea's Program was constructed with NewProgram and a list of
// ProgramOptions.
type Terminal struct {
	Normal *Grid
	Alt    *Grid
	Active *Grid // points at Normal or Alt

	Cursor    Cursor
	Selection Selection
	Palette   Palette

	CellWidth, CellHeight int
	Scale                 int

	Flash bool

	Config Config
}

// NewTerminal builds a Terminal with termCols x termRows viewport cells,
// applying opts over the library defaults.
//
//	term := NewTerminal(cols, rows, WithWorkers(4), WithScrollback(1000))
func NewTerminal(termCols, termRows int, opts ...Option) *Terminal {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	normal := NewGrid(termCols, termRows+cfg.ScrollbackLines, termRows)
	alt := NewGrid(termCols, termRows, termRows)

	t := &Terminal{
		Normal:     normal,
		Alt:        alt,
		Active:     normal,
		Palette:    cfg.Palette,
		CellWidth:  1,
		CellHeight: 1,
		Scale:      1,
		Config:     cfg,
	}
	t.Cursor.Style = cfg.CursorStyle
	t.Cursor.Hidden = cfg.HideCursor
	return t
}

// EnterAlt switches the active grid to the alternate screen, mirroring
// the escape-sequence-driven mode switch a real emulator performs (the
// escape parser itself is out of scope; callers flip this directly).
func (t *Terminal) EnterAlt() {
	t.Active = t.Alt
}

// LeaveAlt switches the active grid back to the normal screen.
func (t *Terminal) LeaveAlt() {
	t.Active = t.Normal
}

// cursorAbs returns the cursor's absolute ring row index in the active
// grid: (offset + cursor.row) mod num_rows.
func (t *Terminal) cursorAbs() int {
	g := t.Active
	idx := g.Offset + t.Cursor.Row
	idx %= g.NumRows
	if idx < 0 {
		idx += g.NumRows
	}
	return idx
}

// cursorVisible reports whether the cursor's absolute row currently falls
// within the viewport, with wrap-awareness.
func (t *Terminal) cursorVisible() bool {
	return t.Active.InView(t.cursorAbs())
}
