package wlrender

// Resizer rebuilds both of a Terminal's ring grids when the compositor
// reports new pixel dimensions or scale, grounded on
// amantus-ai-vibetunnel's TerminalBuffer.Resize (copy-by-row reflow,
// zero-fill the tail) generalized from a single growable buffer to a
// pair of fixed-capacity ring grids.
type Resizer struct {
	ScrollbackLines int
	PTY             PTY
	Logger          Logger
}

func NewResizer(scrollbackLines int, pty PTY, logger Logger) *Resizer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Resizer{ScrollbackLines: scrollbackLines, PTY: pty, Logger: logger}
}

// Resize rebuilds the grids for a new surface size. The new scale and
// cell size are adopted first; cellCols/cellRows are then the pixel
// dimensions divided by the given cell size, and scale itself does not
// enter that division.
func (rs *Resizer) Resize(t *Terminal, widthPx, heightPx, scale, cellWidth, cellHeight int) {
	t.Scale = scale
	t.CellWidth = cellWidth
	t.CellHeight = cellHeight

	cellCols := widthPx / cellWidth
	cellRows := heightPx / cellHeight
	if cellCols < 1 {
		cellCols = 1
	}
	if cellRows < 1 {
		cellRows = 1
	}

	wasActiveNormal := t.Active == t.Normal

	newNormal := NewGrid(cellCols, cellRows+rs.ScrollbackLines, cellRows)
	newAlt := NewGrid(cellCols, cellRows, cellRows)

	reflow(t.Normal, newNormal)
	reflow(t.Alt, newAlt)

	t.Normal = newNormal
	t.Alt = newAlt
	if wasActiveNormal {
		t.Active = t.Normal
	} else {
		t.Active = t.Alt
	}

	rs.clampCursor(t)
	rs.markFullRefresh(t)
	rs.signalPTY(cellRows, cellCols, widthPx, heightPx)
}

// reflow copies min(oldRows, newRows) rows, each truncated to
// min(oldCols, newCols) cells with the tail zero-filled. This is column
// truncation, not a true line-wrap reflow. Old rows are simply dropped,
// which together with allocating a fresh Rows slice in NewGrid is the
// ring's equivalent of free_row.
func reflow(old, next *Grid) {
	rows := old.NumRows
	if next.NumRows < rows {
		rows = next.NumRows
	}
	cols := old.NumCols
	if next.NumCols < cols {
		cols = next.NumCols
	}
	for r := 0; r < rows; r++ {
		oldRow := old.Rows[old.wrap(old.Offset+r)]
		if oldRow == nil {
			continue
		}
		newRow := next.AllocRow(next.Offset+r, next.NumCols)
		copy(newRow.Cells[:cols], oldRow.Cells[:cols])
		newRow.Dirty = true
	}
}

// clampCursor keeps the cursor within the new active grid's bounds.
func (rs *Resizer) clampCursor(t *Terminal) {
	g := t.Active
	if t.Cursor.Row >= g.TermRows {
		t.Cursor.Row = g.TermRows - 1
	}
	if t.Cursor.Row < 0 {
		t.Cursor.Row = 0
	}
	if t.Cursor.Col >= g.NumCols {
		t.Cursor.Col = g.NumCols - 1
	}
	if t.Cursor.Col < 0 {
		t.Cursor.Col = 0
	}
}

// markFullRefresh marks the whole viewport of both grids damaged so the
// next frame repaints everything.
func (rs *Resizer) markFullRefresh(t *Terminal) {
	for _, g := range []*Grid{t.Normal, t.Alt} {
		for i := 0; i < g.TermRows; i++ {
			row := g.RowInView(i)
			for c := range row.Cells {
				row.Cells[c].Attrs &^= AttrClean
			}
			row.MarkDirty()
		}
	}
}

// signalPTY reports the new window size to the host OS. A failure is
// recoverable: the emulator will reconcile dimensions on its own next
// query, so we only log.
func (rs *Resizer) signalPTY(rows, cols, xpixel, ypixel int) {
	if rs.PTY == nil {
		return
	}
	if err := rs.PTY.SetWindowSize(rows, cols, xpixel, ypixel); err != nil {
		rs.Logger.Printf("resize: %v: %v", ErrWindowSizeSignalFailed, err)
	}
}
