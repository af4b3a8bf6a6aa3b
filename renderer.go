package wlrender

import (
	"context"
)

// flashTintAlpha is the blend weight of the full-surface flash wash.
const flashTintAlpha = 0x4000

// lastCursor remembers where the cursor was painted last frame, so the
// next frame can erase it before deciding whether to repaint it.
type lastCursor struct {
	valid bool
	abs   Coord
}

// Renderer drives one frame at a time against a Terminal: buffer
// acquisition, scroll-damage realization, worker dispatch, cursor
// overlay, and compositor commit. Grounded on the flush()/repaint() shape
// of bubbletea's ferocious_renderer.go and cursed_renderer.go, adapted
// from a line-buffered terminal writer into a pixel/Wayland frame
// protocol.
type Renderer struct {
	Term       *Terminal
	Pool       BufferPool
	Surface    CompositorSurface
	Workers    *WorkerPool
	Damage     *DamageLog
	Blink      *BlinkClock
	Compositor *CellCompositor
	Logger     Logger

	last       lastCursor
	flashJustEnded bool
	haveBuffer bool
}

func NewRenderer(term *Terminal, pool BufferPool, surf CompositorSurface, workers *WorkerPool, damage *DamageLog, blink *BlinkClock, font Font, logger Logger) *Renderer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Renderer{
		Term:       term,
		Pool:       pool,
		Surface:    surf,
		Workers:    workers,
		Damage:     damage,
		Blink:      blink,
		Compositor: &CellCompositor{Font: font, Palette: term.Palette},
		Logger:     logger,
	}
}

// RenderFrame runs exactly one frame of the render protocol. It returns
// nil when a frame was committed, when the "all clean, nothing to do"
// early return fired, and when no buffer could be acquired (that case is
// logged with ErrBufferAcquireFailed); it returns an error only when ctx
// ends while waiting on the worker fence. The caller distinguishes the
// nil cases only if it
// cares, by inspecting CompositorSurface side effects directly, since
// Renderer itself tracks no separate "committed" flag.
func (r *Renderer) RenderFrame(ctx context.Context) error {
	grid := r.Term.Active

	// 1. Acquire a buffer.
	width := grid.NumCols * r.Term.CellWidth
	height := grid.TermRows * r.Term.CellHeight
	buf, ok := r.Pool.Acquire(width, height, 1)
	if !ok {
		r.Logger.Printf("render: %v", ErrBufferAcquireFailed)
		return nil
	}
	pixelSurf := r.surfaceFor(buf)

	// 2. Compute all_clean before anything mutates damage state.
	allClean := len(r.Damage.Pending()) == 0

	// 3. Erase previous cursor if it moved and its cell is still clean. This
	// is a direct single-cell repaint, not a row-dirty dispatch: a cursor
	// that stays in place does not by itself force a commit.
	cur := r.Term.cursorAbs()
	curCoord := Coord{Row: cur, Col: r.Term.Cursor.Col}
	if r.last.valid {
		row := grid.RowAbs(r.last.abs.Row)
		if r.last.abs.Col < len(row.Cells) && r.last.abs != curCoord {
			cell := &row.Cells[r.last.abs.Col]
			if cell.Clean() {
				cell.Attrs &^= AttrClean
				viewRow := (r.last.abs.Row - grid.View + grid.NumRows) % grid.NumRows
				cellX, cellY := r.last.abs.Col*r.Term.CellWidth, viewRow*r.Term.CellHeight
				r.Compositor.Paint(pixelSurf, cell, cellX, cellY, PaintParams{
					Selected:   r.Term.Selection.Contains(r.last.abs.Row, r.last.abs.Col),
					BlinkOn:    r.Blink.Phase() == BlinkOn,
					CellWidth:  r.Term.CellWidth,
					CellHeight: r.Term.CellHeight,
				})
				r.Surface.Damage(cellX, cellY, r.Term.CellWidth, r.Term.CellHeight)
			}
		}
		if r.last.abs != curCoord {
			allClean = false
		}
	} else if !r.Term.Cursor.Hidden && r.Term.cursorVisible() {
		allClean = false
	}

	// 4. Flash handling: repaint margins, force full refresh.
	newBuffer := !r.haveBuffer
	if r.Term.Flash || newBuffer || r.flashJustEnded {
		r.markFullDamage(grid)
		r.Surface.Damage(0, 0, width, height)
		allClean = false
	}
	// A flash frame leaves its tint in the buffer, so the frame after it
	// needs a full refresh too.
	r.flashJustEnded = r.Term.Flash
	r.haveBuffer = true

	// 5. Apply scroll damage, reporting each scrolled band as damaged.
	for _, rec := range r.Damage.Pending() {
		if rec.Top < grid.TermRows {
			r.Surface.Damage(0, rec.Top*r.Term.CellHeight, width, (grid.TermRows-rec.Top)*r.Term.CellHeight)
		}
	}
	r.Damage.Apply(pixelSurf, grid.TermRows, r.Term.CellHeight)

	// 6. Dispatch dirty rows.
	var dirtyRows []int
	for i := 0; i < grid.TermRows; i++ {
		if grid.RowInView(i).Dirty {
			dirtyRows = append(dirtyRows, i)
			allClean = false
			r.Surface.Damage(0, i*r.Term.CellHeight, width, r.Term.CellHeight)
		}
	}
	// Row dispatch paints every unclean cell of a dirty row without cursor
	// decoration (the job's cursor is hidden); the cursor cell gets its
	// decoration separately, after the fence (step 10).
	job := RenderJob{
		Grid:       grid,
		Surf:       pixelSurf,
		CellWidth:  r.Term.CellWidth,
		CellHeight: r.Term.CellHeight,
		Cursor:     Cursor{Row: -1, Col: -1, Hidden: true},
		BlinkOn:    r.Blink.Phase() == BlinkOn,
		Selected:   r.Term.Selection.Contains,
	}
	r.Workers.Dispatch(job, dirtyRows)

	// 7. Recompute blink activity.
	r.Blink.Reconcile(r.anyVisibleBlink(grid))

	// 8. Decide cursor visibility.
	visible := r.Term.cursorVisible()

	// 9. Fence.
	if err := r.Workers.Fence(ctx); err != nil {
		return err
	}

	// 10. Paint cursor if visible.
	if visible && !r.Term.Cursor.Hidden {
		row := grid.RowAbs(cur)
		if r.Term.Cursor.Col < len(row.Cells) {
			cell := &row.Cells[r.Term.Cursor.Col]
			cell.Attrs &^= AttrClean
			viewRow := (cur - grid.View + grid.NumRows) % grid.NumRows
			cellX, cellY := r.Term.Cursor.Col*r.Term.CellWidth, viewRow*r.Term.CellHeight
			r.Compositor.Paint(pixelSurf, cell, cellX, cellY, PaintParams{
				IsCursor:   true,
				CursorSt:   r.Term.Cursor.Style,
				Selected:   r.Term.Selection.Contains(cur, r.Term.Cursor.Col),
				BlinkOn:    r.Blink.Phase() == BlinkOn,
				CellWidth:  r.Term.CellWidth,
				CellHeight: r.Term.CellHeight,
			})
			if !allClean {
				r.Surface.Damage(cellX, cellY, r.Term.CellWidth, r.Term.CellHeight)
			}
			r.last = lastCursor{valid: true, abs: curCoord}
		}
	} else {
		r.last.valid = false
	}

	// 11. Early return on an unchanged frame.
	if allClean {
		buf.Busy = false
		return nil
	}

	// 12. Flash tint: a translucent yellow wash over the whole surface.
	if r.Term.Flash {
		pixelSurf.FillRect(OpOver, RGB(0xff, 0xe0, 0x40), flashTintAlpha, Rect{W: width, H: height})
		r.Surface.Damage(0, 0, width, height)
	}

	// 13. Commit.
	buf.Busy = true
	r.Surface.Attach(buf, 0, 0)
	r.Surface.SetBufferScale(r.Term.Scale)
	r.Surface.Commit()
	r.Surface.FrameCallback()
	return nil
}

// markFullDamage marks every row in the viewport dirty and clears every
// cell's Clean bit, used for flash and first-frame refreshes.
func (r *Renderer) markFullDamage(grid *Grid) {
	for i := 0; i < grid.TermRows; i++ {
		row := grid.RowInView(i)
		for c := range row.Cells {
			row.Cells[c].Attrs &^= AttrClean
		}
		row.MarkDirty()
	}
}

// anyVisibleBlink reports whether any cell currently in the viewport has
// AttrBlink set, the condition BlinkClock.Reconcile arms or disarms on.
func (r *Renderer) anyVisibleBlink(grid *Grid) bool {
	for i := 0; i < grid.TermRows; i++ {
		row := grid.RowInView(i)
		for c := range row.Cells {
			if row.Cells[c].has(AttrBlink) {
				return true
			}
		}
	}
	return false
}

// surfaceFor adapts an acquired Buffer into the Surface CellCompositor
// and DamageLog paint against. Callers may supply their own pixel-surface
// implementation around buf.Pix/Stride instead.
func (r *Renderer) surfaceFor(buf *Buffer) Surface {
	return bufferSurface{buf: buf}
}
