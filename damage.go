package wlrender

// DamageKind distinguishes the two ring-buffer shifts a terminal emulator
// performs without repainting every cell: scrolling content up (new blank
// row at the bottom) and scrolling it back down (new blank row at top,
// e.g. reverse-index / scrollback replay).
type DamageKind int

const (
	DamageScroll DamageKind = iota
	DamageScrollReverse
)

// DamageRecord is one entry in the DamageLog FIFO: a pending ring shift
// that must be realized against the pixel surface, via a buffer memmove,
// before any per-cell repaint happens this frame.
type DamageRecord struct {
	Kind  DamageKind
	Top   int // first viewport row affected, view-relative
	Lines int // number of rows shifted
}

// DamageLog is an append-only FIFO of pending scroll records. It is
// consumed once per frame by Renderer before CellCompositor has a chance
// to run, then cleared in FIFO order, grounded on bubbletea's
// ferocious_renderer.go dirty-line bookkeeping generalized from a dirty
// set into an ordered shift log: application must be order-preserving
// because later shifts can be relative to earlier ones.
type DamageLog struct {
	records []DamageRecord
}

// Push appends a new pending shift to the end of the log.
func (d *DamageLog) Push(r DamageRecord) {
	d.records = append(d.records, r)
}

// Pending returns the queued records in FIFO order without clearing them.
func (d *DamageLog) Pending() []DamageRecord {
	return d.records
}

// Clear drops all queued records after they've been realized.
func (d *DamageLog) Clear() {
	d.records = d.records[:0]
}

// Apply realizes every queued record against surf in FIFO order, then
// clears the log. Resolved open question: ScrollReverse shifts the
// affected band DOWN by Lines (the opposite direction of Scroll, which
// shifts it UP), mirroring how terminal reverse-index inserts a blank row
// at the top of the scrolled region instead of the bottom.
func (d *DamageLog) Apply(surf Surface, termRows, cellHeight int) {
	for _, r := range d.records {
		cellRows := termRows - r.Top - r.Lines
		if cellRows <= 0 {
			continue
		}
		n := cellRows * cellHeight
		top := r.Top * cellHeight
		lines := r.Lines * cellHeight
		switch r.Kind {
		case DamageScroll:
			surf.MoveRows(top, top+lines, n)
		case DamageScrollReverse:
			surf.MoveRows(top+lines, top, n)
		}
	}
	d.Clear()
}
