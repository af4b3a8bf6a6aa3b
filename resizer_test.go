package wlrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePTY struct {
	calls int
	err   error
}

func (p *fakePTY) SetWindowSize(rows, cols, xpixel, ypixel int) error {
	p.calls++
	return p.err
}

func TestResizerColumnTruncationReflow(t *testing.T) {
	term := NewTerminal(10, 4, WithScrollback(0))
	row := term.Normal.RowInView(0)
	for i := range row.Cells {
		row.Cells[i].WC = rune('a' + i)
	}
	row.Dirty = false

	pty := &fakePTY{}
	rs := NewResizer(0, pty, nil)
	// shrink to 5 cols, keep 4 rows, cell size unchanged.
	rs.Resize(term, 5*8, 4*16, 1, 8, 16)

	newRow := term.Normal.RowInView(0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, rune('a'+i), newRow.Cells[i].WC, "column truncation should preserve cell %d", i)
	}
	assert.Equal(t, 5, term.Normal.NumCols)
	assert.Equal(t, 1, pty.calls, "expected exactly one PTY window-size signal")
}

func TestResizerZeroFillsGrownTail(t *testing.T) {
	term := NewTerminal(4, 4, WithScrollback(0))
	row := term.Normal.RowInView(0)
	row.Cells[0].WC = 'x'
	row.Dirty = false

	rs := NewResizer(0, nil, nil)
	rs.Resize(term, 8*8, 4*16, 1, 8, 16)

	newRow := term.Normal.RowInView(0)
	assert.Equal(t, 'x', newRow.Cells[0].WC, "expected preserved cell at col 0")
	for i := 4; i < 8; i++ {
		assert.Equal(t, ' ', newRow.Cells[i].WC, "expected zero-filled (blank) tail cell at %d", i)
	}
}

func TestResizerClampsCursor(t *testing.T) {
	term := NewTerminal(10, 10, WithScrollback(0))
	term.Cursor.Row = 9
	term.Cursor.Col = 9

	rs := NewResizer(0, nil, nil)
	rs.Resize(term, 4*8, 3*16, 1, 8, 16)

	assert.Less(t, term.Cursor.Row, term.Active.TermRows, "expected cursor row clamped")
	assert.Less(t, term.Cursor.Col, term.Active.NumCols, "expected cursor col clamped")
}

func TestResizerMarksFullRefresh(t *testing.T) {
	term := NewTerminal(4, 4, WithScrollback(0))
	for i := 0; i < term.Normal.TermRows; i++ {
		term.Normal.RowInView(i).Dirty = false
	}
	rs := NewResizer(0, nil, nil)
	rs.Resize(term, 4*8, 4*16, 1, 8, 16)
	for i := 0; i < term.Active.TermRows; i++ {
		assert.True(t, term.Active.RowInView(i).Dirty, "expected row %d marked dirty after resize", i)
	}
}

func TestResizerLogsOnWindowSizeSignalFailure(t *testing.T) {
	var logged string
	logger := loggerFunc(func(format string, v ...any) {
		logged = format
	})
	pty := &fakePTY{err: ErrWindowSizeSignalFailed}
	rs := NewResizer(0, pty, logger)
	term := NewTerminal(4, 4)
	rs.Resize(term, 4*8, 4*16, 1, 8, 16)
	assert.NotEmpty(t, logged, "expected a log line when the PTY signal fails")
}

type loggerFunc func(format string, v ...any)

func (f loggerFunc) Printf(format string, v ...any) { f(format, v...) }
