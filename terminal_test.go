package wlrender

import "testing"

func TestNewTerminalGridSizes(t *testing.T) {
	term := NewTerminal(80, 24, WithScrollback(100))
	if term.Normal.NumCols != 80 || term.Normal.TermRows != 24 {
		t.Fatalf("unexpected normal grid dims: %+v", term.Normal)
	}
	if term.Normal.NumRows != 24+100 {
		t.Fatalf("expected scrollback rows added to normal grid, got %d", term.Normal.NumRows)
	}
	if term.Alt.NumRows != 24 {
		t.Fatalf("alt grid must not carry scrollback, got %d", term.Alt.NumRows)
	}
	if term.Active != term.Normal {
		t.Fatalf("a new terminal should start on the normal grid")
	}
}

func TestTerminalEnterLeaveAlt(t *testing.T) {
	term := NewTerminal(10, 5)
	term.EnterAlt()
	if term.Active != term.Alt {
		t.Fatalf("EnterAlt should switch Active to Alt")
	}
	term.LeaveAlt()
	if term.Active != term.Normal {
		t.Fatalf("LeaveAlt should switch Active back to Normal")
	}
}

func TestSelectionContainsSingleRow(t *testing.T) {
	sel := Selection{Active: true, Start: Coord{Row: 5, Col: 2}, End: Coord{Row: 5, Col: 8}}
	if !sel.Contains(5, 4) {
		t.Fatalf("expected (5,4) inside single-row selection")
	}
	if sel.Contains(5, 1) || sel.Contains(5, 9) {
		t.Fatalf("expected cols outside [2,8] to be excluded")
	}
	if sel.Contains(6, 4) {
		t.Fatalf("expected a different row to be excluded")
	}
}

func TestSelectionContainsMultiRowAndNormalizes(t *testing.T) {
	// Start/End given in reverse order; Contains must normalize.
	sel := Selection{Active: true, Start: Coord{Row: 10, Col: 3}, End: Coord{Row: 2, Col: 0}}
	if !sel.Contains(2, 0) {
		t.Fatalf("expected first row from col 0 onward to be included")
	}
	if sel.Contains(2, -1) {
		t.Fatalf("expected cols before Start in the normalized first row to be excluded")
	}
	if !sel.Contains(5, 0) {
		t.Fatalf("expected an intermediate row to be fully selected")
	}
	if !sel.Contains(10, 3) {
		t.Fatalf("expected last row up to its col to be included")
	}
	if sel.Contains(10, 4) {
		t.Fatalf("expected last row beyond its col to be excluded")
	}
}

func TestSelectionInactiveContainsNothing(t *testing.T) {
	sel := Selection{Active: false, Start: Coord{Row: 0, Col: 0}, End: Coord{Row: 5, Col: 5}}
	if sel.Contains(2, 2) {
		t.Fatalf("an inactive selection should contain nothing")
	}
}
