package wlrender

import "testing"

type fakeFont struct {
	glyphs map[rune]Glyph
}

func (f *fakeFont) GlyphFor(wc rune) (Glyph, bool) {
	g, ok := f.glyphs[wc]
	return g, ok
}
func (f *fakeFont) Underline() LineMetric  { return LineMetric{Position: 1, Thickness: 1} }
func (f *fakeFont) Strikeout() LineMetric  { return LineMetric{Position: 2, Thickness: 1} }
func (f *fakeFont) Extents() FontExtents   { return FontExtents{Height: 10, Ascent: 8, Descent: 2} }

type spySurface struct {
	fills      []Color
	composites []Color
}

func (s *spySurface) FillRect(op CompositeOp, c Color, alpha uint32, r Rect) {
	s.fills = append(s.fills, c)
}
func (s *spySurface) Composite(op CompositeOp, g Glyph, src Color, dst Rect) {
	s.composites = append(s.composites, src)
}
func (s *spySurface) MoveRows(int, int, int) {}

func newTestCompositor() (*CellCompositor, *fakeFont) {
	font := &fakeFont{glyphs: map[rune]Glyph{'a': {Cols: 1, Format: GlyphAlphaMask}}}
	return &CellCompositor{
		Font:    font,
		Palette: Palette{Fg: RGB(255, 255, 255), Bg: RGB(0, 0, 0), Alpha: 0xffff},
	}, font
}

func TestPaintSkipsCleanCell(t *testing.T) {
	cc, _ := newTestCompositor()
	surf := &spySurface{}
	cell := &Cell{WC: 'a'}
	cell.MarkClean()
	cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if len(surf.fills) != 0 {
		t.Fatalf("a clean cell must not touch the surface")
	}
}

func TestPaintMarksCleanOnSuccess(t *testing.T) {
	cc, _ := newTestCompositor()
	surf := &spySurface{}
	cell := &Cell{WC: 'a'}
	cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if !cell.Clean() {
		t.Fatalf("a successful paint must mark the cell clean")
	}
}

func TestPaintReverseXORThreeSources(t *testing.T) {
	cc, _ := newTestCompositor()
	surf := &spySurface{}
	// block cursor, cell.Reverse, and Selected all active: three "on"
	// sources XOR to "on", so fg/bg end up swapped once.
	cell := &Cell{WC: 'a', Attrs: AttrReverse}
	cc.Paint(surf, cell, 0, 0, PaintParams{
		IsCursor: true, CursorSt: CursorBlock, Selected: true,
		CellWidth: 8, CellHeight: 16,
	})
	if len(surf.fills) == 0 {
		t.Fatalf("expected a background fill")
	}
	if surf.fills[0] != (RGB(255, 255, 255)) {
		t.Fatalf("expected the background fill to be the palette foreground once swapped, got %+v", surf.fills[0])
	}
}

func TestPaintDimHalvesForeground(t *testing.T) {
	cc, _ := newTestCompositor()
	cc.Palette.Fg = RGB(200, 200, 200)
	surf := &spySurface{}
	cell := &Cell{WC: 'a', Attrs: AttrDim}
	cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if !cell.Clean() {
		t.Fatalf("paint should still complete for a dim cell")
	}
	if len(surf.composites) == 0 || surf.composites[0] != RGB(100, 100, 100) {
		t.Fatalf("a dim cell's glyph must be tinted with the halved foreground, got %+v", surf.composites)
	}
}

func TestPaintReturnsGlyphCols(t *testing.T) {
	cc, font := newTestCompositor()
	font.glyphs['w'] = Glyph{Cols: 2, Format: GlyphRGBA}
	surf := &spySurface{}
	cell := &Cell{WC: 'w'}
	cols := cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if cols != 2 {
		t.Fatalf("expected wide glyph to report 2 columns, got %d", cols)
	}
}

func TestPaintCompositesGlyphWithForeground(t *testing.T) {
	cc, _ := newTestCompositor()
	cc.Palette.Fg = RGB(10, 20, 30)
	surf := &spySurface{}
	cell := &Cell{WC: 'a'}
	cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if len(surf.composites) == 0 {
		t.Fatalf("expected a glyph composite")
	}
	if surf.composites[0] != cc.Palette.Fg {
		t.Fatalf("an alpha-mask glyph must be tinted by the resolved foreground, got %+v", surf.composites[0])
	}
}

func TestPaintFallsBackToRunewidthWithoutGlyph(t *testing.T) {
	cc, _ := newTestCompositor()
	surf := &spySurface{}
	cell := &Cell{WC: 'z'} // not in fakeFont's glyph map
	cols := cc.Paint(surf, cell, 0, 0, PaintParams{CellWidth: 8, CellHeight: 16})
	if cols != 1 {
		t.Fatalf("expected runewidth fallback of 1 for an ASCII rune, got %d", cols)
	}
}
