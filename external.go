package wlrender

// This file collects the opaque collaborator interfaces the rendering
// core depends on but does not implement: font rasterization, the pixel
// surface, the shared-memory buffer pool, the Wayland compositor surface,
// the PTY, and the blink timer. Grounded structurally on the
// cellbuf.Screen-shaped consumer interfaces in bubbletea's
// cell_renderer.go and ferocious_renderer.go, which likewise treat the
// actual terminal/screen as an external collaborator behind a narrow
// interface rather than owning it.

// Glyph is a rasterized representation of one code point, as produced by
// a Font. Format is either an 8-bit coverage mask (Alpha) or a
// pre-rendered color bitmap (RGBA); CellCompositor composites each
// differently.
type GlyphFormat int

const (
	GlyphAlphaMask GlyphFormat = iota
	GlyphRGBA
)

type Glyph struct {
	Pix           []byte
	X, Y          int
	Width, Height int
	Cols          int // cellCols this glyph occupies, e.g. 2 for wide glyphs
	Format        GlyphFormat
}

type FontExtents struct {
	Height, Ascent, Descent int
}

type LineMetric struct {
	Position, Thickness int
}

// Font rasterizes code points into glyphs. The core never loads fonts or
// shapes text; it only asks a Font for glyphs and decoration metrics.
type Font interface {
	GlyphFor(wc rune) (Glyph, bool)
	Underline() LineMetric
	Strikeout() LineMetric
	Extents() FontExtents
}

// CompositeOp selects how a composite or fill operation blends with the
// destination. SRC replaces the destination outright; Over alpha-blends.
type CompositeOp int

const (
	OpSrc CompositeOp = iota
	OpOver
)

type Rect struct {
	X, Y, W, H int
}

// Surface is the pixel drawing surface CellCompositor paints into: a
// region of a Buffer acquired from BufferPool.
type Surface interface {
	// FillRect fills r with color. alpha in 0..=0xffff is the blend
	// weight used when op is OpOver (0xffff fully replaces the
	// destination, matching OpSrc); OpSrc ignores alpha entirely.
	FillRect(op CompositeOp, color Color, alpha uint32, r Rect)
	// Composite draws glyph into dst, tinting its coverage by src. For an
	// 8-bit coverage mask (GlyphAlphaMask) src is the solid color the mask
	// modulates; for a pre-rendered bitmap (GlyphRGBA) src is ignored and
	// the glyph's own pixels are used directly.
	Composite(op CompositeOp, glyph Glyph, src Color, dst Rect)
	// MoveRows performs the buffer memmove DamageLog needs to realize a
	// scroll before any per-cell repaint: it copies n pixel rows (not
	// cell rows) starting at srcRow to dstRow within the same backing
	// buffer.
	MoveRows(dstRow, srcRow, n int)
}

// Buffer is one shared-memory buffer handed out by BufferPool. Busy must
// be cleared by the caller to release it back to the pool once the
// compositor signals it is done with the previous commit.
type Buffer struct {
	Pix     []byte
	Mmapped bool
	Stride  int
	Width   int
	Size    int
	Busy    bool
}

// BufferPool hands out pixel buffers sized for the current grid. Acquire
// returns false when the pool is exhausted; the caller skips the frame
// and retries on the next frame callback.
type BufferPool interface {
	Acquire(width, height, minFree int) (*Buffer, bool)
}

// FrameCallback is delivered by the compositor when it is ready to accept
// the next frame.
type FrameCallback interface {
	Done() <-chan struct{}
}

// CompositorSurface is the Wayland surface the finished frame is
// committed to.
type CompositorSurface interface {
	Damage(x, y, w, h int)
	Attach(buf *Buffer, x, y int)
	Commit()
	SetBufferScale(k int)
	FrameCallback() FrameCallback
}

// PTY signals the host OS window-size control. SetWindowSize failing is
// recoverable: the emulator will reconcile on its next query.
type PTY interface {
	SetWindowSize(rows, cols, xpixel, ypixel int) error
}

// BlinkTimer describes a periodic 500ms file-descriptor-style timer that
// is armed and disarmed based on whether any visible cell currently has
// AttrBlink set. Renderer does not use this interface: it drives a
// *BlinkClock, which has no C method.
type BlinkTimer interface {
	Arm() error
	Disarm()
	C() <-chan struct{}
}
