package wlrender

import "errors"

// Sentinel errors for this package's degrade-and-continue policies. No
// operation in this package panics; callers compare against these with
// errors.Is after unwrapping.
var (
	// ErrTimerArmFailed is returned when the blink timer could not be
	// armed or disarmed. The blink subsystem degrades to "always on" and
	// frame rendering continues.
	ErrTimerArmFailed = errors.New("wlrender: blink timer arm failed")

	// ErrBufferAcquireFailed is what RenderFrame logs when the
	// shared-memory buffer pool is exhausted. RenderFrame then returns nil
	// without committing; the cells stay unclean for the next frame.
	ErrBufferAcquireFailed = errors.New("wlrender: buffer pool exhausted")

	// ErrWindowSizeSignalFailed is returned when the PTY window-size
	// control call failed. Logged and ignored; the emulator recovers on
	// its own from a size mismatch.
	ErrWindowSizeSignalFailed = errors.New("wlrender: pty window-size signal failed")

	// ErrGlyphMissing names the case of a Font with no glyph for a code
	// point. No function in this package returns it: CellCompositor.Paint
	// still paints the cell's background and cursor, and advances by the
	// go-runewidth width of the code point (at least 1).
	ErrGlyphMissing = errors.New("wlrender: glyph missing for code point")
)
