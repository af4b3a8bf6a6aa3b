package wlrender

// Option configures a Terminal at construction time. Terminal accepts a
// variable number of options the way bubbletea's Program accepted
// ProgramOption.
//
// Example usage:
//
//	term := NewTerminal(cols, rows, WithWorkers(4), WithScrollback(1000))
type Option func(*Config)

// Config holds the tunables a Terminal is built with.
type Config struct {
	Workers         int
	ScrollbackLines int
	CursorStyle     CursorStyle
	Palette         Palette
	HideCursor      bool
	Logger          Logger
}

func defaultConfig() Config {
	return Config{
		Workers:         0,
		ScrollbackLines: 1000,
		CursorStyle:     CursorBlock,
		Palette: Palette{
			Fg: RGB(0xff, 0xff, 0xff),
			Bg: RGB(0x00, 0x00, 0x00),
			// Alpha applies to non-block-cursor cell backgrounds only;
			// default to fully opaque.
			Alpha: 0xffff,
		},
		Logger: NopLogger{},
	}
}

// WithWorkers records a render worker count in Config.Workers. Nothing in
// this package reads it: the pool size is the n given to NewWorkerPool,
// where n == 0 means rendering happens inline on the frame-driving
// goroutine.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithScrollback sets the number of extra ring rows kept above the viewport
// in the normal grid. The alternate grid never has scrollback.
func WithScrollback(lines int) Option {
	return func(c *Config) { c.ScrollbackLines = lines }
}

// WithCursorStyle sets the default cursor rendering style.
func WithCursorStyle(s CursorStyle) Option {
	return func(c *Config) { c.CursorStyle = s }
}

// WithPalette sets the base foreground/background/alpha palette.
func WithPalette(p Palette) Option {
	return func(c *Config) { c.Palette = p }
}

// WithHiddenCursor starts the terminal with the cursor hidden.
func WithHiddenCursor(hidden bool) Option {
	return func(c *Config) { c.HideCursor = hidden }
}

// WithLogger records a diagnostic sink in Config.Logger. Nothing in this
// package reads it: Renderer, WorkerPool, BlinkClock and Resizer take
// their Logger as a constructor argument.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
