//go:build windows

package wlrender

import "os"

// FilePTY on Windows has no TIOCSWINSZ equivalent reachable from here
// (ConPTY resize goes through the console API the PTY owner already
// holds); SetWindowSize always reports ErrWindowSizeSignalFailed so
// callers fall back to a log-and-continue policy.
type FilePTY struct {
	f *os.File
}

func NewFilePTY(f *os.File) *FilePTY {
	return &FilePTY{f: f}
}

func (p *FilePTY) SetWindowSize(rows, cols, xpixel, ypixel int) error {
	return ErrWindowSizeSignalFailed
}

var _ PTY = (*FilePTY)(nil)
