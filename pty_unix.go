//go:build unix

package wlrender

import (
	"os"

	"golang.org/x/sys/unix"
)

// FilePTY is the concrete PTY implementation for unix hosts: it issues
// the host OS "set window size" control (TIOCSWINSZ) against an open PTY
// master file descriptor. Grounded on bubbletea's platform-split
// termios_unix.go/tty_unix.go convention for wrapping raw syscalls behind
// a narrow interface.
type FilePTY struct {
	f *os.File
}

func NewFilePTY(f *os.File) *FilePTY {
	return &FilePTY{f: f}
}

// SetWindowSize implements PTY.
func (p *FilePTY) SetWindowSize(rows, cols, xpixel, ypixel int) error {
	return unix.IoctlSetWinsize(int(p.f.Fd()), unix.TIOCSWINSZ, &unix.Winsize{
		Row: uint16(rows),
		Col: uint16(cols),
		Xpixel: uint16(xpixel),
		Ypixel: uint16(ypixel),
	})
}

var _ PTY = (*FilePTY)(nil)
