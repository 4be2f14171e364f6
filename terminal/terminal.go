package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when no terminal is attached (pipes, CI, redirected output)
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Clear erases the screen and homes the cursor
func Clear(w io.Writer) error {
	_, err := w.Write(csiClear)
	return err
}

// Size returns the dimensions of the terminal attached to stdout,
// or DefaultWidth x DefaultHeight when there is none
func Size() (width, height int) {
	return SizeOf(int(os.Stdout.Fd()))
}

// SizeOf returns the dimensions of the terminal behind fd with the same fallback as Size
func SizeOf(fd int) (width, height int) {
	if w, h, ok := getTerminalSize(fd); ok {
		return w, h
	}
	return DefaultWidth, DefaultHeight
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// ReadKey reads a single byte without waiting for Enter when r is a terminal.
// Non-terminal readers are read as-is.
func ReadKey(r io.Reader) (byte, error) {
	if f, ok := r.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			old, err := term.MakeRaw(fd)
			if err != nil {
				return 0, err
			}
			defer term.Restore(fd, old)
		}
	}

	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// EmergencyReset restores terminal to usable state after crash
// Call from panic recovery before printing stack trace
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
