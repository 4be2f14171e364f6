package terminal

// ANSI sequence fragments
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	csiAutoWrapOn = []byte("\x1b[?7h")
)
