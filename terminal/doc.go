// Package terminal provides the small set of console primitives line-oriented games need.
//
// Features:
//   - Screen clear via direct ANSI sequences (no terminfo lookup)
//   - Terminal size query with a fixed 80x24 fallback for pipes and CI
//   - Single keypress reads in raw mode
//   - Best-effort terminal restoration after a crash
//
// Target environments: Linux, macOS, BSDs and Windows consoles with VT processing.
package terminal
