// Package tui provides string formatting primitives for line-oriented console output.
//
// All widths are display columns, not bytes or runes: East Asian wide characters
// count as two columns.
//
// Usage pattern:
//
//	fmt.Println(tui.Center("GAME OVER", 40))
//	tui.PrintBox(os.Stdout, "Score: 120", '*', 1)
//	for _, l := range tui.Frame("Level 2", tui.LineDouble, 1) {
//	    fmt.Println(l)
//	}
package tui
