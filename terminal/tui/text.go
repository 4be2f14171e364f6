package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Width returns display width in terminal columns (wide runes count as 2)
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth columns
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads string with spaces to width
func PadRight(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// PadLeft left-pads string with spaces to width
func PadLeft(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// Center centers string within width columns.
// Text as wide as or wider than width is returned unchanged.
// Odd leftover padding goes to the right: Center("hi", 5) is " hi  ".
func Center(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no wider than width; words wider than width are split
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range words {
		ww := Width(word)

		// Hard-split words that can never fit
		for ww > width {
			if lineW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// Single rune wider than width
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			ww = Width(word)
		}
		if ww == 0 {
			continue
		}

		switch {
		case lineW == 0:
			line.WriteString(word)
			lineW = ww
		case lineW+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + ww
		default:
			flush()
			line.WriteString(word)
			lineW = ww
		}
	}
	if lineW > 0 || len(lines) == 0 {
		flush()
	}

	return lines
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

