package tui

import (
	"io"
	"strings"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box surrounds text with a border of repeated char.
// padding blank rows and columns separate border and text; each text line is centered.
// The border is widest line + 2*padding + 2 columns wide. char should be single-column.
func Box(text string, char rune, padding int) []string {
	return frame(strings.Split(text, "\n"), [6]rune{char, char, char, char, char, char}, padding)
}

// Frame is Box drawn with box drawing characters
func Frame(text string, line LineType, padding int) []string {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return frame(strings.Split(text, "\n"), boxChars[line], padding)
}

func frame(lines []string, chars [6]rune, padding int) []string {
	if padding < 0 {
		padding = 0
	}

	contentW := 0
	for _, l := range lines {
		contentW = max(contentW, Width(l))
	}
	inner := contentW + 2*padding

	h := RepeatRune(chars[boxH], inner)
	v := string(chars[boxV])
	gap := strings.Repeat(" ", padding)
	blank := v + strings.Repeat(" ", inner) + v

	out := make([]string, 0, len(lines)+2*padding+2)
	out = append(out, string(chars[boxTL])+h+string(chars[boxTR]))
	for range padding {
		out = append(out, blank)
	}
	for _, l := range lines {
		out = append(out, v+gap+Center(l, contentW)+gap+v)
	}
	for range padding {
		out = append(out, blank)
	}
	out = append(out, string(chars[boxBL])+h+string(chars[boxBR]))
	return out
}

// BoxWidth draws a box exactly width columns wide.
// padding applies to columns only. Lines that fit are centered; longer lines are
// word-wrapped and left-aligned. When width cannot hold one content column it grows to fit.
func BoxWidth(text string, char rune, padding, width int) []string {
	if padding < 0 {
		padding = 0
	}
	content := width - 2 - 2*padding
	if content < 1 {
		content = 1
		width = content + 2 + 2*padding
	}

	c := string(char)
	gap := strings.Repeat(" ", padding)
	border := RepeatRune(char, width)

	out := []string{border}
	for _, l := range strings.Split(text, "\n") {
		if Width(l) <= content {
			out = append(out, c+gap+Center(l, content)+gap+c)
			continue
		}
		for _, w := range WrapText(l, content) {
			out = append(out, c+gap+PadRight(w, content)+gap+c)
		}
	}
	return append(out, border)
}

// PrintBox writes Box output to w, one line per row
func PrintBox(w io.Writer, text string, char rune, padding int) error {
	return writeLines(w, Box(text, char, padding))
}

// PrintBoxWidth writes BoxWidth output to w
func PrintBoxWidth(w io.Writer, text string, char rune, padding, width int) error {
	return writeLines(w, BoxWidth(text, char, padding, width))
}

func writeLines(w io.Writer, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
