package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestHandler(script string, opts ...Option) (*Handler, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(script), &out, opts...), &out
}

func TestLine(t *testing.T) {
	h, out := newTestHandler("alice\r\nbob")

	got, err := h.Line("Name: ")
	if err != nil {
		t.Fatalf("Line failed: %v", err)
	}
	if got != "alice" {
		t.Errorf("Expected alice, got %q", got)
	}

	// Unterminated final line is still an answer
	got, err = h.Line("")
	if err != nil || got != "bob" {
		t.Errorf("Expected bob, got %q (%v)", got, err)
	}

	if out.String() != "Name: " {
		t.Errorf("Expected prompt written once, got %q", out.String())
	}

	_, err = h.Line("")
	if !errors.Is(err, ErrInputClosed) || !errors.Is(err, io.EOF) {
		t.Errorf("Expected ErrInputClosed wrapping EOF, got %v", err)
	}
}

func TestChoice_CaseInsensitiveReturnsSourceCasing(t *testing.T) {
	h, out := newTestHandler("x\nB\n")

	got, err := h.Choice("Pick: ", []string{"a", "b", "c"}, false)
	if err != nil {
		t.Fatalf("Choice failed: %v", err)
	}
	if got != "b" {
		t.Errorf("Expected b, got %q", got)
	}

	if n := strings.Count(out.String(), "Pick: "); n != 2 {
		t.Errorf("Expected 2 prompts, got %d", n)
	}
	if n := strings.Count(out.String(), "Invalid choice. Please choose from: a, b, c"); n != 1 {
		t.Errorf("Expected 1 rejection message, got %d in %q", n, out.String())
	}
}

func TestChoice_PreservesChoiceCasing(t *testing.T) {
	h, _ := newTestHandler("red\n")
	got, err := h.Choice("Color: ", []string{"Red", "Blue"}, false)
	if err != nil {
		t.Fatalf("Choice failed: %v", err)
	}
	if got != "Red" {
		t.Errorf("Expected Red, got %q", got)
	}
}

func TestChoice_CaseSensitive(t *testing.T) {
	h, out := newTestHandler("b\nB\n")
	got, err := h.Choice("> ", []string{"A", "B"}, true)
	if err != nil {
		t.Fatalf("Choice failed: %v", err)
	}
	if got != "B" {
		t.Errorf("Expected B, got %q", got)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("Expected lowercase b to be rejected")
	}
}

func TestChoice_NoChoices(t *testing.T) {
	h, _ := newTestHandler("a\n")
	if _, err := h.Choice("> ", nil, false); !errors.Is(err, ErrNoChoices) {
		t.Errorf("Expected ErrNoChoices, got %v", err)
	}
}

func TestChoice_InputClosed(t *testing.T) {
	h, _ := newTestHandler("nope\n")
	if _, err := h.Choice("> ", []string{"yes"}, false); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
}

func TestNumber_RepromptsUntilInRange(t *testing.T) {
	h, out := newTestHandler("abc\n15\n5\n")

	got, err := h.Number("Number (1-10): ", 1, 10)
	if err != nil {
		t.Fatalf("Number failed: %v", err)
	}
	if got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}

	text := out.String()
	if n := strings.Count(text, "Number (1-10): "); n != 3 {
		t.Errorf("Expected 3 prompts, got %d", n)
	}
	if !strings.Contains(text, "Please enter a valid number.") {
		t.Error("Expected parse failure message")
	}
	if !strings.Contains(text, "Value must be at most 10") {
		t.Error("Expected range violation message")
	}
}

func TestNumber_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		min, max int
		want     int
		message  string
	}{
		{"below min", "0\n3\n", 1, 5, 3, "Value must be at least 1"},
		{"whitespace", "  4  \n", 1, 5, 4, ""},
		{"inclusive max", "5\n", 1, 5, 5, ""},
		{"open bounds", "-900\n", NoMin, NoMax, -900, ""},
		{"signed", "+2\n", 1, 5, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newTestHandler(tt.script)
			got, err := h.Number("> ", tt.min, tt.max)
			if err != nil {
				t.Fatalf("Number failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
			if tt.message != "" && !strings.Contains(out.String(), tt.message) {
				t.Errorf("Expected message %q in %q", tt.message, out.String())
			}
		})
	}
}

func TestNumber_InvalidRange(t *testing.T) {
	h, _ := newTestHandler("1\n")
	if _, err := h.Number("> ", 5, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}
}

func TestMaxAttempts(t *testing.T) {
	h, _ := newTestHandler("a\nb\nc\n7\n", WithMaxAttempts(2))
	_, err := h.Number("> ", 1, 10)
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Expected ErrTooManyAttempts, got %v", err)
	}

	// Within the cap the answer is returned
	h, _ = newTestHandler("a\n7\n", WithMaxAttempts(2))
	got, err := h.Number("> ", 1, 10)
	if err != nil || got != 7 {
		t.Errorf("Expected 7, got %d (%v)", got, err)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		script string
		want   bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"maybe\nNo\n", false},
	}

	for _, tt := range tests {
		h, out := newTestHandler(tt.script)
		got, err := h.YesNo("Continue?")
		if err != nil {
			t.Fatalf("YesNo(%q) failed: %v", tt.script, err)
		}
		if got != tt.want {
			t.Errorf("YesNo(%q): expected %v, got %v", tt.script, tt.want, got)
		}
		if !strings.HasPrefix(out.String(), "Continue? (y/n): ") {
			t.Errorf("Expected (y/n) suffix, got %q", out.String())
		}
	}
}

func TestPause(t *testing.T) {
	h, out := newTestHandler("\n")
	if err := h.Pause(""); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if out.String() != DefaultPausePrompt {
		t.Errorf("Expected default prompt, got %q", out.String())
	}
}
