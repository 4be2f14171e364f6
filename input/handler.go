package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInputClosed wraps the read error when the input stream ends before a valid answer
	ErrInputClosed = errors.New("input closed")
	// ErrTooManyAttempts is returned when WithMaxAttempts is set and exhausted
	ErrTooManyAttempts = errors.New("too many invalid attempts")
	// ErrNoChoices is returned by Choice when there is nothing to choose from
	ErrNoChoices = errors.New("no choices given")
	// ErrInvalidRange is returned by Number when min exceeds max
	ErrInvalidRange = errors.New("min exceeds max")
)

// Open bounds for Number
const (
	NoMin = math.MinInt
	NoMax = math.MaxInt
)

// DefaultPausePrompt is shown by Pause when prompt is empty
const DefaultPausePrompt = "Press Enter to continue..."

// Handler runs prompt loops over a line-oriented reader and writer
type Handler struct {
	r           *bufio.Reader
	w           io.Writer
	maxAttempts int
}

// Option configures a Handler
type Option func(*Handler)

// WithMaxAttempts bounds every prompt loop to n invalid answers; n <= 0 means unlimited
func WithMaxAttempts(n int) Option {
	return func(h *Handler) {
		h.maxAttempts = n
	}
}

// New creates a handler reading answers from r and writing prompts to w
func New(r io.Reader, w io.Writer, opts ...Option) *Handler {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	h := &Handler{r: br, w: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Writer returns the prompt output
func (h *Handler) Writer() io.Writer {
	return h.w
}

// Buffered returns the number of input bytes already read from the source but not yet consumed
func (h *Handler) Buffered() int {
	return h.r.Buffered()
}

// Line writes prompt and returns the next line without its line terminator.
// A final unterminated line is returned normally; an exhausted stream returns ErrInputClosed.
func (h *Handler) Line(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(h.w, prompt); err != nil {
			return "", err
		}
	}

	line, err := h.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choice prompts until the answer matches one of choices and returns the matched
// element of choices with its original casing. Surrounding whitespace is ignored.
func (h *Handler) Choice(prompt string, choices []string, caseSensitive bool) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	normalize := func(s string) string {
		s = strings.TrimSpace(s)
		if !caseSensitive {
			s = strings.ToLower(s)
		}
		return s
	}

	invalid := "Invalid choice. Please choose from: " + strings.Join(choices, ", ")

	var picked string
	err := h.loop(prompt, func(line string) (bool, string) {
		answer := normalize(line)
		for _, c := range choices {
			if normalize(c) == answer {
				picked = c
				return true, ""
			}
		}
		return false, invalid
	})
	return picked, err
}

// Number prompts until the answer is an integer in [min, max].
// Use NoMin or NoMax for an open bound.
func (h *Handler) Number(prompt string, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("number range [%d, %d]: %w", min, max, ErrInvalidRange)
	}

	var value int
	err := h.loop(prompt, func(line string) (bool, string) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			return false, "Please enter a valid number."
		case n < min:
			return false, fmt.Sprintf("Value must be at least %d", min)
		case n > max:
			return false, fmt.Sprintf("Value must be at most %d", max)
		}
		value = n
		return true, ""
	})
	return value, err
}

// YesNo asks prompt with a (y/n) suffix; accepts y, yes, n, no in any case
func (h *Handler) YesNo(prompt string) (bool, error) {
	c, err := h.Choice(prompt+" (y/n): ", []string{"y", "yes", "n", "no"}, false)
	if err != nil {
		return false, err
	}
	return c == "y" || c == "yes", nil
}

// Pause waits for Enter, showing DefaultPausePrompt when prompt is empty
func (h *Handler) Pause(prompt string) error {
	if prompt == "" {
		prompt = DefaultPausePrompt
	}
	_, err := h.Line(prompt)
	return err
}

// loop re-prompts until accept succeeds.
// Exits on valid input, read failure, or the attempt cap when one is configured.
func (h *Handler) loop(prompt string, accept func(line string) (ok bool, msg string)) error {
	for attempt := 1; ; attempt++ {
		line, err := h.Line(prompt)
		if err != nil {
			return err
		}

		ok, msg := accept(line)
		if ok {
			return nil
		}

		log.Printf("input: rejected %q: %s", line, msg)
		if _, err := fmt.Fprintln(h.w, msg); err != nil {
			return err
		}

		if h.maxAttempts > 0 && attempt >= h.maxAttempts {
			return fmt.Errorf("after %d attempts: %w", attempt, ErrTooManyAttempts)
		}
	}
}
