// Package console bundles the terminal, text formatting and input helpers behind one value,
// with package-level shortcuts bound to the process stdio.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lixenwraith/g2c/input"
	"github.com/lixenwraith/g2c/terminal"
	"github.com/lixenwraith/g2c/terminal/tui"
)

// HeaderChar and HeaderPadding shape the box drawn by Header
const (
	HeaderChar    = '='
	HeaderPadding = 2
)

// Console writes formatted output and reads validated answers
type Console struct {
	in   *input.Handler
	src  io.Reader
	out  io.Writer
	size func() (int, int)
}

// Option configures a Console
type Option func(*consoleConfig)

type consoleConfig struct {
	size      func() (int, int)
	inputOpts []input.Option
}

// WithSize overrides the terminal size query, mainly for tests
func WithSize(size func() (width, height int)) Option {
	return func(c *consoleConfig) {
		c.size = size
	}
}

// WithInputOptions forwards options to the underlying input handler
func WithInputOptions(opts ...input.Option) Option {
	return func(c *consoleConfig) {
		c.inputOpts = append(c.inputOpts, opts...)
	}
}

// New creates a console reading from r and writing to w
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	cfg := consoleConfig{size: terminal.Size}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Console{
		in:   input.New(r, w, cfg.inputOpts...),
		src:  r,
		out:  w,
		size: cfg.size,
	}
}

var (
	stdOnce sync.Once
	std     *Console
)

// Stdio returns the shared console on os.Stdin and os.Stdout.
// Sharing one instance keeps buffered stdin consistent across callers.
func Stdio() *Console {
	stdOnce.Do(func() {
		std = New(os.Stdin, os.Stdout)
	})
	return std
}

// Writer returns the console output
func (c *Console) Writer() io.Writer { return c.out }

// Input returns the underlying prompt handler
func (c *Console) Input() *input.Handler { return c.in }

// Size returns the current terminal dimensions
func (c *Console) Size() (width, height int) { return c.size() }

// ClearScreen clears the terminal
func (c *Console) ClearScreen() error {
	return terminal.Clear(c.out)
}

// Header prints title in a box of '=' spanning the terminal width
func (c *Console) Header(title string) error {
	w, _ := c.size()
	return tui.PrintBoxWidth(c.out, title, HeaderChar, HeaderPadding, w)
}

// Box prints text surrounded by char with padding
func (c *Console) Box(text string, char rune, padding int) error {
	return tui.PrintBox(c.out, text, char, padding)
}

// Centered prints text centered within the terminal width
func (c *Console) Centered(text string) error {
	w, _ := c.size()
	return c.Println(tui.Center(text, w))
}

func (c *Console) Println(a ...any) error {
	_, err := fmt.Fprintln(c.out, a...)
	return err
}

func (c *Console) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(c.out, format, a...)
	return err
}

func (c *Console) Line(prompt string) (string, error) {
	return c.in.Line(prompt)
}

func (c *Console) Choice(prompt string, choices []string, caseSensitive bool) (string, error) {
	return c.in.Choice(prompt, choices, caseSensitive)
}

func (c *Console) Number(prompt string, min, max int) (int, error) {
	return c.in.Number(prompt, min, max)
}

func (c *Console) YesNo(prompt string) (bool, error) {
	return c.in.YesNo(prompt)
}

// Pause waits for Enter
func (c *Console) Pause(prompt string) error {
	return c.in.Pause(prompt)
}

// WaitKey waits for a single keypress when reading from a terminal, otherwise for Enter
func (c *Console) WaitKey(prompt string) error {
	f, ok := c.src.(*os.File)
	if !ok || c.in.Buffered() > 0 || !terminal.IsTerminal(int(f.Fd())) {
		return c.in.Pause(prompt)
	}
	if prompt == "" {
		prompt = "Press any key to continue..."
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return err
	}
	if _, err := terminal.ReadKey(f); err != nil {
		return err
	}
	_, err := io.WriteString(c.out, "\n")
	return err
}

// ClearScreen clears the terminal attached to stdout
func ClearScreen() error {
	return Stdio().ClearScreen()
}

// PrintHeader prints title in a full-width '=' box on stdout
func PrintHeader(title string) error {
	return Stdio().Header(title)
}

// GetYesNo asks a yes/no question on stdio
func GetYesNo(prompt string) (bool, error) {
	return Stdio().YesNo(prompt)
}
