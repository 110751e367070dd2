// Package console renders user-facing lines. Successes go to the output
// stream and errors to the error stream.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console is the output channel used by the runner.
type Console interface {
	Success(text string)
	Error(text string)
}

// Theme holds the styles applied to each channel.
type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme colours successes green and errors red. Each style is bound to
// a renderer for its writer, so colour support is detected per stream.
func NewTheme(out, errOut io.Writer) Theme {
	return Theme{
		Success: lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Styled writes styled lines to two writers.
type Styled struct {
	out   io.Writer
	err   io.Writer
	theme Theme
	color bool
}

// Option configures a Styled console.
type Option func(*Styled)

// WithNoColor disables styling.
func WithNoColor() Option {
	return func(s *Styled) { s.color = false }
}

// New creates a console writing to out and errOut. Nil writers default to
// os.Stdout and os.Stderr.
func New(out, errOut io.Writer, opts ...Option) *Styled {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	s := &Styled{out: out, err: errOut, theme: NewTheme(out, errOut), color: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Styled) Success(text string) {
	_, _ = fmt.Fprintln(s.out, s.render(s.theme.Success, text))
}

func (s *Styled) Error(text string) {
	_, _ = fmt.Fprintln(s.err, s.render(s.theme.Error, text))
}

func (s *Styled) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	// Render line by line; lipgloss pads multi-line blocks to equal width.
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Discard drops everything. It backs --quiet.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}

// Recorder keeps every line in order. It is meant for tests and for
// callers that post-process output.
type Recorder struct {
	Lines []Line
}

// Line is one recorded call.
type Line struct {
	Error bool
	Text  string
}

func (r *Recorder) Success(text string) { r.Lines = append(r.Lines, Line{Text: text}) }
func (r *Recorder) Error(text string)   { r.Lines = append(r.Lines, Line{Error: true, Text: text}) }

// Errors returns the texts passed to Error.
func (r *Recorder) Errors() []string {
	var out []string
	for _, l := range r.Lines {
		if l.Error {
			out = append(out, l.Text)
		}
	}
	return out
}

// Successes returns the texts passed to Success.
func (r *Recorder) Successes() []string {
	var out []string
	for _, l := range r.Lines {
		if !l.Error {
			out = append(out, l.Text)
		}
	}
	return out
}
