// Package report renders validation results for terminals and machines.
// The core validation logic never touches terminal formatting; everything
// presentation-related lives behind the Renderer.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

const (
	// ModeText is the styled human-readable format.
	ModeText Mode = "text"
	// ModeJSON is the machine-readable format.
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
}

// newStyles builds the style set. With an Ascii profile every style
// renders as plain text, which keeps piped output clean.
func newStyles(profile termenv.Profile) Styles {
	if profile == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return Styles{Success: plain, Warning: plain, Error: plain, Bold: plain, Muted: plain}
	}
	return Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes formatted output to an out and err stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a Renderer with color support detected from the
// environment.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithProfile(out, errOut, mode, termenv.EnvColorProfile())
}

// NewRendererWithProfile creates a Renderer with an explicit color
// profile. Tests pass termenv.Ascii for deterministic output.
func NewRendererWithProfile(out, errOut io.Writer, mode Mode, profile termenv.Profile) *Renderer {
	if mode != ModeJSON {
		mode = ModeText
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(profile),
	}
}

// Mode returns the renderer's output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Styles returns the renderer's style set.
func (r *Renderer) Styles() Styles { return r.styles }

// Out returns the renderer's primary output stream.
func (r *Renderer) Out() io.Writer { return r.out }

// Println writes a line to the output stream.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Errorf writes formatted text to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

// JSON encodes v to the output stream, handling I/O errors at the
// boundary.
func (r *Renderer) JSON(v any) {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(r.errOut, "{\"error\":%q}\n", err.Error())
	}
}
