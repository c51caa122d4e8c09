package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/gubarz/rgrep/internal/config"
)

// Palette holds the styles used to highlight search results
type Palette struct {
	Path       lipgloss.Style
	LineNumber lipgloss.Style
	Column     lipgloss.Style
	Match      lipgloss.Style
}

// NewPalette returns a Palette with default colors bound to the given renderer
func NewPalette(r *lipgloss.Renderer) *Palette {
	return &Palette{
		Path:       newStyle(r, "2"),
		LineNumber: newStyle(r, "4"),
		Column:     newStyle(r, "6"),
		Match:      newStyle(r, "1"),
	}
}

// PlainPalette returns a Palette that renders text without escape sequences
func PlainPalette() *Palette {
	return NewPalette(NewRenderer(io.Discard, config.ColorNever))
}

// LoadFromConfig updates styles based on configuration
func (p *Palette) LoadFromConfig(r *lipgloss.Renderer) {
	p.Path = newStyle(r, parseANSIColor(config.GetColorPath()))
	p.LineNumber = newStyle(r, parseANSIColor(config.GetColorLine()))
	p.Column = newStyle(r, parseANSIColor(config.GetColorColumn()))
	p.Match = newStyle(r, parseANSIColor(config.GetColorMatch()))
}

// NewRenderer creates a lipgloss renderer for w honoring the color mode.
// In auto mode colors are used only when w is a terminal.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// HasColor reports whether r emits color escape sequences.
func HasColor(r *lipgloss.Renderer) bool {
	return r.ColorProfile() != termenv.Ascii
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newStyle builds a foreground style that leaves tabs untouched
func newStyle(r *lipgloss.Renderer, color string) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color(color)).
		TabWidth(lipgloss.NoTabConversion)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) string {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return mapped
	}
	return code
}
