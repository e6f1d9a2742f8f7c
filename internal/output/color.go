package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles for command output.
type Styles struct {
	Usage   lipgloss.Style
	Flags   lipgloss.Style
	Error   lipgloss.Style
	Version lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Usage:   lipgloss.NewStyle().Bold(true),
		Flags:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
		Version: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Usage:   lipgloss.NewStyle(),
		Flags:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Version: lipgloss.NewStyle(),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StylesFor picks colored styles when w is a terminal.
func StylesFor(w io.Writer) Styles {
	if IsTerminal(w) {
		return NewStyles()
	}
	return NoStyles()
}
