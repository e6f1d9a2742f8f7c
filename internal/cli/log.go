package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger creates the stderr logger. Operational details are logged at
// debug level, which is only enabled in verbose (debug) builds.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "statik",
	})

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("VERBOSE").
		Bold(true).
		Foreground(lipgloss.Color("63"))
	logger.SetStyles(styles)
	return logger
}
