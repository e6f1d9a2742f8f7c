package output

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes the user-facing messages of the command: usage text,
// the version line and usage errors.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w, colored when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: StylesFor(w)}
}

// Usage prints the synopsis line followed by the flag listing.
func (p *Printer) Usage(synopsis, flags string) {
	fmt.Fprintln(p.w, p.styles.Usage.Render("usage: "+synopsis))
	if flags = strings.TrimRight(flags, "\n"); flags != "" {
		fmt.Fprintln(p.w, p.styles.Flags.Render(flags))
	}
}

// Version prints the version identifier.
func (p *Printer) Version(v int) {
	fmt.Fprintln(p.w, p.styles.Version.Render(fmt.Sprintf("version: %d", v)))
}

// Error prints a single error line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.styles.Error.Render(err.Error()))
}
