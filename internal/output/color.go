package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type sprintf func(format string, a ...interface{}) string

// ColorScheme holds the printf-style painters used by the text and table formatters
type ColorScheme struct {
	Name     sprintf // benchmark names
	Count    sprintf // thread and iteration counts
	Header   sprintf // table headers
	Duration sprintf // millisecond timings

	// Disabled is true when every painter returns plain text
	Disabled bool
}

// NewColorScheme returns a scheme for w. Output stays plain unless w is a
// terminal, noColor is false and NO_COLOR is unset.
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	disabled := noColor || os.Getenv("NO_COLOR") != "" || !isTTY(w)

	paint := func(attrs ...color.Attribute) sprintf {
		c := color.New(attrs...)
		if disabled {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
		return c.Sprintf
	}

	return &ColorScheme{
		Name:     paint(color.FgCyan, color.Bold),
		Count:    paint(color.FgYellow),
		Header:   paint(color.FgWhite, color.Bold),
		Duration: paint(color.FgBlue),
		Disabled: disabled,
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
