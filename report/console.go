package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Console writes one colored line per report. Successes are green, warnings
// yellow and errors red; info is left plain.
type Console struct {
	out    io.Writer
	colors aurora.Aurora
	prefix string
}

func NewConsole(out io.Writer, color bool) *Console {
	return &Console{out: out, colors: aurora.NewAurora(color)}
}

// WithPrefix returns a console that puts prefix in front of every line, for
// telling concurrent walks apart.
func (c *Console) WithPrefix(prefix string) *Console {
	clone := *c
	clone.prefix = prefix
	return &clone
}

func (c *Console) Report(message string, severity Severity) {
	var line interface{} = message
	switch severity {
	case Success:
		line = c.colors.Green(message)
	case Warning:
		line = c.colors.Yellow(message)
	case Error:
		line = c.colors.Red(message).Bold()
	}
	if c.prefix != "" {
		// Write errors are ignored. Losing a line of narration is not worth
		// stopping the walk over.
		fmt.Fprintf(c.out, "%s %s\n", c.colors.Cyan(c.prefix), line)
		return
	}
	fmt.Fprintln(c.out, line)
}
