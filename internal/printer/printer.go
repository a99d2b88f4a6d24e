// Package printer renders the planned action graph for humans.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/hdlforge/hdlforge/internal/action"
)

func init() {
	// Force color output even when not connected to a TTY; users can disable
	// with the NO_COLOR environment variable.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
	faint = color.New(color.Faint)
)

// Printer writes plan summaries to a single destination writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer targeting w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Success prints a completion message with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	green.Fprintf(p.w, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Step prints a progress message with emphasis.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.w, "→ %s\n", fmt.Sprintf(format, a...))
}

// Action prints one registered action: its label, command, declared outputs,
// and input count.
func (p *Printer) Action(act *action.Action) {
	cyan.Fprintf(p.w, "→ %s\n", act.Description)
	faint.Fprintf(p.w, "    $ %s\n", strings.Join(act.Argv, " "))
	for _, out := range act.Outputs {
		fmt.Fprintf(p.w, "    out %-18s %s\n", string(out.Role), out.Path)
	}
	faint.Fprintf(p.w, "    %d input(s)\n", len(act.Inputs))
}
