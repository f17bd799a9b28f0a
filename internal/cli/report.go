package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/vvka-141/rulesync/pkg/rulesync"
)

const reportHint = "Please add the missing metadata to these files and retry."

// writeValidationReport prints one row per invalid document followed by the
// retry hint. With verbose set, per-file hints follow the table.
func writeValidationReport(w io.Writer, errs []rulesync.ValidationError, verbose bool) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Metadata validation failed for %d file(s):", len(errs))))
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(reportStyle(w))
	t.AppendHeader(table.Row{"File", "Missing Fields"})
	for _, e := range errs {
		t.AppendRow(table.Row{e.File, strings.Join(e.Missing, ", ")})
	}
	t.Render()

	if verbose {
		for _, e := range errs {
			if e.Hint != "" {
				fmt.Fprintf(w, "  %s: %s\n", e.File, e.Hint)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render(reportHint))
}

// reportStyle draws box characters only on an interactive terminal.
func reportStyle(w io.Writer) table.Style {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return table.StyleLight
	}
	return table.StyleDefault
}
