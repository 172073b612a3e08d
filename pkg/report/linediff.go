package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oic-tools/archdiff/pkg/textdiff"
)

func opMarker(t textdiff.OpType) string {
	switch t {
	case textdiff.Removed:
		return "-"
	case textdiff.Added:
		return "+"
	}
	return " "
}

// PrintUnified writes a unified line diff: one interleaved stream
// with dual line-number columns.
func PrintUnified(out io.Writer, rows []textdiff.Row) {
	w := tabwriter.NewWriter(out, 0, 2, 1, ' ', tabwriter.AlignRight)
	for _, r := range rows {
		text := r.RightText
		if r.Type == textdiff.Removed {
			text = r.LeftText
		}
		fmt.Fprintf(w, "%s\t%s\t%s %s\n",
			lineNumber(r.LeftNumber), lineNumber(r.RightNumber), opMarker(r.Type), text)
	}
	w.Flush()
}

// PrintSideBySide writes paired columns with placeholder cells for
// the absent side.
func PrintSideBySide(out io.Writer, rows []textdiff.Row) {
	w := tabwriter.NewWriter(out, 0, 2, 1, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\t%s\t%s %s\n",
			lineNumber(r.LeftNumber), r.LeftText, opMarker(r.Type), lineNumber(r.RightNumber), r.RightText)
	}
	w.Flush()
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}
