// Package report renders diff results and flow graphs as plain text
// for terminals and report files.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oic-tools/archdiff/pkg/compare"
	"github.com/oic-tools/archdiff/pkg/flow"
)

// PrintSummary writes the aggregate counts of a diff run.
func PrintSummary(out io.Writer, res compare.Result) {
	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "SEVERITY\tCOUNT\n")
	fmt.Fprintf(w, "High\t%d\n", res.Summary.High)
	fmt.Fprintf(w, "Medium\t%d\n", res.Summary.Medium)
	fmt.Fprintf(w, "Low\t%d\n", res.Summary.Low)
	fmt.Fprintf(w, "Info\t%d\n", res.Summary.Info)
	w.Flush()

	fmt.Fprintf(out, "\n%d meaningful change(s)", res.Summary.TotalMeaningful)
	if res.Collisions > 0 {
		fmt.Fprintf(out, ", %d normalized-path collision(s)", res.Collisions)
	}
	fmt.Fprintln(out)
}

// PrintItems writes the item list at the given level of verbosity:
//  - 0 = meaningful changes only (High/Medium)
//  - 1 = include Low
//  - 2 = include Info
// withPatches additionally writes each item's patch block.
func PrintItems(out io.Writer, res compare.Result, verbosity int, withPatches bool) {
	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "SEVERITY\tCHANGE\tTYPE\tENTITY\tDESCRIPTION\n")
	for _, it := range res.Items {
		if skipForVerbosity(it.Severity, verbosity) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			it.Severity, it.Change, it.EntityType, it.EntityName, it.Metadata.ChangeDescription)
	}
	w.Flush()

	if !withPatches {
		return
	}
	for _, it := range res.Items {
		if skipForVerbosity(it.Severity, verbosity) || it.Patch == "" {
			continue
		}
		fmt.Fprintf(out, "\n== %s (%s)\n%s\n", it.Metadata.NormalizedPath, it.Change, it.Patch)
	}
}

func skipForVerbosity(s compare.Severity, verbosity int) bool {
	switch s {
	case compare.Low:
		return verbosity < 1
	case compare.Info:
		return verbosity < 2
	}
	return false
}

// PrintFlow writes a graph as an indented node listing followed by
// its edges, good enough to inspect a parse without a renderer.
func PrintFlow(out io.Writer, g *flow.Graph) {
	fmt.Fprintf(out, "process: %s", g.Metadata.ProcessName)
	if g.Metadata.Version != "" {
		fmt.Fprintf(out, " (version %s)", g.Metadata.Version)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTYPE\tNAME\tACTIVITY\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Name, n.ActivityType)
	}
	w.Flush()

	for _, c := range g.Connections {
		arrow := "->"
		if c.Type == flow.ConnError {
			arrow = "!>"
		}
		fmt.Fprintf(out, "  %s %s %s", c.Source, arrow, c.Target)
		if c.Label != "" {
			fmt.Fprintf(out, " [%s]", c.Label)
		}
		fmt.Fprintln(out)
	}
}

// PrintFlowDiff writes both sides' node lists annotated with their
// change status.
func PrintFlowDiff(out io.Writer, left, right *flow.Graph, leftChanges, rightChanges map[string]flow.ChangeStatus) {
	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "SIDE\tSTATUS\tTYPE\tNAME\n")
	for _, n := range left.Nodes {
		fmt.Fprintf(w, "left\t%s\t%s\t%s\n", leftChanges[n.ID], n.Type, n.Name)
	}
	for _, n := range right.Nodes {
		if rightChanges[n.ID] == flow.StatusUnchanged || rightChanges[n.ID] == flow.StatusModified {
			continue // already listed from the left side
		}
		fmt.Fprintf(w, "right\t%s\t%s\t%s\n", rightChanges[n.ID], n.Type, n.Name)
	}
	w.Flush()
}
