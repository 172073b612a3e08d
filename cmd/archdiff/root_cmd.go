package main

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	Logger log.Logger
}

func newRoot(logger log.Logger) *rootOpts {
	return &rootOpts{Logger: logger}
}

var rootLongHelp = strings.TrimSpace(`
archdiff compares two exported integration archives and reports what
actually changed, filtering out the identifiers and timestamps the
export tool regenerates on every run.

Workflow:
  archdiff compare old-export.zip new-export.zip     # severity-ranked change report
  archdiff flow project.xml                          # dump the parsed orchestration graph
  archdiff flowdiff old-flow.xml new-flow.xml        # per-node change status
  archdiff linediff old.xsl new.xsl                  # plain line-level diff
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "archdiff",
		Long:          rootLongHelp,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(
		newCompare(opts).Command(),
		newFlow(opts).Command(),
		newFlowDiff(opts).Command(),
		newLineDiff(opts).Command(),
	)
	return cmd
}
