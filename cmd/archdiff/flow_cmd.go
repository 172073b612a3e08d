package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oic-tools/archdiff/pkg/flow"
	"github.com/oic-tools/archdiff/pkg/report"
)

type flowOpts struct {
	*rootOpts
}

func newFlow(root *rootOpts) *flowOpts {
	return &flowOpts{rootOpts: root}
}

func (opts *flowOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "flow <process.xml>",
		Short: "Parse a process definition and dump the flow graph",
		RunE:  opts.RunE,
	}
}

func (opts *flowOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("flow needs exactly one process XML path")
	}
	content, err := ioutil.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}
	g := flow.NewParser(opts.Logger).Parse(string(content))
	report.PrintFlow(os.Stdout, g)
	return nil
}

type flowDiffOpts struct {
	*rootOpts
}

func newFlowDiff(root *rootOpts) *flowDiffOpts {
	return &flowDiffOpts{rootOpts: root}
}

func (opts *flowDiffOpts) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "flowdiff <left.xml> <right.xml>",
		Short: "Compare two process definitions node by node",
		RunE:  opts.RunE,
	}
}

func (opts *flowDiffOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("flowdiff needs exactly two process XML paths")
	}
	parser := flow.NewParser(opts.Logger)
	graphs := make([]*flow.Graph, 2)
	for i, path := range args {
		content, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		graphs[i] = parser.Parse(string(content))
	}
	leftChanges, rightChanges := flow.Compare(graphs[0], graphs[1])
	report.PrintFlowDiff(os.Stdout, graphs[0], graphs[1], leftChanges, rightChanges)
	return nil
}
