package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oic-tools/archdiff/pkg/report"
	"github.com/oic-tools/archdiff/pkg/textdiff"
)

type lineDiffOpts struct {
	*rootOpts
	sideBySide bool
}

func newLineDiff(root *rootOpts) *lineDiffOpts {
	return &lineDiffOpts{rootOpts: root}
}

func (opts *lineDiffOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linediff <left> <right>",
		Short: "Line-level diff of two text files",
		RunE:  opts.RunE,
	}
	cmd.Flags().BoolVar(&opts.sideBySide, "side-by-side", false,
		"render paired columns instead of a unified stream")
	return cmd
}

func (opts *lineDiffOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("linediff needs exactly two file paths")
	}
	contents := make([][]string, 2)
	for i, path := range args {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		contents[i] = textdiff.SplitLines(string(data))
	}
	ops := textdiff.Operations(contents[0], contents[1])
	if opts.sideBySide {
		report.PrintSideBySide(os.Stdout, textdiff.SideBySide(ops, contents[0], contents[1]))
	} else {
		report.PrintUnified(os.Stdout, textdiff.Unified(ops, contents[0], contents[1]))
	}
	return nil
}
