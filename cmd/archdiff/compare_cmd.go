package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oic-tools/archdiff/pkg/archive"
	"github.com/oic-tools/archdiff/pkg/compare"
	"github.com/oic-tools/archdiff/pkg/normalize"
	"github.com/oic-tools/archdiff/pkg/report"
)

type compareOpts struct {
	*rootOpts
	configPath string
	verbosity  int
	patches    bool
	contentCap int64
}

func newCompare(root *rootOpts) *compareOpts {
	return &compareOpts{rootOpts: root}
}

func (opts *compareOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left.zip> <right.zip>",
		Short: "Compare two exported archives and print a change report",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"path to an optional "+normalize.ConfigFilename+" with extra normalization rules")
	cmd.Flags().IntVarP(&opts.verbosity, "verbose", "v", 0,
		"0 = meaningful changes only, 1 = include low severity, 2 = include info")
	cmd.Flags().BoolVar(&opts.patches, "patches", false,
		"print a patch block per reported item")
	cmd.Flags().Int64Var(&opts.contentCap, "content-cap", archive.DefaultContentCap,
		"withhold content of files larger than this many bytes")
	return cmd
}

func (opts *compareOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("compare needs exactly two archive paths")
	}

	var cfg *normalize.Config
	if opts.configPath != "" {
		var err error
		if cfg, err = normalize.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	norm, err := normalize.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	left, err := archive.LoadZip(args[0], opts.contentCap)
	if err != nil {
		return err
	}
	right, err := archive.LoadZip(args[1], opts.contentCap)
	if err != nil {
		return err
	}
	opts.Logger.Log("msg", "comparing archives",
		"left", left.Source, "leftFiles", len(left.Files),
		"right", right.Source, "rightFiles", len(right.Files))

	engine := compare.NewEngine(opts.Logger, norm, cfg)
	res := engine.Diff(left.Files, right.Files)

	report.PrintSummary(os.Stdout, res)
	if len(res.Items) > 0 {
		os.Stdout.WriteString("\n")
		report.PrintItems(os.Stdout, res, opts.verbosity, opts.patches)
	}
	return nil
}
