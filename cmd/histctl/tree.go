package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/histkit/outfile"
	"github.com/joshuapare/histkit/outfile/printer"
	"github.com/spf13/cobra"
)

var (
	treeDepth   int
	treeObjects bool
	treePayload bool
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeObjects, "objects", true, "Show objects in each directory")
	cmd.Flags().BoolVar(&treePayload, "payload", false, "Show encoded object contents")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <output> [path]",
		Short: "Display the directory tree of an output file",
		Long: `The tree command displays the directories and objects of an output file.

Example:
  histctl tree run.yaml
  histctl tree run.db det/ecal --payload
  histctl tree run.yaml --depth 2 --objects=false`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	outPath := args[0]
	var dirPath string
	if len(args) > 1 {
		dirPath = args[1]
	}

	printVerbose("Opening output: %s\n", outPath)

	f, err := outfile.Open(outPath)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer f.Close()

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowObjects = treeObjects
	opts.ShowPayload = treePayload

	if jsonOut {
		opts.Format = printer.FormatJSON
	} else if treeCompact {
		opts.IndentSize = 1
	}

	if err := printer.New(f.Dir, os.Stdout, opts).PrintTree(dirPath); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
