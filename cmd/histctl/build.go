package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/histkit/histmgr"
	"github.com/joshuapare/histkit/internal/histcfg"
	"github.com/joshuapare/histkit/outfile"
	"github.com/spf13/cobra"
)

var (
	buildLayout    string
	buildStore     string
	buildFullFsync bool
)

func init() {
	cmd := newBuildCmd()
	cmd.Flags().StringVar(&buildLayout, "layout", "auto", "Line layout (auto, flat, directory)")
	cmd.Flags().StringVar(&buildStore, "store", "", "Output encoding (yaml, sqlite); default from extension")
	cmd.Flags().BoolVar(&buildFullFsync, "full-fsync", false, "Use F_FULLFSYNC on macOS when flushing")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <config> <output>",
		Short: "Create the configured histograms and write them to an output file",
		Long: `The build command creates every histogram in the configuration and writes
them, empty, into a new output file. Configured sub-directories are created
in the output. Rejected configuration lines are logged and skipped.

Files ending in .db, .sqlite or .sqlite3 are written as SQLite databases,
anything else as YAML.

Example:
  histctl build histos.cfg run.yaml
  histctl build histos.yaml run.db --log-level info`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
	return cmd
}

func runBuild(args []string) error {
	configPath, outPath := args[0], args[1]

	layout, err := histcfg.ParseLayout(buildLayout)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	opts := outfile.DefaultOptions()
	opts.Store = outfile.StoreKind(buildStore)
	opts.FullFsync = buildFullFsync
	switch opts.Store {
	case outfile.StoreAuto, outfile.StoreYAML, outfile.StoreSQLite:
	default:
		return fmt.Errorf("invalid --store %q (want yaml or sqlite)", buildStore)
	}

	printVerbose("Creating output: %s\n", outPath)
	out, err := outfile.Create(outPath, opts)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	m := histmgr.New(out, histmgr.WithLogger(logger), histmgr.WithConfigLayout(layout))
	if !m.LoadConfig(configPath) {
		_ = out.Close()
		return fmt.Errorf("failed to load config: %s", configPath)
	}
	count := m.Len()
	m.WriteAll(true)
	m.Close()

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"config":     configPath,
			"output":     outPath,
			"histograms": count,
		})
	}
	printInfo("Wrote %d histogram(s) to %s\n", count, outPath)
	return nil
}
