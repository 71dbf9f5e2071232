package main

import (
	"errors"
	"fmt"

	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/internal/histcfg"
	"github.com/spf13/cobra"
)

var checkLayout string

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkLayout, "layout", "auto", "Line layout (auto, flat, directory)")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <config>",
		Short: "Validate a histogram configuration",
		Long: `The check command parses a configuration file and lists the histograms it
would create. It exits with an error if any line is rejected.

Example:
  histctl check histos.cfg
  histctl check histos.yaml --json
  histctl check histos.cfg --layout directory`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

// checkRecord is the printed form of one configuration record.
type checkRecord struct {
	Line  int        `json:"line"`
	Dir   string     `json:"dir,omitempty"`
	Kind  hist.Kind  `json:"kind"`
	Name  string     `json:"name"`
	Title string     `json:"title"`
	X     hist.Axis  `json:"x"`
	Y     *hist.Axis `json:"y,omitempty"`
}

type checkDiagnostic struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
	Text  string `json:"text"`
}

type checkResult struct {
	Config      string            `json:"config"`
	Records     []checkRecord     `json:"records"`
	Diagnostics []checkDiagnostic `json:"diagnostics,omitempty"`
}

func runCheck(args []string) error {
	configPath := args[0]

	layout, err := histcfg.ParseLayout(checkLayout)
	if err != nil {
		return err
	}

	printVerbose("Parsing config: %s (layout %s)\n", configPath, layout)
	res, err := histcfg.ParseFile(configPath, layout)
	if err != nil {
		if errors.Is(err, histcfg.ErrNotFound) {
			return fmt.Errorf("config file not found: %s", configPath)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	out := checkResult{Config: configPath}
	for _, rec := range res.Records {
		out.Records = append(out.Records, toCheckRecord(rec))
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, checkDiagnostic{Line: d.Line, Error: d.Err.Error(), Text: d.Text})
	}

	if jsonOut {
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		for _, r := range out.Records {
			printInfo("%4d  %-10s %-20s %q %s", r.Line, r.Kind, r.Name, r.Title, axisString(r.X))
			if r.Y != nil {
				printInfo(" x %s", axisString(*r.Y))
			}
			if r.Dir != "" {
				printInfo("  in %s", paint(dimStyle, r.Dir))
			}
			printInfo("\n")
		}
		for _, d := range out.Diagnostics {
			printError("%s:%d: %s\n  %s\n", configPath, d.Line, d.Error, d.Text)
		}
		printInfo("%d histogram(s), %d rejected line(s)\n", len(out.Records), len(out.Diagnostics))
	}

	if len(out.Diagnostics) > 0 {
		return fmt.Errorf("%s: %d rejected line(s)", configPath, len(out.Diagnostics))
	}
	return nil
}

func toCheckRecord(rec histcfg.Record) checkRecord {
	m := rec.Common()
	out := checkRecord{Line: m.Line, Dir: m.Dir, Kind: m.Kind, Name: m.Name, Title: m.Title}
	switch r := rec.(type) {
	case histcfg.Record1D:
		out.X = r.X()
	case histcfg.Record2D:
		out.X = r.X()
		y := r.Y()
		out.Y = &y
	}
	return out
}

func axisString(a hist.Axis) string {
	return fmt.Sprintf("[%d bins, %g..%g)", a.Bins, a.Min, a.Max)
}
