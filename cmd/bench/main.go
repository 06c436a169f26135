// Command bench runs the solver binary on every *.cnf instance in
// examples/<subdir> and writes the wall-clock timing of each run to
// <subdir>_timing_analysis.csv.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Landflier/boolsat/internal/bench"
)

var cfg = bench.Config{}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bench <subdir>",
		Short:         "time the solver on a directory of CNF instances",
		Long: `Bench runs the solver on all .cnf files in <examples>/<subdir>, measures the
wall-clock execution time of each run, and saves the results to
<subdir>_timing_analysis.csv.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return bench.Run(cfg, args[0])
		},
	}
	cmd.Flags().StringVar(&cfg.SolverPath, "solver", "bin/solver", "path to the solver binary")
	cmd.Flags().StringVar(&cfg.ExamplesDir, "examples", "examples", "directory containing the instance subdirectories")
	cmd.Flags().StringVar(&cfg.OutputDir, "out", ".", "directory the CSV file is written to")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
