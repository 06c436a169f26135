// Package bench times the solver binary on a directory of CNF instances and
// records one CSV row per instance.
package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config parameterises a harness run.
type Config struct {
	// SolverPath is the solver binary executed once per instance, with the
	// instance file as its single argument.
	SolverPath string

	// ExamplesDir is the directory containing the instance subdirectories.
	ExamplesDir string

	// OutputDir is where the CSV file is written. Defaults to the working
	// directory.
	OutputDir string
}

// Run executes the solver on every *.cnf file in ExamplesDir/subdir and
// appends one row "filename,seconds" per instance to
// <subdir>_timing_analysis.csv, after a header row. Instances are processed
// in name order so runs are reproducible. A child process failure produces a
// "filename,ERROR" row instead of aborting the run. Wall-clock durations are
// recorded with microsecond resolution, and the CSV is flushed after every
// row so that partial results survive a crash.
func Run(cfg Config, subdir string) error {
	if _, err := os.Stat(cfg.SolverPath); err != nil {
		return errors.Wrapf(err, "solver not found at %q", cfg.SolverPath)
	}

	targetDir := filepath.Join(cfg.ExamplesDir, subdir)
	files, err := filepath.Glob(filepath.Join(targetDir, "*.cnf"))
	if err != nil {
		return errors.Wrapf(err, "could not list %q", targetDir)
	}
	if _, err := os.Stat(targetDir); err != nil {
		return errors.Wrapf(err, "directory %q does not exist", targetDir)
	}
	sort.Strings(files)

	outPath := filepath.Join(cfg.OutputDir, subdir+"_timing_analysis.csv")
	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "could not create output file %q", outPath)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"Filename", "Execution Time (seconds)"}); err != nil {
		return err
	}
	w.Flush()

	avg := newEMA(0.9)
	count := 0
	for _, file := range files {
		name := filepath.Base(file)
		elapsed, runErr := runSolver(cfg.SolverPath, file)

		row := []string{name, fmt.Sprintf("%.6f", elapsed.Seconds())}
		if runErr != nil {
			logrus.WithField("instance", name).WithError(runErr).Error("solver failed")
			row[1] = "ERROR"
		} else {
			avg.Add(elapsed.Seconds())
			count++
			logrus.WithFields(logrus.Fields{
				"instance":    name,
				"seconds":     fmt.Sprintf("%.6f", elapsed.Seconds()),
				"avg_seconds": fmt.Sprintf("%.6f", avg.Val()),
			}).Info("solved")
		}

		if err := w.Write(row); err != nil {
			return err
		}
		w.Flush()
	}
	if err := w.Error(); err != nil {
		return err
	}

	if count == 0 && len(files) == 0 {
		logrus.Warnf("no .cnf files found in %s", targetDir)
	} else {
		logrus.Infof("processed %d files, results written to %s", len(files), outPath)
	}
	return nil
}

// runSolver executes the solver on one instance and returns the wall-clock
// duration of the child process.
func runSolver(solverPath, cnfFile string) (time.Duration, error) {
	cmd := exec.Command(solverPath, cnfFile)
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Round(time.Microsecond)
	return elapsed, err
}
