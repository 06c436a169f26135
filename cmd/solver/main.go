// Command solver decides the satisfiability of a single DIMACS CNF instance.
//
// It prints a human-readable echo of the parsed formula followed by a
// "RESULT: SAT" or "RESULT: UNSAT" line. On SAT it also prints the assignment
// and verifies that every clause is satisfied. The exit code reflects the
// parse, not the verdict: 0 on a successful parse regardless of SAT/UNSAT.
package main

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Landflier/boolsat/internal/dimacs"
	"github.com/Landflier/boolsat/internal/sat"
)

var (
	flagDPLL  bool
	flagDebug bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "solver <cnf_file>",
		Short:         "CDCL SAT solver for DIMACS CNF formulas",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().BoolVar(&flagDPLL, "dpll", false, "use the DPLL baseline instead of CDCL")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "dump search statistics to stderr")
	return cmd
}

func run(path string) error {
	formula := sat.NewFormula()
	if err := dimacs.LoadFile(path, formula); err != nil {
		return err
	}

	printFormula(formula)

	ops := sat.DefaultOptions
	if flagDPLL {
		ops.Mode = sat.ModeDPLL
	}
	solver := sat.NewSolver(formula, ops)

	fmt.Printf("\nSolving...\n")
	if solver.Solve() {
		fmt.Printf("\nRESULT: SAT\n")
		printAssignment(solver.Trail())
		if formula.SatisfiedBy(solver.Trail()) {
			fmt.Printf("\nVerification: The assignment satisfies all clauses.\n")
		} else {
			// A SAT answer that fails verification is a solver bug, not a
			// user error.
			fmt.Printf("\nVerification Error: The assignment does not satisfy all clauses!\n")
		}
	} else {
		fmt.Printf("\nRESULT: UNSAT\n")
	}

	if flagDebug {
		stats := struct {
			Decisions    int64
			Propagations int64
			Conflicts    int64
			Learnt       int
		}{
			Decisions:    solver.TotalDecisions,
			Propagations: solver.TotalPropagations,
			Conflicts:    solver.TotalConflicts,
			Learnt:       formula.NumLearnt(),
		}
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(stats))
	}
	return nil
}

func printFormula(f *sat.Formula) {
	fmt.Printf("CNF Formula with %d variables and %d clauses:\n", f.NumVariables(), f.NumClauses())
	for i := 0; i < f.NumClauses(); i++ {
		fmt.Printf("Clause %d: (", i+1)
		for j, l := range f.Clause(i).Literals() {
			if j > 0 {
				fmt.Print(" ∨ ")
			}
			fmt.Print(int(l))
		}
		fmt.Printf(")\n")
	}
}

func printAssignment(t *sat.Trail) {
	fmt.Print("ASSIGNMENT: ")
	for v := 1; v <= t.NumVariables(); v++ {
		if t.Assigned(v) {
			val := 0
			if t.Value(v) == sat.True {
				val = 1
			}
			fmt.Printf("%d=%d ", v, val)
		} else {
			fmt.Printf("%d=NOT ASSIGNED ", v)
		}
	}
	fmt.Println()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
