// Package dimacs reads CNF formulas in the DIMACS format. Tokenisation is
// delegated to github.com/rhartert/dimacs; this package enforces the problem
// line contract and loads the clauses into a sat.Formula.
package dimacs

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rhartert/dimacs"
	"github.com/sirupsen/logrus"

	"github.com/Landflier/boolsat/internal/sat"
)

// builder implements dimacs.Builder and populates a formula as the reader
// emits problem, comment, and clause events.
type builder struct {
	formula     *sat.Formula
	problemSeen bool
	declared    int
	parsed      int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if b.problemSeen {
		return errors.New("multiple problem lines")
	}
	if problem != "cnf" {
		return errors.Errorf("problem type %q is not supported", problem)
	}
	b.problemSeen = true
	b.declared = nClauses
	b.formula.SetNumVariables(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if !b.problemSeen {
		return errors.New("clause data before problem line")
	}
	if len(tmpClause) == 0 {
		return nil // empty clauses are skipped
	}
	clause := sat.NewClause()
	for _, l := range tmpClause {
		clause.Push(sat.Literal(l))
	}
	b.formula.AddClause(clause)
	b.parsed++
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// finish validates the builder state once the whole input has been read. A
// clause count differing from the declared one is only worth a warning.
func (b *builder) finish() error {
	if !b.problemSeen {
		return errors.New("missing problem line")
	}
	if b.parsed != b.declared {
		logrus.Warnf("expected %d clauses, but read %d", b.declared, b.parsed)
	}
	return nil
}

// Parse reads a DIMACS CNF formula from r into f. A mismatch between the
// declared and actual clause count is logged as a warning, not an error; a
// missing, duplicated, or malformed problem line is an error.
func Parse(r io.Reader, f *sat.Formula) error {
	b := &builder{formula: f}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return err
	}
	return b.finish()
}

// LoadFile parses the DIMACS CNF file at the given path into f. Files with a
// ".gz" extension are decompressed transparently.
func LoadFile(path string, f *sat.Formula) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "error reading file %q", path)
	}
	defer file.Close()

	r := io.Reader(file)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return errors.Wrapf(err, "error reading file %q", path)
		}
		defer gz.Close()
		r = gz
	}

	if err := Parse(r, f); err != nil {
		return errors.Wrapf(err, "could not parse %q", path)
	}
	return nil
}
