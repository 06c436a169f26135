package sat

// Formula is an ordered clause database in conjunctive normal form. The
// sequence of clauses is append-only: clause indices are stable and the trail
// uses them as antecedent identifiers.
type Formula struct {
	clauses      []*Clause
	numVariables int
	numLearnt    int
}

// NewFormula returns an empty formula.
func NewFormula() *Formula {
	return &Formula{}
}

// AddClause appends a clause to the formula and returns its index. The
// variable count grows to cover the largest index observed in the clause.
func (f *Formula) AddClause(c *Clause) int {
	f.clauses = append(f.clauses, c)
	for _, l := range c.literals {
		if v := l.Var(); v > f.numVariables {
			f.numVariables = v
		}
	}
	return len(f.clauses) - 1
}

// Learn appends a learned clause and returns its index. Learned clauses are
// regular clauses as far as propagation and analysis are concerned; the count
// is kept for reporting only.
func (f *Formula) Learn(c *Clause) int {
	f.numLearnt++
	return f.AddClause(c)
}

// SetNumVariables raises the formula's variable count to n. It never shrinks
// it below the largest index already observed.
func (f *Formula) SetNumVariables(n int) {
	if n > f.numVariables {
		f.numVariables = n
	}
}

// NumVariables returns the number of variables of the formula.
func (f *Formula) NumVariables() int {
	return f.numVariables
}

// NumClauses returns the number of clauses, learned clauses included.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// NumLearnt returns the number of learned clauses appended so far.
func (f *Formula) NumLearnt() int {
	return f.numLearnt
}

// Clause returns the clause stored at index i.
func (f *Formula) Clause(i int) *Clause {
	return f.clauses[i]
}

// SatisfiedBy returns true if every clause of the formula has at least one
// satisfied literal under the given trail.
func (f *Formula) SatisfiedBy(t *Trail) bool {
	for _, c := range f.clauses {
		satisfied := false
		for _, l := range c.literals {
			if t.LitValue(l) == True {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
