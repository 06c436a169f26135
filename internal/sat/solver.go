// Package sat implements a small conflict-driven clause learning (CDCL) SAT
// solver with non-chronological backtracking, together with a plain DPLL
// baseline mode. The solver is deliberately simple: propagation scans the
// clause database to a fixed point, branching always picks the lowest-index
// unassigned variable with positive phase, and the learned-clause database
// only grows. With a fixed input formula every step of the search is a pure
// function of the trail and the formula, so two runs on the same input
// produce identical traces.
package sat

// Mode selects the search algorithm.
type Mode uint8

const (
	// ModeCDCL is conflict-driven clause learning with non-chronological
	// backtracking.
	ModeCDCL Mode = iota

	// ModeDPLL is the baseline: unit propagation and chronological
	// backtracking over copied trails, with no learning.
	ModeDPLL
)

// Options configures a solver.
type Options struct {
	Mode Mode
}

// DefaultOptions enables clause learning.
var DefaultOptions = Options{
	Mode: ModeCDCL,
}

// noClause marks the absence of a conflict in propagation results.
const noClause = -1

// Solver owns all search state for the lifetime of one Solve call: the
// formula (which grows by learned clauses), the trail, and the branching
// order. Nothing is shared across solvers, so separate instances may run
// concurrently.
type Solver struct {
	formula *Formula
	trail   *Trail
	order   *VarOrder
	mode    Mode

	// Search statistics.
	TotalDecisions    int64
	TotalPropagations int64
	TotalConflicts    int64
}

// NewSolver returns a solver for the given formula with a fresh all-unassigned
// trail. The formula is mutated during search: learned clauses are appended to
// it.
func NewSolver(f *Formula, ops Options) *Solver {
	return &Solver{
		formula: f,
		trail:   NewTrail(f.NumVariables()),
		order:   NewVarOrder(f.NumVariables()),
		mode:    ops.Mode,
	}
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver(f *Formula) *Solver {
	return NewSolver(f, DefaultOptions)
}

// Formula returns the solver's clause database.
func (s *Solver) Formula() *Formula {
	return s.formula
}

// Trail returns the solver's assignment trail.
func (s *Solver) Trail() *Trail {
	return s.trail
}

// Model returns the satisfying assignment found by Solve, indexed by variable
// with model[v-1] the value of variable v. It must only be called after Solve
// returned true.
func (s *Solver) Model() []bool {
	model := make([]bool, s.trail.NumVariables())
	for v := 1; v <= s.trail.NumVariables(); v++ {
		if !s.trail.Assigned(v) {
			panic("not a model")
		}
		model[v-1] = s.trail.Value(v) == True
	}
	return model
}

// Solve decides the formula and returns true if it is satisfiable. On a true
// result the trail holds a complete satisfying assignment, available through
// Model.
func (s *Solver) Solve() bool {
	if s.mode == ModeDPLL {
		return s.solveDPLL()
	}
	return s.solveCDCL()
}

func (s *Solver) solveCDCL() bool {
	if s.propagate(s.trail) != noClause {
		// Conflict before any decision.
		return false
	}

	for !s.trail.AllAssigned() {
		s.decide()
		for {
			conflict := s.propagate(s.trail)
			if conflict == noClause {
				break
			}
			s.TotalConflicts++

			b := s.analyze(conflict)
			if b < 0 {
				return false
			}
			s.backtrack(b)
		}
	}
	return true
}

// decide opens a new decision level on the lowest-index unassigned variable,
// positive phase.
func (s *Solver) decide() {
	v := s.order.NextDecision(s.trail)
	s.trail.Branch(Literal(v))
	s.TotalDecisions++
}

// propagate runs unit propagation to a fixed point: full passes over the
// clause database until a pass produces no assignment. It returns the index
// of a falsified clause as soon as one is found, or noClause once the fixed
// point is reached. On a noClause return no clause is unit or falsified.
func (s *Solver) propagate(t *Trail) int {
	for again := true; again; {
		again = false
		for i := 0; i < s.formula.NumClauses(); i++ {
			c := s.formula.Clause(i)
			switch c.Status(t) {
			case StatusSatisfied, StatusUnresolved:
				// nothing to do
			case StatusUnit:
				t.Imply(c.unitLiteral(t), i)
				s.TotalPropagations++
				again = true
			case StatusFalsified:
				return i
			}
		}
	}
	return noClause
}

// analyze derives a learned clause from the conflict by resolution along the
// implication graph, appends it to the formula, and returns the level to
// backtrack to. It returns -1 when the conflict arises at level 0, in which
// case the formula is unsatisfiable.
//
// The loop resolves the current clause with the antecedent of its first
// literal (in clause order) implied at the current level, until at most one
// literal assigned at the current level remains. That remaining literal is
// the first unique implication point. Because backtracking flips the decision
// at the target level and clears that level's implications, the learned
// clause is not necessarily unit right after backtracking.
func (s *Solver) analyze(conflict int) int {
	t := s.trail
	if t.Level() == 0 {
		return -1
	}

	learnt := s.formula.Clause(conflict).copy()
	for {
		atCurrentLevel := 0
		pivot := Literal(0)
		for _, l := range learnt.literals {
			v := l.Var()
			if t.Depth(v) != t.Level() {
				continue
			}
			atCurrentLevel++
			if pivot == 0 && t.Reason(v) != NoReason {
				pivot = l
			}
		}
		if atCurrentLevel <= 1 {
			break
		}

		// At most one literal per level is a decision, so a pivot with an
		// antecedent always exists here.
		antecedent := s.formula.Clause(t.Reason(pivot.Var()))
		learnt = Resolve(learnt, antecedent, pivot)
	}

	s.formula.Learn(learnt)
	return backtrackLevel(learnt, t)
}

// backtrackLevel returns the second-largest decision level among the clause's
// literals: the largest level strictly below the maximum, or the maximum
// itself when all levels are equal. Clauses of size at most one always force
// level 0, so their assertion fires at the root on the next propagation.
func backtrackLevel(c *Clause, t *Trail) int {
	if c.Len() <= 1 {
		return 0
	}
	max := 0
	for _, l := range c.literals {
		if d := t.Depth(l.Var()); d > max {
			max = d
		}
	}
	second := -1
	for _, l := range c.literals {
		if d := t.Depth(l.Var()); d < max && d > second {
			second = d
		}
	}
	if second < 0 {
		return max
	}
	return second
}

// backtrack restores the trail to level b and re-registers every unassigned
// variable as a branching candidate.
func (s *Solver) backtrack(b int) {
	s.trail.Backtrack(b)
	for v := 1; v <= s.trail.NumVariables(); v++ {
		if !s.trail.Assigned(v) {
			s.order.Reinsert(v)
		}
	}
}
