package sat

import "strings"

// ClauseStatus classifies a clause under a (partial) assignment.
type ClauseStatus uint8

const (
	// StatusUnresolved means the clause has at least two unassigned literals
	// and no satisfied literal.
	StatusUnresolved ClauseStatus = iota

	// StatusSatisfied means at least one literal is assigned and satisfied.
	StatusSatisfied

	// StatusFalsified means every literal is assigned and falsified.
	StatusFalsified

	// StatusUnit means exactly one literal is unassigned and no literal is
	// satisfied.
	StatusUnit
)

func (s ClauseStatus) String() string {
	switch s {
	case StatusSatisfied:
		return "SAT"
	case StatusFalsified:
		return "UNSAT"
	case StatusUnit:
		return "UNIT"
	default:
		return "UNRESOLVED"
	}
}

// Clause is a disjunction of literals. Clauses grow by appending and are
// never stored empty: the reader skips empty input clauses and a derivation
// of the empty clause during conflict analysis surfaces as an UNSAT answer
// from the solver.
type Clause struct {
	literals []Literal
}

// NewClause returns a clause containing the given literals.
func NewClause(literals ...Literal) *Clause {
	c := &Clause{literals: make([]Literal, 0, len(literals))}
	c.literals = append(c.literals, literals...)
	return c
}

// Push appends a literal to the clause.
func (c *Clause) Push(l Literal) {
	c.literals = append(c.literals, l)
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Literals returns the clause's literals. The slice must not be mutated.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Contains returns true if l is one of the clause's literals.
func (c *Clause) Contains(l Literal) bool {
	for _, lit := range c.literals {
		if lit == l {
			return true
		}
	}
	return false
}

func (c *Clause) copy() *Clause {
	return NewClause(c.literals...)
}

// Status classifies the clause under the given trail. The scan short-circuits
// on the first satisfied literal, so a unit clause whose literal is already
// satisfied classifies as StatusSatisfied, never StatusUnit.
func (c *Clause) Status(t *Trail) ClauseStatus {
	falsified := 0
	for _, l := range c.literals {
		switch t.LitValue(l) {
		case True:
			return StatusSatisfied
		case False:
			falsified++
		}
	}
	switch {
	case falsified == len(c.literals):
		return StatusFalsified
	case falsified == len(c.literals)-1:
		return StatusUnit
	default:
		return StatusUnresolved
	}
}

// unitLiteral returns the unique unassigned literal of a clause classified as
// StatusUnit.
func (c *Clause) unitLiteral(t *Trail) Literal {
	for _, l := range c.literals {
		if !t.Assigned(l.Var()) {
			return l
		}
	}
	panic("no unassigned literal in unit clause")
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
