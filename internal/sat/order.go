package sat

import "github.com/rhartert/yagh"

// VarOrder maintains the set of candidate branching variables. The branching
// rule is fixed and deterministic: the unassigned variable with the lowest
// index, always assigned to true first. The candidates are kept in an
// int-keyed priority map whose cost is the variable index itself, so popping
// yields the lowest-index candidate.
type VarOrder struct {
	order *yagh.IntMap[int]
}

// NewVarOrder returns a VarOrder over variables 1..n with every variable a
// candidate.
func NewVarOrder(n int) *VarOrder {
	vo := &VarOrder{order: yagh.New[int](0)}
	for v := 1; v <= n; v++ {
		vo.order.GrowBy(1)
		vo.order.Put(v-1, v)
	}
	return vo
}

// NextDecision returns the lowest-index unassigned variable, or 0 when every
// variable is assigned. Variables popped here must be reinserted when a
// backtrack unassigns them.
func (vo *VarOrder) NextDecision(t *Trail) int {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			return 0
		}
		if v := next.Elem + 1; !t.Assigned(v) {
			return v
		}
	}
}

// Reinsert adds variable v back to the set of candidates. Calling it for a
// variable that is still a candidate only rewrites its cost.
func (vo *VarOrder) Reinsert(v int) {
	vo.order.Put(v-1, v)
}
