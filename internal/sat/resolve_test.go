package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name  string
		a     *Clause
		b     *Clause
		pivot Literal
		want  []Literal
	}{
		{
			name:  "disjoint remainders",
			a:     NewClause(1, 2),
			b:     NewClause(-1, 3),
			pivot: 1,
			want:  []Literal{2, 3},
		},
		{
			name:  "duplicates collapse",
			a:     NewClause(-4, -6),
			b:     NewClause(3, 4, -6),
			pivot: -4,
			want:  []Literal{-6, 3},
		},
		{
			name:  "pivot given with either polarity",
			a:     NewClause(1, 2),
			b:     NewClause(-1, 3),
			pivot: -1,
			want:  []Literal{2, 3},
		},
		{
			name:  "empty resolvent",
			a:     NewClause(1),
			b:     NewClause(-1),
			pivot: 1,
			want:  []Literal{},
		},
		{
			name:  "order follows a then b",
			a:     NewClause(5, -1, 2),
			b:     NewClause(-5, 2, -3),
			pivot: 5,
			want:  []Literal{-1, 2, -3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.a, tc.b, tc.pivot)
			if diff := cmp.Diff(tc.want, got.Literals()); diff != "" {
				t.Errorf("Resolve(): mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

// The resolvent never contains a duplicate literal or any occurrence of the
// pivot variable.
func TestResolveNoPivotNoDuplicates(t *testing.T) {
	a := NewClause(1, -2, 3, 4)
	b := NewClause(-1, -2, -3, 5)

	got := Resolve(a, b, 1)

	seen := map[Literal]bool{}
	for _, l := range got.Literals() {
		if l.Var() == 1 {
			t.Errorf("resolvent contains pivot variable: %s", got)
		}
		if seen[l] {
			t.Errorf("resolvent contains duplicate literal %d: %s", l, got)
		}
		seen[l] = true
	}
}
