package sat

import "testing"

func TestLiteral(t *testing.T) {
	testCases := []struct {
		lit          Literal
		wantVar      int
		wantPositive bool
		wantOpposite Literal
		wantString   string
	}{
		{lit: 1, wantVar: 1, wantPositive: true, wantOpposite: -1, wantString: "1"},
		{lit: -1, wantVar: 1, wantPositive: false, wantOpposite: 1, wantString: "!1"},
		{lit: 42, wantVar: 42, wantPositive: true, wantOpposite: -42, wantString: "42"},
		{lit: -42, wantVar: 42, wantPositive: false, wantOpposite: 42, wantString: "!42"},
	}

	for _, tc := range testCases {
		if got := tc.lit.Var(); got != tc.wantVar {
			t.Errorf("Literal(%d).Var(): want %d, got %d", tc.lit, tc.wantVar, got)
		}
		if got := tc.lit.IsPositive(); got != tc.wantPositive {
			t.Errorf("Literal(%d).IsPositive(): want %t, got %t", tc.lit, tc.wantPositive, got)
		}
		if got := tc.lit.Opposite(); got != tc.wantOpposite {
			t.Errorf("Literal(%d).Opposite(): want %d, got %d", tc.lit, tc.wantOpposite, got)
		}
		if got := tc.lit.String(); got != tc.wantString {
			t.Errorf("Literal(%d).String(): want %q, got %q", tc.lit, tc.wantString, got)
		}
	}
}

func TestLBoolOpposite(t *testing.T) {
	if got := True.Opposite(); got != False {
		t.Errorf("True.Opposite(): want False, got %s", got)
	}
	if got := False.Opposite(); got != True {
		t.Errorf("False.Opposite(): want True, got %s", got)
	}
	if got := Unknown.Opposite(); got != Unknown {
		t.Errorf("Unknown.Opposite(): want Unknown, got %s", got)
	}
}
