package lit

import "testing"

func TestFromDimacs(t *testing.T) {
	if l := FromDimacs(12); l.Var() != 11 {
		t.Fatalf("FromDimacs(12) failed, got var: %d", l.Var())
	}
	if l := FromDimacs(-12); l.Var() != 11 {
		t.Fatalf("FromDimacs(-12) failed, got var: %d", l.Var())
	}
	if l := FromDimacs(-12); !l.Sign() {
		t.Fatalf("FromDimacs(-12) should be negative")
	}
}

func TestNot(t *testing.T) {
	if l := New(12, false).Not(); l != New(12, true) {
		t.Fatalf("Not() failed, got: %s", l)
	}
	if l := New(12, false).Not().Not(); l != New(12, false) {
		t.Fatalf("Not() is not involutive, got: %s", l)
	}
}

func TestSign(t *testing.T) {
	if l := New(12, true); l.Sign() != true {
		t.Fatalf("Sign() failed, got: %v", l.Sign())
	}
	if l := New(12, false); l.Sign() != false {
		t.Fatalf("Sign() failed, got: %v", l.Sign())
	}
}

func TestVar(t *testing.T) {
	if l := New(23, false); l.Var() != 23 {
		t.Fatalf("Var() failed: %d", l.Var())
	}
	if l := New(23, true); l.Var() != 23 {
		t.Fatalf("Var() failed: %d", l.Var())
	}
}

func TestDimacsRoundTrip(t *testing.T) {
	for _, x := range []int{1, -1, 42, -42} {
		if got := FromDimacs(x).Dimacs(); got != x {
			t.Fatalf("round trip failed for %d, got %d", x, got)
		}
	}
}
