package solver

import "testing"

func TestLubySequence(t *testing.T) {
	// The first entries of the Luby sequence with base 2.
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for i, w := range want {
		if got := luby(2, i); got != w {
			t.Errorf("luby(2, %d) = %v, want %v", i, got, w)
		}
	}
}

func TestLubyScalesByY(t *testing.T) {
	if got := luby(3, 2); got != 3 {
		t.Errorf("luby(3, 2) = %v, want 3", got)
	}
}
