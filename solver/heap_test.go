package solver

import "testing"

func TestVarHeapPopsHighestActivityFirst(t *testing.T) {
	activity := []float64{0.5, 2.0, 1.0}
	h := newVarHeap(0, &activity)
	for v := range activity {
		h.newVar(v)
	}

	got, ok := h.pop()
	if !ok || got != 1 {
		t.Fatalf("pop() = (%d, %v), want (1, true)", got, ok)
	}
	got, ok = h.pop()
	if !ok || got != 2 {
		t.Fatalf("pop() = (%d, %v), want (2, true)", got, ok)
	}
	got, ok = h.pop()
	if !ok || got != 0 {
		t.Fatalf("pop() = (%d, %v), want (0, true)", got, ok)
	}
	if !h.empty() {
		t.Fatal("heap should be empty after draining every inserted variable")
	}
}

func TestVarHeapRemoveExcludesFromPop(t *testing.T) {
	activity := []float64{1, 1, 1}
	h := newVarHeap(0, &activity)
	for v := range activity {
		h.newVar(v)
	}
	h.remove(1)

	seen := map[int]bool{}
	for !h.empty() {
		v, ok := h.pop()
		if !ok {
			break
		}
		seen[v] = true
	}
	if seen[1] {
		t.Fatal("a removed variable must never be popped")
	}
	if !seen[0] || !seen[2] {
		t.Fatal("every variable not removed should still be popped eventually")
	}
}

func TestVarHeapUpdateReordersAfterActivityChange(t *testing.T) {
	activity := []float64{1, 1}
	h := newVarHeap(0, &activity)
	h.newVar(0)
	h.newVar(1)

	activity[1] = 5
	h.update(1)

	got, ok := h.pop()
	if !ok || got != 1 {
		t.Fatalf("pop() after bumping var 1's activity = (%d, %v), want (1, true)", got, ok)
	}
}

func TestVarHeapContains(t *testing.T) {
	activity := []float64{1}
	h := newVarHeap(0, &activity)
	h.newVar(0)
	if !h.contains(0) {
		t.Fatal("a freshly inserted variable should be reported as contained")
	}
	h.remove(0)
	if h.contains(0) {
		t.Fatal("a removed variable should no longer be reported as contained")
	}
}
