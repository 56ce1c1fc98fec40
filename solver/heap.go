package solver

import "github.com/rhartert/yagh"

// varHeap is the decision-variable order: a min-heap over negated activity,
// so the most active unassigned variable pops first. It replaces the two
// hand-rolled binary heaps the solver used to carry (one importable, one
// package-private) with a single generic heap.
type varHeap struct {
	activity *[]float64
	heap     *yagh.IntMap[float64]
	inHeap   []bool
	live     int
	cap      int
}

func newVarHeap(n int, activity *[]float64) *varHeap {
	return &varHeap{
		activity: activity,
		heap:     yagh.New[float64](n),
		inHeap:   make([]bool, 0, n),
		cap:      n,
	}
}

// growTo makes room for index v. yagh.IntMap is a fixed-capacity structure
// over [0,n) -- it has no way to grow in place -- so unlike the grounding's
// NewVarOrder, which knows nVar up front and makes NewVar a no-op, this
// solver learns about variables one at a time as clauses are parsed and has
// to rebuild the map onto a bigger backing array when one outruns it.
func (h *varHeap) growTo(v int) {
	if v < h.cap {
		return
	}
	newCap := h.cap
	if newCap == 0 {
		newCap = 1
	}
	for newCap <= v {
		newCap *= 2
	}
	rebuilt := yagh.New[float64](newCap)
	for i, live := range h.inHeap {
		if live {
			rebuilt.Put(i, -(*h.activity)[i])
		}
	}
	h.heap = rebuilt
	h.cap = newCap
}

// newVar grows the heap to cover a freshly allocated variable and inserts it.
func (h *varHeap) newVar(v int) {
	for len(h.inHeap) <= v {
		h.inHeap = append(h.inHeap, false)
	}
	h.growTo(v)
	h.insert(v)
}

func (h *varHeap) contains(v int) bool {
	return v < len(h.inHeap) && h.inHeap[v]
}

// insert adds v to the heap, or fixes its position if already present.
func (h *varHeap) insert(v int) {
	h.heap.Put(v, -(*h.activity)[v])
	if v < len(h.inHeap) && !h.inHeap[v] {
		h.inHeap[v] = true
		h.live++
	}
}

// update re-establishes v's position after its activity changed.
func (h *varHeap) update(v int) {
	if h.contains(v) {
		h.heap.Put(v, -(*h.activity)[v])
	}
}

func (h *varHeap) remove(v int) {
	if v < len(h.inHeap) && h.inHeap[v] {
		h.inHeap[v] = false
		h.live--
	}
}

// pop removes and returns the variable with the highest activity. The bool
// is false only when the heap is exhausted.
func (h *varHeap) pop() (int, bool) {
	for {
		item, ok := h.heap.Pop()
		if !ok {
			return 0, false
		}
		if !h.contains(item.Elem) {
			continue // stale entry left by a prior remove
		}
		h.inHeap[item.Elem] = false
		h.live--
		return item.Elem, true
	}
}

func (h *varHeap) empty() bool {
	return h.live == 0
}
