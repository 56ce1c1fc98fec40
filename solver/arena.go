package solver

// CRef is a handle into the clause arena. Clauses are addressed by handle
// rather than pointer so the watch lists, reasons, and the trail can all
// refer to a clause without holding a live Go pointer to a clause that has
// since been detached and forgotten.
type CRef int32

// CRefUndef marks the absence of a clause, e.g. a decision literal's reason.
const CRefUndef CRef = -1

// arena owns every clause the solver has ever allocated. Detached clauses
// are not compacted in place -- Go's collector reclaims the backing memory
// once a slot is nilled out and no watch list references it -- but freed
// slots are reused so the arena doesn't grow without bound across a long
// run's reduce cycles.
type arena struct {
	clauses []*Clause
	free    []CRef
	wasted  int
}

func newArena() *arena {
	return &arena{}
}

// alloc stores c and returns its handle.
func (a *arena) alloc(c *Clause) CRef {
	if n := len(a.free); n > 0 {
		cr := a.free[n-1]
		a.free = a.free[:n-1]
		a.clauses[cr] = c
		return cr
	}
	a.clauses = append(a.clauses, c)
	return CRef(len(a.clauses) - 1)
}

// get dereferences a handle. Callers never hold onto the result across a
// free of the same handle.
func (a *arena) get(cr CRef) *Clause {
	return a.clauses[cr]
}

// free releases a clause's slot for reuse and counts it toward the
// garbage-collection threshold.
func (a *arena) free_(cr CRef) {
	a.clauses[cr] = nil
	a.free = append(a.free, cr)
	a.wasted++
}

// needsGC reports whether the number of slots freed since the last
// clearWasted (reused or not) exceeds frac of the arena's size, mirroring
// the garbage_frac trigger.
func (a *arena) needsGC(frac float64) bool {
	if len(a.clauses) == 0 {
		return false
	}
	return float64(a.wasted) > float64(len(a.clauses))*frac
}

// clearWasted resets the GC accounting; reduceDB calls it once a pass has
// freed the clauses it flagged.
func (a *arena) clearWasted() {
	a.wasted = 0
}
