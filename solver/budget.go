package solver

import "sync/atomic"

// SetConflictBudget caps the next Solve at n additional conflicts, or
// removes the cap when n <= 0. Checked only at restart boundaries, not
// mid-propagation.
func (s *Solver) SetConflictBudget(n int) {
	if n <= 0 {
		s.conflictBudget = -1
		return
	}
	s.conflictBudget = int64(s.stats.Conflicts) + int64(n)
}

// SetPropagationBudget caps the next Solve at n additional propagations,
// or removes the cap when n <= 0.
func (s *Solver) SetPropagationBudget(n int) {
	if n <= 0 {
		s.propagationBudget = -1
		return
	}
	s.propagationBudget = int64(s.stats.Propagations) + int64(n)
}

// Interrupt asks a running or future Solve to return "unknown" at its next
// restart boundary. Safe to call from another goroutine, e.g. a signal
// handler -- the search loop itself never yields mid-propagation, so this
// is the only way to ask it to stop early.
func (s *Solver) Interrupt() {
	atomic.StoreInt32(&s.interrupt, 1)
}

// ClearInterrupt resets Interrupt, allowing a subsequent Solve to run to
// completion again.
func (s *Solver) ClearInterrupt() {
	atomic.StoreInt32(&s.interrupt, 0)
}

// withinBudget reports whether search should keep going: no interrupt
// requested, and neither counter ceiling has been reached.
func (s *Solver) withinBudget() bool {
	if atomic.LoadInt32(&s.interrupt) != 0 {
		return false
	}
	if s.conflictBudget >= 0 && int64(s.stats.Conflicts) >= s.conflictBudget {
		return false
	}
	if s.propagationBudget >= 0 && int64(s.stats.Propagations) >= s.propagationBudget {
		return false
	}
	return true
}

// Unknown reports whether the most recently finished Solve gave up within
// budget rather than proving the instance SAT or UNSAT.
func (s *Solver) Unknown() bool {
	return s.lastStatus.Undef()
}
