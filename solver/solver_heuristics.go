package solver

import (
	"sort"

	"github.com/ericr/lexleader/lit"
)

// varBumpActivity bumps a variable's activity and fixes its position in the
// decision heap.
func (s *Solver) varBumpActivity(v lit.Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		s.varRescaleActivity()
	}
	s.heap.update(int(v))
}

// varDecayActivity applies decay to varInc, the amount future bumps add --
// cheaper than scaling every variable's activity down on every decay.
func (s *Solver) varDecayActivity() {
	s.varInc /= s.varDecay
}

// varRescaleActivity rescales every variable's activity down to keep varInc
// from overflowing on a long run.
func (s *Solver) varRescaleActivity() {
	for i := range s.activity {
		s.activity[i] *= 1e-100
		s.heap.update(i)
	}
	s.varInc *= 1e-100
}

// claBumpActivity bumps a learnt clause's activity.
func (s *Solver) claBumpActivity(cr CRef) {
	c := s.arena.get(cr)
	if !c.learnt {
		return
	}
	c.activity += s.claInc
	if c.activity > 1e20 {
		s.claRescaleActivity()
	}
}

// claDecayActivity applies decay to claInc.
func (s *Solver) claDecayActivity() {
	s.claInc /= s.claDecay
}

// claRescaleActivity rescales every learnt clause's activity down.
func (s *Solver) claRescaleActivity() {
	for _, cr := range s.learnts {
		s.arena.get(cr).activity *= 1e-20
	}
	s.claInc *= 1e-20
}

// decayActivities calls both activity decay functions, done once per
// conflict.
func (s *Solver) decayActivities() {
	s.varDecayActivity()
	s.claDecayActivity()
}

// sortLearnts orders learnt clauses by ascending activity, so reduceDB can
// discard the least active half.
func (s *Solver) sortLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.arena.get(s.learnts[i]).activity < s.arena.get(s.learnts[j]).activity
	})
}
