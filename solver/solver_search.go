package solver

import (
	"math"

	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/tribool"
)

// Solve runs the search under the given assumptions, given as signed,
// one-indexed DIMACS literals, and reports whether the instance (extended
// by those assumptions) is satisfiable.
func (s *Solver) Solve(assumpDimacs []int) bool {
	assumps := make([]lit.Lit, len(assumpDimacs))
	for i, d := range assumpDimacs {
		s.growTo(lit.Var(abs(d) - 1))
		assumps[i] = lit.FromDimacs(d)
	}
	return s.solveAssuming(assumps).True()
}

func (s *Solver) solveAssuming(assumps []lit.Lit) tribool.Tribool {
	s.model = nil
	s.conflict = nil
	if !s.ok {
		s.lastStatus = tribool.False
		return tribool.False
	}

	s.assumptions = assumps
	s.varInc = 1
	s.claInc = 1
	s.maxLearnts = float64(len(s.clauses)) / 3.0
	if s.maxLearnts < float64(s.cfg.MinLearnts) {
		s.maxLearnts = float64(s.cfg.MinLearnts)
	}
	s.maxLearntsGrowth = 1.1
	s.maxLearntsCtrInc = 100
	s.maxLearntsCtr = int(s.maxLearntsCtrInc)
	s.maxLearntsCtrIncGrowth = 1.5

	if !s.simplifyDB() {
		s.lastStatus = tribool.False
		return tribool.False
	}

	restartBase := float64(s.cfg.RFirst)
	curRestarts := 0
	status := tribool.Undef

	for status.Undef() {
		if !s.withinBudget() {
			break
		}
		var bound float64
		if s.cfg.Luby {
			bound = luby(s.cfg.RInc, curRestarts) * restartBase
		} else {
			bound = restartBase * math.Pow(s.cfg.RInc, float64(curRestarts))
		}
		status = s.search(int(bound))
		curRestarts++
	}

	if status.True() {
		s.model = make([]bool, s.NVars())
		for v := 0; v < s.NVars(); v++ {
			s.model[v] = s.varValue(lit.Var(v)).True()
		}
	}
	s.cancelUntil(0)
	s.lastStatus = status
	return status
}

// search runs propagate/analyze/decide until it hits a conflict at the
// root level (UNSAT), finds a full model (SAT), or exhausts maxConflicts
// (Undef, meaning "restart").
func (s *Solver) search(maxConflicts int) tribool.Tribool {
	if !s.ok {
		return tribool.False
	}
	s.stats.Restarts++

	conflictCount := 0
	rootLevel := len(s.assumptions)

	for {
		confl := s.propagate()
		if confl != CRefUndef {
			s.stats.Conflicts++
			conflictCount++

			if s.decisionLevel() == 0 {
				return tribool.False
			}

			learnt, backtrackLevel := s.analyze(confl)
			if backtrackLevel < rootLevel {
				backtrackLevel = rootLevel
			}
			s.cancelUntil(backtrackLevel)

			if len(learnt) == 1 {
				s.uncheckedEnqueue(learnt[0], CRefUndef)
			} else {
				cr := s.addLearntClause(learnt)
				s.uncheckedEnqueue(learnt[0], cr)
			}
			s.decayActivities()

			s.maxLearntsCtr--
			if s.maxLearntsCtr == 0 {
				s.maxLearntsCtrInc *= s.maxLearntsCtrIncGrowth
				s.maxLearntsCtr = int(s.maxLearntsCtrInc)
				s.maxLearnts *= s.maxLearntsGrowth
			}
			continue
		}

		if len(s.trail) == s.NVars() && s.decisionLevel() >= len(s.assumptions) {
			return tribool.True
		}

		if s.decisionLevel() == 0 {
			s.simplifyDB()
		}
		if len(s.learnts) > 0 && float64(len(s.learnts))-float64(len(s.trail)) >= s.maxLearnts {
			s.reduceDB()
		}

		if maxConflicts >= 0 && conflictCount >= maxConflicts {
			s.cancelUntil(rootLevel)
			return tribool.Undef
		}

		next := lit.Undef
		if s.decisionLevel() < len(s.assumptions) {
			a := s.assumptions[s.decisionLevel()]
			if s.litValue(a).True() {
				s.trailLim = append(s.trailLim, len(s.trail))
				continue
			} else if s.litValue(a).False() {
				s.analyzeFinal(a.Not())
				return tribool.False
			}
			next = a
		} else {
			if s.cfg.RndFreq > 0 && s.rng.Float64() < s.cfg.RndFreq && !s.heap.empty() {
				v, ok := s.pickRandomVar()
				if ok {
					next = s.litForDecision(v)
				}
			}
			if next == lit.Undef {
				v, ok := s.pickBranchVar()
				if !ok {
					return tribool.True
				}
				next = s.litForDecision(v)
			}
			s.stats.Decisions++
		}

		s.trailLim = append(s.trailLim, len(s.trail))
		s.uncheckedEnqueue(next, CRefUndef)
	}
}

// pickBranchVar pops the highest-activity unassigned decision variable.
func (s *Solver) pickBranchVar() (lit.Var, bool) {
	for {
		v, ok := s.heap.pop()
		if !ok {
			return 0, false
		}
		if s.varValue(lit.Var(v)).Undef() && s.decisionVar[v] {
			return lit.Var(v), true
		}
	}
}

func (s *Solver) pickRandomVar() (lit.Var, bool) {
	for tries := 0; tries < 8; tries++ {
		v := lit.Var(s.rng.Intn(s.NVars()))
		if s.varValue(v).Undef() && s.decisionVar[v] {
			return v, true
		}
	}
	return s.pickBranchVar()
}

// litForDecision picks the polarity for a newly decided variable: the
// saved phase when cfg.PhaseSaving applies, otherwise always positive.
func (s *Solver) litForDecision(v lit.Var) lit.Lit {
	neg := s.polarity[v]
	if s.cfg.PhaseSaving == 0 {
		neg = false
	}
	return lit.New(v, neg)
}

func (s *Solver) cancel() {
	target := s.trailLim[len(s.trailLim)-1]
	for i := len(s.trail) - 1; i >= target; i-- {
		v := s.trail[i].Var()
		if s.cfg.PhaseSaving >= 1 {
			s.polarity[v] = s.trail[i].Sign()
		}
		s.assigns[v] = tribool.Undef
		s.reason[v] = CRefUndef
		s.level[v] = -1
		s.heap.insert(int(v))
	}
	s.trail = s.trail[:target]
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// cancelUntil undoes assignments back to the given decision level,
// restoring qhead so propagate resumes from the right point.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
	s.qhead = len(s.trail)
}
