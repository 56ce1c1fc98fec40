package solver

import "github.com/ericr/lexleader/lit"

// analyze walks the implication graph backward from a conflicting clause to
// its first unique implication point, returning the learnt clause (with the
// asserting literal in position 0) and the level to backtrack to.
func (s *Solver) analyze(confl CRef) ([]lit.Lit, int) {
	pathC := 0
	p := lit.Undef
	learnt := []lit.Lit{lit.Undef} // room for the asserting literal

	idx := len(s.trail) - 1
	for {
		c := s.arena.get(confl)
		if c.learnt {
			s.claBumpActivity(confl)
		}
		if !c.usedInResolution {
			c.usedInResolution = true
			if c.isSBP {
				s.stats.SBP.UsedInResolution++
			}
		}

		start := 0
		if p != lit.Undef {
			start = 1
		}
		for j := start; j < len(c.lits); j++ {
			q := c.lits[j]
			v := q.Var()
			if s.seen[v] == seenSource || s.level[v] == 0 {
				continue
			}
			s.varBumpActivity(v)
			s.seen[v] = seenSource
			if s.level[v] >= s.decisionLevel() {
				pathC++
			} else {
				learnt = append(learnt, q)
			}
		}

		for {
			p = s.trail[idx]
			idx--
			if s.seen[p.Var()] == seenSource {
				break
			}
		}
		confl = s.reason[p.Var()]
		s.seen[p.Var()] = seenUndef
		pathC--
		if pathC <= 0 {
			break
		}
	}
	learnt[0] = p.Not()

	// analyzeToClear starts as a copy of the learnt clause built so far;
	// minimize (via litRedundant) may append further vars it speculatively
	// marks seenRemovable/seenFailed while walking reasons, and those must
	// be cleared too, not just the vars that end up in learnt.
	s.analyzeToClear = append(s.analyzeToClear[:0], learnt...)
	if s.cfg.CCMinMode > 0 {
		learnt = s.minimize(learnt)
	}

	btLevel := 0
	if len(learnt) > 1 {
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if s.level[learnt[i].Var()] > s.level[learnt[maxIdx].Var()] {
				maxIdx = i
			}
		}
		btLevel = s.level[learnt[maxIdx].Var()]
		learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
	}

	for _, l := range s.analyzeToClear {
		s.seen[l.Var()] = seenUndef
	}
	return learnt, btLevel
}

// minimize drops literals from a freshly learnt clause that are implied by
// the others, per cfg.CCMinMode: 1 removes a literal only when every
// literal of its reason clause is already in the learnt clause or fixed at
// the root; 2 also
// follows transitively through reasons (litRedundant).
func (s *Solver) minimize(learnt []lit.Lit) []lit.Lit {
	out := learnt[:1]
	for i := 1; i < len(learnt); i++ {
		l := learnt[i]
		cr := s.reason[l.Var()]
		redundant := false
		switch {
		case cr == CRefUndef:
			redundant = false
		case s.cfg.CCMinMode == 1:
			redundant = s.reasonSubsumed(cr, l)
		default:
			redundant = s.litRedundant(l)
		}
		if !redundant {
			out = append(out, l)
		}
	}
	return out
}

// reasonSubsumed implements the cheaper, non-recursive ccmin_mode=1 check.
func (s *Solver) reasonSubsumed(cr CRef, l lit.Lit) bool {
	c := s.arena.get(cr)
	for i := 1; i < len(c.lits); i++ {
		q := c.lits[i]
		if s.seen[q.Var()] != seenSource && s.level[q.Var()] != 0 {
			return false
		}
	}
	return true
}

// litRedundant is the recursive ccmin_mode=2 minimization check: p is
// redundant if every literal in its reason clause is itself either already
// in the learnt clause, previously found removable, or transitively
// redundant through its own reason. Both outcomes are cached in seen
// (seenRemovable / seenFailed) so a variable reachable through more than one
// path is only walked once, and every var newly marked either way is
// recorded in s.analyzeToClear for analyze to reset once minimization
// finishes.
func (s *Solver) litRedundant(p lit.Lit) bool {
	c := s.arena.get(s.reason[p.Var()])
	for i := 1; i < len(c.lits); i++ {
		l := c.lits[i]
		v := l.Var()

		if s.level[v] == 0 || s.seen[v] == seenSource || s.seen[v] == seenRemovable {
			continue
		}
		if s.reason[v] == CRefUndef || s.seen[v] == seenFailed {
			s.markSeenFailed(p)
			return false
		}
		if !s.litRedundant(l) {
			s.markSeenFailed(p)
			return false
		}
	}

	if s.seen[p.Var()] == seenUndef {
		s.seen[p.Var()] = seenRemovable
		s.analyzeToClear = append(s.analyzeToClear, p)
	}
	return true
}

// markSeenFailed caches p as unremovable, unless it's already carrying a
// stronger mark (seenSource: it's in the learnt clause outright).
func (s *Solver) markSeenFailed(p lit.Lit) {
	if s.seen[p.Var()] == seenUndef {
		s.seen[p.Var()] = seenFailed
		s.analyzeToClear = append(s.analyzeToClear, p)
	}
}

// analyzeFinal computes the subset of assumptions responsible for a
// conflict, for reporting when Solve is called under assumptions and
// returns unsatisfiable.
func (s *Solver) analyzeFinal(p lit.Lit) {
	s.conflict = s.conflict[:0]
	s.conflict = append(s.conflict, p)

	if s.decisionLevel() == 0 {
		return
	}
	s.seen[p.Var()] = seenSource

	for i := len(s.trail) - 1; i >= s.trailLim[0]; i-- {
		x := s.trail[i].Var()
		if s.seen[x] == seenUndef {
			continue
		}
		if cr := s.reason[x]; cr == CRefUndef {
			if s.level[x] > 0 {
				s.conflict = append(s.conflict, s.trail[i].Not())
			}
		} else {
			c := s.arena.get(cr)
			for j := 1; j < len(c.lits); j++ {
				if s.level[c.lits[j].Var()] > 0 {
					s.seen[c.lits[j].Var()] = seenSource
				}
			}
		}
		s.seen[x] = seenUndef
	}
	s.seen[p.Var()] = seenUndef
}
