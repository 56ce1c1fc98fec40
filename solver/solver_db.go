package solver

// simplifyClause drops literals already false at the root and reports
// whether the clause is now satisfied and can be discarded outright.
func (s *Solver) simplifyClause(cr CRef) bool {
	c := s.arena.get(cr)
	j := 0
	for i := 0; i < len(c.lits); i++ {
		if s.litValue(c.lits[i]).True() {
			return true
		}
		if s.litValue(c.lits[i]).Undef() {
			c.lits[j] = c.lits[i]
			j++
		}
	}
	c.lits = c.lits[:j]
	return false
}

// removeSatisfied drops every clause in cs already satisfied at the root
// level, trimming the rest of their root-falsified literals in place.
func (s *Solver) removeSatisfied(cs []CRef) []CRef {
	j := 0
	for i := 0; i < len(cs); i++ {
		cr := cs[i]
		if s.simplifyClause(cr) {
			s.removeClause(cr)
		} else {
			cs[j] = cr
			j++
		}
	}
	return cs[:j]
}

// simplifyDB is called before search begins and whenever the solver
// returns to the root level. It removes both learnt and original clauses
// that have become satisfied by root-level propagation. Returns false on a
// root conflict.
func (s *Solver) simplifyDB() bool {
	if s.decisionLevel() != 0 {
		return true
	}
	if s.propagate() != CRefUndef {
		s.ok = false
		return false
	}

	s.learnts = s.removeSatisfied(s.learnts)
	s.clauses = s.removeSatisfied(s.clauses)
	return true
}

// reduceDB discards the least active half of the learnt clause database,
// keeping locked clauses (a variable's current reason) and binary clauses,
// which are cheap enough to always retain.
func (s *Solver) reduceDB() {
	if len(s.learnts) == 0 {
		return
	}
	lim := s.claInc / float64(len(s.learnts))
	s.sortLearnts()

	j := 0
	for i := 0; i < len(s.learnts); i++ {
		cr := s.learnts[i]
		c := s.arena.get(cr)
		if c.Len() > 2 && !s.locked(cr) && (i < len(s.learnts)/2 || c.activity < lim) {
			s.removeClause(cr)
			s.stats.Reduced++
		} else {
			s.learnts[j] = cr
			j++
		}
	}
	s.learnts = s.learnts[:j]

	if s.arena.needsGC(s.cfg.GCFrac) {
		s.arena.clearWasted()
	}
}
