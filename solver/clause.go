package solver

import (
	"strings"

	"github.com/ericr/lexleader/lit"
)

// Clause is a CNF clause living in the arena. Index 0 and 1 are always the
// two watched literals.
type Clause struct {
	lits     []lit.Lit
	learnt   bool
	activity float64

	// isSBP marks a clause emitted by the symmetry layer rather than the
	// input problem or conflict analysis; kept only for stats reporting.
	isSBP bool

	// propagated and usedInResolution latch the first time this clause
	// ever drove a unit propagation or was ever resolved against during
	// conflict analysis, so -verbose can report how much of the SBP
	// clause set actually did anything in a given run.
	propagated       bool
	usedInResolution bool
}

// Len returns the number of literals remaining in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

func (c *Clause) Swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }
func (c *Clause) Less(i, j int) bool { return c.lits[i] < c.lits[j] }

func (c *Clause) asStrings() []string {
	strs := make([]string, len(c.lits))
	for i, l := range c.lits {
		strs[i] = l.String()
	}
	return strs
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), ",")
}

// highestDecisionLevelIdx returns the index of the literal assigned at the
// highest decision level, used to pick a learnt clause's second watch.
func (s *Solver) highestDecisionLevelIdx(c *Clause) int {
	max, maxIdx := -1, 0
	for i, p := range c.lits {
		if dl := s.level[p.Var()]; dl > max {
			max, maxIdx = dl, i
		}
	}
	return maxIdx
}

// addClause adds a non-learnt clause to the solver, returning false if the
// clause proves the instance unsatisfiable at the root level. It removes
// satisfied/tautological clauses and duplicate or already-false literals
// before attaching, matching the preprocessing a freshly parsed CNF needs.
func (s *Solver) addClause(lits []lit.Lit) bool {
	return s.addClauseTagged(lits, false)
}

// AddSBPClause adds a static symmetry-breaking clause, tagged for the
// -verbose SBP/non-SBP propagation breakdown.
func (s *Solver) AddSBPClause(lits []lit.Lit) bool {
	s.stats.SBP.StaticClauses++
	return s.addClauseTagged(lits, true)
}

// AddDynamicSBPClause adds a symmetry-breaking clause injected mid-search
// by the dynamic chaining engine.
func (s *Solver) AddDynamicSBPClause(lits []lit.Lit) bool {
	s.stats.SBP.DynamicClauses++
	return s.addClauseTagged(lits, true)
}

func (s *Solver) addClauseTagged(lits []lit.Lit, isSBP bool) bool {
	if !s.ok {
		return false
	}

	sorted := append([]lit.Lit(nil), lits...)
	sortLits(sorted)

	out := sorted[:0]
	var last lit.Lit = lit.Undef
	for _, p := range sorted {
		switch {
		case s.litValue(p).True(), p == last.Not():
			return true // satisfied or tautological, nothing to add
		case s.litValue(p).False():
			continue // drop a literal already false at the root
		case p == last:
			continue // drop a duplicate
		}
		out = append(out, p)
		last = p
	}

	switch len(out) {
	case 0:
		s.ok = false
		return false
	case 1:
		s.uncheckedEnqueue(out[0], CRefUndef)
		if confl := s.propagate(); confl != CRefUndef {
			s.ok = false
			return false
		}
		return true
	}

	c := &Clause{lits: out, isSBP: isSBP}
	cr := s.arena.alloc(c)
	s.clauses = append(s.clauses, cr)
	s.attachClause(cr)
	return true
}

// addLearntClause attaches a clause produced by conflict analysis.
func (s *Solver) addLearntClause(lits []lit.Lit) CRef {
	c := &Clause{lits: lits, learnt: true}
	if len(lits) > 1 {
		idx := s.highestDecisionLevelIdx(c)
		c.lits[1], c.lits[idx] = c.lits[idx], c.lits[1]
	}
	cr := s.arena.alloc(c)
	s.learnts = append(s.learnts, cr)
	s.claBumpActivity(cr)
	if len(lits) > 1 {
		s.attachClause(cr)
	}
	return cr
}

// locked reports whether c is the reason some variable was propagated,
// which makes it unsafe to remove during database reduction.
func (s *Solver) locked(cr CRef) bool {
	c := s.arena.get(cr)
	if len(c.lits) == 0 {
		return false
	}
	return s.litValue(c.lits[0]).True() && s.reason[c.lits[0].Var()] == cr
}

// removeClause detaches c from its watch lists and frees its arena slot.
func (s *Solver) removeClause(cr CRef) {
	c := s.arena.get(cr)
	if len(c.lits) >= 2 {
		s.detachClause(cr)
	}
	s.arena.free_(cr)
}

func sortLits(lits []lit.Lit) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j-1] > lits[j]; j-- {
			lits[j-1], lits[j] = lits[j], lits[j-1]
		}
	}
}
