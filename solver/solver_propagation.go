package solver

import (
	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/tribool"
)

// uncheckedEnqueue assigns p without checking it against the current
// assignment first -- callers already know p is unassigned or already
// agrees with the assignment. from is the clause that implied p, or
// CRefUndef for a decision or an assumption.
func (s *Solver) uncheckedEnqueue(p lit.Lit, from CRef) {
	s.assigns[p.Var()] = tribool.NewFromBool(!p.Sign())
	s.reason[p.Var()] = from
	s.level[p.Var()] = s.decisionLevel()
	s.trail = append(s.trail, p)

	if s.symm != nil {
		s.symm.OnAssign(s, p)
	}
}

// enqueue assigns p if it is consistent with the current assignment, or
// reports false if p contradicts it.
func (s *Solver) enqueue(p lit.Lit, from CRef) bool {
	if v := s.litValue(p); !v.Undef() {
		return v.True()
	}
	s.uncheckedEnqueue(p, from)
	return true
}

// propagate drains the trail from qhead, visiting every watcher of each
// newly assigned literal. It returns the conflicting clause, or CRefUndef
// if propagation reached a fixpoint with no conflict.
func (s *Solver) propagate() CRef {
	confl := CRefUndef

	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		s.stats.Propagations++

		ws := s.watches[p]
		last, kept := 0, 0
		for last < len(ws) {
			w := ws[last]
			blocker := w.blocker

			if s.litValue(blocker).True() {
				ws[kept] = w
				last++
				kept++
				continue
			}

			cr := w.cref
			c := s.arena.get(cr)
			falseLit := p.Not()
			if c.lits[0] == falseLit {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}
			last++

			first := c.lits[0]
			newW := watcher{cr, first}
			if first != blocker && s.litValue(first).True() {
				ws[kept] = newW
				kept++
				continue
			}

			foundNew := false
			for i := 2; i < len(c.lits); i++ {
				if !s.litValue(c.lits[i]).False() {
					c.lits[1], c.lits[i] = c.lits[i], c.lits[1]
					s.watches[c.lits[1].Not()] = append(s.watches[c.lits[1].Not()], newW)
					foundNew = true
					break
				}
			}
			if foundNew {
				continue
			}

			ws[kept] = newW
			kept++
			if s.litValue(first).False() {
				confl = cr
				s.qhead = len(s.trail)
				for last < len(ws) {
					ws[kept] = ws[last]
					last++
					kept++
				}
			} else {
				if !c.propagated {
					c.propagated = true
					if c.isSBP {
						s.stats.SBP.Propagated++
					}
				}
				s.uncheckedEnqueue(first, cr)
			}
		}
		s.watches[p] = ws[:kept]
		if confl != CRefUndef {
			break
		}
	}
	return confl
}
