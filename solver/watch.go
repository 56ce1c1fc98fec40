package solver

import "github.com/ericr/lexleader/lit"

// watcher is one entry in a literal's watch list: the clause being watched,
// and a cached "blocker" literal (one of the clause's other literals) that
// lets propagate skip dereferencing the clause entirely when the blocker is
// already true.
type watcher struct {
	cref    CRef
	blocker lit.Lit
}

// attachClause registers c's first two literals in the watch lists for
// their negations, so propagate on either one visits c.
func (s *Solver) attachClause(cr CRef) {
	c := s.arena.get(cr)
	s.watches[c.lits[0].Not()] = append(s.watches[c.lits[0].Not()], watcher{cr, c.lits[1]})
	s.watches[c.lits[1].Not()] = append(s.watches[c.lits[1].Not()], watcher{cr, c.lits[0]})
}

// detachClause removes c from both of its watch lists.
func (s *Solver) detachClause(cr CRef) {
	c := s.arena.get(cr)
	s.removeWatch(c.lits[0].Not(), cr)
	s.removeWatch(c.lits[1].Not(), cr)
}

func (s *Solver) removeWatch(p lit.Lit, cr CRef) {
	ws := s.watches[p]
	for i, w := range ws {
		if w.cref == cr {
			n := len(ws)
			ws[i] = ws[n-1]
			s.watches[p] = ws[:n-1]
			return
		}
	}
}
