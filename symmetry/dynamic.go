package symmetry

import "github.com/ericr/lexleader/lit"

// initEqWatchStructure links p's support pairings into a chain for
// permutation permIdx and arms the watch on its first element: assigning
// either endpoint of the first pairing is what starts the dynamic walk.
func (e *Engine) initEqWatchStructure(p *Permutation, permIdx int) {
	prev := e.addEq(p.Support[0], p.At(p.Support[0]))
	e.watch(prev.v, permIdx, prev)
	e.watch(prev.l.Var(), permIdx, prev)

	for i := 1; i < len(p.Support); i++ {
		cur := e.addEq(p.Support[i], p.At(p.Support[i]))
		if prev.succ == nil {
			prev.succ = make(map[int]*eq)
		}
		prev.succ[permIdx] = cur
		if cur.pred == nil {
			cur.pred = make(map[int]*eq)
		}
		cur.pred[permIdx] = prev
		prev = cur
	}
}

func (e *Engine) watch(v lit.Var, permIdx int, node *eq) {
	byPerm, ok := e.watchedEqs[v]
	if !ok {
		byPerm = make(map[int]*eq)
		e.watchedEqs[v] = byPerm
	}
	byPerm[permIdx] = node
}

// predSat walks node's chain of predecessors, reporting whether v == l
// holds under the current assignment all the way back to the chain's
// root. A mismatch re-arms the watch at the point it was found, so the
// next assignment that could resolve it retries from there.
func (e *Engine) predSat(host Host, node *eq, permIdx int) bool {
	if host.VarValue(node.v) != host.LitValue(node.l) {
		e.watch(node.v, permIdx, node)
		e.watch(node.l.Var(), permIdx, node)
		return false
	}
	pred, ok := node.pred[permIdx]
	if !ok || pred == nil {
		return true
	}
	return e.predSat(host, pred, permIdx)
}

// addSucc emits the next link of permutation permIdx's dynamic chaining
// SBP, for the pairing that follows node in the chain, once, the first time
// the chain is confirmed satisfied up to and including node, and moves the
// watch on to that successor. Nothing is emitted when node ends the chain.
func (e *Engine) addSucc(host Host, node *eq, permIdx int) {
	if node.added {
		return
	}
	node.added = true
	succ, ok := node.succ[permIdx]
	if !ok || succ == nil {
		return
	}
	e.currentP[permIdx] = e.addChainingSBP(host, succ.v, succ.l, e.currentP[permIdx], true)
	e.watch(succ.v, permIdx, succ)
	e.watch(succ.l.Var(), permIdx, succ)
}
