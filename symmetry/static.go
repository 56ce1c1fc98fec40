package symmetry

import "github.com/ericr/lexleader/lit"

// addAllShatterSBPs emits the full static Shatter encoding for p: one
// auxiliary "prefix" literal per support element, each implying the next
// once the chain up to it is fixed.
func (e *Engine) addAllShatterSBPs(host Host, p *Permutation) {
	x0 := p.Support[0]
	currentP := e.addInitShatterSBP(host, x0, p.At(x0), false)
	for i := 1; i < len(p.Support); i++ {
		prevX, curX := p.Support[i-1], p.Support[i]
		currentP = e.addShatterSBP(host, prevX, p.At(prevX), curX, p.At(curX), currentP, false)
	}
}

func (e *Engine) addInitShatterSBP(host Host, x0 lit.Var, fx0 lit.Lit, dynamic bool) lit.Var {
	p0 := host.NewAuxVar()
	add := addClauseFunc(host, dynamic)
	if e.cfg.SymmEqAux {
		aux1 := e.addEqAuxVars(host, x0, fx0, dynamic)
		add([]lit.Lit{posLit(aux1)})
		add([]lit.Lit{posLit(p0)})
	} else {
		add([]lit.Lit{negLit(x0), fx0})
		add([]lit.Lit{posLit(p0)})
	}
	return p0
}

func (e *Engine) addShatterSBP(host Host, prevX lit.Var, fPrevX lit.Lit, curX lit.Var, fCurX lit.Lit, currentP lit.Var, dynamic bool) lit.Var {
	nextP := host.NewAuxVar()
	add := addClauseFunc(host, dynamic)
	if e.cfg.SymmEqAux {
		prevAux := e.addEqAuxVars(host, prevX, fPrevX, dynamic)
		curAux := e.addEqAuxVars(host, curX, fCurX, dynamic)
		add([]lit.Lit{negLit(currentP), negLit(prevAux + 1), posLit(curAux)})
		add([]lit.Lit{negLit(currentP), negLit(prevAux + 1), posLit(nextP)})
	} else {
		add([]lit.Lit{negLit(currentP), negLit(prevX), negLit(curX), fCurX})
		add([]lit.Lit{negLit(currentP), negLit(prevX), posLit(nextP)})
		add([]lit.Lit{negLit(currentP), fPrevX, negLit(curX), fCurX})
		add([]lit.Lit{negLit(currentP), fPrevX, posLit(nextP)})
	}
	return nextP
}

// addAllChainingSBPs emits the full static chaining encoding for p: one
// auxiliary "carry" literal per support element, each link implying the
// next, with three clauses per link against Shatter's four.
func (e *Engine) addAllChainingSBPs(host Host, p *Permutation) {
	x0 := p.Support[0]
	currentP := e.addInitChainingSBP(host, x0, p.At(x0))
	for i := 1; i < len(p.Support); i++ {
		x := p.Support[i]
		currentP = e.addChainingSBP(host, x, p.At(x), currentP, false)
	}
}

// addInitChainingSBP seeds a chaining SBP chain. It is always a static
// emission: even under dynamic chaining, the chain's root is emitted once
// at Attach time and only its later links are injected by addSucc.
func (e *Engine) addInitChainingSBP(host Host, x0 lit.Var, fx0 lit.Lit) lit.Var {
	p0 := host.NewAuxVar()
	if e.cfg.SymmEqAux {
		aux1 := e.addEqAuxVars(host, x0, fx0, false)
		host.AddSBPClause([]lit.Lit{posLit(aux1)})
		host.AddSBPClause([]lit.Lit{negLit(aux1 + 1), posLit(p0)})
	} else {
		host.AddSBPClause([]lit.Lit{negLit(x0), fx0})
		host.AddSBPClause([]lit.Lit{negLit(x0), posLit(p0)})
		host.AddSBPClause([]lit.Lit{fx0, posLit(p0)})
	}
	return p0
}

func (e *Engine) addChainingSBP(host Host, x lit.Var, fx lit.Lit, currentP lit.Var, dynamic bool) lit.Var {
	nextP := host.NewAuxVar()
	add := addClauseFunc(host, dynamic)
	if e.cfg.SymmEqAux {
		aux1 := e.addEqAuxVars(host, x, fx, dynamic)
		add([]lit.Lit{negLit(currentP), posLit(aux1)})
		add([]lit.Lit{negLit(currentP), negLit(aux1 + 1), posLit(nextP)})
	} else {
		add([]lit.Lit{negLit(currentP), negLit(x), fx})
		add([]lit.Lit{negLit(currentP), fx, posLit(nextP)})
		add([]lit.Lit{negLit(currentP), negLit(x), posLit(nextP)})
	}
	return nextP
}
