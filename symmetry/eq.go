package symmetry

import "github.com/ericr/lexleader/lit"

// eq records that a permutation's support pairs variable v with image
// literal l, i.e. it asserts v == l under the permutation. The same
// pairing recurring across permutations shares one eq and, once emitted,
// one pair of auxiliary variables.
type eq struct {
	v lit.Var
	l lit.Lit

	// defAdded marks that this pairing's Plaisted-Greenbaum half-definition
	// clauses have been emitted; auxVar is valid once true. The paired
	// second auxiliary variable is always auxVar+1, since both are
	// allocated back to back the first time the pairing is seen.
	defAdded bool
	auxVar   lit.Var

	// added marks that addSucc has already run for this pairing (emitting
	// the link of its successor), guarding against re-emission when two
	// permutations' chains both reach the same shared pairing.
	added bool

	// succ/pred chain this eq to its neighbors along each permutation's
	// support order. Indexed by permutation index, since a pairing shared
	// between two permutations can have different neighbors in each.
	succ map[int]*eq
	pred map[int]*eq
}

// constructEqTable registers every (variable, image) pairing in p's
// support, so later lookups by addEqAuxVars and initEqWatchStructure find
// an existing node instead of fabricating one out of order.
func (e *Engine) constructEqTable(p *Permutation) {
	for _, v := range p.Support {
		e.addEq(v, p.At(v))
	}
}

// addEq returns the eq node for the pairing (v, l), creating it if this is
// the first permutation to induce it.
func (e *Engine) addEq(v lit.Var, l lit.Lit) *eq {
	byLit, ok := e.eqs[v]
	if !ok {
		byLit = make(map[lit.Lit]*eq)
		e.eqs[v] = byLit
	}
	if node, ok := byLit[l]; ok {
		return node
	}
	node := &eq{v: v, l: l}
	byLit[l] = node
	return node
}

// addEqAuxVars returns the first of the pairing's two half-definition
// auxiliary variables, allocating and defining them on first use:
//
//	aux1 -> (v -> l)          i.e. ~aux1 | ~v | l
//	~l -> aux2, v -> aux2     i.e. (l | aux2) & (~v | aux2)
//
// aux1 stands for the pairing holding in the forward direction; aux2 is
// forced whenever v is true or l is false. Together they let the
// SBP encodings reference the pairing without repeating its definition.
func (e *Engine) addEqAuxVars(host Host, v lit.Var, l lit.Lit, dynamic bool) lit.Var {
	node := e.addEq(v, l)
	if node.defAdded {
		return node.auxVar
	}

	aux1 := host.NewAuxVar()
	aux2 := host.NewAuxVar()

	add := addClauseFunc(host, dynamic)
	add([]lit.Lit{negLit(aux1), negLit(v), l})
	add([]lit.Lit{l, posLit(aux2)})
	add([]lit.Lit{negLit(v), posLit(aux2)})

	node.auxVar = aux1
	node.defAdded = true
	return aux1
}

// addClauseFunc picks the host method that tags a clause as static (added
// once, at Attach time) or dynamic (injected mid-search by addSucc), so
// -verbose's SBP breakdown attributes cost to the right phase.
func addClauseFunc(host Host, dynamic bool) func([]lit.Lit) bool {
	if dynamic {
		return host.AddDynamicSBPClause
	}
	return host.AddSBPClause
}
