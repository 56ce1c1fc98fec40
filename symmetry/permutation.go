// Package symmetry implements symmetry-breaking predicates over permutation
// generators supplied alongside a CNF instance: static Shatter and chaining
// encodings, an equality-auxiliary-variable variant, and a dynamic chaining
// injector hooked into unit propagation.
package symmetry

import "github.com/ericr/lexleader/lit"

// Permutation is a generator of the instance's symmetry group, given as the
// (variable -> image literal) pairs that move a variable, plus the sorted
// list of moved variables (its support). Variables outside the support map
// to themselves.
type Permutation struct {
	Image   map[lit.Var]lit.Lit
	Support []lit.Var
}

// NewPermutation returns an empty permutation (the identity).
func NewPermutation() *Permutation {
	return &Permutation{Image: make(map[lit.Var]lit.Lit)}
}

// Add records that from maps to the literal to. The first mapping recorded
// for a variable wins; later duplicates are ignored, matching how repeated
// pairs are discarded when a generator file lists a variable twice.
func (p *Permutation) Add(from lit.Var, to lit.Lit) {
	if _, ok := p.Image[from]; ok {
		return
	}
	p.Image[from] = to
	p.Support = append(p.Support, from)
}

// Normalize sorts the support ascending, so cycle-order and downstream SBP
// emission are deterministic regardless of the order pairs were read in.
func (p *Permutation) Normalize() {
	for i := 1; i < len(p.Support); i++ {
		for j := i; j > 0 && p.Support[j-1] > p.Support[j]; j-- {
			p.Support[j-1], p.Support[j] = p.Support[j], p.Support[j-1]
		}
	}
}

// At returns the image of v under the permutation, defaulting to v itself
// (as a positive literal) when v is outside the support.
func (p *Permutation) At(v lit.Var) lit.Lit {
	if img, ok := p.Image[v]; ok {
		return img
	}
	return lit.New(v, false)
}

// Moves reports whether v is in the permutation's support.
func (p *Permutation) Moves(v lit.Var) bool {
	_, ok := p.Image[v]
	return ok
}
