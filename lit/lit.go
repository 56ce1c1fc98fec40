package lit

import "fmt"

// Var is a zero-indexed problem variable. Auxiliary symmetry-breaking
// variables share the same numbering as problem variables; nothing
// distinguishes them here but an entry in the decision heap.
type Var int32

// VarUndef is the sentinel for "no variable".
const VarUndef = Var(-1)

const Undef = Lit(-1)

// Lit is a literal represented by an integer. The sign of the literal is
// represented by the least significant bit, and the value is obtained by
// performing a right bit shift. This encoding makes L and ~L adjacent when
// sorted, and makes negation a single XOR.
//
// An unknown literal is denoted as -1.
type Lit int32

// New returns a new literal given a 0-indexed variable, v, and whether the
// literal is negative.
func New(v Var, neg bool) Lit {
	if neg {
		return Lit(2*int32(v) + 1)
	}
	return Lit(2 * int32(v))
}

// FromDimacs converts a signed, one-indexed DIMACS literal into a Lit.
func FromDimacs(x int) Lit {
	if x < 0 {
		return New(Var(-x-1), true)
	}
	return New(Var(x-1), false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Var returns the literal's variable.
func (l Lit) Var() Var {
	return Var(l >> 1)
}

// Dimacs returns l in one-indexed signed DIMACS form.
func (l Lit) Dimacs() int {
	v := int(l.Var()) + 1
	if l.Sign() {
		return -v
	}
	return v
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l == Undef {
		return "undef"
	}
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var()+1)
	}
	return fmt.Sprintf("%d", l.Var()+1)
}
