package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericr/lexleader/config"
)

func newSearchSolver() *Solver {
	return New(config.New())
}

func TestSolveTrivialSat(t *testing.T) {
	s := newSearchSolver()
	require.True(t, s.AddClause([]int{1, 2}))
	require.True(t, s.AddClause([]int{-1, 2}))

	require.True(t, s.Solve(nil))
	model := s.Model()
	require.Len(t, model, 2)
	assert.True(t, model[1], "x2 must be true to satisfy both clauses")
}

func TestSolvePigeonholeIsUnsat(t *testing.T) {
	// Two pigeons, one hole: x1 and x2 can't both be true, but each must
	// be assigned, which is unsatisfiable without a third hole.
	s := newSearchSolver()
	require.True(t, s.AddClause([]int{1}))
	require.True(t, s.AddClause([]int{2}))
	ok := s.AddClause([]int{-1, -2})

	if ok {
		ok = s.Solve(nil)
	}
	assert.False(t, ok, "two forced, mutually exclusive pigeons must be unsat")
}

func TestSolveUnderAssumptions(t *testing.T) {
	s := newSearchSolver()
	require.True(t, s.AddClause([]int{1, 2}))

	assert.True(t, s.Solve([]int{-1}), "x2 can still satisfy the clause with x1 assumed false")
	assert.False(t, s.Solve([]int{-1, -2}), "both literals false under assumption must be unsat")
}

func TestAddEmptyClauseLatchesUnsat(t *testing.T) {
	s := newSearchSolver()
	assert.False(t, s.AddClause(nil))
	assert.False(t, s.Solve(nil))
}

func TestSolveModelSatisfiesEveryClause(t *testing.T) {
	// A small instance on which some decision orders hit a conflict
	// (deciding x2 true first falsifies {1, -2, 3}); whichever order the
	// heap picks, the returned model must satisfy every input clause.
	s := newSearchSolver()
	clauses := [][]int{
		{1, 2, 3}, {-1, -2}, {-2, -3}, {-1, -3},
		{1, -2, 3}, {-1, 2, -3},
	}
	for _, c := range clauses {
		require.True(t, s.AddClause(c))
	}
	require.True(t, s.Solve(nil))

	answer := s.Answer()
	require.Len(t, answer, 3)
	for _, c := range clauses {
		satisfied := false
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if (lit > 0) == (answer[v-1] > 0) {
				satisfied = true
				break
			}
		}
		assert.True(t, satisfied, "clause %v not satisfied by model %v", c, answer)
	}
}
