package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericr/lexleader/config"
)

// pigeonhole builds the classic n-into-(n-1)-holes unsatisfiable instance,
// hard enough that a tiny conflict budget reliably runs out before the
// solver can finish proving it UNSAT.
func pigeonhole(s *Solver, pigeons int) {
	holes := pigeons - 1
	v := func(p, h int) int { return p*holes + h + 1 }

	for p := 0; p < pigeons; p++ {
		clause := make([]int, holes)
		for h := 0; h < holes; h++ {
			clause[h] = v(p, h)
		}
		s.AddClause(clause)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				s.AddClause([]int{-v(p1, h), -v(p2, h)})
			}
		}
	}
}

func TestConflictBudgetStopsSearchAndReportsUnknown(t *testing.T) {
	s := New(config.New())
	pigeonhole(s, 10)

	s.SetConflictBudget(1)

	sat := s.Solve(nil)

	assert.False(t, sat)
	assert.True(t, s.Unknown(), "a tiny conflict budget should leave the result undetermined, not UNSAT")
}

func TestInterruptStopsSearchBeforeCompletion(t *testing.T) {
	s := New(config.New())
	pigeonhole(s, 10)

	s.Interrupt()

	sat := s.Solve(nil)

	assert.False(t, sat)
	assert.True(t, s.Unknown())
}

func TestClearingBudgetAllowsSolveToFinish(t *testing.T) {
	s := New(config.New())

	v1 := s.NewVar()
	v2 := s.NewVar()
	require.True(t, s.AddClause([]int{int(v1) + 1, int(v2) + 1}))

	s.SetConflictBudget(1)
	s.ClearInterrupt()
	s.SetConflictBudget(0) // 0 clears the cap again

	require.True(t, s.Solve(nil))
	assert.False(t, s.Unknown())
}
