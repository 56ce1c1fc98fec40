package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericr/lexleader/config"
	"github.com/ericr/lexleader/lit"
)

// TestSBPClauseInstrumentationTracksPropagationAndResolution exercises the
// per-clause "propagated-at-least-once" / "used-in-resolution" bookkeeping
// bits through a small instance where an SBP clause both drives a
// propagation and is later walked during conflict analysis, without going
// through the symmetry engine itself.
func TestSBPClauseInstrumentationTracksPropagationAndResolution(t *testing.T) {
	s := New(config.New())

	v1 := s.NewVar()
	v2 := s.NewVar()

	// if x1 then x2 -- an SBP clause that will fire once x1 is decided.
	require.True(t, s.AddSBPClause([]lit.Lit{lit.New(v1, true), lit.New(v2, false)}))
	// a plain problem clause forbidding both, forcing a conflict once the
	// SBP clause propagates x2.
	require.True(t, s.AddClause([]int{-1, -2}))

	// Force x1 to be decided first regardless of the heap's tie-break
	// between equal-activity variables, so the SBP clause is guaranteed
	// to fire before the solver ever tries x1=false directly.
	s.varBumpActivity(v1)

	// x1=false, x2=true satisfies both clauses, so the instance is SAT --
	// but only after the solver first tries x1=true, is forced to x2=true
	// by the SBP clause, and hits (and analyzes) the resulting conflict.
	require.True(t, s.Solve(nil))

	stats := s.SBPStats()
	assert.Equal(t, 1, stats.StaticClauses)
	assert.GreaterOrEqual(t, stats.Propagated, 1, "the SBP clause should have driven at least one propagation")
	assert.GreaterOrEqual(t, stats.UsedInResolution, 1, "the SBP clause should have been walked during conflict analysis")
}
