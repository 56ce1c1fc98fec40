package solver

import (
	"testing"

	"github.com/ericr/lexleader/config"
	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/tribool"
)

func newTestSolver(nVars int) *Solver {
	s := New(config.New())
	for i := 0; i < nVars; i++ {
		s.NewVar()
	}
	return s
}

func TestAddClauseAlreadyTrue(t *testing.T) {
	s := newTestSolver(1)
	s.assigns[0] = tribool.True

	if !s.addClause([]lit.Lit{lit.New(0, false)}) {
		t.Fatalf("did not accept a clause already satisfied at the root")
	}
	if s.NClauses() != 0 {
		t.Fatalf("a satisfied clause should not be attached")
	}
}

func TestAddClauseTautology(t *testing.T) {
	s := newTestSolver(1)

	if !s.addClause([]lit.Lit{lit.New(0, false), lit.New(0, true)}) {
		t.Fatalf("did not accept a tautological clause")
	}
	if s.NClauses() != 0 {
		t.Fatalf("a tautology should not be attached")
	}
}

func TestAddClauseEmptyIsUnsat(t *testing.T) {
	s := newTestSolver(0)

	if s.addClause(nil) {
		t.Fatalf("an empty clause should be rejected")
	}
	if s.ok {
		t.Fatalf("adding an empty clause should mark the solver unsatisfiable")
	}
}

func TestAddClauseDropsFalseLiterals(t *testing.T) {
	s := newTestSolver(3)
	s.assigns[1] = tribool.False

	if !s.addClause([]lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, true)}) {
		t.Fatalf("clause should be accepted")
	}
	if s.NClauses() != 1 {
		t.Fatalf("expected exactly one attached clause, got %d", s.NClauses())
	}
	if got := s.arena.get(s.clauses[0]).Len(); got != 2 {
		t.Fatalf("expected the false literal to be dropped, got length %d", got)
	}
}

func TestAddClauseDropsDuplicates(t *testing.T) {
	s := newTestSolver(2)

	if !s.addClause([]lit.Lit{lit.New(0, false), lit.New(0, false), lit.New(1, true)}) {
		t.Fatalf("clause should be accepted")
	}
	if got := s.arena.get(s.clauses[0]).Len(); got != 2 {
		t.Fatalf("expected the duplicate literal to be dropped, got length %d", got)
	}
}

func TestAddClauseUnitEnqueues(t *testing.T) {
	s := newTestSolver(1)

	if !s.addClause([]lit.Lit{lit.New(0, false)}) {
		t.Fatalf("unit clause should be accepted")
	}
	if !s.litValue(lit.New(0, false)).True() {
		t.Fatalf("unit clause should have enqueued its literal")
	}
}
