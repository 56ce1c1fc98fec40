// Package solver implements a conflict-driven clause learning Boolean
// satisfiability solver with optional symmetry-breaking predicates injected
// over a permutation group supplied alongside the CNF.
package solver

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ericr/lexleader/config"
	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/symmetry"
	"github.com/ericr/lexleader/tribool"
)

// seen states used during conflict-clause minimization. A plain boolean
// isn't enough once litRedundant needs to tell "on the trail, not yet
// classified" apart from "confirmed removable" and "confirmed required".
const (
	seenUndef = iota
	seenSource
	seenRemovable
	seenFailed
)

// Version identifies the solver build, reported by cmd/lexleader -version.
const Version = "lexleader-1.0"

// Stats tracks run counters surfaced via -verbose and the CLI's summary
// output.
type Stats struct {
	Decisions    int
	Propagations int
	Conflicts    int
	Restarts     int
	Reduced      int
	SBP          SBPStats
}

// SBPStats tracks symmetry-breaking overhead separately from the base
// solver's counters, so -verbose output can attribute the cost of carrying
// a permutation group.
type SBPStats struct {
	StaticClauses  int
	DynamicClauses int
	AuxVars        int

	// Propagated and UsedInResolution tally, once per clause, SBP clauses
	// that ever fired a propagation or were ever resolved against during
	// conflict analysis -- the rest of the SBP clause count was pure
	// overhead for this particular run.
	Propagated       int
	UsedInResolution int
}

// SBPStats returns a snapshot of the symmetry layer's counters, or a zero
// value when no permutation group was supplied.
func (s *Solver) SBPStats() SBPStats {
	return s.stats.SBP
}

// Solver is a single CDCL search, optionally carrying a symmetry-breaking
// predicate engine over a permutation group supplied through AttachSymmetry.
type Solver struct {
	cfg    *config.Config
	logger *logrus.Logger
	runID  uuid.UUID

	ok    bool
	arena *arena

	clauses []CRef
	learnts []CRef

	watches map[lit.Lit][]watcher

	assigns  []tribool.Tribool
	trail    []lit.Lit
	trailLim []int
	qhead    int

	reason []CRef
	level  []int
	seen   []int

	activity []float64
	varInc   float64
	varDecay float64
	heap     *varHeap

	// analyzeToClear collects every var analyze/litRedundant marks seen
	// during one conflict analysis, so it can be reset to seenUndef in one
	// pass once minimization finishes -- reused across calls to reuse its
	// backing array.
	analyzeToClear []lit.Lit

	polarity    []bool
	decisionVar []bool

	claInc   float64
	claDecay float64

	rootLevel int

	// reduceDB scheduling, following the geometric maxLearnts growth the
	// reference implementation uses instead of a fixed clause budget.
	maxLearnts             float64
	maxLearntsGrowth       float64
	maxLearntsCtr          int
	maxLearntsCtrInc       float64
	maxLearntsCtrIncGrowth float64

	model []bool

	rng *rand.Rand

	assumptions []lit.Lit
	conflict    []lit.Lit

	symm *symmetry.Engine

	stats Stats

	// Cooperative cancellation: interrupt is set from outside the search
	// goroutine (e.g. a signal handler), conflictBudget/propagationBudget
	// are ceilings on the run counters, both polled only at restart
	// boundaries by withinBudget. lastStatus records how the most recent
	// Solve actually finished, so callers can tell "proved UNSAT" apart
	// from "gave up within budget".
	interrupt         int32
	conflictBudget    int64
	propagationBudget int64
	lastStatus        tribool.Tribool
}

// New returns a solver configured from cfg, with no symmetry-breaking
// engine attached. Call AttachSymmetry once the problem clauses have been
// added if a permutation group is available.
func New(cfg *config.Config) *Solver {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	s := &Solver{
		cfg:               cfg,
		logger:            logger,
		runID:             uuid.New(),
		ok:                true,
		arena:             newArena(),
		watches:           make(map[lit.Lit][]watcher),
		varInc:            1,
		varDecay:          cfg.VarDecay,
		claInc:            1,
		claDecay:          cfg.ClaDecay,
		rng:               rand.New(rand.NewSource(cfg.RndSeed)),
		conflictBudget:    -1,
		propagationBudget: -1,
	}
	s.heap = newVarHeap(0, &s.activity)

	s.logger.WithField("run", s.runID).Debug("solver initialized")
	return s
}

// AttachSymmetry builds the symmetry-breaking engine over perms and emits
// its static predicates (Shatter or chaining, per cfg; Shatter wins when
// both are set). Call this
// after every problem clause has been added, since the engine allocates
// its auxiliary variables past the problem's own variable range.
func (s *Solver) AttachSymmetry(perms []*symmetry.Permutation) {
	if len(perms) == 0 {
		return
	}
	s.symm = symmetry.NewEngine(s.cfg, perms)
	s.symm.Attach(s)
}

// NewVar allocates a fresh problem variable and returns it.
func (s *Solver) NewVar() lit.Var {
	v := lit.Var(len(s.assigns))
	s.assigns = append(s.assigns, tribool.Undef)
	s.reason = append(s.reason, CRefUndef)
	s.level = append(s.level, -1)
	s.seen = append(s.seen, seenUndef)
	act := 0.0
	if s.cfg.RndInit {
		act = s.rng.Float64() * 0.00001
	}
	s.activity = append(s.activity, act)
	s.polarity = append(s.polarity, false)
	s.decisionVar = append(s.decisionVar, true)
	s.heap.newVar(int(v))
	return v
}

func (s *Solver) growTo(v lit.Var) {
	for lit.Var(len(s.assigns)) <= v {
		s.NewVar()
	}
}

// NewAuxVar allocates a variable on behalf of the symmetry layer: an
// equality or chaining auxiliary that isn't part of the input problem. Such
// variables are excluded from the branching heap unless cfg.SymmAuxDecide
// asks for them to be treated like ordinary decision variables.
func (s *Solver) NewAuxVar() lit.Var {
	v := s.NewVar()
	s.stats.SBP.AuxVars++
	if !s.cfg.SymmAuxDecide {
		s.decisionVar[v] = false
		s.heap.remove(int(v))
	}
	return v
}

// AddClause installs a clause given as signed, one-indexed DIMACS literals,
// growing the variable set as needed. It returns false once the instance is
// proven unsatisfiable at the root level.
func (s *Solver) AddClause(dimacs []int) bool {
	lits := make([]lit.Lit, len(dimacs))
	for i, d := range dimacs {
		s.growTo(lit.Var(abs(d) - 1))
		lits[i] = lit.FromDimacs(d)
	}
	return s.addClause(lits)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NVars returns the number of variables the solver knows about.
func (s *Solver) NVars() int { return len(s.assigns) }

// NAssigns returns the number of literals currently on the trail.
func (s *Solver) NAssigns() int { return len(s.trail) }

// NClauses returns the number of original (non-learnt) clauses.
func (s *Solver) NClauses() int { return len(s.clauses) }

// NLearnts returns the number of learnt clauses currently attached.
func (s *Solver) NLearnts() int { return len(s.learnts) }

// NPropagations, NConflicts, NRestarts, NDecisions report run counters.
func (s *Solver) NPropagations() int { return s.stats.Propagations }
func (s *Solver) NConflicts() int    { return s.stats.Conflicts }
func (s *Solver) NRestarts() int     { return s.stats.Restarts }
func (s *Solver) NDecisions() int    { return s.stats.Decisions }

// GetStats returns a snapshot of the run's counters.
func (s *Solver) GetStats() Stats { return s.stats }

// litValue returns the truth value of a literal under the current
// assignment.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	a := s.assigns[p.Var()]
	if a.Undef() {
		return tribool.Undef
	}
	if p.Sign() {
		return a.Not()
	}
	return a
}

func (s *Solver) varValue(v lit.Var) tribool.Tribool {
	return s.assigns[v]
}

// LitValue exposes litValue to the symmetry layer through the Host
// interface, which can only be satisfied with exported methods.
func (s *Solver) LitValue(p lit.Lit) tribool.Tribool {
	return s.litValue(p)
}

// VarValue exposes varValue to the symmetry layer through the Host
// interface.
func (s *Solver) VarValue(v lit.Var) tribool.Tribool {
	return s.varValue(v)
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// Model returns the satisfying assignment found by the last successful
// Solve, indexed by zero-based variable.
func (s *Solver) Model() []bool {
	return s.model
}

// Answer returns the model as signed, one-indexed DIMACS literals, sorted
// by variable.
func (s *Solver) Answer() []int {
	out := make([]int, len(s.model))
	for v, val := range s.model {
		if val {
			out[v] = v + 1
		} else {
			out[v] = -(v + 1)
		}
	}
	return out
}

// LiveClauses returns every attached clause (original and learnt) in
// one-indexed DIMACS form, for instance writeback.
func (s *Solver) LiveClauses() [][]int {
	refs := append(append([]CRef(nil), s.clauses...), s.learnts...)
	out := make([][]int, 0, len(refs))
	for _, cr := range refs {
		c := s.arena.get(cr)
		if c == nil {
			continue
		}
		row := make([]int, len(c.lits))
		for i, l := range c.lits {
			row[i] = l.Dimacs()
		}
		out = append(out, row)
	}
	return out
}

// LiveVars returns the one-indexed variables not fixed at the root level.
func (s *Solver) LiveVars() []int {
	all := make([]int, s.NVars())
	for v := range all {
		all[v] = v
	}
	live := lo.Filter(all, func(v int, _ int) bool { return s.level[v] != 0 })
	return lo.Map(live, func(v int, _ int) int { return v + 1 })
}

func (s *Solver) String() string {
	return fmt.Sprintf("solver(vars=%d clauses=%d learnts=%d)", s.NVars(), s.NClauses(), s.NLearnts())
}
