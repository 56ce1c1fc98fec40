package symmetry

import (
	"github.com/samber/lo"

	"github.com/ericr/lexleader/config"
	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/tribool"
)

// Host is the subset of solver.Solver the symmetry engine drives: fresh
// auxiliary variables, clause injection (static, at Attach time, or
// dynamic, mid-search), and enough of the current assignment to evaluate
// the equality chains dynamic chaining depends on. It is defined here
// rather than imported from package solver to avoid a solver<->symmetry
// import cycle, since solver already imports symmetry for Permutation and
// Engine.
type Host interface {
	NVars() int
	NewAuxVar() lit.Var
	AddSBPClause(lits []lit.Lit) bool
	AddDynamicSBPClause(lits []lit.Lit) bool
	LitValue(p lit.Lit) tribool.Tribool
	VarValue(v lit.Var) tribool.Tribool
}

// Engine carries every symmetry-breaking predicate derived from one
// permutation group: the static clauses emitted once at Attach time, and,
// for dynamic chaining, the equality tables and watch structure OnAssign
// extends as the search assigns variables.
type Engine struct {
	cfg   *config.Config
	perms []*Permutation

	origVars int

	// eqs deduplicates the (variable -> image literal) pairings shared
	// across permutations: two generators that induce the same pairing
	// reuse the same *eq and its auxiliary variable.
	eqs map[lit.Var]map[lit.Lit]*eq

	// watchedEqs[v][permIdx] is the eq node permutation permIdx currently
	// expects to resolve when v is assigned.
	watchedEqs map[lit.Var]map[int]*eq

	// currentP[permIdx] is the open end of permutation permIdx's dynamic
	// chaining SBP, extended one link at a time by addSucc.
	currentP map[int]lit.Var
}

// NewEngine returns an Engine over perms, configured from cfg. Call Attach
// once every problem clause has been added to the host.
func NewEngine(cfg *config.Config, perms []*Permutation) *Engine {
	// An identity permutation (empty support) contributes no SBP and would
	// otherwise need a guard at every call site below; drop it once here
	// so every remaining index into perms names a real generator.
	perms = lo.Filter(perms, func(p *Permutation, _ int) bool { return len(p.Support) > 0 })

	return &Engine{
		cfg:        cfg,
		perms:      perms,
		eqs:        make(map[lit.Var]map[lit.Lit]*eq),
		watchedEqs: make(map[lit.Var]map[int]*eq),
	}
}

// Attach emits the engine's static predicates against host and, when
// dynamic chaining is configured, builds the watch structure OnAssign
// walks during search.
func (e *Engine) Attach(host Host) {
	e.origVars = host.NVars()
	e.currentP = make(map[int]lit.Var)

	if e.cfg.SymmEqAux || e.cfg.SymmDynamic {
		for _, p := range e.perms {
			e.constructEqTable(p)
		}
	}

	dynamicShatter := e.cfg.SymmDynamic && e.cfg.SymmShatter
	dynamicChain := e.cfg.SymmDynamic && e.cfg.SymmChain

	for permIdx, p := range e.perms {
		switch {
		case dynamicShatter:
			// Dynamic chaining was only ever wired to the chaining
			// encoding upstream; combining it with static Shatter is a
			// documented no-op rather than an unimplemented feature.
		case e.cfg.SymmShatter:
			e.addAllShatterSBPs(host, p)
		case dynamicChain:
			e.initEqWatchStructure(p, permIdx)
			e.currentP[permIdx] = e.addInitChainingSBP(host, p.Support[0], p.At(p.Support[0]))
		case e.cfg.SymmChain:
			e.addAllChainingSBPs(host, p)
		}
	}
}

// OnAssign is called from the host's uncheckedEnqueue for every literal it
// assigns. When dynamic chaining is active and p's variable is watched by
// some permutation's equality chain, it walks that chain and, once
// satisfied back to its root, extends the chain's SBP by one link.
func (e *Engine) OnAssign(host Host, p lit.Lit) {
	if !e.cfg.SymmDynamic {
		return
	}
	v := p.Var()
	if int(v) >= e.origVars {
		return
	}
	watchers, ok := e.watchedEqs[v]
	if !ok {
		return
	}
	for permIdx := 0; permIdx < len(e.perms); permIdx++ {
		node, ok := watchers[permIdx]
		if !ok || node == nil {
			continue
		}
		if e.predSat(host, node, permIdx) {
			e.addSucc(host, node, permIdx)
		}
	}
}

func posLit(v lit.Var) lit.Lit { return lit.New(v, false) }
func negLit(v lit.Var) lit.Lit { return lit.New(v, true) }
