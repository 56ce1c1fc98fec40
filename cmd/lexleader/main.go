// Command lexleader runs the CDCL solver over a DIMACS CNF file, optionally
// breaking symmetry over a permutation group supplied alongside it.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ericr/lexleader/config"
	"github.com/ericr/lexleader/encoding"
	"github.com/ericr/lexleader/solver"
)

func main() {
	app := &cli.App{
		Name:      "lexleader",
		Usage:     "conflict-driven clause learning SAT solver with symmetry breaking",
		Version:   solver.Version,
		ArgsUsage: "input.cnf",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "var-decay", Value: 0.95, Usage: "variable activity decay"},
			&cli.Float64Flag{Name: "cla-decay", Value: 0.999, Usage: "clause activity decay"},
			&cli.Float64Flag{Name: "rnd-freq", Value: 0, Usage: "probability of a random branch"},
			&cli.Int64Flag{Name: "rnd-seed", Value: 91648253, Usage: "PRNG seed"},
			&cli.IntFlag{Name: "ccmin-mode", Value: 2, Usage: "conflict-clause minimization depth {0,1,2}"},
			&cli.IntFlag{Name: "phase-saving", Value: 2, Usage: "polarity reuse policy {0,1,2}"},
			&cli.BoolFlag{Name: "rnd-init", Value: false, Usage: "randomize initial activities"},
			&cli.BoolFlag{Name: "luby", Value: true, Usage: "use the Luby restart sequence"},
			&cli.IntFlag{Name: "rfirst", Value: 100, Usage: "base restart interval"},
			&cli.Float64Flag{Name: "rinc", Value: 2, Usage: "restart growth factor"},
			&cli.Float64Flag{Name: "gc-frac", Value: 0.20, Usage: "arena waste fraction triggering GC"},
			&cli.IntFlag{Name: "min-learnts", Value: 0, Usage: "floor on max_learnts"},
			&cli.IntFlag{Name: "conflict-budget", Usage: "give up after this many conflicts (0 = unbounded)"},
			&cli.IntFlag{Name: "propagation-budget", Usage: "give up after this many propagations (0 = unbounded)"},
			&cli.StringFlag{Name: "symm", Usage: "permutation generator file"},
			&cli.BoolFlag{Name: "symm-shatter", Usage: "static Shatter SBP encoding"},
			&cli.BoolFlag{Name: "symm-chain", Usage: "static chaining SBP encoding"},
			&cli.BoolFlag{Name: "symm-dynamic", Usage: "inject chaining SBPs during search instead of up front"},
			&cli.BoolFlag{Name: "symm-eq-aux", Usage: "equality-auxiliary-variable SBP encoding"},
			&cli.BoolFlag{Name: "symm-aux-decide", Usage: "let SBP auxiliary variables enter the decision heap"},
			&cli.UintFlag{Name: "models", Aliases: []string{"m"}, Value: 1, Usage: "number of models to report (>1 is not supported; see Non-goals)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the simplified instance back out as DIMACS"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug-level logging and a stats dump on exit"},
		},
		Action: run,
	}

	err := app.Run(os.Args)
	cli.HandleExitCoder(err)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("lexleader: missing input.cnf", 2)
	}

	cfg := configFromFlags(c)
	logger := cfg.Logger

	cnfPath := c.Args().Get(0)
	cnfFile, err := os.Open(cnfPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer cnfFile.Close()

	cnf, err := encoding.ParseDIMACS(cnfFile)
	if err != nil {
		return cli.Exit(fmt.Errorf("lexleader: %w", err), 2)
	}

	s := solver.New(cfg)
	for _, clause := range cnf.Clauses {
		s.AddClause(clause)
	}
	logger.WithFields(logrus.Fields{
		"vars":    cnf.NVars,
		"clauses": len(cnf.Clauses),
	}).Info("loaded instance")

	if cfg.SymmFile != "" {
		permFile, err := os.Open(cfg.SymmFile)
		if err != nil {
			return cli.Exit(err, 2)
		}
		perms, err := encoding.ParsePermutations(permFile)
		permFile.Close()
		if err != nil {
			return cli.Exit(fmt.Errorf("lexleader: %w", err), 2)
		}
		s.AttachSymmetry(perms)
		logger.WithField("permutations", len(perms)).Info("attached symmetry-breaking predicates")
	}

	if cfg.Models > 1 {
		logger.Warn("multiple-model enumeration is not implemented; solving for one model")
	}

	if cfg.ConflictBudget > 0 {
		s.SetConflictBudget(cfg.ConflictBudget)
	}
	if cfg.PropagationBudget > 0 {
		s.SetPropagationBudget(cfg.PropagationBudget)
	}

	// SIGINT asks the search to stop at its next restart boundary instead
	// of killing the process outright, so a partial run's stats stay valid
	// for inspection and the result is reported as unknown.
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		s.Interrupt()
	}()

	start := time.Now()
	sat := s.Solve(nil)
	elapsed := time.Since(start)
	signal.Stop(interrupted)

	if cfg.Verbose {
		pp.Println(s.GetStats())
	}
	logger.WithFields(logrus.Fields{
		"sat":          sat,
		"elapsed":      elapsed,
		"conflicts":    s.NConflicts(),
		"decisions":    s.NDecisions(),
		"propagations": s.NPropagations(),
		"restarts":     s.NRestarts(),
	}).Info("solve finished")

	if cfg.OutputPath != "" {
		if err := writeBack(cfg.OutputPath, s); err != nil {
			return cli.Exit(err, 2)
		}
	}

	if s.Unknown() {
		fmt.Println("s UNKNOWN")
		return cli.Exit("", 0)
	}

	if !sat {
		fmt.Println("s UNSATISFIABLE")
		return cli.Exit("", 20)
	}

	fmt.Println("s SATISFIABLE")
	for _, l := range s.Answer() {
		fmt.Printf("%d ", l)
	}
	fmt.Println("0")
	return cli.Exit("", 10)
}

func writeBack(path string, s *solver.Solver) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	clauses := make([]encoding.LiveClause, 0)
	for _, c := range s.LiveClauses() {
		clauses = append(clauses, encoding.LiveClause(c))
	}
	return encoding.WriteDIMACS(f, s.LiveVars(), clauses, nil)
}

func configFromFlags(c *cli.Context) *config.Config {
	cfg := config.New()

	logger := logrus.New()
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	cfg.Logger = logger

	cfg.VarDecay = c.Float64("var-decay")
	cfg.ClaDecay = c.Float64("cla-decay")
	cfg.RndFreq = c.Float64("rnd-freq")
	cfg.RndSeed = c.Int64("rnd-seed")
	cfg.CCMinMode = c.Int("ccmin-mode")
	cfg.PhaseSaving = c.Int("phase-saving")
	cfg.RndInit = c.Bool("rnd-init")
	cfg.Luby = c.Bool("luby")
	cfg.RFirst = c.Int("rfirst")
	cfg.RInc = c.Float64("rinc")
	cfg.GCFrac = c.Float64("gc-frac")
	cfg.MinLearnts = c.Int("min-learnts")
	cfg.ConflictBudget = c.Int("conflict-budget")
	cfg.PropagationBudget = c.Int("propagation-budget")

	cfg.SymmFile = c.String("symm")
	cfg.SymmShatter = c.Bool("symm-shatter")
	cfg.SymmChain = c.Bool("symm-chain")
	cfg.SymmDynamic = c.Bool("symm-dynamic")
	cfg.SymmEqAux = c.Bool("symm-eq-aux")
	cfg.SymmAuxDecide = c.Bool("symm-aux-decide")

	cfg.Models = c.Uint("models")
	cfg.OutputPath = c.String("output")
	cfg.Verbose = c.Bool("verbose")

	return cfg
}
