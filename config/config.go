// Package config holds every tunable documented for the solver, with the
// same defaults and ranges as the reference implementation it was ported
// from.
package config

import (
	"github.com/sirupsen/logrus"
)

// Config collects every option the solver and its symmetry layer accept.
// Field names track the flag names in cmd/lexleader one-to-one.
type Config struct {
	Logger *logrus.Logger

	OutputPath string
	Models     uint
	Verbose    bool

	// Activity & restart tuning.
	VarDecay   float64 // (0,1), default 0.95
	ClaDecay   float64 // (0,1), default 0.999
	RndFreq    float64 // [0,1], default 0
	RndSeed    int64   // >0, default 91648253
	CCMinMode  int     // {0,1,2}, default 2
	PhaseSaving int    // {0,1,2}, default 2
	RndInit    bool    // default false
	Luby       bool    // default true
	RFirst     int     // >=1, default 100
	RInc       float64 // >=1.0, default 2
	GCFrac     float64 // >0, default 0.20
	MinLearnts int     // >=0, default 0

	// Resource limits, checked cooperatively at restart boundaries. Zero
	// means unbounded.
	ConflictBudget    int
	PropagationBudget int

	// Symmetry breaking.
	SymmFile      string // permutation file path
	SymmShatter   bool   // static Shatter SBPs
	SymmChain     bool   // static chaining SBPs
	SymmDynamic   bool   // dynamic chaining SBP injection
	SymmEqAux     bool   // equality-auxiliary-variable encoding
	SymmAuxDecide bool   // include SBP aux vars in the decision heap
}

// New returns a Config populated with the documented defaults.
func New() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	return &Config{
		Logger: logger,

		VarDecay:    0.95,
		ClaDecay:    0.999,
		RndFreq:     0,
		RndSeed:     91648253,
		CCMinMode:   2,
		PhaseSaving: 2,
		RndInit:     false,
		Luby:        true,
		RFirst:      100,
		RInc:        2,
		GCFrac:      0.20,
		MinLearnts:  0,
		Models:      1,
	}
}
