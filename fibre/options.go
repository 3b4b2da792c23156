// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// options.go — functional options and deterministic defaults for MapToS1.
//
// Contract:
//   • Options are applied in order; later ones override earlier ones.
//   • Option constructors panic on meaningless inputs (nil logger, nil rng,
//     empty denominator range). New itself never panics.
//   • The default rng is seeded with DefaultSeed, so runs are reproducible.

package fibre

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultAttempts = 5
	DefaultSeed     = 1
	DefaultDenomLo  = 2
	DefaultDenomHi  = 15
)

// Option customizes a MapToS1.
type Option func(*config)

type config struct {
	attempts   int
	rng        *rand.Rand
	log        *zap.Logger
	denLo      int64
	denHi      int64
	level      int
	prePerturb bool
	cocycle    Cochain
}

func newConfig(opts ...Option) config {
	cfg := config{
		attempts:   DefaultAttempts,
		denLo:      DefaultDenomLo,
		denHi:      DefaultDenomHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}

	return cfg
}

// WithAttempts sets the number of random perturbations tried per round.
// Zero disables perturbation; negative values panic.
func WithAttempts(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("fibre: WithAttempts(%d)", k))
	}
	return func(c *config) { c.attempts = k }
}

// WithSeed seeds a fresh rng for the perturbation search.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit rng. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fibre: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger routes progress reports to log. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("fibre: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}

// WithDenominators bounds the denominators drawn for vertex perturbations
// to [lo, hi]. Panics unless 1 <= lo <= hi.
func WithDenominators(lo, hi int64) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("fibre: WithDenominators(%d, %d)", lo, hi))
	}
	return func(c *config) { c.denLo, c.denHi = lo, hi }
}

// WithLevel picks the i-th smallest midpoint as the fibre level, taken
// modulo the number of midpoints. Panics on negative i.
func WithLevel(i int) Option {
	if i < 0 {
		panic(fmt.Sprintf("fibre: WithLevel(%d)", i))
	}
	return func(c *config) { c.level = i }
}

// WithPrePerturbation turns on an extra perturbation round on the
// unconditioned triangulation, run before any edge is collapsed. It is off
// by default, so a generator that fails as is goes straight to
// conditioning.
func WithPrePerturbation(on bool) Option {
	return func(c *config) { c.prePerturb = on }
}

// WithCocycle makes FindBundle start from c instead of the computed H¹
// generator. c is indexed by the edges of the working triangulation and
// must represent a primitive class; otherwise FindBundle reports
// InvalidInput. Once conditioning changes the triangulation the computed
// generator takes over. Panics on an empty cochain.
func WithCocycle(c Cochain) Option {
	if len(c) == 0 {
		panic("fibre: WithCocycle(empty)")
	}
	c = c.Clone()
	return func(cfg *config) { cfg.cocycle = c }
}
