// SPDX-License-Identifier: MIT
// Package: s1fibre/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic: no rng, no shuffling.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"math/rand"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives shuffling; nil means no randomness.
	rng *rand.Rand
	// shuffle relabels the top simplices with a random permutation.
	shuffle bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
