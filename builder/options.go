// SPDX-License-Identifier: MIT
// Package: stoproute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     BuildGraph itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "math"

// BuilderOption customizes graph construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithDefaultDistance sets the total distance used for routes without
// distance_km. Panics on negative or NaN values.
func WithDefaultDistance(km float64) BuilderOption {
	if km < 0 || math.IsNaN(km) {
		panic("builder: WithDefaultDistance(km) requires km >= 0")
	}
	return func(c *builderConfig) {
		c.defaults.DistanceKM = km
	}
}

// WithSkipHook registers fn to observe every route that contributed no hops.
// Panics on nil.
func WithSkipHook(fn func(Skip)) BuilderOption {
	if fn == nil {
		panic("builder: WithSkipHook(nil)")
	}
	return func(c *builderConfig) {
		c.onSkip = fn
	}
}
