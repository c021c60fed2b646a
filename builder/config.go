// SPDX-License-Identifier: MIT
// Package: stoproute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • defaults.DistanceKM = route.DefaultDistanceKM (1.0)
//   • onSkip              = no-op

package builder

import "github.com/katalvlaran/stoproute/route"

// builderConfig aggregates all knobs used while building.
// It is passed by VALUE to the per-route step.
type builderConfig struct {
	// Values substituted for absent optional route fields.
	defaults route.Defaults
	// Called once per skipped route, in input order.
	onSkip func(Skip)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		defaults: route.DefaultValues(),
		onSkip:   func(Skip) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
