// SPDX-License-Identifier: MIT
// Package: stoproute/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - BuildGraph is pure: same routes + options ⇒ equal graphs.
//   - BuildGraphFromRoutes only adds loading; building semantics are identical.
//   - Degenerate routes are skipped and reported through the skip hook, never
//     returned as errors.

package builder

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/stoproute/core"
	"github.com/katalvlaran/stoproute/route"
)

// BuildGraph builds the stop network for routes.
//
// For each route: form the chain, skip it when it has fewer than two stops or
// an unusable distance, otherwise split the distance evenly over its hops and
// add every hop in both directions, keeping the minimum weight per pair.
//
// Complexity: O(Σ len(chain)) time, O(V + E) space.
func BuildGraph(routes []route.Route, opts ...BuilderOption) *core.Graph {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	for i, r := range routes {
		if reason := addRoute(g, cfg, r); reason != 0 {
			cfg.onSkip(Skip{Index: i, Route: r, Reason: reason})
		}
	}

	return g
}

// BuildGraphFromRoutes loads all routes from src and builds the graph.
// Source failures are wrapped with ErrLoadRoutes; the source's own error
// remains reachable through errors.Is.
func BuildGraphFromRoutes(ctx context.Context, src route.Source, opts ...BuilderOption) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	routes, err := src.Routes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoutes, err)
	}

	return BuildGraph(routes, opts...), nil
}

// addRoute inserts the hops of one route. It returns the skip reason, or 0
// when the route contributed its hops.
func addRoute(g *core.Graph, cfg builderConfig, r route.Route) SkipReason {
	chain := r.Chain()
	if len(chain) < 2 {
		return SkipShortChain
	}

	dist := r.Distance(cfg.defaults)
	if dist < 0 || math.IsNaN(dist) {
		return SkipBadDistance
	}
	w := r.HopWeight(cfg.defaults)

	for i := 1; i < len(chain); i++ {
		// Chain IDs are non-empty and w is non-negative, so AddHop cannot fail.
		_ = g.AddHop(chain[i-1], chain[i], w)
	}

	return 0
}
