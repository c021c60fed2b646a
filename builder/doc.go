// Package builder turns route datasets into a core.Graph.
//
// Each route contributes its chain [origin, stops..., destination]. The
// route's total distance (default 1.0 km) is split evenly over the hops of the
// chain, and every consecutive pair is connected in both directions. When
// several routes cover the same pair, the cheapest per-hop weight wins.
//
// The package offers two entry points:
//
//   - BuildGraph(routes, opts...):                 pure, in-memory construction.
//   - BuildGraphFromRoutes(ctx, source, opts...):  load from any route.Source, then build.
//
// Configuration primitives:
//
//   - BuilderOption:      a function that mutates builderConfig before use.
//   - WithDefaultDistance: total distance for routes without distance_km.
//   - WithSkipHook:        observe routes that contributed no hops.
//
// Skipped routes:
//
//   - SkipShortChain:  fewer than two non-empty stop IDs.
//   - SkipBadDistance: negative or NaN distance (would break non-negativity).
//
// Skipping is never an error; the default hook is a no-op. Wire a hook when
// data quality matters (the stoproute CLI logs a warning per skip).
//
// Guarantees:
//
//   - Symmetric, non-negative weights with min-merge on overlap.
//   - Deterministic: the same routes and options build equal graphs,
//     regardless of route order.
//   - Option constructors panic on meaningless values; builders never panic.
//
// Complexity: O(Σ len(chain)) time, O(V + E) space.
package builder
