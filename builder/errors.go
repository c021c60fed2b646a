// SPDX-License-Identifier: MIT
// Package: stoproute/builder
//
// errors.go — sentinel errors and skip reasons for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Loader failures are wrapped with %w so the source's own sentinels
//     (route.ErrInvalidRoute, feed.ErrDecode, store.ErrNilDB, ...) stay matchable.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoproute/route"
)

// ErrNilSource indicates BuildGraphFromRoutes was called without a source.
var ErrNilSource = errors.New("builder: route source is nil")

// ErrLoadRoutes wraps any failure of the route source.
var ErrLoadRoutes = errors.New("builder: load routes")

// SkipReason classifies why a route contributed no hops.
type SkipReason int

const (
	// SkipShortChain: the chain has fewer than two stops.
	SkipShortChain SkipReason = iota + 1
	// SkipBadDistance: the resolved distance is negative or NaN.
	SkipBadDistance
)

// String implements fmt.Stringer.
func (r SkipReason) String() string {
	switch r {
	case SkipShortChain:
		return "chain has fewer than 2 stops"
	case SkipBadDistance:
		return "distance is negative or NaN"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// Skip describes one skipped route. Index is its position in the input slice.
type Skip struct {
	Index  int
	Route  route.Route
	Reason SkipReason
}

// String renders the skip for log lines.
func (s Skip) String() string {
	return fmt.Sprintf("route #%d (%s) skipped: %s", s.Index, s.Route.Label(), s.Reason)
}
