// SPDX-License-Identifier: MIT
// Package: stoproute/builder
//
// grid.go — synthetic route sets for a rows×cols street grid.
//
// Model:
//   • Stop IDs use the fixed scheme "r,c" (row-major order).
//   • One route per row runs (r,0) → (r,cols-1); one route per column runs
//     (0,c) → (rows-1,c). Each crosses (n-1) blocks of blockKM.
//   • A 1×1 grid has no routes; a single row or column yields just that line.
//
// Complexity: O(rows*cols) stops emitted.

package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stoproute/route"
)

// ErrGridSize is returned by GridRoutes for non-positive dimensions or a
// negative block length.
var ErrGridSize = errors.New("builder: invalid grid dimensions")

const gridIDFmt = "%d,%d"

// GridID returns the stop ID of cell (r, c) in a GridRoutes network.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// GridRoutes returns the row and column lines of a rows×cols grid whose
// adjacent stops are blockKM apart once built, up to float rounding: each
// line carries blockKM*(n-1) which the builder divides back by n-1, so
// GridRoutes(1, 4, 0.1) yields hops of 0.10000000000000002.
func GridRoutes(rows, cols int, blockKM float64) ([]route.Route, error) {
	if rows < 1 || cols < 1 || blockKM < 0 || math.IsNaN(blockKM) {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d, block=%v", ErrGridSize, rows, cols, blockKM)
	}

	routes := make([]route.Route, 0, rows+cols)
	if cols > 1 {
		for r := 0; r < rows; r++ {
			line := make([]string, cols)
			for c := range line {
				line[c] = GridID(r, c)
			}
			routes = append(routes, lineRoute(fmt.Sprintf("row-%d", r), line, blockKM))
		}
	}
	if rows > 1 {
		for c := 0; c < cols; c++ {
			line := make([]string, rows)
			for r := range line {
				line[r] = GridID(r, c)
			}
			routes = append(routes, lineRoute(fmt.Sprintf("col-%d", c), line, blockKM))
		}
	}

	return routes, nil
}

// lineRoute turns a stop line of at least two stops into a route.
func lineRoute(id string, line []string, blockKM float64) route.Route {
	return route.Route{
		ID:          id,
		Origin:      line[0],
		Stops:       line[1 : len(line)-1],
		Destination: line[len(line)-1],
		DistanceKM:  route.KM(blockKM * float64(len(line)-1)),
	}
}
