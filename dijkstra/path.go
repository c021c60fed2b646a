package dijkstra

import (
	"math"

	"github.com/katalvlaran/stoproute/core"
)

// ShortestPath returns the distance and stop sequence of a shortest path
// from start to end.
//
// When end is unreachable, or either stop is unknown, it returns
// (math.Inf(1), nil): that is the "no path" signal, not an error.
// Otherwise path[0] == start, path[len(path)-1] == end, and consecutive
// stops are adjacent in g. start == end yields (0, [start]).
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (float64, []string) {
	dist, prev := SingleSource(g, start, opts...)

	d, ok := dist[end]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), nil
	}

	path := Reconstruct(prev, start, end)
	if path == nil {
		return math.Inf(1), nil
	}

	return d, path
}

// Reconstruct walks prev backwards from end to start and returns the
// start→end sequence. It returns nil when the chain does not lead back to
// start (end unreached, or prev computed from a different source).
func Reconstruct(prev map[string]string, start, end string) []string {
	if start == "" || end == "" {
		return nil
	}

	path := []string{end}
	for cur := end; cur != start; {
		p := prev[cur]
		if p == "" || len(path) > len(prev) {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
