package core

import (
	"fmt"
	"math"
	"sort"
)

// AddStop registers id as an isolated stop. Adding an existing stop is a no-op.
func (g *Graph) AddStop(id string) error {
	if id == "" {
		return ErrEmptyStopID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}

	return nil
}

// AddHop stores the hop a—b with weight w in both directions.
// When the hop already exists the smaller of the two weights is kept.
// a == b records a self-loop once.
func (g *Graph) AddHop(a, b string, w float64) error {
	if a == "" || b == "" {
		return ErrEmptyStopID
	}
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %s—%s weight=%g", ErrBadWeight, a, b, w)
	}

	// Both endpoints become known stops even if the hop loses the min-merge.
	_ = g.AddStop(a)
	_ = g.AddStop(b)

	if old, ok := g.adj[a][b]; ok && old <= w {
		return nil
	}
	g.adj[a][b] = w
	g.adj[b][a] = w

	return nil
}

// HasStop reports whether id is a stop of g. Safe on a nil Graph.
func (g *Graph) HasStop(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[id]

	return ok
}

// Weight returns the weight of hop a—b and whether it exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	w, ok := g.adj[a][b]

	return w, ok
}

// Neighbors returns the hops leaving id, sorted by neighbor ID.
// Each returned Hop has From == id.
func (g *Graph) Neighbors(id string) ([]Hop, error) {
	if !g.HasStop(id) {
		return nil, fmt.Errorf("%w: %q", ErrStopNotFound, id)
	}

	row := g.adj[id]
	out := make([]Hop, 0, len(row))
	for to, w := range row {
		out = append(out, Hop{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Stops returns all stop IDs in ascending order.
func (g *Graph) Stops() []string {
	if g == nil {
		return nil
	}
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// StopCount returns the number of stops.
func (g *Graph) StopCount() int {
	if g == nil {
		return 0
	}

	return len(g.adj)
}

// HopCount returns the number of undirected hops (self-loops count once).
func (g *Graph) HopCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for a, row := range g.adj {
		for b := range row {
			if a <= b {
				n++
			}
		}
	}

	return n
}

// Hops returns every undirected hop once, with From <= To, sorted by (From, To).
func (g *Graph) Hops() []Hop {
	if g == nil {
		return nil
	}
	out := make([]Hop, 0, g.HopCount())
	for a, row := range g.adj {
		for b, w := range row {
			if a <= b {
				out = append(out, Hop{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Adjacency returns a deep copy of the stop → (neighbor → weight) mapping.
func (g *Graph) Adjacency() map[string]map[string]float64 {
	if g == nil {
		return map[string]map[string]float64{}
	}
	out := make(map[string]map[string]float64, len(g.adj))
	for a, row := range g.adj {
		cp := make(map[string]float64, len(row))
		for b, w := range row {
			cp[b] = w
		}
		out[a] = cp
	}

	return out
}
