// Package bfs walks a core.Graph breadth-first, ignoring hop weights.
//
// It answers connectivity questions about a stop network: which stops are
// reachable from a given stop, and how the network splits into connected
// components. The stoproute CLI uses it to explain "no path" outcomes and
// to log the shape of a freshly built network.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stoproute/core"
)

// queueItem pairs a stop ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Reach runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartStopNotFound, ErrOptionViolation, or the
// wrapped error of an OnVisit hook.
func Reach(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStop(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartStopNotFound, start)
	}

	n := g.StopCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		// item.id was enqueued from the graph, so Neighbors cannot fail.
		hops, _ := w.graph.Neighbors(item.id)
		for _, h := range hops {
			if !w.visited[h.To] {
				w.enqueue(h.To, next, item.id)
			}
		}
	}

	return nil
}

// Components partitions the stops of g into connected components.
// Each component is sorted, and components are ordered by their first stop.
// A nil graph has no components.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	seen := make(map[string]bool, g.StopCount())
	var out [][]string
	// Stops() is sorted, so each component is discovered from its smallest ID.
	for _, s := range g.Stops() {
		if seen[s] {
			continue
		}
		res, _ := Reach(g, s)
		comp := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			comp = append(comp, id)
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}
