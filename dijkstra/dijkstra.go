package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/stoproute/core"
)

// SingleSource computes shortest distances from source to every stop of g.
//
// Returns:
//
//   - dist: stop → minimum distance from source; +Inf when unreachable.
//   - prev: stop → predecessor on one shortest path; "" for the source and
//     for unreachable stops.
//
// Both maps hold an entry for every stop of g. An unknown source (or a nil
// graph) is not an error: every label stays +Inf and every predecessor "".
//
// Non-negative weights are a precondition; core.Graph guarantees them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func SingleSource(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	stops := g.Stops()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(stops)),
		prev:    make(map[string]string, len(stops)),
		pq:      make(nodePQ, 0, len(stops)),
	}
	r.init(stops)

	if !g.HasStop(source) {
		return r.dist, r.prev
	}

	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	r.process()

	return r.dist, r.prev
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	pq      nodePQ
}

// init sets dist[v] = +Inf and prev[v] = "" for every stop.
func (r *runner) init(stops []string) {
	inf := math.Inf(1)
	for _, v := range stops {
		r.dist[v] = inf
		r.prev[v] = ""
	}
	heap.Init(&r.pq)
}

// process pops the closest frontier entry until the frontier is empty.
// Entries whose distance exceeds the current label are stale and skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		r.relax(item.id, item.dist)
	}
}

// relax improves the labels of u's neighbors through u.
// Only strictly shorter distances are recorded.
func (r *runner) relax(u string, du float64) {
	// u came off the frontier, so it is a known stop.
	hops, _ := r.g.Neighbors(u)
	for _, h := range hops {
		nd := du + h.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if nd >= r.dist[h.To] {
			continue
		}
		r.dist[h.To] = nd
		r.prev[h.To] = u
		heap.Push(&r.pq, &nodeItem{id: h.To, dist: nd})
	}
}

// nodeItem is a frontier entry: a stop and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for determinism.
// Improved labels push a fresh item; outdated ones are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
