// Package dijkstra is the shortest-path engine of stoproute: Dijkstra's
// algorithm over a core.Graph of stops with non-negative hop weights.
//
// Overview:
//
//   - SingleSource labels every stop with its minimum distance from a source
//     and records one predecessor per reached stop.
//   - ShortestPath runs SingleSource once and rebuilds the start→end stop
//     sequence from the predecessor map.
//   - Reconstruct is exported for callers that keep the label set around
//     and want several paths from the same source.
//
// The frontier is a container/heap min-heap with "lazy decrease-key": an
// improved label pushes a new entry and the outdated one is discarded when
// popped, because its distance is larger than the finalized label.
//
// No-path signal:
//
//   - Unknown source: all labels +Inf, all predecessors "".
//   - ShortestPath to an unreachable or unknown stop: (math.Inf(1), nil).
//
// Neither case is an error; the caller decides how to present it.
//
// Options:
//
//   - WithMaxDistance(d): stops farther than d stay unreached (default +Inf).
//
// Determinism: neighbors are expanded in stop-ID order and heap ties break
// on stop ID, so equal-cost alternatives always resolve the same way.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Thread safety: SingleSource only reads g. Concurrent queries on a graph
// that is no longer being built are safe.
package dijkstra
