// Package bfs provides breadth-first reachability over a stop network.
//
// What
//
//   - Reach explores stops in non-decreasing hop count from a start stop and
//     returns a Result with:
//   - Order:  visit sequence
//   - Depth:  stop → hops from start
//   - Parent: stop → predecessor in the BFS tree
//   - Components splits the network into connected components.
//   - Hooks: OnVisit (may abort with an error). Depth limit: WithMaxDepth.
//
// Why
//
//	Weighted shortest paths live in package dijkstra. This package answers
//	the structural question behind a "no path" result: are the two stops in
//	different components, or is one of them not in the network at all?
//
// Determinism
//
//	core.Graph.Neighbors is sorted by stop ID, so visit order is reproducible.
//
// Complexity
//
//   - Reach:      O(V + E log d) time, O(V) space.
//   - Components: O(V log V + E log d) time, O(V) space.
package bfs
