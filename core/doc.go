// Package core defines the stop network Graph: a symmetric mapping from stop
// ID to (neighbor ID → hop weight).
//
// The Graph is the hand-off point between the builder and the shortest-path
// engine. It is populated once through AddStop/AddHop and then treated as
// read-only; all query methods return copies or freshly sorted slices, so a
// built Graph can be shared between goroutines without locking as long as no
// one keeps calling AddHop.
//
// Invariants:
//
//   - Symmetry: Weight(a, b) == Weight(b, a) for every stored hop.
//   - Minimality: adding a hop that already exists keeps the smaller weight.
//   - Non-negativity: AddHop rejects negative and NaN weights (ErrBadWeight).
//   - Stop IDs are non-empty (ErrEmptyStopID).
//
// Determinism:
//
//   - Stops() and Hops() are sorted lexicographically.
//   - Neighbors(id) is sorted by neighbor ID.
//
// Complexity:
//
//   - AddHop, HasStop, Weight: O(1) average.
//   - Neighbors(id):           O(d log d), d = degree of id.
//   - Stops():                 O(V log V).
//   - Hops():                  O(E log E).
//
// Errors:
//
//	ErrEmptyStopID  - stop ID is the empty string.
//	ErrBadWeight    - hop weight is negative or NaN.
//	ErrStopNotFound - requested stop does not exist.
package core
