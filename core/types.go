package core

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyStopID indicates that a stop ID is the empty string.
	ErrEmptyStopID = errors.New("core: stop ID is empty")

	// ErrBadWeight indicates a negative or NaN hop weight.
	ErrBadWeight = errors.New("core: hop weight must be a non-negative number")

	// ErrStopNotFound indicates an operation referenced a non-existent stop.
	ErrStopNotFound = errors.New("core: stop not found")
)

// Hop is one undirected connection between two stops.
// From/To carry no direction; Hops() reports each pair once with From <= To.
type Hop struct {
	From   string
	To     string
	Weight float64
}

// Graph is an undirected, non-negatively weighted stop network.
// The zero value is not usable; call NewGraph.
type Graph struct {
	// adj[a][b] is the weight of hop a—b; adj[b][a] always holds the same value.
	adj map[string]map[string]float64
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]float64)}
}
