// Package bfs provides tunable options and error definitions
// for breadth-first reachability over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStopNotFound is returned when the start ID is absent.
	ErrStartStopNotFound = errors.New("bfs: start stop not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when Reach is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// OnVisit is called when visiting a stop with its hop depth from the
	// start. Returning an error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run on every visited stop.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk:
//   - Order:  stops in visit sequence.
//   - Depth:  stop → hop count from the start.
//   - Parent: stop → predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-hops stop sequence from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
