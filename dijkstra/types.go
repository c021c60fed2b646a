// Package dijkstra defines configuration options for the shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN
// value, which is not meaningful for a distance cap.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Options configures the behavior of SingleSource and ShortestPath.
//
// MaxDistance – cap on labels; stops farther than this stay unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Stops whose shortest distance would exceed max keep an infinite label.
// Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options{MaxDistance: +Inf}.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
