package route

import (
	"context"
	"errors"
)

// Sentinel errors returned by dataset loaders.
var (
	// ErrUnknownFormat indicates a dataset format that is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("route: unknown dataset format")

	// ErrInvalidRoute indicates a dataset that decoded but failed validation,
	// or could not be decoded at all.
	ErrInvalidRoute = errors.New("route: invalid route dataset")
)

// Default values applied to routes with absent optional fields.
const (
	DefaultDistanceKM = 1.0 // total distance of a route without distance_km

	// fallbackHopWeight is the per-hop weight of a chain with no hops.
	fallbackHopWeight = 1.0
)

// Route is one entry of a route dataset.
//
// DistanceKM is a pointer so that "absent" and "zero" stay distinguishable:
// a nil DistanceKM resolves to Defaults.DistanceKM.
type Route struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Origin      string   `json:"origin" yaml:"origin"`
	Stops       []string `json:"stops,omitempty" yaml:"stops,omitempty"`
	Destination string   `json:"destination" yaml:"destination"`
	DistanceKM  *float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty" validate:"omitempty,gte=0"`
}

// Dataset is the top-level document of a route file.
type Dataset struct {
	Routes []Route `json:"routes" yaml:"routes" validate:"dive"`
}

// Defaults groups the values used for optional route fields.
type Defaults struct {
	DistanceKM float64
}

// DefaultValues returns Defaults{DistanceKM: 1.0}.
func DefaultValues() Defaults {
	return Defaults{DistanceKM: DefaultDistanceKM}
}

// Source yields the routes of one dataset. Implementations live in this
// package (Static, File) and in the feed and store packages.
type Source interface {
	Routes(ctx context.Context) ([]Route, error)
}

// KM returns a pointer to v, for filling Route.DistanceKM in literals.
func KM(v float64) *float64 {
	return &v
}
