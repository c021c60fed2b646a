// Package route defines the transit route data model consumed by the graph
// builder, together with the dataset loaders that produce it.
//
// A Route is an ordered chain of stop identifiers (origin, zero or more
// intermediate stops, destination) plus an optional total distance in
// kilometres. Routes are read-only source data: the builder never mutates them.
//
// Defaults:
//
//   - DistanceKM: 1.0 when a route carries no distance_km. It lives in an
//     explicit Defaults value; see builder.WithDefaultDistance.
//   - HopWeight of a chain with no hops is a fixed 1.0.
//
// Sources:
//
//   - Static: an in-memory slice of routes.
//   - File:   a JSON or YAML dataset on disk, shaped as
//
//     {"routes": [{"origin": "Central", "stops": ["Norte"], "destination": "Parque", "distance_km": 2.8}]}
//
// Every dataset is validated after decoding (distance_km must be ≥ 0 when
// present). Decode and validation failures are returned as errors wrapping
// ErrInvalidRoute or ErrUnknownFormat.
package route
