// Package feed derives routes from GTFS-Realtime TripUpdates feeds.
//
// Every TripUpdate entity lists the stops a trip will serve, in order, as
// stop_time_update entries. Read as a chain, that is exactly a route:
// the first stop is the origin, the last is the destination and the rest are
// intermediate stops. GTFS-RT carries no distances, so each route gets the
// distance configured on the source (or the builder default when unset).
//
// Stop time updates marked SKIPPED, or carrying no stop_id, are dropped from
// the chain. When every update has a stop_sequence the chain follows it;
// otherwise feed order is kept.
//
// The package accepts raw protobuf bytes or fetches them over HTTP with
// Client; it never caches feeds.
package feed
