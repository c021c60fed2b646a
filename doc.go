// Package stoproute finds shortest paths across a network of transit stops.
//
// Routes (an origin, ordered intermediate stops and a destination with an
// optional total distance) are turned into an undirected weighted graph:
// each route's distance is split evenly over its hops and overlapping hops
// keep their cheapest weight. Dijkstra's algorithm then answers
// single-source and point-to-point queries.
//
// Layout:
//
//	route/     — route model, JSON/YAML dataset loading and validation
//	core/      — the stop graph (map-of-maps, symmetric, min-merged hops)
//	builder/   — routes → graph, with defaults and skip reporting
//	dijkstra/  — single-source distances, predecessors, ShortestPath
//	bfs/       — reachability and connected components
//	feed/      — routes derived from GTFS-Realtime TripUpdates
//	store/     — routes read from MySQL
//	config/    — YAML configuration
//	cmd/stoproute — the interactive command
//
// Quick example:
//
//	g := builder.BuildGraph([]route.Route{
//		{Origin: "Central", Destination: "Parque", DistanceKM: route.KM(2.8)},
//	})
//	dist, path := dijkstra.ShortestPath(g, "Central", "Parque")
//	// 2.8 [Central Parque]
package stoproute
