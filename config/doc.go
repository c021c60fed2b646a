// Package config loads the stoproute YAML configuration.
//
// A minimal config.yml:
//
//	source: file
//	routes:
//	  path: data/routes.json
//	builder:
//	  defaultDistanceKM: 1.0
//
// Load validates the document with struct tags, checks that the selected
// source is fully described and fills defaults for everything left out.
package config
