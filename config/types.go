package config

import "time"

// Route source kinds.
const (
	SourceFile   = "file"
	SourceGTFSRT = "gtfsrt"
	SourceMySQL  = "mysql"
)

// Defaults applied by Load.
const (
	DefaultSource           = SourceFile
	DefaultRoutesPath       = "routes.json"
	DefaultDistanceKM       = 1.0
	DefaultGTFSRTTimeoutMS  = 10000
	DefaultConfigFileName   = "config.yml"
	alternateConfigFileName = "config.yaml"
)

// RoutesConfig describes a route dataset file.
type RoutesConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml"`
}

// GTFSRTConfig describes a GTFS-Realtime TripUpdates source.
type GTFSRTConfig struct {
	TripUpdatesURL string   `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	TimeoutMS      int      `yaml:"timeoutMS" validate:"gte=0"`
	RouteKM        *float64 `yaml:"routeKM" validate:"omitempty,gte=0"`
}

// Timeout returns TimeoutMS as a duration.
func (g GTFSRTConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutMS) * time.Millisecond
}

// MySQLConfig describes a MySQL route store.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// BuilderConfig tunes graph construction.
type BuilderConfig struct {
	DefaultDistanceKM *float64 `yaml:"defaultDistanceKM" validate:"omitempty,gte=0"`
	QuietSkips        bool     `yaml:"quietSkips"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Source  string        `yaml:"source" validate:"omitempty,oneof=file gtfsrt mysql"`
	Routes  RoutesConfig  `yaml:"routes"`
	GTFSRT  GTFSRTConfig  `yaml:"gtfsrt"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Builder BuilderConfig `yaml:"builder"`
}
