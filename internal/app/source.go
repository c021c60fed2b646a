package app

import (
	"fmt"

	"github.com/katalvlaran/stoproute/config"
	"github.com/katalvlaran/stoproute/feed"
	"github.com/katalvlaran/stoproute/route"
	"github.com/katalvlaran/stoproute/store"
)

// openSource selects the route source named by cfg.Source. The returned
// close function is never nil.
func openSource(cfg config.AppConfig) (route.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceFile:
		return route.File{Path: cfg.Routes.Path, Format: route.Format(cfg.Routes.Format)}, noop, nil

	case config.SourceGTFSRT:
		return feed.TripUpdates{
			URL:    cfg.GTFSRT.TripUpdatesURL,
			Client: feed.NewClient(cfg.GTFSRT.Timeout()),
			KM:     cfg.GTFSRT.RouteKM,
		}, noop, nil

	case config.SourceMySQL:
		s, err := store.Open(cfg.MySQL.DSN)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown source %q", config.ErrInvalidConfig, cfg.Source)
	}
}
