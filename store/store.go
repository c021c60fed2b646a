package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/katalvlaran/stoproute/route"
)

var (
	// ErrNilDB is returned when a Store has no database handle.
	ErrNilDB = errors.New("store: nil database")

	// ErrDSN wraps DSN parse failures from Open.
	ErrDSN = errors.New("store: invalid MySQL DSN")
)

const routesQuery = `
	SELECT r.route_id, r.origin, r.destination, r.distance_km, s.stop_id
	FROM routes r
	LEFT JOIN route_stops s ON s.route_id = r.route_id
	ORDER BY r.route_id, s.seq`

// Store is a route.Source over a database/sql handle.
type Store struct {
	DB *sql.DB
}

// New wraps an existing handle.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Open parses a go-sql-driver DSN and returns a Store over a lazily
// connected pool. No connection is made until the first query.
func Open(dsn string) (*Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDSN, err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("store: connector: %w", err)
	}

	return New(sql.OpenDB(connector)), nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}

// Routes reads every route with its intermediate stops in sequence order.
// Routes are returned ordered by route_id.
func (s *Store) Routes(ctx context.Context) ([]route.Route, error) {
	if s == nil || s.DB == nil {
		return nil, ErrNilDB
	}

	rows, err := s.DB.QueryContext(ctx, routesQuery)
	if err != nil {
		return nil, fmt.Errorf("store: query routes: %w", err)
	}
	defer rows.Close()

	var (
		routes []route.Route
		cur    *route.Route
	)
	for rows.Next() {
		var (
			id, origin, dest string
			km               sql.NullFloat64
			stop             sql.NullString
		)
		if err := rows.Scan(&id, &origin, &dest, &km, &stop); err != nil {
			return nil, fmt.Errorf("store: scan route: %w", err)
		}

		if cur == nil || cur.ID != id {
			r := route.Route{ID: id, Origin: origin, Destination: dest}
			if km.Valid {
				r.DistanceKM = route.KM(km.Float64)
			}
			routes = append(routes, r)
			cur = &routes[len(routes)-1]
		}
		if stop.Valid {
			cur.Stops = append(cur.Stops, stop.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read routes: %w", err)
	}

	return routes, nil
}
