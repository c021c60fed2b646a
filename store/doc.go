// Package store loads routes from a MySQL database.
//
// Expected schema:
//
//	CREATE TABLE routes (
//	    route_id    VARCHAR(64) PRIMARY KEY,
//	    origin      VARCHAR(128) NOT NULL,
//	    destination VARCHAR(128) NOT NULL,
//	    distance_km DOUBLE NULL
//	);
//	CREATE TABLE route_stops (
//	    route_id VARCHAR(64) NOT NULL,
//	    seq      INT NOT NULL,
//	    stop_id  VARCHAR(128) NOT NULL,
//	    PRIMARY KEY (route_id, seq)
//	);
//
// route_stops holds only the intermediate stops; a NULL distance_km falls
// back to the builder default.
package store
