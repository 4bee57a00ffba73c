package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent DDL for all aggregates.  The unique key
// on seat_bookings (trip_id, seat_id) is the authoritative guard for
// the booking invariant: concurrent inserts for the same seat on the
// same trip cannot both commit.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS towns (
	    town_id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	    town_name VARCHAR(255) NOT NULL,
	    UNIQUE KEY uniq_town_name (town_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS busroutes (
	    id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	    route_name VARCHAR(255) NOT NULL,
	    UNIQUE KEY uniq_route_name (route_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS route_stops (
	    id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	    route_id   BIGINT UNSIGNED NOT NULL,
	    town_id    BIGINT UNSIGNED NOT NULL,
	    stop_order INT NOT NULL,
	    UNIQUE KEY uniq_route_town (route_id, town_id),
	    UNIQUE KEY uniq_route_order (route_id, stop_order),
	    CONSTRAINT fk_route_stops_route FOREIGN KEY (route_id) REFERENCES busroutes (id),
	    CONSTRAINT fk_route_stops_town  FOREIGN KEY (town_id)  REFERENCES towns (town_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS trips (
	    id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	    trip_id        CHAR(36) NOT NULL,
	    bus_route      VARCHAR(255) NOT NULL,
	    driver_name    VARCHAR(255) NOT NULL,
	    conductor_name VARCHAR(255) NOT NULL,
	    trip_date      DATETIME(3) NOT NULL,
	    created_at     DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	    UNIQUE KEY uniq_trip_id (trip_id),
	    KEY idx_trips_route_date (bus_route, trip_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seat_bookings (
	    id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	    booking_id CHAR(36) NOT NULL,
	    trip_id    CHAR(36) NOT NULL,
	    user_id    VARCHAR(64) NOT NULL,
	    seat_id    VARCHAR(16) NOT NULL,
	    created_at DATETIME(3) NOT NULL,
	    UNIQUE KEY uniq_booking_id (booking_id),
	    UNIQUE KEY uniq_trip_seat (trip_id, seat_id),
	    KEY idx_bookings_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements in order.  All statements are
// idempotent, so calling this on every startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
