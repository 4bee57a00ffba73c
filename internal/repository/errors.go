// Package repository implements data access for routes, trips and seat
// bookings over database/sql.  This file defines the sentinel errors
// shared by the repositories.  Handlers match on these with errors.Is
// to pick response codes; raw driver errors never cross the repository
// boundary for conditions the API has a name for.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrRouteExists is returned when creating a route whose name is
// already taken.  Handlers translate this into HTTP 409.
var ErrRouteExists = errors.New("route already exists")

// ErrRouteNotFound is returned when a route name resolves to nothing.
var ErrRouteNotFound = errors.New("route not found")

// ErrTripNotFound is returned when a trip id resolves to nothing.
var ErrTripNotFound = errors.New("trip not found")

// ErrSeatsAlreadyBooked is returned when at least one requested seat
// is already committed for the trip.  The whole batch is rolled back
// before this is returned; no partial booking survives.
var ErrSeatsAlreadyBooked = errors.New("one or more seats are already booked")

// ErrConflict is returned when an operation cannot proceed because of
// dependent state, such as deleting a trip that still has committed
// bookings.  Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// mysqlDuplicateEntry is the server error number MySQL reports when an
// insert violates a unique index.
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL duplicate-key
// violation.  The unique indexes on busroutes.route_name and
// seat_bookings (trip_id, seat_id) surface through here.
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
