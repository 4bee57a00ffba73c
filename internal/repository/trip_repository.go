package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/bus-ticket-reservation/internal/model"
)

// TripRepo provides CRUD over scheduled trips and the date-bounded
// route lookup used by search.  Trip ids are v4 UUIDs generated here.
// All timestamps are stored and compared in UTC; the connection DSN
// pins the session to UTC so DATETIME columns round-trip cleanly.
type TripRepo struct {
	db *sql.DB
}

// NewTripRepo returns a new TripRepo bound to the given database.
func NewTripRepo(db *sql.DB) *TripRepo { return &TripRepo{db: db} }

// Create schedules a trip on the named route and returns the
// generated trip id.  Route existence is the caller's concern; the
// handler checks it against the route store before calling here.
func (r *TripRepo) Create(ctx context.Context, routeName, driver, conductor string, departure time.Time) (string, error) {
	tripID := uuid.NewString()
	const q = `INSERT INTO trips (trip_id, bus_route, driver_name, conductor_name, trip_date)
	           VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, tripID, routeName, driver, conductor, departure.UTC()); err != nil {
		return "", err
	}
	return tripID, nil
}

// DayWindow computes the inclusive UTC window [00:00:00.000,
// 23:59:59.999] for a calendar date given as "2006-01-02".  The
// service's date convention is UTC end to end; there is no local-time
// interpretation of search dates.
func DayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := day
	to := day.Add(24*time.Hour - time.Millisecond)
	return from, to, nil
}

// FindByRouteOnDate returns the trips running on the named route whose
// departure falls within [from, to].  The route name must be the
// canonical stored name: callers resolving a reverse-direction match
// strip the direction suffix first.  Results are ordered by departure.
func (r *TripRepo) FindByRouteOnDate(ctx context.Context, routeName string, from, to time.Time) ([]model.TripSummary, error) {
	const q = `SELECT trip_id, trip_date FROM trips
	           WHERE bus_route = ? AND trip_date BETWEEN ? AND ?
	           ORDER BY trip_date`
	rows, err := r.db.QueryContext(ctx, q, routeName, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TripSummary, 0)
	for rows.Next() {
		var t model.TripSummary
		if err := rows.Scan(&t.ID, &t.Departure); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single trip or ErrTripNotFound.
func (r *TripRepo) GetByID(ctx context.Context, tripID string) (*model.Trip, error) {
	const q = `SELECT trip_id, bus_route, driver_name, conductor_name, trip_date, created_at
	           FROM trips WHERE trip_id = ?`
	var t model.Trip
	err := r.db.QueryRowContext(ctx, q, tripID).Scan(
		&t.ID, &t.RouteName, &t.Driver, &t.Conductor, &t.Departure, &t.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all trips ordered by departure descending.  This is
// the operator's overview; commuters reach trips through search.
func (r *TripRepo) List(ctx context.Context) ([]model.Trip, error) {
	const q = `SELECT trip_id, bus_route, driver_name, conductor_name, trip_date, created_at
	           FROM trips ORDER BY trip_date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Trip, 0)
	for rows.Next() {
		var t model.Trip
		if err := rows.Scan(&t.ID, &t.RouteName, &t.Driver, &t.Conductor, &t.Departure, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable trip fields (route, staff, departure).
// Existence is checked first so that an update carrying the current
// values still succeeds instead of reporting a missing trip.  Returns
// ErrTripNotFound when the trip does not exist.
func (r *TripRepo) Update(ctx context.Context, tripID, routeName, driver, conductor string, departure time.Time) error {
	if _, err := r.GetByID(ctx, tripID); err != nil {
		return err
	}
	const q = `UPDATE trips SET bus_route = ?, driver_name = ?, conductor_name = ?, trip_date = ?
	           WHERE trip_id = ?`
	_, err := r.db.ExecContext(ctx, q, routeName, driver, conductor, departure.UTC(), tripID)
	return err
}

// Delete removes a trip.  Deletion is restricted: a trip with
// committed seat bookings cannot be deleted and yields ErrConflict,
// so bookings are never orphaned.  Returns ErrTripNotFound when the
// trip does not exist.  The existence check, booking count and delete
// run in one transaction so a concurrent booking cannot slip in
// between the count and the delete.
func (r *TripRepo) Delete(ctx context.Context, tripID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM trips WHERE trip_id = ? FOR UPDATE`, tripID).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrTripNotFound
	}
	if err != nil {
		return err
	}

	var bookings int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM seat_bookings WHERE trip_id = ?`, tripID).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = ?`, tripID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
