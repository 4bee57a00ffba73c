package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingRepo is the seat booking engine.  It enforces the global
// uniqueness of (trip_id, seat_id) with all-or-nothing semantics.
//
// The authoritative guard is the unique index on seat_bookings
// (trip_id, seat_id): two concurrent transactions can both observe the
// seats as free, but only one insert can commit; the loser's
// duplicate-key error is translated to ErrSeatsAlreadyBooked and its
// entire batch is rolled back.  The SELECT that precedes the insert is
// a fast path producing a friendly conflict without burning an insert
// attempt — it is not the safety mechanism.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookSeats atomically books the given seats on a trip for a user.
// Either every seat is committed or none is.  Booking ids are v4
// UUIDs returned in the same order as seatIDs.  Input validation
// (non-empty, distinct, well-formed tokens) happens at the handler
// boundary; trip existence is checked by the caller against the trip
// registry.
func (r *BookingRepo) BookSeats(ctx context.Context, tripID, userID string, seatIDs []string) ([]string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Fast path: report a conflict before attempting the insert.
	placeholders := make([]string, len(seatIDs))
	args := make([]interface{}, 0, len(seatIDs)+1)
	args = append(args, tripID)
	for i, sid := range seatIDs {
		placeholders[i] = "?"
		args = append(args, sid)
	}
	checkQ := `SELECT seat_id FROM seat_bookings WHERE trip_id = ? AND seat_id IN (` +
		strings.Join(placeholders, ",") + `)`
	rows, err := tx.QueryContext(ctx, checkQ, args...)
	if err != nil {
		return nil, err
	}
	taken := false
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return nil, err
		}
		taken = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSeatsAlreadyBooked
	}

	now := time.Now().UTC()
	bookingIDs := make([]string, 0, len(seatIDs))
	insertQ := `INSERT INTO seat_bookings (booking_id, trip_id, user_id, seat_id, created_at) VALUES `
	insArgs := make([]interface{}, 0, len(seatIDs)*5)
	for i, sid := range seatIDs {
		if i > 0 {
			insertQ += ","
		}
		insertQ += "(?, ?, ?, ?, ?)"
		bid := uuid.NewString()
		bookingIDs = append(bookingIDs, bid)
		insArgs = append(insArgs, bid, tripID, userID, sid, now)
	}
	if _, err := tx.ExecContext(ctx, insertQ, insArgs...); err != nil {
		// A concurrent booking won the race between our check and the
		// insert; the unique index rejects the batch as a whole.
		if isDuplicateEntry(err) {
			return nil, ErrSeatsAlreadyBooked
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return bookingIDs, nil
}

// BookedSeats returns the seat tokens committed for a trip, ordered
// for deterministic output.  It reflects all committed bookings at
// call time; the seat-map view uses it to disable taken seats.
func (r *BookingRepo) BookedSeats(ctx context.Context, tripID string) ([]string, error) {
	const q = `SELECT seat_id FROM seat_bookings WHERE trip_id = ? ORDER BY seat_id`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]string, 0)
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return nil, err
		}
		seats = append(seats, sid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seats, nil
}
