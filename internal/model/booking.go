package model

import "time"

// SeatBooking commits one seat token on one trip to one user.  The
// pair (TripID, SeatID) is unique across all bookings; the database
// enforces this with a unique index, which is the authoritative guard
// against double booking.  Bookings are never updated or deleted.
//
// Fields:
//  ID        – generated UUID, the public booking identifier.
//  TripID    – trip the seat is booked on.
//  UserID    – user the seat is committed to (external identity).
//  SeatID    – small seat token such as "seat-7".
//  CreatedAt – creation timestamp in UTC.
type SeatBooking struct {
	ID        string    `json:"booking_id"` // seat_bookings.booking_id
	TripID    string    `json:"trip_id"`    // seat_bookings.trip_id
	UserID    string    `json:"user_id"`    // seat_bookings.user_id
	SeatID    string    `json:"seat_id"`    // seat_bookings.seat_id
	CreatedAt time.Time `json:"created_at"` // seat_bookings.created_at
}
