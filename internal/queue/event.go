// Package queue defines message payloads exchanged over the message
// broker, the publisher that emits them and the background consumer
// that records them.
package queue

// bookingQueueName is the durable queue carrying booking events.
const bookingQueueName = "booking.created"

// BookingCreatedEvent is published after a seat booking commits.  It
// carries enough for downstream consumers to log, notify or feed
// analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingIDs []string `json:"booking_ids"`
	TripID     string   `json:"trip_id"`
	RouteName  string   `json:"bus_route"`
	UserID     string   `json:"user_id"`
	SeatIDs    []string `json:"seat_ids"`
	Departure  string   `json:"trip_date"`
	BookedAt   string   `json:"booked_at"`
}
