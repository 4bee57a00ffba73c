package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/queue"
	"github.com/iliyamo/bus-ticket-reservation/internal/repository"
)

// BookingHandler exposes seat booking and the committed seat map.  It
// verifies trip validity against the trip registry before handing the
// batch to the booking engine.
type BookingHandler struct {
	TripRepo    *repository.TripRepo
	BookingRepo *repository.BookingRepo
	Publisher   *queue.Publisher // may be nil; events are best-effort
}

// NewBookingHandler constructs a BookingHandler.  The publisher is
// optional; the repositories are not.
func NewBookingHandler(tripRepo *repository.TripRepo, bookingRepo *repository.BookingRepo, pub *queue.Publisher) *BookingHandler {
	if tripRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{TripRepo: tripRepo, BookingRepo: bookingRepo, Publisher: pub}
}

// bookSeatsRequest is the payload for POST /v1/bookings.  Seat ids
// must be distinct: a duplicate in one request is malformed input, not
// something to silently deduplicate.  PaymentInfo is an opaque payload
// forwarded by the client; this service never inspects it.
type bookSeatsRequest struct {
	TripID      string          `json:"trip_id" validate:"required"`
	SeatIDs     []string        `json:"seat_ids" validate:"required,min=1,unique,dive,required,max=16"`
	PaymentInfo json.RawMessage `json:"payment_info" validate:"required"`
}

// BookSeats handles POST /v1/bookings.  The batch is all-or-nothing:
// either every requested seat is committed for the caller or none is,
// and a conflict with an existing or concurrent booking returns 409
// with nothing persisted.  On success the booking ids come back in
// seat order and a booking.created event is published best-effort.
func (h *BookingHandler) BookSeats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body bookSeatsRequest
	if !bindAndValidate(c, &body) {
		return nil
	}

	ctx := c.Request().Context()
	trip, err := h.TripRepo.GetByID(ctx, body.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load trip"})
	}

	bookingIDs, err := h.BookingRepo.BookSeats(ctx, trip.ID, userID, body.SeatIDs)
	if err != nil {
		if errors.Is(err, repository.ErrSeatsAlreadyBooked) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "one or more seats are already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to book seats"})
	}

	if h.Publisher != nil {
		// Failures are logged by the publisher; the booking stands.
		_ = h.Publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingIDs: bookingIDs,
			TripID:     trip.ID,
			RouteName:  trip.RouteName,
			UserID:     userID,
			SeatIDs:    body.SeatIDs,
			Departure:  trip.Departure.UTC().Format(time.RFC3339),
			BookedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_ids":    bookingIDs,
		"payment_status": "success",
		"message":        "seats booked successfully",
	})
}

// GetBookedSeats handles GET /v1/trips/:id/seats.  It returns the
// committed seat tokens for the trip; the seat-map view uses it to
// disable taken seats.  The read is straight from the primary, so it
// reflects every committed booking at call time.
func (h *BookingHandler) GetBookedSeats(c echo.Context) error {
	ctx := c.Request().Context()
	tripID := c.Param("id")
	if _, err := h.TripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load trip"})
	}
	seats, err := h.BookingRepo.BookedSeats(ctx, tripID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booked seats"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seat_ids": seats})
}
