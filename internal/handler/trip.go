package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/repository"
)

// TripHandler exposes operator CRUD over scheduled trips.  All of its
// routes sit behind RequireRole(ADMIN).
type TripHandler struct {
	TripRepo  *repository.TripRepo
	RouteRepo *repository.RouteRepo
}

// NewTripHandler constructs a TripHandler and panics on nil
// dependencies.
func NewTripHandler(tripRepo *repository.TripRepo, routeRepo *repository.RouteRepo) *TripHandler {
	if tripRepo == nil || routeRepo == nil {
		panic("nil repository passed to NewTripHandler")
	}
	return &TripHandler{TripRepo: tripRepo, RouteRepo: routeRepo}
}

// tripRequest is the payload for both trip creation and update.  The
// departure is RFC 3339; it is stored in UTC regardless of the offset
// supplied.
type tripRequest struct {
	RouteName string `json:"bus_route" validate:"required"`
	Driver    string `json:"driver_name" validate:"required"`
	Conductor string `json:"conductor_name" validate:"required"`
	TripDate  string `json:"trip_date" validate:"required"`
}

// parse validates the departure timestamp and checks the referenced
// route against the route store.  Trips on unregistered routes are
// rejected here rather than left dangling.
func (h *TripHandler) parse(c echo.Context, body *tripRequest) (time.Time, bool) {
	departure, err := time.Parse(time.RFC3339, body.TripDate)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid trip_date format, want RFC3339"})
		return time.Time{}, false
	}
	exists, err := h.RouteRepo.Exists(c.Request().Context(), body.RouteName)
	if err != nil {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify route"})
		return time.Time{}, false
	}
	if !exists {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown route: " + body.RouteName})
		return time.Time{}, false
	}
	return departure.UTC(), true
}

// CreateTrip handles POST /v1/trips and returns 201 with the
// generated trip id.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var body tripRequest
	if !bindAndValidate(c, &body) {
		return nil
	}
	departure, ok := h.parse(c, &body)
	if !ok {
		return nil
	}
	tripID, err := h.TripRepo.Create(c.Request().Context(), body.RouteName, body.Driver, body.Conductor, departure)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create trip"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"trip_id": tripID,
		"message": "trip created successfully",
	})
}

// ListTrips handles GET /v1/trips, newest departure first.
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.TripRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load trips"})
	}
	return c.JSON(http.StatusOK, echo.Map{"trips": trips})
}

// GetTrip handles GET /v1/trips/:id.
func (h *TripHandler) GetTrip(c echo.Context) error {
	trip, err := h.TripRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load trip"})
	}
	return c.JSON(http.StatusOK, echo.Map{"trip": trip})
}

// UpdateTrip handles PUT /v1/trips/:id.  It replaces the route, staff
// and departure of an existing trip.  Existing seat bookings keep
// referring to the trip id and are unaffected.
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	var body tripRequest
	if !bindAndValidate(c, &body) {
		return nil
	}
	departure, ok := h.parse(c, &body)
	if !ok {
		return nil
	}
	err := h.TripRepo.Update(c.Request().Context(), c.Param("id"), body.RouteName, body.Driver, body.Conductor, departure)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update trip"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "trip updated successfully"})
}

// DeleteTrip handles DELETE /v1/trips/:id.  Trips holding committed
// bookings cannot be deleted (409); bookings never dangle.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	err := h.TripRepo.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "trip has committed bookings"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete trip"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "trip deleted successfully"})
}
