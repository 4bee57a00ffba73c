package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/repository"
	"github.com/iliyamo/bus-ticket-reservation/internal/resolver"
)

// SearchHandler composes route resolution with the date-bounded trip
// lookup: "find trips between A and B on date D".
type SearchHandler struct {
	Resolver *resolver.Resolver
	TripRepo *repository.TripRepo
}

// NewSearchHandler constructs a SearchHandler and panics on nil
// dependencies.
func NewSearchHandler(res *resolver.Resolver, tripRepo *repository.TripRepo) *SearchHandler {
	if res == nil || tripRepo == nil {
		panic("nil dependency passed to NewSearchHandler")
	}
	return &SearchHandler{Resolver: res, TripRepo: tripRepo}
}

// searchTripsRequest is the payload for POST /v1/trips/search.  Date
// is a UTC calendar day in "2006-01-02" form.
type searchTripsRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Date  string `json:"date" validate:"required"`
}

// SearchTrips handles POST /v1/trips/search.  It resolves a route
// between the two towns (either direction), then lists the trips on
// that route departing within the requested UTC day.  The trip lookup
// always uses the canonical stored route name; a reverse match only
// affects the displayed route name and stop order.
func (h *SearchHandler) SearchTrips(c echo.Context) error {
	var body searchTripsRequest
	if !bindAndValidate(c, &body) {
		return nil
	}
	from, to, err := repository.DayWindow(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, want YYYY-MM-DD"})
	}

	match, err := h.Resolver.Resolve(c.Request().Context(), body.Start, body.End)
	if err != nil {
		if errors.Is(err, resolver.ErrNoRouteFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no direct route found between these towns"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve route"})
	}

	trips, err := h.TripRepo.FindByRouteOnDate(c.Request().Context(), match.Canonical, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load trips"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"route":          match.Route,
		"stops":          match.Stops,
		"numberOfStops":  match.NumberOfStops,
		"availableTrips": trips,
	})
}
