package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/repository"
)

// RouteHandler exposes route creation and browsing.  Creation is an
// operator action gated by RequireRole(ADMIN) in the router; browsing
// is public.
type RouteHandler struct {
	RouteRepo *repository.RouteRepo
}

// NewRouteHandler constructs a RouteHandler and panics on a nil
// dependency.
func NewRouteHandler(routeRepo *repository.RouteRepo) *RouteHandler {
	if routeRepo == nil {
		panic("nil repository passed to NewRouteHandler")
	}
	return &RouteHandler{RouteRepo: routeRepo}
}

// createRouteRequest is the payload for POST /v1/routes.  A route
// needs at least two stops (origin and terminus) and a town may not
// appear twice in one route.
type createRouteRequest struct {
	RouteName string   `json:"route_name" validate:"required"`
	Stops     []string `json:"stops" validate:"required,min=2,unique,dive,required"`
}

// CreateRoute handles POST /v1/routes.  The route and its full stop
// sequence are persisted in one transaction; a half-written route is
// never observable.  Returns 201 with the new route id, or 409 when
// the name is already registered.
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var body createRouteRequest
	if !bindAndValidate(c, &body) {
		return nil
	}
	routeID, err := h.RouteRepo.Create(c.Request().Context(), body.RouteName, body.Stops)
	if err != nil {
		if errors.Is(err, repository.ErrRouteExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "route already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create route"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"route_id": routeID,
		"message":  "route added successfully",
	})
}

// ListRoutes handles GET /v1/routes.  It returns every registered
// route with its ordered stops.
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	routes, err := h.RouteRepo.ListWithStops(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load routes"})
	}
	return c.JSON(http.StatusOK, echo.Map{"routes": routes})
}

// GetRouteStops handles GET /v1/routes/:routeName/stops and returns
// the ordered towns of one route, or 404 when the route is unknown.
func (h *RouteHandler) GetRouteStops(c echo.Context) error {
	routeName := c.Param("routeName")
	stops, err := h.RouteRepo.Stops(c.Request().Context(), routeName)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load stops"})
	}
	return c.JSON(http.StatusOK, echo.Map{"stops": stops})
}
