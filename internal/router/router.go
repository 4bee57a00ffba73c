// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/auth"
	"github.com/iliyamo/bus-ticket-reservation/internal/handler"
	"github.com/iliyamo/bus-ticket-reservation/internal/middleware"
)

// Handlers bundles everything the router registers.
type Handlers struct {
	Route   *handler.RouteHandler
	Trip    *handler.TripHandler
	Search  *handler.SearchHandler
	Booking *handler.BookingHandler
}

// Register mounts all routes on the Echo instance.  Three tiers:
// public browsing, authenticated commuter operations, and admin-only
// operator actions.  The verifier decides how tokens are checked
// (remote auth service or shared secret).
func Register(e *echo.Echo, h Handlers, verifier auth.Verifier) {
	// Health check for load balancers; no auth, no rate key.
	e.GET("/healthz", handler.Health)

	// Public browse endpoints: anyone can inspect the route network.
	e.GET("/v1/routes", h.Route.ListRoutes)
	e.GET("/v1/routes/:routeName/stops", h.Route.GetRouteStops)

	// Authenticated endpoints: any verified user (commuter or admin).
	authed := e.Group("/v1")
	authed.Use(middleware.Authenticate(verifier))
	authed.Use(middleware.RequireRole(auth.RoleCommuter, auth.RoleAdmin))
	authed.POST("/trips/search", h.Search.SearchTrips)
	authed.POST("/bookings", h.Booking.BookSeats)
	authed.GET("/trips/:id/seats", h.Booking.GetBookedSeats)

	// Operator endpoints: route creation and trip management.
	admin := e.Group("/v1")
	admin.Use(middleware.Authenticate(verifier))
	admin.Use(middleware.RequireRole(auth.RoleAdmin))
	admin.POST("/routes", h.Route.CreateRoute)
	admin.GET("/trips", h.Trip.ListTrips)
	admin.GET("/trips/:id", h.Trip.GetTrip)
	admin.POST("/trips", h.Trip.CreateTrip)
	admin.PUT("/trips/:id", h.Trip.UpdateTrip)
	admin.DELETE("/trips/:id", h.Trip.DeleteTrip)
}
