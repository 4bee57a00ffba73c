package model

import "time"

// Trip is one scheduled run of a route at a specific departure time
// with assigned staff.  Trips reference routes by name, not by
// foreign key; the referenced route must exist when the trip is
// created.
//
// Fields:
//  ID        – generated UUID, the public trip identifier.
//  RouteName – canonical name of the route the trip runs on.
//  Driver    – assigned driver name.
//  Conductor – assigned conductor name.
//  Departure – departure timestamp, stored and compared in UTC.
//  CreatedAt – creation timestamp.
type Trip struct {
	ID        string    `json:"trip_id"`        // trips.trip_id
	RouteName string    `json:"bus_route"`      // trips.bus_route
	Driver    string    `json:"driver_name"`    // trips.driver_name
	Conductor string    `json:"conductor_name"` // trips.conductor_name
	Departure time.Time `json:"trip_date"`      // trips.trip_date
	CreatedAt time.Time `json:"created_at"`     // trips.created_at
}

// TripSummary is the reduced trip shape returned by the search
// endpoint: just enough for a commuter to pick a departure.
type TripSummary struct {
	ID        string    `json:"trip_id"`
	Departure time.Time `json:"trip_date"`
}
