package model

// Route is a named bus route owning an ordered sequence of stops.
// Routes are immutable once created: there is no update or delete
// operation, only creation and lookup.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique route name, e.g. "Colombo-Kandy".
type Route struct {
	ID   uint64 // busroutes.id
	Name string // busroutes.route_name
}

// Stop pins a town to a position within its parent route.  Stop order
// is a strict total order per route: a town appears at most once and
// stop_order values are strictly increasing starting from zero.
//
// Fields:
//  RouteID – route that owns this stop.
//  Town    – town name at this position.
//  Order   – 0-based index within the route's sequence.
type Stop struct {
	RouteID uint64 // route_stops.route_id
	Town    string // towns.town_name
	Order   int    // route_stops.stop_order
}

// RouteWithStops bundles a route name with its ordered stop names.
// It is the shape returned by listing endpoints and consumed by the
// route resolver.
type RouteWithStops struct {
	Name  string   `json:"route_name"`
	Stops []string `json:"stops"`
}
