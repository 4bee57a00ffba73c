// Package resolver answers "is there a bus route connecting town A to
// town B, and through which stops?".  A route is a flat ordered
// sequence of towns, so resolution is a linear scan over each route's
// stop list with two position lookups — no graph search is involved.
package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/iliyamo/bus-ticket-reservation/internal/model"
)

// ReverseSuffix is appended to a route's display name when the match
// traverses the route against its stored stop order.  Trip lookups
// strip it again with CanonicalName before correlating by route name.
const ReverseSuffix = " (Reverse Direction)"

// ErrNoRouteFound is returned when no registered route passes through
// both towns, in either direction.
var ErrNoRouteFound = errors.New("no direct route found between these towns")

// Source supplies the registered routes with their ordered stops.
// *repository.RouteRepo satisfies it.
type Source interface {
	ListWithStops(ctx context.Context) ([]model.RouteWithStops, error)
}

// Match is the result of a successful resolution.
//
// Route is the display name, suffixed with ReverseSuffix when the
// traversal runs against the stored stop order.  Canonical is always
// the stored route name.  Stops runs from the start town to the end
// town inclusive, already reversed for reverse matches so it begins at
// the requested start.  NumberOfStops counts hops, not towns: one
// less than len(Stops).
type Match struct {
	Route         string
	Canonical     string
	Stops         []string
	NumberOfStops int
	Reversed      bool
}

// Resolver finds routes between towns.
type Resolver struct {
	src Source
}

// New returns a Resolver reading routes from src.
func New(src Source) *Resolver {
	if src == nil {
		panic("nil source passed to resolver.New")
	}
	return &Resolver{src: src}
}

// Resolve finds a route whose stop sequence contains both start and
// end.  A forward match (start before end in stored order) on any
// route wins over a reverse match on any route; among several forward
// candidates the first one scanned is returned.  Asking for the same
// town twice, or for towns no single route covers, yields
// ErrNoRouteFound.
func (r *Resolver) Resolve(ctx context.Context, start, end string) (*Match, error) {
	routes, err := r.src.ListWithStops(ctx)
	if err != nil {
		return nil, err
	}

	var reverse *Match
	for _, rt := range routes {
		i := indexOf(rt.Stops, start)
		j := indexOf(rt.Stops, end)
		if i < 0 || j < 0 || i == j {
			continue
		}
		if i < j {
			stops := append([]string(nil), rt.Stops[i:j+1]...)
			return &Match{
				Route:         rt.Name,
				Canonical:     rt.Name,
				Stops:         stops,
				NumberOfStops: len(stops) - 1,
				Reversed:      false,
			}, nil
		}
		if reverse == nil {
			stops := append([]string(nil), rt.Stops[j:i+1]...)
			reverseInPlace(stops)
			reverse = &Match{
				Route:         rt.Name + ReverseSuffix,
				Canonical:     rt.Name,
				Stops:         stops,
				NumberOfStops: len(stops) - 1,
				Reversed:      true,
			}
		}
	}
	if reverse != nil {
		return reverse, nil
	}
	return nil, ErrNoRouteFound
}

// CanonicalName strips ReverseSuffix from a resolved route name,
// recovering the stored name used for trip correlation.
func CanonicalName(route string) string {
	return strings.TrimSuffix(route, ReverseSuffix)
}

func indexOf(stops []string, town string) int {
	for i, s := range stops {
		if s == town {
			return i
		}
	}
	return -1
}

func reverseInPlace(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
