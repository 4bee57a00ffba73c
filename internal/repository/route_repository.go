package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/bus-ticket-reservation/internal/model"
)

// RouteRepo provides storage and retrieval of bus routes and their
// ordered stops.  A route owns its stops exclusively; towns are shared
// between routes and created on demand.  Routes are write-once: there
// is no update or delete.
type RouteRepo struct {
	db *sql.DB
}

// NewRouteRepo returns a new RouteRepo bound to the given database.
func NewRouteRepo(db *sql.DB) *RouteRepo { return &RouteRepo{db: db} }

// Create persists a route and its stop sequence in one transaction.
// A partial write (route row present, stops missing) is never
// observable: any failure rolls the whole route back.  Towns that do
// not exist yet are created as a side effect.  Returns ErrRouteExists
// when the route name is already taken.
func (r *RouteRepo) Create(ctx context.Context, name string, stops []string) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `INSERT INTO busroutes (route_name) VALUES (?)`, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrRouteExists
		}
		return 0, err
	}
	routeID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, town := range stops {
		// INSERT IGNORE keeps town creation idempotent across routes.
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO towns (town_name) VALUES (?)`, town); err != nil {
			return 0, err
		}
		var townID uint64
		if err := tx.QueryRowContext(ctx, `SELECT town_id FROM towns WHERE town_name = ?`, town).Scan(&townID); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO route_stops (route_id, town_id, stop_order) VALUES (?, ?, ?)`,
			routeID, townID, i,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(routeID), nil
}

// ListWithStops returns every route together with its ordered stop
// names.  Ordering is stable per call: routes by id, stops by
// stop_order.  The inner join omits routes without stops; Create never
// produces one.
func (r *RouteRepo) ListWithStops(ctx context.Context) ([]model.RouteWithStops, error) {
	const q = `SELECT r.route_name, t.town_name
	           FROM busroutes r
	           JOIN route_stops rs ON rs.route_id = r.id
	           JOIN towns t ON t.town_id = rs.town_id
	           ORDER BY r.id, rs.stop_order`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RouteWithStops, 0)
	index := make(map[string]int)
	for rows.Next() {
		var route, town string
		if err := rows.Scan(&route, &town); err != nil {
			return nil, err
		}
		idx, ok := index[route]
		if !ok {
			idx = len(out)
			index[route] = idx
			out = append(out, model.RouteWithStops{Name: route, Stops: []string{}})
		}
		out[idx].Stops = append(out[idx].Stops, town)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stops returns the ordered stop names for a single route.  It
// returns ErrRouteNotFound when no route with the given name exists.
func (r *RouteRepo) Stops(ctx context.Context, routeName string) ([]string, error) {
	var routeID uint64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM busroutes WHERE route_name = ?`, routeName).Scan(&routeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	const q = `SELECT t.town_name
	           FROM route_stops rs
	           JOIN towns t ON t.town_id = rs.town_id
	           WHERE rs.route_id = ?
	           ORDER BY rs.stop_order`
	rows, err := r.db.QueryContext(ctx, q, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stops := make([]string, 0)
	for rows.Next() {
		var town string
		if err := rows.Scan(&town); err != nil {
			return nil, err
		}
		stops = append(stops, town)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stops, nil
}

// Exists reports whether a route with the given name is registered.
func (r *RouteRepo) Exists(ctx context.Context, routeName string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM busroutes WHERE route_name = ?`, routeName).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
