package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-ticket-reservation/internal/model"
)

// stubSource serves a fixed route list without a database.
type stubSource struct {
	routes []model.RouteWithStops
	err    error
}

func (s *stubSource) ListWithStops(context.Context) ([]model.RouteWithStops, error) {
	return s.routes, s.err
}

func network() *stubSource {
	return &stubSource{routes: []model.RouteWithStops{
		{Name: "Colombo-Kandy", Stops: []string{"Colombo", "Kegalle", "Kandy"}},
		{Name: "Galle-Matara", Stops: []string{"Galle", "Weligama", "Matara"}},
		{Name: "Kandy-Jaffna", Stops: []string{"Kandy", "Dambulla", "Vavuniya", "Jaffna"}},
	}}
}

func TestResolveForward(t *testing.T) {
	r := New(network())

	m, err := r.Resolve(context.Background(), "Colombo", "Kandy")
	require.NoError(t, err)
	assert.Equal(t, "Colombo-Kandy", m.Route)
	assert.Equal(t, "Colombo-Kandy", m.Canonical)
	assert.Equal(t, []string{"Colombo", "Kegalle", "Kandy"}, m.Stops)
	assert.Equal(t, 2, m.NumberOfStops)
	assert.False(t, m.Reversed)
}

func TestResolveForwardSubSequence(t *testing.T) {
	r := New(network())

	m, err := r.Resolve(context.Background(), "Dambulla", "Jaffna")
	require.NoError(t, err)
	assert.Equal(t, "Kandy-Jaffna", m.Route)
	assert.Equal(t, []string{"Dambulla", "Vavuniya", "Jaffna"}, m.Stops)
	assert.Equal(t, 2, m.NumberOfStops)
}

func TestResolveReverse(t *testing.T) {
	r := New(network())

	m, err := r.Resolve(context.Background(), "Kandy", "Colombo")
	require.NoError(t, err)
	assert.Equal(t, "Colombo-Kandy (Reverse Direction)", m.Route)
	assert.Equal(t, "Colombo-Kandy", m.Canonical)
	assert.Equal(t, []string{"Kandy", "Kegalle", "Colombo"}, m.Stops)
	assert.Equal(t, 2, m.NumberOfStops)
	assert.True(t, m.Reversed)
}

// A forward match on a later route beats a reverse match on an
// earlier one.
func TestResolveForwardWinsOverReverse(t *testing.T) {
	src := &stubSource{routes: []model.RouteWithStops{
		{Name: "B-A", Stops: []string{"B", "X", "A"}},
		{Name: "A-B", Stops: []string{"A", "Y", "B"}},
	}}
	r := New(src)

	m, err := r.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "A-B", m.Route)
	assert.False(t, m.Reversed)
}

func TestResolveSameTown(t *testing.T) {
	r := New(network())

	_, err := r.Resolve(context.Background(), "Kegalle", "Kegalle")
	assert.ErrorIs(t, err, ErrNoRouteFound)
}

func TestResolveNoCommonRoute(t *testing.T) {
	r := New(network())

	// Both towns exist, but on different routes.
	_, err := r.Resolve(context.Background(), "Colombo", "Matara")
	assert.ErrorIs(t, err, ErrNoRouteFound)

	_, err = r.Resolve(context.Background(), "Colombo", "Nowhere")
	assert.ErrorIs(t, err, ErrNoRouteFound)
}

// Every ordered pair on a route resolves per the position contract.
func TestResolveAllPairs(t *testing.T) {
	stops := []string{"Kandy", "Dambulla", "Vavuniya", "Jaffna"}
	r := New(network())

	for i := range stops {
		for j := range stops {
			if i == j {
				continue
			}
			m, err := r.Resolve(context.Background(), stops[i], stops[j])
			require.NoError(t, err, "resolve %s -> %s", stops[i], stops[j])
			assert.Equal(t, stops[i], m.Stops[0])
			assert.Equal(t, stops[j], m.Stops[len(m.Stops)-1])
			assert.Equal(t, len(m.Stops)-1, m.NumberOfStops)
			assert.Equal(t, i > j, m.Reversed)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "Colombo-Kandy", CanonicalName("Colombo-Kandy (Reverse Direction)"))
	assert.Equal(t, "Colombo-Kandy", CanonicalName("Colombo-Kandy"))
}
