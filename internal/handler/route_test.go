package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRouteRejectsMalformedInput(t *testing.T) {
	h := &RouteHandler{}

	cases := map[string]string{
		"empty body":     `{}`,
		"missing name":   `{"stops":["Colombo","Kandy"]}`,
		"no stops":       `{"route_name":"R1"}`,
		"single stop":    `{"route_name":"R1","stops":["Colombo"]}`,
		"duplicate town": `{"route_name":"R1","stops":["Colombo","Kegalle","Colombo"]}`,
		"empty town":     `{"route_name":"R1","stops":["Colombo",""]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/v1/routes", body)
			require.NoError(t, h.CreateRoute(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTripRequestRejectsMissingFields(t *testing.T) {
	h := &TripHandler{}

	cases := map[string]string{
		"empty body":   `{}`,
		"no driver":    `{"bus_route":"R1","conductor_name":"Kamal","trip_date":"2024-05-01T08:30:00Z"}`,
		"no conductor": `{"bus_route":"R1","driver_name":"Sunil","trip_date":"2024-05-01T08:30:00Z"}`,
		"no date":      `{"bus_route":"R1","driver_name":"Sunil","conductor_name":"Kamal"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/v1/trips", body)
			require.NoError(t, h.CreateTrip(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
