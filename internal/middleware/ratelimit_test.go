package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateContext(method, target, remoteAddr string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = remoteAddr
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(target)
	return c
}

// The limiter runs ahead of authentication, so its key must be fully
// determined before any identity is attached to the context.
func TestRateKey(t *testing.T) {
	c := rateContext(http.MethodPost, "/v1/bookings", "10.0.0.7:51234")
	key := rateKey("rl", c)
	assert.Equal(t, "rl:ip:10.0.0.7:route:POST /v1/bookings", key)

	// Attaching an identity afterwards must not change the key.
	c.Set("user_id", "user-9")
	assert.Equal(t, key, rateKey("rl", c))

	other := rateKey("rl", rateContext(http.MethodPost, "/v1/bookings", "10.0.0.8:51234"))
	assert.NotEqual(t, key, other)

	get := rateKey("rl", rateContext(http.MethodGet, "/v1/routes", "10.0.0.7:51234"))
	assert.NotEqual(t, key, get)
}
