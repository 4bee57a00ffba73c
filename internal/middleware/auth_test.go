package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-ticket-reservation/internal/auth"
)

func token(t *testing.T, secret, userType string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       "user-1",
		"user_type": userType,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// protectedEcho mounts one admin-gated endpoint behind the full
// middleware chain using offline verification.
func protectedEcho(secret string) *echo.Echo {
	e := echo.New()
	g := e.Group("/v1")
	g.Use(Authenticate(auth.NewLocalVerifier(secret)))
	g.Use(RequireRole(auth.RoleAdmin))
	g.POST("/trips", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get("user_id")})
	})
	return e
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	e := protectedEcho("s3cret")

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + token(t, "other", auth.RoleAdmin), http.StatusUnauthorized},
		{"commuter on admin route", "Bearer " + token(t, "s3cret", auth.RoleCommuter), http.StatusForbidden},
		{"admin", "Bearer " + token(t, "s3cret", auth.RoleAdmin), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/trips", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
