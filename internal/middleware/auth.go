package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-ticket-reservation/internal/auth"
)

// Authenticate returns an Echo middleware that extracts the Bearer
// token from the Authorization header, verifies it through the given
// verifier and injects the caller's identity into the request context.
// Handlers downstream read it via c.Get("user_id") and
// c.Get("user_type").  Requests without a bearer token or with a token
// the verifier rejects are answered with 401.
func Authenticate(v auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication token required"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			id, err := v.Verify(c.Request().Context(), raw)
			if err != nil {
				// Unreachable auth service and bad token both end the
				// request here; the distinction stays in the error.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", id.UserID)
			c.Set("user_type", id.UserType)
			return next(c)
		}
	}
}
