// Package auth is the boundary to the external authentication
// service.  This service never issues tokens; it only verifies bearer
// tokens presented by clients and extracts the caller's identity.
package auth

import (
	"context"
	"errors"
)

// User types understood by authorization.  Route and trip management
// is restricted to ADMIN; booking and search are open to any
// authenticated user.
const (
	RoleCommuter = "COMMUTER"
	RoleAdmin    = "ADMIN"
)

// ErrInvalidToken is returned when a token cannot be verified, for
// whatever reason: malformed, expired, wrong signature, or rejected by
// the auth service.  Middleware translates it into HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID   string // opaque user identifier issued by the auth service
	UserType string // COMMUTER or ADMIN
}

// Verifier checks an opaque bearer token and returns the identity it
// carries.  Implementations: RemoteVerifier asks the auth service,
// LocalVerifier checks the shared-secret signature offline.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
