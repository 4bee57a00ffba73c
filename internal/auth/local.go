package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// LocalVerifier verifies HS256 tokens offline using the secret shared
// with the authentication service.  It is a deployment option for
// setups where the auth service and this service share JWT_SECRET,
// avoiding a network round trip per request.  The expected claims are
// "sub" for the user id and "user_type" (or legacy "role") for the
// user type.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier returns a verifier checking signatures against the
// given shared secret.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token.  Any parse or validation
// failure, a non-HMAC signing method included, yields ErrInvalidToken.
func (v *LocalVerifier) Verify(_ context.Context, token string) (Identity, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	id := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		id.UserID = sub
	}
	if ut, ok := claims["user_type"].(string); ok {
		id.UserType = ut
	} else if role, ok := claims["role"].(string); ok {
		id.UserType = role
	}
	if id.UserID == "" || id.UserType == "" {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
