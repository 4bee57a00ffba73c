package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestLocalVerifier(t *testing.T) {
	v := NewLocalVerifier("topsecret")
	token := signHS256(t, "topsecret", jwt.MapClaims{
		"sub":       "user-42",
		"user_type": RoleCommuter,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", id.UserID)
	assert.Equal(t, RoleCommuter, id.UserType)
}

func TestLocalVerifierLegacyRoleClaim(t *testing.T) {
	v := NewLocalVerifier("topsecret")
	token := signHS256(t, "topsecret", jwt.MapClaims{
		"sub":  "admin-1",
		"role": RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, id.UserType)
}

func TestLocalVerifierRejects(t *testing.T) {
	v := NewLocalVerifier("topsecret")
	valid := jwt.MapClaims{
		"sub":       "user-42",
		"user_type": RoleCommuter,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}

	cases := map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": signHS256(t, "othersecret", valid),
		"expired": signHS256(t, "topsecret", jwt.MapClaims{
			"sub": "user-42", "user_type": RoleCommuter,
			"exp": time.Now().Add(-time.Hour).Unix(),
		}),
		"missing subject": signHS256(t, "topsecret", jwt.MapClaims{
			"user_type": RoleCommuter, "exp": time.Now().Add(time.Hour).Unix(),
		}),
		"missing user type": signHS256(t, "topsecret", jwt.MapClaims{
			"sub": "user-42", "exp": time.Now().Add(time.Hour).Unix(),
		}),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
