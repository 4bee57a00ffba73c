package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteVerifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Token != "good-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"userId": "user-7", "userType": RoleAdmin},
		})
	}))
	defer srv.Close()

	v := NewRemoteVerifier(srv.URL)

	id, err := v.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-7", id.UserID)
	assert.Equal(t, RoleAdmin, id.UserType)

	_, err = v.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRemoteVerifierUnreachable(t *testing.T) {
	v := NewRemoteVerifier("http://127.0.0.1:1/auth/verify")
	_, err := v.Verify(context.Background(), "any")
	require.Error(t, err)
	// An unreachable auth service is not the same as a bad token.
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
