package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteVerifier verifies tokens by calling the authentication
// service's verify endpoint.  The contract: POST {"token": "..."} to
// the configured URL; 2xx returns {"user": {"userId": ..., "userType":
// ...}}, anything else means the token is invalid.
type RemoteVerifier struct {
	url    string
	client *http.Client
}

// NewRemoteVerifier returns a verifier calling the given verify URL,
// e.g. "http://auth:3001/auth/verify".
func NewRemoteVerifier(url string) *RemoteVerifier {
	return &RemoteVerifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify posts the token to the auth service and maps any rejection to
// ErrInvalidToken.  Transport failures are reported as-is so callers
// can distinguish an unreachable auth service from a bad token.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return Identity{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(payload))
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Identity{}, ErrInvalidToken
	}

	var body struct {
		User struct {
			UserID   string `json:"userId"`
			UserType string `json:"userType"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Identity{}, fmt.Errorf("auth service response: %w", err)
	}
	if body.User.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: body.User.UserID, UserType: body.User.UserType}, nil
}
