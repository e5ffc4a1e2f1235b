package api

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login exchanges credentials for an opaque bearer token. How the backend
// authenticates is not this client's concern.
func (c *Client) Login(ctx context.Context, username string, password string) (string, error) {
	var envelope loginEnvelope
	if err := c.postJSON(ctx, "/api/auth/login", loginRequest{Username: username, Password: password}, &envelope); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !envelope.Success || envelope.Token == "" {
		return "", fmt.Errorf("login: %w", envelopeFailure(envelope.Message))
	}

	return envelope.Token, nil
}

type logoutEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Logout(ctx context.Context) error {
	var envelope logoutEnvelope
	if err := c.postJSON(ctx, "/api/auth/logout", nil, &envelope); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("logout: %w", envelopeFailure(envelope.Message))
	}

	return nil
}
