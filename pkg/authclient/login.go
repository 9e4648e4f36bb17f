package authclient

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/mkovalev/sessionguard/pkg/credentials"
	"github.com/mkovalev/sessionguard/pkg/identity"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// loginResponse covers both shapes /login can answer with: a pending
// second-factor marker or a completed identity.
type loginResponse struct {
	identity.Identity

	RequiresTwoFactor bool   `json:"requires_2fa"`
	PendingSuccess    bool   `json:"success"`
	Message           string `json:"message"`
	Error             string `json:"error"`
}

// Login posts credentials. A response carrying a second-factor requirement
// yields a pending result without establishing an identity; a completed
// identity is established immediately.
func (c *Client) Login(ctx context.Context, username, password string) Result {
	if username == "" || password == "" {
		return validationResult("credentials", "Username and password are required")
	}

	resp, err := c.do(ctx, http.MethodPost, endpointLogin, map[string]string{
		"username": username,
		"password": password,
	}, credentials.TierAccess)
	if err != nil {
		return errorResult("Network error during login")
	}

	var body loginResponse
	decode(resp, &body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body.Error == "" {
			body.Error = "Login failed"
		}
		return errorResult(body.Error)
	}

	if body.RequiresTwoFactor || body.PendingSuccess {
		return Result{Success: true, RequiresTwoFactor: true, Message: body.Message}
	}

	id := body.Identity
	c.cache.Set(&id)
	return Result{Success: true, Identity: &id}
}

// SubmitSecondFactor posts the verification code and, on success,
// establishes the identity.
func (c *Client) SubmitSecondFactor(ctx context.Context, code string) Result {
	if len(code) != c.cfg.TwoFactorCodeLength {
		return validationResult("code", fmt.Sprintf("Please enter a valid %d-digit code", c.cfg.TwoFactorCodeLength))
	}

	resp, err := c.do(ctx, http.MethodPost, endpointLogin, map[string]string{
		"2fa_code": code,
	}, credentials.TierAccess)
	if err != nil {
		return errorResult("Network error during verification")
	}

	var body loginResponse
	decode(resp, &body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body.Error == "" {
			body.Error = "Invalid verification code"
		}
		return errorResult(body.Error)
	}

	id := body.Identity
	c.cache.Set(&id)
	return Result{Success: true, Identity: &id}
}

// RequestPasswordReset asks the service to send a reset email. The email is
// validated locally before any network round-trip.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) Result {
	if email == "" {
		return validationResult("email", "Email is required")
	}
	if !emailPattern.MatchString(email) {
		return validationResult("email", "Invalid email address")
	}

	resp, err := c.do(ctx, http.MethodPost, endpointPasswordReset, map[string]string{
		"email": email,
	}, credentials.TierAccess)
	if err != nil {
		return errorResult("Network error during password reset")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		drain(resp)
		return Result{Success: true, Message: "Password reset email sent"}
	}

	var body struct {
		Error string `json:"error"`
	}
	decode(resp, &body)
	if body.Error == "" {
		body.Error = "Failed to send reset email"
	}
	return errorResult(body.Error)
}
