package api

import (
	"context"
	"fmt"
	"regexp"
)

// Matches the server's own registration check so obviously bad input never
// leaves the client.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	body := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.postJSON(ctx, "/user/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The server replies success=false (not an
// HTTP error) for duplicate emails; callers must check Result.Success.
func (c *Client) Register(ctx context.Context, email, username, password string) (*RegisterResult, error) {
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	body := map[string]string{"email": email, "username": username, "password": password}
	var out RegisterResult
	if err := c.postJSON(ctx, "/user/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleAuth completes a Google sign-in with the provider's credential.
func (c *Client) GoogleAuth(ctx context.Context, credential string) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.postJSON(ctx, "/user/auth/google", map[string]string{"token": credential}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FacebookAuth completes a Facebook sign-in with the provider's access token.
func (c *Client) FacebookAuth(ctx context.Context, accessToken string) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.postJSON(ctx, "/user/auth/facebook", map[string]string{"token": accessToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts the reset flow; the server emails a one-time code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if !validEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return c.postJSON(ctx, "/user/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes the reset flow for the email captured on the
// forgot-password step.
func (c *Client) ResetPassword(ctx context.Context, email, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	body := map[string]string{"email": email, "password": password}
	return c.postJSON(ctx, "/user/password-reset", body, nil)
}

// Logout asks the server to blacklist the token. Local state is cleared by
// the session manager regardless of this call's outcome.
func (c *Client) Logout(ctx context.Context, tok string) error {
	return c.postJSON(ctx, "/user/logout", map[string]string{"token": tok}, nil)
}

// Balance returns the account's remaining usage quotas.
func (c *Client) Balance(ctx context.Context, email string) (*Balance, error) {
	var out Balance
	if err := c.postJSON(ctx, "/user/balance", map[string]string{"user_email": email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
