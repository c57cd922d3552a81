package api

import (
	"context"
	"net/http"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

// SignupRequest is the account-creation payload. Validate tags are checked
// client-side before the request is sent.
type SignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the credential and the user returned by a successful
// login. Persisting the credential is the session manager's job, not ours.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup creates an account. It deliberately returns no credential: the
// product flow requires email verification and an explicit login afterwards.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me fetches the current authenticated user. Callers treat any failure as
// "the stored credential no longer denotes a valid session".
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) VerifyEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return c.do(ctx, http.MethodPost, "/auth/verify-email", body, nil)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/resend-verification", body, nil)
}
