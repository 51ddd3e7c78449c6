// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements the authentication gateway: the network exchanges
// that acquire and release a session, with credential validation in front
// and write-through persistence behind.
//
// Transport failures never cross this boundary as transport-specific types;
// everything is normalized by the dispatcher before it reaches callers.
package auth

import (
	"context"
	"errors"

	"edustore/cli/internal/account"
	"edustore/cli/internal/api"
	apperrors "edustore/cli/internal/errors"
)

// Endpoint paths on the storefront backend.
const (
	pathLogin   = "/auth/loginUser"
	pathLogout  = "/auth/logout"
	pathMe      = "/auth/me"
	pathRefresh = "/auth/refresh"
)

// CredentialWriter is the slice of the credential store the gateway writes
// through to on a successful login.
type CredentialWriter interface {
	SetToken(token string)
	SetUser(u *account.User)
}

// Service centralizes authentication exchanges against the backend.
type Service struct {
	client *api.Client
	creds  CredentialWriter
}

// NewService constructs an auth Service over the shared dispatcher.
func NewService(client *api.Client, creds CredentialWriter) *Service {
	return &Service{client: client, creds: creds}
}

type loginResponse struct {
	Token   string        `json:"token"`
	User    *account.User `json:"user"`
	Message string        `json:"message"`
}

// Login validates the credentials, exchanges them for a session, and
// writes the session through to the credential store before returning.
// Invalid credentials are rejected with field-level errors and no network
// call is made.
func (s *Service) Login(ctx context.Context, creds Credentials) (string, *account.User, error) {
	if err := creds.Validate(); err != nil {
		return "", nil, apperrors.Wrap(apperrors.ValidationFailed, "invalid credentials", err)
	}

	var resp loginResponse
	if err := s.client.Post(ctx, pathLogin, creds, &resp); err != nil {
		return "", nil, classify(err)
	}
	if resp.Token == "" || resp.User == nil {
		return "", nil, &api.Error{Message: "Login response missing token or user"}
	}

	s.creds.SetToken(resp.Token)
	s.creds.SetUser(resp.User)
	return resp.Token, resp.User, nil
}

// classify tags a failed login exchange with its lifecycle failure
// category. The normalized dispatcher error stays reachable via Unwrap.
func classify(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.IsNetwork():
		return apperrors.Wrap(apperrors.TransportFailed, "backend unreachable", err)
	case apiErr.IsUnauthorized():
		return apperrors.Wrap(apperrors.AuthorityRejected, "session rejected", err)
	default:
		return apperrors.Wrap(apperrors.AuthenticationFailed, "login rejected", err)
	}
}

// Logout notifies the backend that the session is over. The call is
// best-effort: callers clear local state regardless of the outcome, so the
// returned error is informational only.
func (s *Service) Logout(ctx context.Context) error {
	return s.client.Post(ctx, pathLogout, nil, nil)
}

// CurrentUser fetches the profile behind the current session. Unlike
// Login and Logout it fails loud; no fallback state machine depends on it.
func (s *Service) CurrentUser(ctx context.Context) (*account.User, error) {
	var u account.User
	if err := s.client.Get(ctx, pathMe, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RefreshToken exchanges a refresh token for a new session token.
// Fails loud, like CurrentUser.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.client.Post(ctx, pathRefresh, body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &api.Error{Message: "Refresh response missing token"}
	}
	return resp.Token, nil
}
