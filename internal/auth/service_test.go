// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustore/cli/internal/account"
	"edustore/cli/internal/api"
	apperrors "edustore/cli/internal/errors"
)

// memWriter records write-throughs to the credential store.
type memWriter struct {
	token string
	user  *account.User
}

func (m *memWriter) SetToken(token string)   { m.token = token }
func (m *memWriter) SetUser(u *account.User) { m.user = u }
func (m *memWriter) Token() string           { return m.token }
func (m *memWriter) ClearAuth()              { m.token = ""; m.user = nil }

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *memWriter, *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	creds := &memWriter{}
	client := api.New(srv.URL, 0, creds)
	return NewService(client, creds), creds, &hits
}

func TestLoginRejectsInvalidCredentialsWithoutNetwork(t *testing.T) {
	svc, _, hits := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	tests := []struct {
		name  string
		creds Credentials
		field string
	}{
		{"malformed email", Credentials{Email: "not-an-email", Password: "secret1"}, "email"},
		{"missing at sign", Credentials{Email: "user.example.com", Password: "secret1"}, "email"},
		{"short password", Credentials{Email: "user@example.com", Password: "12345"}, "password"},
		{"empty password", Credentials{Email: "user@example.com", Password: ""}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.creds)
			require.Error(t, err)

			var kindErr *apperrors.E
			require.ErrorAs(t, err, &kindErr)
			assert.Equal(t, apperrors.ValidationFailed, kindErr.Kind)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.NotEmpty(t, apiErr.FieldErrors(tt.field), "error must be keyed to the offending field")
		})
	}

	assert.Zero(t, *hits, "validation failures must not issue a network call")
}

func TestLoginWritesThroughToStore(t *testing.T) {
	svc, creds, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/loginUser", r.URL.Path)
		w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","email":"a@b.co","name":"Ana","role":"member"}}`))
	})

	token, user, err := svc.Login(context.Background(), Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", token)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	// The store mirrors exactly what the exchange returned.
	assert.Equal(t, token, creds.token)
	require.NotNil(t, creds.user)
	assert.Equal(t, *user, *creds.user)
}

func TestLoginFailureIsNormalized(t *testing.T) {
	svc, creds, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	})

	_, _, err := svc.Login(context.Background(), Credentials{Email: "a@b.co", Password: "wrong-pass"})
	require.Error(t, err)

	var kindErr *apperrors.E
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, apperrors.AuthenticationFailed, kindErr.Kind)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)

	// A rejected login writes nothing through.
	assert.Empty(t, creds.token)
	assert.Nil(t, creds.user)
}

func TestLoginIncompleteResponseRejected(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-only"}`))
	})

	_, _, err := svc.Login(context.Background(), Credentials{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)
}

func TestLogoutBestEffort(t *testing.T) {
	t.Run("remote success", func(t *testing.T) {
		svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/logout", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})
		assert.NoError(t, svc.Logout(context.Background()))
	})

	t.Run("remote failure still returns", func(t *testing.T) {
		svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		// The error is informational; callers clear local state regardless.
		assert.Error(t, svc.Logout(context.Background()))
	})
}

func TestCurrentUserFailsLoud(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.CurrentUser(context.Background())
	require.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		w.Write([]byte(`{"token":"tok-2"}`))
	})

	token, err := svc.RefreshToken(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}
