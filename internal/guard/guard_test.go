// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package guard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustore/cli/internal/account"
	"edustore/cli/internal/nav"
	"edustore/cli/internal/session"
)

func authedState() session.State {
	return session.State{
		User:            &account.User{ID: "u1", Email: "a@b.co", Name: "Ana"},
		Token:           "tok",
		IsAuthenticated: true,
	}
}

func TestPendingWhileSessionLoading(t *testing.T) {
	loading := session.State{IsLoading: true}
	for _, req := range []Requirement{RequireAuth, RequireGuest} {
		d := Guard{Requirement: req}.Evaluate(loading)
		assert.Equal(t, Pending, d.State)
	}
}

func TestRequireAuthUnauthenticatedRedirectsToLogin(t *testing.T) {
	d := Guard{Requirement: RequireAuth}.Evaluate(session.State{})
	assert.Equal(t, Redirecting, d.State)
	assert.Equal(t, nav.Login, d.Target)
	assert.NotEqual(t, Authorized, d.State)
}

func TestRequireAuthAuthenticatedAuthorized(t *testing.T) {
	d := Guard{Requirement: RequireAuth}.Evaluate(authedState())
	assert.Equal(t, Authorized, d.State)
	assert.Empty(t, d.Target)
}

func TestRequireGuestAuthenticatedRedirectsToDashboard(t *testing.T) {
	d := Guard{Requirement: RequireGuest}.Evaluate(authedState())
	assert.Equal(t, Redirecting, d.State)
	assert.Equal(t, nav.Dashboard, d.Target)
}

func TestRequireGuestUnauthenticatedAuthorized(t *testing.T) {
	d := Guard{Requirement: RequireGuest}.Evaluate(session.State{})
	assert.Equal(t, Authorized, d.State)
}

func TestRedirectOverride(t *testing.T) {
	override := nav.Destination("/checkout")

	d := Guard{Requirement: RequireAuth, Override: override}.Evaluate(session.State{})
	assert.Equal(t, override, d.Target)

	d = Guard{Requirement: RequireGuest, Override: override}.Evaluate(authedState())
	assert.Equal(t, override, d.Target)
}

// memCreds satisfies session.Credentials for Watch tests.
type memCreds struct {
	token string
	user  *account.User
}

func (m *memCreds) Token() string           { return m.token }
func (m *memCreds) User() *account.User     { return m.user }
func (m *memCreds) SetUser(u *account.User) { m.user = u }
func (m *memCreds) ClearAuth()              { m.token = ""; m.user = nil }

func TestWatchReEvaluatesOnSessionChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := session.NewStore(&memCreds{})

	var mu sync.Mutex
	var decisions []Decision
	Guard{Requirement: RequireAuth}.Watch(ctx, store, func(d Decision) {
		mu.Lock()
		decisions = append(decisions, d)
		mu.Unlock()
	})

	mu.Lock()
	require.NotEmpty(t, decisions, "watch must evaluate immediately")
	assert.Equal(t, Redirecting, decisions[0].State)
	mu.Unlock()

	attempt := store.BeginLogin()
	store.LoginSucceeded(attempt, "tok", &account.User{ID: "u1", Email: "a@b.co", Name: "Ana"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(decisions) > 1 && decisions[len(decisions)-1].State == Authorized
	}, time.Second, 10*time.Millisecond, "authorized after login")

	// An authorized view re-evaluates when the session ends underneath it.
	store.LogoutSucceeded()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		last := decisions[len(decisions)-1]
		return last.State == Redirecting && last.Target == nav.Login
	}, time.Second, 10*time.Millisecond, "redirecting after logout")
}
