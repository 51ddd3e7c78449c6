// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package guard implements the route authorization decision procedure.
//
// Every navigable view declares a requirement: an authenticated session, or
// the absence of one. Evaluating the requirement against the session state
// yields one of three decision states. While the decision is Pending or
// Redirecting the protected content must never be shown.
package guard

import (
	"context"

	"edustore/cli/internal/nav"
	"edustore/cli/internal/session"
)

// Requirement declares what a view demands of the session.
type Requirement int

const (
	// RequireAuth marks a view that only an authenticated session may see.
	RequireAuth Requirement = iota
	// RequireGuest marks a view that demands the absence of a session,
	// such as the login form.
	RequireGuest
)

// State is the authorization state of a view instance.
type State int

const (
	// Pending means the session is still loading and no decision is
	// possible yet. Only a neutral loading indicator may render.
	Pending State = iota
	// Authorized means the view may render. The state is terminal for
	// the view instance unless the session transitions again.
	Authorized
	// Redirecting means the requirement failed and navigation to Target
	// is underway. Children never render.
	Redirecting
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Authorized:
		return "authorized"
	case Redirecting:
		return "redirecting"
	}
	return "unknown"
}

// Decision is the outcome of evaluating a requirement against the session.
type Decision struct {
	State State
	// Target is the redirect destination; set only when State is Redirecting.
	Target nav.Destination
}

// Guard binds a view's requirement to an optional redirect override.
type Guard struct {
	Requirement Requirement
	// Override replaces the default redirect target when set.
	Override nav.Destination
}

// Evaluate decides whether the view may render given the session state.
func (g Guard) Evaluate(s session.State) Decision {
	if s.IsLoading {
		return Decision{State: Pending}
	}

	switch g.Requirement {
	case RequireAuth:
		if s.IsAuthenticated {
			return Decision{State: Authorized}
		}
		return Decision{State: Redirecting, Target: g.target(nav.Login)}
	default: // RequireGuest
		if s.IsAuthenticated {
			return Decision{State: Redirecting, Target: g.target(nav.Dashboard)}
		}
		return Decision{State: Authorized}
	}
}

func (g Guard) target(fallback nav.Destination) nav.Destination {
	if g.Override != "" {
		return g.Override
	}
	return fallback
}

// Watch re-evaluates the guard on every session transition and reports
// each decision until ctx is done. An Authorized view can transition back
// to Redirecting when the session ends underneath it.
func (g Guard) Watch(ctx context.Context, store *session.Store, fn func(Decision)) {
	updates := store.Subscribe()
	fn(g.Evaluate(store.Snapshot()))
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case st := <-updates:
				fn(g.Evaluate(st))
			}
		}
	}()
}
