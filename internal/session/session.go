// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session implements the in-memory session state container.
//
// The container owns the client's belief about whether a user is currently
// authenticated. It is mutated only through a fixed set of named transitions,
// each atomic from the caller's perspective, and it notifies subscribers
// after every transition so view-level consumers can re-evaluate
// authorization instead of reaching into a shared global.
package session

import (
	"fmt"
	"sync"

	"edustore/cli/internal/account"
)

// State is a snapshot of the session.
// Invariant: IsAuthenticated is true iff both User and Token are set.
type State struct {
	// User is the authenticated account record; nil when logged out.
	User *account.User
	// Token is the opaque session token; empty when logged out.
	Token string
	// IsLoading is true only while a login or logout exchange is in flight.
	IsLoading bool
	// IsAuthenticated reports whether a session is active.
	IsAuthenticated bool
	// Error holds the last login failure message; empty otherwise.
	Error string
}

// Credentials is the durable storage the container hydrates from and
// writes through to. *credstore.Store satisfies it.
type Credentials interface {
	Token() string
	User() *account.User
	SetUser(u *account.User)
	ClearAuth()
}

// Store is the session state container. It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State
	creds Credentials

	// attempt numbers login exchanges so a completion belonging to a
	// superseded attempt is discarded instead of overwriting newer state.
	attempt uint64

	subs []chan State
}

// NewStore creates an empty, unauthenticated session container backed by
// the given credential storage.
func NewStore(creds Credentials) *Store {
	return &Store{creds: creds}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel receiving the session state after every
// transition. The channel holds only the latest state; slow consumers
// observe the most recent snapshot rather than every intermediate one.
func (s *Store) Subscribe() <-chan State {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan State, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Hydrate populates the session from durable storage. When both a token
// and a user record are present the session becomes authenticated;
// otherwise the state is left untouched. Hydrate is idempotent and must
// run before the first authorization decision.
func (s *Store) Hydrate() {
	token := s.creds.Token()
	user := s.creds.User()

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" && user != nil {
		s.state.Token = token
		s.state.User = user
		s.state.IsAuthenticated = true
	}
	s.notifyLocked()
}

// BeginLogin marks a login exchange as in flight and clears any previous
// error. The returned attempt id must be passed to LoginSucceeded or
// LoginFailed; completions carrying a stale id are discarded.
func (s *Store) BeginLogin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	s.state.IsLoading = true
	s.state.Error = ""
	s.notifyLocked()
	return s.attempt
}

// LoginSucceeded transitions the session to authenticated. The credential
// store is expected to have been written through by the gateway before
// this transition fires.
func (s *Store) LoginSucceeded(attempt uint64, token string, user *account.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		return // superseded by a newer login attempt
	}
	s.state.IsLoading = false
	s.state.IsAuthenticated = true
	s.state.Token = token
	s.state.User = user
	s.state.Error = ""
	s.notifyLocked()
}

// LoginFailed records a failed login exchange with a session-level message.
func (s *Store) LoginFailed(attempt uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		return
	}
	s.state.IsLoading = false
	s.state.IsAuthenticated = false
	s.state.User = nil
	s.state.Token = ""
	s.state.Error = message
	s.notifyLocked()
}

// BeginLogout marks a logout exchange as in flight.
func (s *Store) BeginLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.notifyLocked()
}

// LogoutSucceeded resets the session to its empty default.
func (s *Store) LogoutSucceeded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.notifyLocked()
}

// LogoutFailed converges to the same empty state as LogoutSucceeded.
// Logout always succeeds from the state machine's point of view; the
// user-visible contract is "logged out on this device", not "the server
// acknowledged it".
func (s *Store) LogoutFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.notifyLocked()
}

// ClearAuth destroys the session and erases durable credentials.
func (s *Store) ClearAuth() {
	s.creds.ClearAuth()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.notifyLocked()
}

// ClearError clears the error message and touches nothing else.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
	s.notifyLocked()
}

// UpdateUser shallow-merges partial into the current user and persists the
// merged record. Updating without an active session is an error; merging
// into a missing user must not fabricate one.
func (s *Store) UpdateUser(partial map[string]any) (*account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return nil, fmt.Errorf("no active session")
	}
	merged, err := account.Merge(s.state.User, partial)
	if err != nil {
		return nil, err
	}
	s.state.User = merged
	s.creds.SetUser(merged)
	s.notifyLocked()
	return merged, nil
}

func (s *Store) resetLocked() {
	s.state = State{}
}

// notifyLocked publishes the current state to every subscriber,
// replacing any undelivered snapshot. Callers must hold s.mu.
func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s.state
	}
}
