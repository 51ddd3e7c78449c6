// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore implements the persistent credential store: a durable
// mirror of the last successful login's session token and user record.
//
// The store is deliberately forgiving. When no durable storage backend is
// available every operation is a no-op, and read or write failures degrade
// to "no value" after being logged. The system always prefers appearing
// logged out over crashing.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"

	"edustore/cli/internal/account"
	apperrors "edustore/cli/internal/errors"
	"edustore/cli/internal/keychain"
	"edustore/cli/internal/logging"
)

// Keys used for persisting the session in the credential backend.
// Absence of either key means "no session".
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

var verboseStore = os.Getenv("EDUSTORE_VERBOSE") == "1"

// Backend is the minimal key-value contract the store persists through.
// *keychain.Manager satisfies it.
type Backend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Store holds the session token and user record durably across runs.
// A Store with a nil backend is valid and behaves as empty.
type Store struct {
	backend Backend
}

// New opens the credential store over the OS keychain. When the keychain is
// unavailable the returned store is a no-op rather than an error.
func New() *Store {
	km, err := keychain.GetManager()
	if err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("keychain unavailable", err)))
		return &Store{}
	}
	return &Store{backend: km}
}

// NewWithBackend creates a store over an explicit backend. Used by tests
// and by callers that manage backend lifetime themselves.
func NewWithBackend(b Backend) *Store {
	return &Store{backend: b}
}

// SetToken saves the session token.
func (s *Store) SetToken(token string) {
	if s.backend == nil {
		return
	}
	if err := s.backend.Set(KeyToken, token); err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("saving token", err)))
	}
}

// Token returns the stored session token, or "" when absent.
func (s *Store) Token() string {
	if s.backend == nil {
		return ""
	}
	token, err := s.backend.Get(KeyToken)
	if err != nil {
		if !keychain.IsNotFound(err) {
			logf("%s", logging.PresentError("credstore", storageErr("reading token", err)))
		}
		return ""
	}
	return token
}

// SetUser saves the user record as JSON.
func (s *Store) SetUser(u *account.User) {
	if s.backend == nil || u == nil {
		return
	}
	b, err := json.Marshal(u)
	if err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("encoding user", err)))
		return
	}
	if err := s.backend.Set(KeyUser, string(b)); err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("saving user", err)))
	}
}

// User returns the stored user record, or nil when absent or unreadable.
func (s *Store) User() *account.User {
	if s.backend == nil {
		return nil
	}
	data, err := s.backend.Get(KeyUser)
	if err != nil {
		if !keychain.IsNotFound(err) {
			logf("%s", logging.PresentError("credstore", storageErr("reading user", err)))
		}
		return nil
	}
	var u account.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		// Corrupt record reads as absent.
		logf("%s", logging.PresentError("credstore", storageErr("decoding user", err)))
		return nil
	}
	return &u
}

// ClearAuth removes both the token and the user record. Both keys are
// removed even when one removal fails.
func (s *Store) ClearAuth() {
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(KeyToken); err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("clearing token", err)))
	}
	if err := s.backend.Delete(KeyUser); err != nil {
		logf("%s", logging.PresentError("credstore", storageErr("clearing user", err)))
	}
}

// storageErr tags a backend failure with the storage failure category.
func storageErr(msg string, err error) error {
	return apperrors.Wrap(apperrors.StorageFailed, msg, err)
}

func logf(format string, args ...any) {
	if verboseStore {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
