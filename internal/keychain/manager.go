// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// edustore. This module manages all interactions with the OS keychain or
// credential store, providing a unified interface for storing and retrieving
// the session token and the serialized user record.
//
// The package supports macOS Keychain, Windows Credential Manager, and the
// freedesktop Secret Service, with an encrypted file fallback under the XDG
// state directory for headless hosts.
package keychain

import (
	"sync"

	"github.com/99designs/keyring"

	"edustore/cli/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "edustore"

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		globalManager = nil
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring, preferring native platform backends and
// falling back to an encrypted file in the XDG state directory so that
// headless and CI hosts still have durable storage.
func openRing() (keyring.Keyring, error) {
	fileDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(ServiceName),
		LibSecretCollectionName:  "login",
		KeychainTrustApplication: true,
	}

	return keyring.Open(cfg)
}

// Set stores a value under key. This method is thread-safe.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

// Get retrieves the value stored under key. A missing key yields
// keyring.ErrKeyNotFound. This method is thread-safe.
func (m *Manager) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, err := m.ring.Get(key)
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// Delete removes the value stored under key. Removing a missing key is not
// an error. This method is thread-safe.
func (m *Manager) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.ring.Remove(key)
	if err == keyring.ErrKeyNotFound {
		return nil
	}
	return err
}

// IsNotFound reports whether err indicates a missing key.
func IsNotFound(err error) bool {
	return err == keyring.ErrKeyNotFound
}
