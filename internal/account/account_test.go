// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNilUser(t *testing.T) {
	_, err := Merge(nil, map[string]any{"name": "Ana"})
	require.Error(t, err, "merging into a missing user must not fabricate one")
}

func TestMergeCoreFields(t *testing.T) {
	u := &User{ID: "u1", Email: "old@example.com", Name: "Old"}

	merged, err := Merge(u, map[string]any{"name": "New", "email": "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "New", merged.Name)
	assert.Equal(t, "new@example.com", merged.Email)
	assert.Equal(t, "u1", merged.ID)

	// Receiver untouched.
	assert.Equal(t, "Old", u.Name)
}

func TestMergeRejectsIdentityChange(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.co", Name: "Ana"}
	_, err := Merge(u, map[string]any{"id": "u2"})
	require.Error(t, err)
}

func TestMergeRejectsNonStringCoreField(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.co", Name: "Ana"}
	_, err := Merge(u, map[string]any{"name": 42})
	require.Error(t, err)
}

func TestMergeExtensibleAttributes(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.co", Name: "Ana"}

	merged, err := Merge(u, map[string]any{"loyaltyPoints": float64(120)})
	require.NoError(t, err)
	assert.Equal(t, float64(120), merged.Extra["loyaltyPoints"])

	// Non-scalar attribute shapes are rejected, not silently stored.
	_, err = Merge(u, map[string]any{"profile": map[string]any{"nested": true}})
	require.Error(t, err)
}

func TestUserJSONRoundTrip(t *testing.T) {
	u := User{
		ID:    "u1",
		Email: "a@b.co",
		Name:  "Ana",
		Role:  "member",
		Extra: map[string]any{"loyaltyPoints": float64(50)},
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var got User
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.Role, got.Role)
	assert.Equal(t, float64(50), got.Extra["loyaltyPoints"])
}

func TestUserJSONOmitsEmptyRole(t *testing.T) {
	b, err := json.Marshal(User{ID: "u1", Email: "a@b.co", Name: "Ana"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	_, hasRole := m["role"]
	assert.False(t, hasRole)
}
