// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package account defines the user record shared across the session,
// credential storage, and API layers. It is pure and free of transport
// or storage concerns.
package account

import (
	"encoding/json"
	"fmt"
)

// User is the authenticated account record returned by the backend.
// Backends may attach additional attributes beyond the core fields;
// those are preserved in Extra across serialization round-trips.
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
	Extra map[string]any
}

// knownFields are the core user attributes with fixed types. Partial
// updates addressing these keys must carry string values.
var knownFields = map[string]struct{}{
	"id":    {},
	"email": {},
	"name":  {},
	"role":  {},
}

// MarshalJSON flattens Extra alongside the core fields so the stored
// record matches the backend's wire shape.
func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+4)
	for k, v := range u.Extra {
		if _, core := knownFields[k]; !core {
			m[k] = v
		}
	}
	m["id"] = u.ID
	m["email"] = u.Email
	m["name"] = u.Name
	if u.Role != "" {
		m["role"] = u.Role
	}
	return json.Marshal(m)
}

// UnmarshalJSON splits the wire object into core fields and Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*u = User{}
	for k, v := range m {
		switch k {
		case "id":
			u.ID, _ = v.(string)
		case "email":
			u.Email, _ = v.(string)
		case "name":
			u.Name, _ = v.(string)
		case "role":
			u.Role, _ = v.(string)
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[k] = v
		}
	}
	return nil
}

// Merge applies a partial update to the user and returns the merged copy.
// The receiver is not modified. The partial is validated against the user
// schema: the identity cannot be changed, core fields must be strings, and
// extensible attributes must be scalar values. A merge into a nil user is
// rejected rather than fabricating a record.
func Merge(u *User, partial map[string]any) (*User, error) {
	if u == nil {
		return nil, fmt.Errorf("no active user to update")
	}
	if len(partial) == 0 {
		out := *u
		return &out, nil
	}

	out := *u
	if len(u.Extra) > 0 {
		out.Extra = make(map[string]any, len(u.Extra))
		for k, v := range u.Extra {
			out.Extra[k] = v
		}
	}

	for k, v := range partial {
		switch k {
		case "id":
			return nil, fmt.Errorf("field %q is immutable", k)
		case "email", "name", "role":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a string", k)
			}
			switch k {
			case "email":
				out.Email = s
			case "name":
				out.Name = s
			case "role":
				out.Role = s
			}
		default:
			if !isScalar(v) {
				return nil, fmt.Errorf("field %q must be a scalar value", k)
			}
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[k] = v
		}
	}
	return &out, nil
}

// isScalar reports whether v is a JSON scalar (string, number, bool, null).
func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, nil, float64, int, int64:
		return true
	}
	return false
}
