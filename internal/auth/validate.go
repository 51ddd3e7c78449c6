// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"regexp"

	"edustore/cli/internal/api"
)

// MinPasswordLength is the shortest password accepted before a login is
// even attempted.
const MinPasswordLength = 6

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Credentials are the inputs to a login exchange.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the credentials without touching the network. It returns
// nil when the credentials are plausible, or an *api.Error carrying
// field-keyed messages for every offending field.
func (c Credentials) Validate() error {
	fields := map[string][]string{}
	if !reEmail.MatchString(c.Email) {
		fields["email"] = append(fields["email"], "Enter a valid email address")
	}
	if len(c.Password) < MinPasswordLength {
		fields["password"] = append(fields["password"], "Password must be at least 6 characters")
	}
	if len(fields) == 0 {
		return nil
	}
	return &api.Error{Message: "Validation failed", Errors: fields}
}
