// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustore/cli/internal/api"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name      string
		creds     Credentials
		badFields []string
	}{
		{"valid", Credentials{Email: "user@example.com", Password: "secret1"}, nil},
		{"valid with subdomain", Credentials{Email: "u@mail.example.co.id", Password: "123456"}, nil},
		{"empty email", Credentials{Email: "", Password: "secret1"}, []string{"email"}},
		{"no at sign", Credentials{Email: "user.example.com", Password: "secret1"}, []string{"email"}},
		{"no domain dot", Credentials{Email: "user@localhost", Password: "secret1"}, []string{"email"}},
		{"spaces in email", Credentials{Email: "us er@example.com", Password: "secret1"}, []string{"email"}},
		{"short password", Credentials{Email: "user@example.com", Password: "12345"}, []string{"password"}},
		{"both invalid", Credentials{Email: "nope", Password: "123"}, []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if len(tt.badFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Len(t, apiErr.Errors, len(tt.badFields))
			for _, field := range tt.badFields {
				assert.NotEmpty(t, apiErr.FieldErrors(field))
			}
		})
	}
}

func TestValidatePasswordBoundary(t *testing.T) {
	// Exactly the minimum length passes.
	creds := Credentials{Email: "user@example.com", Password: "123456"}
	assert.NoError(t, creds.Validate())
}
