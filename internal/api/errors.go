// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import "fmt"

// FallbackMessage is used when neither the response body nor the transport
// error yields a usable message.
const FallbackMessage = "An unexpected error occurred"

// Error is the normalized shape every failed exchange is reduced to before
// crossing the dispatcher boundary. Transport-specific error types never
// escape this package.
type Error struct {
	// Message is the best available description, chosen in priority order:
	// response body message, transport error text, generic fallback.
	Message string `json:"message"`
	// Status is the HTTP status code, or 0 for transport failures.
	Status int `json:"status,omitempty"`
	// Errors carries field-keyed detail, e.g. validation messages.
	Errors map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// IsUnauthorized reports whether the error is an authority rejection.
func (e *Error) IsUnauthorized() bool { return e.Status == 401 }

// IsNetwork reports whether the error is a transport failure
// (timeout or connectivity loss).
func (e *Error) IsNetwork() bool { return e.Status == 0 }

// FieldErrors returns the messages attached to a field, or nil.
func (e *Error) FieldErrors(field string) []string {
	if e.Errors == nil {
		return nil
	}
	return e.Errors[field]
}
