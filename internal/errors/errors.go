// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages. The categories mirror the failure modes of
// the authentication lifecycle: bad input, rejected credentials, revoked
// sessions, network trouble, and local storage trouble.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures
// appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ValidationFailed indicates malformed credentials rejected before any
	// network call.
	ValidationFailed Kind = "validation_failed"
	// AuthenticationFailed indicates the server rejected the submitted
	// credentials.
	AuthenticationFailed Kind = "authentication_failed"
	// AuthorityRejected indicates an already-issued session token was
	// rejected by the server.
	AuthorityRejected Kind = "authority_rejected"
	// TransportFailed indicates a timeout or connectivity failure.
	TransportFailed Kind = "transport_failed"
	// StorageFailed indicates a credential persistence read or write failure.
	StorageFailed Kind = "storage_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
