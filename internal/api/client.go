// Package api implements the request dispatcher every backend exchange
// passes through.
//
// Outbound requests carry the stored session token as a bearer credential
// when one exists. Inbound responses are inspected before reaching the
// caller: an authority rejection (HTTP 401) synchronously erases the
// credential store and fires the registered unauthorized handler, then
// propagates a normalized error. All other failures are normalized to the
// same shape. A fixed request timeout bounds every call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 30 * time.Second

// CredentialStore is the slice of the credential store the dispatcher
// needs: read the token for attachment, erase everything on rejection.
type CredentialStore interface {
	Token() string
	ClearAuth()
}

// Client dispatches JSON exchanges against the storefront backend.
type Client struct {
	baseURL string
	client  *http.Client
	creds   CredentialStore

	// onUnauthorized is invoked after the credential store has been
	// cleared in response to an authority rejection. Navigation is the
	// consumer's concern, not the dispatcher's.
	onUnauthorized func()
}

// New creates a dispatcher for the given base URL. A zero timeout selects
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, creds CredentialStore) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

// SetUnauthorizedHandler registers the callback fired when a response
// signals an authority rejection. The credential store is already empty
// when the callback runs.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// Get issues a GET request and decodes the 2xx response body into out
// when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the 2xx
// response body into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// Timeouts and connectivity failures surface the same way.
		return &Error{Message: transportMessage(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is gone before the caller's error handling runs.
		c.creds.ClearAuth()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return normalize(resp)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalize(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Message: err.Error(), Status: resp.StatusCode}
	}
	return nil
}

// normalize reduces an error response to the shared shape, preferring the
// body's message over the generic fallback.
func normalize(resp *http.Response) *Error {
	apiErr := &Error{Message: FallbackMessage, Status: resp.StatusCode}

	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		}
		apiErr.Errors = payload.Errors
	}
	return apiErr
}

// transportMessage picks the message for a failure that never produced a
// response.
func transportMessage(err error) string {
	if err == nil || err.Error() == "" {
		return FallbackMessage
	}
	return err.Error()
}
