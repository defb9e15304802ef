package exa

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when no API key was supplied
	// explicitly and EXA_API_KEY is not set.
	ErrMissingAPIKey = errors.New("API key is required: set Config.APIKey or the EXA_API_KEY environment variable")

	// ErrInvalidURL is returned when a request's target URL fails local
	// validation before any network call is made.
	ErrInvalidURL = errors.New("invalid url")
)

// TransportError wraps a failure of the HTTP exchange itself: connection,
// DNS, TLS, or the caller's context deadline/cancellation. Unwrap exposes
// the cause, so errors.Is(err, context.DeadlineExceeded) works as expected.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-success status from the API together with its parsed
// error payload. Callers can branch on Status or Code.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d - %s - %s", e.Status, e.Code, e.Message)
}

// DecodeError means a response body did not match its expected schema.
// This covers both a success body that fails to decode and an error body
// that is not the documented {code, message} shape, so callers can tell
// "the server rejected the request" apart from "the response was
// unintelligible".
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorPayload uses pointer fields so that a JSON body missing either
// key is distinguishable from one carrying empty strings; a non-success
// body must be exactly the documented {code, message} shape.
type errorPayload struct {
	Code    *string `json:"code"`
	Message *string `json:"message"`
}

func (p *errorPayload) validate() error {
	if p.Code == nil || p.Message == nil {
		return errors.New("error payload missing code or message")
	}
	return nil
}
