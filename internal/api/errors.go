package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized matches 401/403 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable matches 5xx and 429 responses via errors.Is.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidInput is returned for requests rejected client-side before
	// anything is sent (empty prompt, bad email format, wrong file type).
	ErrInvalidInput = errors.New("invalid input")
)

// APIError is a non-2xx response from the Luga API. Detail carries the
// server's {"detail": ...} envelope when one was present.
type APIError struct {
	Status    int
	Detail    string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Is classifies the status code into the sentinel error families so call
// sites can branch with errors.Is instead of inspecting codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrUnavailable:
		return e.Status == 429 || e.Status >= 500
	}
	return false
}

// DecodeError is a response body that did not match its typed contract.
// Surfacing it (instead of letting zero values flow on) is the
// parse-don't-trust boundary.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
