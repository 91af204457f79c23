// Package token extracts display claims from a bearer token without
// verifying its signature. Verification is the server's job; the client only
// needs the subject (the user's email) for the UI and for request bodies
// that carry user_email.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformed is returned for anything that is not a three-segment
	// token with a JSON payload.
	ErrMalformed = errors.New("malformed token")
)

// Claims is the subset of the access-token payload the client consumes.
// The server issues {"sub": <email>, "exp": <unix>}.
type Claims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

// Expiry returns the exp claim as a time. Zero time when absent. The client
// never enforces expiry; the server rejects stale tokens on its own.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(c.ExpiresAt, 0)
}

// Parse decodes the payload segment of raw and returns its claims.
//
// Only the middle segment is inspected: the header is not required to be
// valid JSON and the signature is not checked. Any structural failure
// (wrong segment count, bad base64, bad JSON) yields ErrMalformed wrapped
// with detail. Parse never panics.
func Parse(raw string) (Claims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, fmt.Errorf("%w: payload segment: %v", ErrMalformed, err)
	}

	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: payload is not JSON: %v", ErrMalformed, err)
	}
	return c, nil
}

// Subject returns the sub claim of raw, or an error for any token that
// cannot be decoded. Callers treat the error as a null identity.
func Subject(raw string) (string, error) {
	c, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}

// decodeSegment accepts both raw (unpadded) and std base64url, which is
// what real-world token issuers produce.
func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(seg)
}
