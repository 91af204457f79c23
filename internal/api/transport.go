package api

import (
	"context"
	"net/http"
)

// TokenSource yields the current bearer credential. The session manager is
// the production implementation. An empty token with a nil error means
// "no credential": the request goes out anonymous and the server decides.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// bearerTransport attaches "Authorization: Bearer <token>" to every request
// that does not already carry an explicit Authorization header.
//
// The read is a single synchronous call; the transport never blocks on the
// source and never retries. A source failure fails the request outright —
// swallowing it would send an anonymous request the caller believed was
// authenticated.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}

	tok, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return t.base.RoundTrip(req)
	}

	// Per the RoundTripper contract the request must not be mutated.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(clone)
}
