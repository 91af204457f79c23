package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not-a-url"})
	require.Error(t, err)
}

func TestNewPrivate_RequiresTokenSource(t *testing.T) {
	_, err := NewPrivate(Config{BaseURL: "https://example.com"}, nil)
	require.Error(t, err)
}

func TestEndpoint_JoinsPathAndQuery(t *testing.T) {
	c, err := New(Config{BaseURL: "https://www.luga.app/api/"})
	require.NoError(t, err)

	assert.Equal(t, "https://www.luga.app/api/text/conversations",
		c.endpoint("/text/conversations", nil))
}

func TestDo_ServerDetailBecomesAPIError(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid email or password"}`))
	})

	err := c.postJSON(context.Background(), "/user/login", map[string]string{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Detail)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestAPIError_SentinelClassification(t *testing.T) {
	tests := []struct {
		status       int
		unauthorized bool
		unavailable  bool
	}{
		{400, false, false},
		{401, true, false},
		{403, true, false},
		{404, false, false},
		{429, false, true},
		{500, false, true},
		{503, false, true},
	}

	for _, tt := range tests {
		var err error = &APIError{Status: tt.status}
		assert.Equal(t, tt.unauthorized, errors.Is(err, ErrUnauthorized), "status %d unauthorized", tt.status)
		assert.Equal(t, tt.unavailable, errors.Is(err, ErrUnavailable), "status %d unavailable", tt.status)
	}
}

func TestDo_MalformedBodyIsDecodeError(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": 42}`))
	})

	var out TokenResponse
	err := c.get(context.Background(), "/x", nil, &out)

	var dec *DecodeError
	require.ErrorAs(t, err, &dec)
}

func TestDo_ContractViolationIsDecodeError(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"bearer"}`)) // no access_token
	})

	var out TokenResponse
	err := c.get(context.Background(), "/x", nil, &out)

	var dec *DecodeError
	require.ErrorAs(t, err, &dec)
	assert.Contains(t, dec.Error(), "access_token")
}

func TestDo_NilOutSkipsBody(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	})

	require.NoError(t, c.get(context.Background(), "/x", nil, nil))
}

func TestDo_ContextCancellation(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.get(ctx, "/x", nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}
