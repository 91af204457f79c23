// Package api is the HTTP client for the Luga AI API: one anonymous client
// for public endpoints and one credentialed client whose transport attaches
// the bearer token to every outgoing request.
//
// Responses are decoded into typed contracts and validated at the boundary;
// non-2xx responses become *APIError carrying the server's detail message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luga-ai/luga-cli/internal/logging"
)

// Config holds the settings shared by both clients.
type Config struct {
	// BaseURL is the API root, e.g. "https://www.luga.app/api".
	BaseURL string

	// Timeout bounds a single HTTP exchange. Zero means DefaultTimeout.
	Timeout time.Duration

	// Retry is the backoff policy used by calls that opt in to retries.
	Retry Policy

	Logger logging.Logger
}

const DefaultTimeout = 30 * time.Second

// Client issues requests against the Luga API.
type Client struct {
	base  *url.URL
	hc    *http.Client
	retry Policy
	log   logging.Logger
}

// New returns the public client: no credential is ever attached. Used for
// login, registration and public listings.
func New(cfg Config) (*Client, error) {
	return newClient(cfg, nil)
}

// NewPrivate returns the credentialed client. Its transport reads tokens
// from the source immediately before dispatch; requests with a pre-set
// Authorization header pass through untouched.
func NewPrivate(cfg Config, tokens TokenSource) (*Client, error) {
	if tokens == nil {
		return nil, fmt.Errorf("api: NewPrivate requires a token source")
	}
	return newClient(cfg, tokens)
}

func newClient(cfg Config, tokens TokenSource) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api: base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = http.DefaultTransport
	if tokens != nil {
		transport = &bearerTransport{base: transport, tokens: tokens}
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		base:  base,
		hc:    &http.Client{Timeout: timeout, Transport: transport},
		retry: cfg.Retry,
		log:   log,
	}, nil
}

// endpoint joins path (and optional query) onto the base URL.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path, nil), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// postMultipart streams a multipart form built by fill. Used by the upload
// and voice-cloning endpoints.
func (c *Client) postMultipart(ctx context.Context, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := fill(mw); err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

// validator is implemented by response contracts that carry boundary checks.
type validator interface {
	Validate() error
}

// do executes the request and decodes the response into out (when non-nil).
// Error taxonomy: transport failures come back wrapped, non-2xx statuses
// become *APIError, undecodable or invalid bodies become *DecodeError.
func (c *Client) do(req *http.Request, out any) error {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug(req.Context(), "api request",
		"method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(start), "request_id", reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp, reqID)
	}

	if out == nil {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{What: req.URL.Path, Err: err}
	}
	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			return &DecodeError{What: req.URL.Path, Err: err}
		}
	}
	return nil
}

const maxBodySize = 8 << 20

// apiError maps a non-2xx response to *APIError, pulling the detail string
// out of the server's error envelope when present.
func (c *Client) apiError(resp *http.Response, reqID string) error {
	apiErr := &APIError{Status: resp.StatusCode, RequestID: reqID}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Detail = envelope.Detail
		if apiErr.Detail == "" {
			apiErr.Detail = envelope.Message
		}
	}
	return apiErr
}
