package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/vetdesk/client-go/internal/apierrors"
)

// TokenSource yields the current bearer token, or "" when no session is
// active. TenantSource yields the active tenant identifier, or "" to fall
// back to the client's configured default. Both are read on every request so
// the client itself stays stateless between calls.
type (
	TokenSource  func() string
	TenantSource func() string
)

// Client sends JSON requests against the clinic API, attaching the standard
// authentication and tenant headers and normalizing every outcome into either
// a raw JSON payload or a single error contract (see Do).
type Client struct {
	baseURL       string
	defaultTenant string
	httpClient    *http.Client
	token         TokenSource
	tenant        TenantSource
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.token = source
	}
}

func WithTenantSource(source TenantSource) Option {
	return func(c *Client) {
		c.tenant = source
	}
}

// NewClient creates a client for the API at baseURL. defaultTenant is sent as
// X-Tenant-ID whenever the tenant source yields nothing.
func NewClient(baseURL, defaultTenant string, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[NewClient] base URL is required")
	}

	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		defaultTenant: defaultTenant,
		httpClient:    http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// RequestOption adjusts a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers map[string]string
}

// WithHeader sets a header on the request. Caller headers win over the
// standard auth/tenant/content-type set.
func WithHeader(key, value string) RequestOption {
	return func(ro *requestOptions) {
		if ro.headers == nil {
			ro.headers = make(map[string]string)
		}
		ro.headers[key] = value
	}
}

// Do sends one request and normalizes the outcome:
//   - 204 yields a nil payload with no parse attempt.
//   - Any other status parses the body as JSON; a parse failure becomes
//     apierrors.ErrInvalidResponse regardless of status.
//   - Non-2xx statuses become an *Error whose message is extracted from the
//     body (detail, then message, then error, then a plain string body),
//     falling back to a message synthesized from the status code.
//   - A transport failure with no response at all becomes
//     apierrors.ErrNetwork, never confusable with a server-returned error.
func (c *Client) Do(ctx context.Context, method, path string, body any, options ...RequestOption) (json.RawMessage, error) {
	var reqOpts requestOptions
	for _, opt := range options {
		opt(&reqOpts)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "[Do] marshal request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "[Do] build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Tenant-ID", c.currentTenant())
	for key, value := range reqOpts.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return nil, apierrors.ErrNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("reading response body")
		return nil, apierrors.ErrNetwork
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode).Str("path", path).Msg("response body is not valid JSON")
		return nil, apierrors.ErrInvalidResponse
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(payload, resp.StatusCode),
		}
	}

	return json.RawMessage(raw), nil
}

func (c *Client) Get(ctx context.Context, path string, options ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, options...)
}

func (c *Client) Post(ctx context.Context, path string, body any, options ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, options...)
}

func (c *Client) Put(ctx context.Context, path string, body any, options ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, options...)
}

func (c *Client) Patch(ctx context.Context, path string, body any, options ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, body, options...)
}

func (c *Client) Delete(ctx context.Context, path string, options ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, options...)
}

func (c *Client) currentToken() string {
	if c.token == nil {
		return ""
	}
	return c.token()
}

func (c *Client) currentTenant() string {
	if c.tenant != nil {
		if tenant := c.tenant(); tenant != "" {
			return tenant
		}
	}
	return c.defaultTenant
}

// DecodeJSON unmarshals a payload returned by Do into v. A decode failure is
// reported as apierrors.ErrInvalidResponse; the raw parse error is logged.
func DecodeJSON(raw json.RawMessage, v any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Debug().Err(err).Msg("decoding response payload")
		return apierrors.ErrInvalidResponse
	}
	return nil
}
