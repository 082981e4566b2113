package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// ErrAuthRejected signals that the backend no longer accepts the held
// credential. Callers must treat it as a session-wide reset, not as an
// inline form error.
var ErrAuthRejected = errors.New("credential rejected by backend")

// APIError carries a non-2xx backend response with its message verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Client talks to the backend REST API. Every call attaches the supplied
// bearer token when present and maps HTTP 401 to ErrAuthRejected.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a Client for the given base URL. A nil httpClient falls back
// to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// do performs one JSON round trip. body is marshalled when non-nil, out is
// decoded into when non-nil and the response succeeded.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthRejected
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// decodeAPIError extracts the backend's detail message, falling back to the
// HTTP status text when the body is not the expected error shape.
func decodeAPIError(resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var payload struct {
			Detail string `json:"detail"`
		}
		if jsonErr := json.Unmarshal(raw, &payload); jsonErr == nil && payload.Detail != "" {
			detail = payload.Detail
		}
	}
	return &APIError{Status: resp.StatusCode, Detail: detail}
}
