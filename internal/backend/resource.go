package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Forward relays one admin CRUD request to the backend as-is: same method,
// same path and query, same body. The caller owns the returned response and
// must close its body. A 401 is intercepted here like everywhere else so
// that the admin screens share the session-reset path.
func (c *Client) Forward(ctx context.Context, token string, r *http.Request, path string) (*http.Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", r.Method, path, err)
	}
	req.URL.RawQuery = r.URL.RawQuery
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.Method, path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		return nil, ErrAuthRejected
	}
	return resp, nil
}
