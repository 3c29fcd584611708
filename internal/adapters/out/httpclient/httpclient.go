// Package httpclient holds the request plumbing shared by the outbound JSON
// API clients.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request made through New.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 4 << 10

// StatusError is returned for non-2xx responses.
type StatusError struct {
	API  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s http error: %d %s", e.API, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("%s http error: %d %s: %s", e.API, e.Code, http.StatusText(e.Code), e.Body)
}

// IsClientError reports whether err is a 4xx StatusError.
func IsClientError(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.Code >= 400 && statusErr.Code < 500
}

// New returns an http.Client with DefaultTimeout.
func New() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// NewJSONRequest builds a request with body encoded as JSON. A nil body sends
// no payload.
func NewJSONRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends req and decodes a JSON response into out. out may be nil when the
// response body is not needed.
func Do(client *http.Client, api string, req *http.Request, out any) error {
	return Read(client, api, req, func(body io.Reader) error {
		if out == nil {
			_, _ = io.Copy(io.Discard, body)
			return nil
		}
		return json.NewDecoder(body).Decode(out)
	})
}

// Read sends req and hands the body of a 2xx response to read. Errors from
// read are wrapped as decode errors.
func Read(client *http.Client, api string, req *http.Request, read func(body io.Reader) error) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{API: api, Code: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	if err := read(resp.Body); err != nil {
		return fmt.Errorf("%s decode response: %w", api, err)
	}
	return nil
}
