package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the shared HTTP client for the remote gas-agency ERP API. All
// screens go through it; it never retries and never cancels a dispatched
// request beyond the caller context.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is the server-rejected business channel: the ERP answered with
// success:false and a message meant for the operator.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected (status %d)", e.StatusCode)
}

// envelope is the common response shape {success, message?, ...}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) status() (bool, string) { return e.Success, e.Message }

type response interface {
	status() (bool, string)
}

// do issues a JSON request and decodes the enveloped response into out.
// Transport failures are wrapped and returned as plain errors; a decoded
// success:false becomes an *APIError carrying the server message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out response) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	if ok, message := out.status(); !ok {
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	return nil
}
