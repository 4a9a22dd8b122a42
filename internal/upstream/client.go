// Package upstream implements the REST client for the household finance
// backend. Every resource interface declared in domain is implemented here
// over plain HTTP with cookie session pass-through.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// APIError is a non-2xx response from the upstream backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// Client is the shared HTTP plumbing for all upstream resources.
type Client struct {
	baseURL    string
	cookieName string
	http       *http.Client
}

// NewClient creates a Client for the given upstream base URL. The session
// cookie received from the browser is forwarded verbatim under cookieName;
// the gateway never mints its own sessions.
func NewClient(baseURL, cookieName string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: cookieName,
		http:       &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, session, path string, query url.Values, out any) error {
	return c.do(ctx, session, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, session, path string, query url.Values, body, out any) error {
	return c.do(ctx, session, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, session, path string, query url.Values, body, out any) error {
	return c.do(ctx, session, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, session, path string, query url.Values) error {
	return c.do(ctx, session, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, session, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFrom surfaces an upstream failure. Bodies are inconsistently either
// {"error": "..."} JSON or plain text; the HTTP status text is the last
// resort.
func (c *Client) errorFrom(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			message = body.Error
		} else if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
			message = text
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, message)
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}
