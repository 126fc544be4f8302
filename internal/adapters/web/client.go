package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/corey/distance/internal/ports"
)

// APIError is a non-200 answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to a running distance server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL (e.g. http://localhost:3000).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Distance asks the server for the distance of (x, y, z) from the origin.
// Coordinates are passed through as text; empty strings are omitted.
func (c *Client) Distance(ctx context.Context, x, y, z string) (*ports.DistanceResponse, error) {
	q := url.Values{}
	for name, v := range map[string]string{ports.ParamX: x, ports.ParamY: y, ports.ParamZ: z} {
		if v != "" {
			q.Set(name, v)
		}
	}

	var result ports.DistanceResponse
	if err := c.get(ctx, ports.PathDistance, q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health fetches the server's health report.
func (c *Client) Health(ctx context.Context) (*ports.HealthResult, error) {
	var result ports.HealthResult
	if err := c.get(ctx, ports.PathHealth, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping returns true if a server answers the health endpoint.
func (c *Client) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_, err := c.Health(ctx)
	return err == nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// maxErrorText bounds how much of a non-JSON error body ends up in APIError.
const maxErrorText = 200

// errorMessage extracts the message from an error body. Bodies that are not an
// ErrorResponse (mux 404/405 pages, proxies) are kept as trimmed text.
func errorMessage(body []byte) string {
	var apiErr ports.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorText {
		text = text[:maxErrorText] + "..."
	}
	return text
}
