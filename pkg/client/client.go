// Package client talks to a review feed over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

)

// maxPageBytes bounds a single page response.
const maxPageBytes = 8 << 20

// Client is the review feed API client.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default 30s-timeout HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a new API client.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func reviewsPath(offset, limit int) string {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))
	return "/api/reviews?" + params.Encode()
}

// GetReviews returns the raw JSON page at offset. Decoding is left to the
// caller so that malformed pages surface as decode failures there.
func (c *Client) GetReviews(ctx context.Context, offset, limit int) ([]byte, error) {
	var raw []byte
	if err := c.get(ctx, reviewsPath(offset, limit), &raw); err != nil {
		return nil, fmt.Errorf("client.GetReviews: %w", err)
	}
	return raw, nil
}

// Health checks that the feed is reachable.
func (c *Client) Health(ctx context.Context) error {
	if err := c.get(ctx, "/health", nil); err != nil {
		return fmt.Errorf("client.Health: %w", err)
	}
	return nil
}

// get issues a GET and stores the raw body in out. A nil out discards it.
func (c *Client) get(ctx context.Context, path string, out *[]byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return readHTTPError(resp)
	}

	body := io.LimitReader(resp.Body, maxPageBytes)
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	*out = data
	return nil
}

// readHTTPError builds an HTTPError from a failed response, preferring the
// feed's {"error": "..."} body over raw text.
func readHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", err)}
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}
