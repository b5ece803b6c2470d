package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/contaflux/contaflux/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// maxErrorBodyLen caps how much of an upstream error body ends up in errors
	maxErrorBodyLen = 512
)

// Config holds configuration for the generic HTTP client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	AuthHeader string // header name carrying the credential, e.g. "access_token"
	AuthToken  string
}

// Client is a generic JSON HTTP client for communicating with external gateways
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	authHeader string
	authToken  string
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		authHeader: config.AuthHeader,
		authToken:  config.AuthToken,
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodDelete, endpoint, nil)
}

// PostJSON performs a POST request and decodes the JSON response into result.
// Non-2xx responses are returned as errors carrying the status code and a
// truncated response body for diagnosis.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, endpoint, result)
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, endpoint, result)
}

func (c *Client) decodeResponse(resp *nethttp.Response, endpoint string, result interface{}) error {
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       truncate(string(respBody), maxErrorBodyLen),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response from %s: %w", endpoint, err)
		}
	}

	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authHeader != "" && c.authToken != "" {
		req.Header.Set(c.authHeader, c.authToken)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// StatusError is returned for non-2xx upstream responses
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d for %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsServerError reports whether the error is a retryable upstream 5xx
func IsServerError(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
