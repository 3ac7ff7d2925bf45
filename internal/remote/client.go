// Package remote implements the HTTP client for the shared sync store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snipsync/snipsync/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// Client defines the operations the sync engine needs from the remote store.
// All network I/O lives behind this interface.
type Client interface {
	// CheckAvailability verifies the store is reachable and the credentials
	// are accepted. Returns nil when a session may proceed.
	CheckAvailability(ctx context.Context) error

	// Pull fetches remote changes after the given change token.
	// An empty token means "from the beginning".
	Pull(ctx context.Context, token string) (*api.PullResponse, error)

	// Push uploads locally changed records. The store may accept some and
	// reject others individually.
	Push(ctx context.Context, records []api.Record) (*api.PushResponse, error)
}

// HTTPClient talks to the sync store over HTTP with bearer authentication.
type HTTPClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

var _ Client = (*HTTPClient)(nil)

// NewClient creates a remote store client.
func NewClient(baseURL, accessToken string) *HTTPClient {
	return &HTTPClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			// Bounded timeout per network call; exceeding it is a
			// transient failure subject to the retry policy.
			Timeout: 15 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// CheckAvailability verifies the store is reachable and the token is valid.
func (c *HTTPClient) CheckAvailability(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/ping", nil, nil); err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}
	return nil
}

// Pull fetches one page of remote changes after the given token.
func (c *HTTPClient) Pull(ctx context.Context, token string) (*api.PullResponse, error) {
	path := "/api/v1/sync/changes"
	if token != "" {
		path += "?token=" + url.QueryEscape(token)
	}

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Push uploads locally changed records.
func (c *HTTPClient) Push(ctx context.Context, records []api.Record) (*api.PushResponse, error) {
	req := api.PushRequest{Records: records}

	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/records", req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs an HTTP request against the store.
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
