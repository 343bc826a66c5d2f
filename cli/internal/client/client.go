// ABOUTME: HTTP client for the VNF placement evaluator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// Client is the API client for the placement evaluator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status   string       `json:"status"`
	Nodes    int          `json:"nodes"`
	VNFTypes int          `json:"vnf_types"`
	Metrics  bool         `json:"metrics"`
	Cache    *cache.Stats `json:"cache,omitempty"`
}

// APIError is returned when the backend answers with a non-200 status
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s (%s)", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// IsBadRequest reports whether err is a 400 from the backend
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Capacity calls GET /api/v1/capacity
func (c *Client) Capacity(ctx context.Context) (*models.CapacityTables, error) {
	var tables models.CapacityTables
	if err := c.do(ctx, http.MethodGet, "/api/v1/capacity", nil, &tables); err != nil {
		return nil, err
	}
	return &tables, nil
}

// Evaluate calls POST /api/v1/evaluate
func (c *Client) Evaluate(ctx context.Context, req *models.EvaluationRequest) (*models.EvaluationResponse, error) {
	var resp models.EvaluationResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/evaluate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Sample calls POST /api/v1/sample
func (c *Client) Sample(ctx context.Context, req *models.SampleRequest) (*models.SampleSummary, error) {
	var summary models.SampleSummary
	if err := c.do(ctx, http.MethodPost, "/api/v1/sample", req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// do sends a request with an optional JSON body and decodes a JSON response into out
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return &APIError{Status: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
}
