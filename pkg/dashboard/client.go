// Package dashboard is a client for the lead-scraper dashboard API.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "http://localhost:3000"

// Client submits scrape batches to the dashboard.
type Client interface {
	CreateBatch(ctx context.Context, req CreateBatchRequest) (*CreateBatchResponse, error)
}

// CreateBatchRequest is the request body for POST /api/batches.
type CreateBatchRequest struct {
	Name                    string   `json:"name"`
	Queries                 []string `json:"queries"`
	AutoImport              bool     `json:"autoImport"`
	TargetStates            []string `json:"targetStates"`
	LeadRecyclingCampaignID int64    `json:"leadRecyclingCampaignId"`
}

// CreateBatchResponse is the response from POST /api/batches. BatchID is
// opaque; the tracker store addresses the created batch by it.
type CreateBatchResponse struct {
	BatchID string `json:"batchId"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default dashboard base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a dashboard API client. apiKey may be empty when the
// dashboard runs without auth (local setups).
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CreateBatch(ctx context.Context, req CreateBatchRequest) (*CreateBatchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/batches", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: read response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, eris.Errorf("dashboard: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result CreateBatchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "dashboard: unmarshal response")
	}
	if result.BatchID == "" {
		return nil, eris.New("dashboard: response missing batchId")
	}

	return &result, nil
}
