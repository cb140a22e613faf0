package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/metrics"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

const clientTimeout = 10 * time.Second

// DataGovClient talks to the data.gov.in resource API.
type DataGovClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewDataGovClient creates a client for the given base URL and API key.
func NewDataGovClient(baseURL, apiKey string) *DataGovClient {
	return &DataGovClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// Fetch issues a single GET against the named resource with the given filter
// parameters and returns the raw response body. Any transport error, non-2xx
// status, or upstream status other than "ok" maps to ErrUpstream. No retries.
func (c *DataGovClient) Fetch(ctx context.Context, resource string, params map[string]string) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	u.Path = u.Path + resource

	q := u.Query()
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	for name, value := range params {
		q.Set(name, value)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveUpstreamCall(time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
	}

	var envelope domain.UpstreamResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", domain.ErrUpstream, err)
	}
	if envelope.Status != "ok" {
		return nil, fmt.Errorf("%w: upstream status %q: %s", domain.ErrUpstream, envelope.Status, envelope.Message)
	}

	return body, nil
}
