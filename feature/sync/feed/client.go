package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// authHeader carries the API token on every request.
const authHeader = "X-Auth-Token"

// Client fetches match data from the football-data.org v4 API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a feed client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.ApiKey,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Matches fetches the matches of a competition selected by the query.
// A non-2xx upstream response is returned as an error carrying the status
// and body; callers treat it as a fatal pass failure.
func (c *Client) Matches(ctx context.Context, q Query) ([]Match, error) {
	req, err := c.buildRequest(ctx, q)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("football-data request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("football-data API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return payload.Matches, nil
}

func (c *Client) buildRequest(ctx context.Context, q Query) (*http.Request, error) {
	url := fmt.Sprintf("%s/competitions/%s/matches", c.baseURL, q.Competition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	params := req.URL.Query()
	if len(q.Statuses) > 0 {
		params.Set("status", strings.Join(q.Statuses, ","))
	}
	if q.DateFrom != "" {
		params.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		params.Set("dateTo", q.DateTo)
	}
	if len(q.Stages) > 0 {
		params.Set("stage", strings.Join(q.Stages, ","))
	}
	req.URL.RawQuery = params.Encode()

	req.Header.Set(authHeader, c.apiKey)

	return req, nil
}
