// Package serp provides a client for the web-search broker API. The
// broker executes a free-text query and returns ranked title/snippet/link
// results. Providers disagree on payload shape (results vs organic,
// link vs url, snippet vs description), so normalization into one
// canonical Result happens here, immediately after the network call.
package serp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.brightdata.com/serp"

// Client performs web-search broker operations.
type Client interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// SearchResponse holds normalized search results.
type SearchResponse struct {
	Results []Result `json:"results"`
}

// Result is the canonical search-result item every downstream stage
// operates on.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
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

// NewClient creates a search broker client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type searchRequest struct {
	Query string `json:"query"`
}

// rawResponse accepts the provider payload shapes we have seen in the
// wild. Items may live under "results" or "organic".
type rawResponse struct {
	Error   string           `json:"error"`
	Results []map[string]any `json:"results"`
	Organic []map[string]any `json:"organic"`
}

func (c *httpClient) Search(ctx context.Context, query string) (*SearchResponse, error) {
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, eris.Wrap(err, "serp: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "serp: create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "serp: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "serp: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("serp: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var raw rawResponse
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, eris.Wrap(err, "serp: unmarshal response")
	}

	if raw.Error != "" {
		return nil, eris.Errorf("serp: provider error: %s", raw.Error)
	}

	return &SearchResponse{Results: normalize(raw)}, nil
}

// normalize maps heterogeneous provider items into canonical Results.
func normalize(raw rawResponse) []Result {
	items := raw.Results
	if len(items) == 0 {
		items = raw.Organic
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		r := Result{
			Title:   firstString(item, "title"),
			Snippet: firstString(item, "snippet", "description"),
			Link:    firstString(item, "link", "url"),
		}
		if r.Title == "" && r.Link == "" {
			continue
		}
		results = append(results, r)
	}
	return results
}

// firstString returns the first non-empty string value among keys.
func firstString(item map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := item[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
