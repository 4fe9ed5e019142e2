// Package apollo provides a client for the Apollo.io people-match API,
// used to look up verified email and phone by LinkedIn profile URL.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/resilience"
)

const defaultBaseURL = "https://api.apollo.io/v1"

// Match statuses.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
)

// Client performs Apollo people-match operations.
type Client interface {
	MatchByLinkedIn(ctx context.Context, linkedinURL string, revealPhone bool) (*MatchResult, error)
}

// MatchResult is the outcome of a people-match lookup.
type MatchResult struct {
	Status string `json:"status"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
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

// NewClient creates an Apollo API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type matchRequest struct {
	LinkedInURL          string `json:"linkedin_url"`
	RevealPersonalEmails bool   `json:"reveal_personal_emails"`
	RevealPhoneNumber    bool   `json:"reveal_phone_number"`
}

type matchResponse struct {
	Person *struct {
		Email        string   `json:"email"`
		PhoneNumbers []string `json:"phone_numbers"`
	} `json:"person"`
}

func (c *httpClient) MatchByLinkedIn(ctx context.Context, linkedinURL string, revealPhone bool) (*MatchResult, error) {
	body, err := json.Marshal(matchRequest{
		LinkedInURL:          linkedinURL,
		RevealPersonalEmails: true,
		RevealPhoneNumber:    revealPhone,
	})
	if err != nil {
		return nil, eris.Wrap(err, "apollo: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/people/match", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "apollo: create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("apollo: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if resilience.RetryableStatus(resp.StatusCode) {
			return nil, resilience.MarkTransient(err, resp.StatusCode)
		}
		return nil, err
	}

	var result matchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "apollo: unmarshal response")
	}

	if result.Person == nil {
		return &MatchResult{Status: StatusNotFound}, nil
	}

	match := &MatchResult{
		Status: StatusFound,
		Email:  result.Person.Email,
	}
	if revealPhone && len(result.Person.PhoneNumbers) > 0 {
		match.Phone = result.Person.PhoneNumbers[0]
	}
	return match, nil
}
