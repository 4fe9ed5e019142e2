// Package emailcheck provides a client for the AbstractAPI email
// validation service, used to verify deliverability of synthesized
// contact emails.
package emailcheck

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/resilience"
)

const defaultBaseURL = "https://emailvalidation.abstractapi.com/v1"

// Verdicts produced by CheckEmail.
const (
	VerdictValid             = "valid"
	VerdictLikelyValid       = "likely_valid"
	VerdictInvalidDisposable = "invalid_disposable"
	VerdictInvalidFormat     = "invalid_format"
	VerdictUnknown           = "unknown"
)

// Client performs email deliverability checks.
type Client interface {
	CheckEmail(ctx context.Context, email string) (*CheckResult, error)
}

// CheckResult is the interpreted outcome of a deliverability check.
type CheckResult struct {
	Email          string  `json:"email"`
	Verdict        string  `json:"verdict"`
	Deliverability string  `json:"deliverability"`
	QualityScore   float64 `json:"quality_score"`
	MXFound        bool    `json:"mx_found"`
	SMTPValid      bool    `json:"smtp_valid"`
	Disposable     bool    `json:"disposable"`
	Autocorrect    string  `json:"autocorrect,omitempty"`
}

// Deliverable reports whether the verdict is good enough to mark a
// contact email as verified.
func (r *CheckResult) Deliverable() bool {
	return r.Verdict == VerdictValid
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

// NewClient creates an AbstractAPI email validation client.
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

// boolField is AbstractAPI's {"value": bool, "text": "TRUE"} shape.
type boolField struct {
	Value bool `json:"value"`
}

type checkResponse struct {
	Email          string      `json:"email"`
	Deliverability string      `json:"deliverability"`
	QualityScore   json.Number `json:"quality_score"`
	IsValidFormat  boolField   `json:"is_valid_format"`
	IsMXFound      boolField   `json:"is_mx_found"`
	IsSMTPValid    boolField   `json:"is_smtp_valid"`
	IsDisposable   boolField   `json:"is_disposable_email"`
	Autocorrect    string      `json:"autocorrect"`
}

func (c *httpClient) CheckEmail(ctx context.Context, email string) (*CheckResult, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "emailcheck: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "emailcheck: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "emailcheck: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("emailcheck: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if resilience.RetryableStatus(resp.StatusCode) {
			return nil, resilience.MarkTransient(err, resp.StatusCode)
		}
		return nil, err
	}

	var raw checkResponse
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, eris.Wrap(err, "emailcheck: unmarshal response")
	}

	quality, _ := raw.QualityScore.Float64()

	result := &CheckResult{
		Email:          email,
		Deliverability: raw.Deliverability,
		QualityScore:   quality,
		MXFound:        raw.IsMXFound.Value,
		SMTPValid:      raw.IsSMTPValid.Value,
		Disposable:     raw.IsDisposable.Value,
		Autocorrect:    raw.Autocorrect,
	}
	result.Verdict = verdict(raw, quality)

	return result, nil
}

// verdict applies the decision ladder: disposable and malformed
// addresses are invalid outright, SMTP-confirmed or DELIVERABLE
// addresses are valid, a high quality score is likely valid, anything
// else stays unknown.
func verdict(raw checkResponse, quality float64) string {
	switch {
	case raw.IsDisposable.Value:
		return VerdictInvalidDisposable
	case !raw.IsValidFormat.Value:
		return VerdictInvalidFormat
	case raw.IsSMTPValid.Value || strings.EqualFold(raw.Deliverability, "DELIVERABLE"):
		return VerdictValid
	case quality >= 0.7:
		return VerdictLikelyValid
	default:
		return VerdictUnknown
	}
}
