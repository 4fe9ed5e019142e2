// Package classify holds the optional AI company judgment used by the
// discovery filter pipeline. The judge is a capability-optional port:
// when no classifier is configured the Accept default is used and every
// candidate passes, so absence of the capability never changes control
// flow at call sites.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/pkg/anthropic"
)

// CompanyJudge decides whether a search-result item denotes a real
// for-profit company.
type CompanyJudge interface {
	IsCompany(ctx context.Context, title, snippet string) (bool, error)
}

// Accept is the no-op judge: everything is a company. Used when no
// classifier is configured, and the semantics callers fall back to on
// judge errors (fail-open).
type Accept struct{}

// IsCompany always accepts.
func (Accept) IsCompany(context.Context, string, string) (bool, error) {
	return true, nil
}

// Claude judges candidates with a single cheap yes/no completion.
type Claude struct {
	client anthropic.Client
	model  string
}

// NewClaude creates a Claude-backed company judge.
func NewClaude(client anthropic.Client, model string) *Claude {
	return &Claude{client: client, model: model}
}

// IsCompany asks the model for a YES/NO judgment on the candidate.
func (c *Claude) IsCompany(ctx context.Context, title, snippet string) (bool, error) {
	prompt := fmt.Sprintf(
		"Is '%s' a specific FOR-PROFIT COMPANY? Reply YES or NO.\nContext: %s\nIgnore: Foundations, Lists, Articles, Jobs.",
		title, snippet,
	)

	temp := 0.0
	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       c.model,
		MaxTokens:   4,
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return false, eris.Wrap(err, "classify: company judgment")
	}

	return strings.Contains(strings.ToUpper(resp.Text()), "YES"), nil
}
