// Package pipeline runs the end-to-end prospecting sequence: discover
// companies, resolve contacts, enrich via Apollo, verify emails, score,
// and persist.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/contacts"
	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/resilience"
	"github.com/sells-group/prospect-cli/internal/scoring"
	"github.com/sells-group/prospect-cli/internal/store"
	"github.com/sells-group/prospect-cli/pkg/apollo"
	"github.com/sells-group/prospect-cli/pkg/emailcheck"
)

// Pipeline wires the prospecting stages. Optional collaborators are
// nil-able: a nil Apollo or Checker skips that stage, a nil Store skips
// persistence, a nil Scorer keeps discovery-time scores.
type Pipeline struct {
	Discovery   *discovery.Orchestrator
	Resolver    *contacts.Resolver
	Apollo      apollo.Client
	Checker     emailcheck.Client
	Scorer      scoring.Scorer
	Store       store.Store
	Retry       resilience.Policy
	RevealPhone bool
}

// Result summarizes one pipeline run.
type Result struct {
	RunID     string          `json:"run_id,omitempty"`
	Companies []model.Company `json:"companies"`
	Contacts  int             `json:"contacts"`
}

// Run executes the full sequence for one ICP request. Enrichment and
// verification failures degrade per-contact; only persistence failures
// and an empty discovery result abort.
func (p *Pipeline) Run(ctx context.Context, req discovery.Request, roles []string) (*Result, error) {
	var runID string
	if p.Store != nil {
		run, err := p.Store.CreateRun(ctx, req.Industry, req.SizeRange, req.Location)
		if err != nil {
			return nil, err
		}
		runID = run.ID
	}

	companies := p.Discovery.Discover(ctx, req)
	if len(companies) == 0 {
		p.fail(ctx, runID)
		return nil, eris.Errorf("pipeline: no companies found for industry %q in %q", req.Industry, req.Location)
	}

	companies = p.Resolver.Resolve(ctx, companies, roles)
	EnrichContacts(ctx, p.Apollo, p.Retry, p.RevealPhone, companies)
	VerifyEmails(ctx, p.Checker, p.Retry, companies)
	companies = scoring.Apply(ctx, p.Scorer, companies)

	contactCount := 0
	for _, c := range companies {
		contactCount += len(c.Contacts)
	}

	if p.Store != nil {
		if err := p.Store.SaveCompanies(ctx, runID, companies); err != nil {
			p.fail(ctx, runID)
			return nil, err
		}
		if err := p.Store.CompleteRun(ctx, runID, len(companies), contactCount); err != nil {
			return nil, err
		}
	}

	zap.L().Info("pipeline complete",
		zap.String("run_id", runID),
		zap.Int("companies", len(companies)),
		zap.Int("contacts", contactCount),
	)

	return &Result{RunID: runID, Companies: companies, Contacts: contactCount}, nil
}

func (p *Pipeline) fail(ctx context.Context, runID string) {
	if p.Store == nil || runID == "" {
		return
	}
	if err := p.Store.FailRun(ctx, runID); err != nil {
		zap.L().Warn("pipeline: mark run failed", zap.String("run_id", runID), zap.Error(err))
	}
}

// EnrichContacts overwrites synthesized emails with Apollo's verified
// data for contacts that have a LinkedIn profile. A nil client is a
// no-op.
func EnrichContacts(ctx context.Context, client apollo.Client, retry resilience.Policy, revealPhone bool, companies []model.Company) {
	if client == nil {
		return
	}

	for i := range companies {
		for j := range companies[i].Contacts {
			contact := &companies[i].Contacts[j]
			if contact.LinkedInURL == "" {
				continue
			}

			match, err := resilience.Do(ctx, retry, "apollo.match",
				func(ctx context.Context) (*apollo.MatchResult, error) {
					return client.MatchByLinkedIn(ctx, contact.LinkedInURL, revealPhone)
				})
			if err != nil {
				zap.L().Warn("pipeline: apollo match failed",
					zap.String("contact", contact.FullName()),
					zap.Error(err),
				)
				continue
			}
			if match.Status != apollo.StatusFound {
				continue
			}

			if match.Email != "" {
				contact.Email = match.Email
				contact.EmailValid = false
			}
			if revealPhone {
				contact.Phone = match.Phone
			}
		}
	}
}

// VerifyEmails checks deliverability of each contact email and flips
// EmailValid for addresses with a valid verdict. A nil checker is a
// no-op.
func VerifyEmails(ctx context.Context, checker emailcheck.Client, retry resilience.Policy, companies []model.Company) {
	if checker == nil {
		return
	}

	for i := range companies {
		for j := range companies[i].Contacts {
			contact := &companies[i].Contacts[j]
			if contact.Email == "" {
				continue
			}

			result, err := resilience.Do(ctx, retry, "emailcheck.check",
				func(ctx context.Context) (*emailcheck.CheckResult, error) {
					return checker.CheckEmail(ctx, contact.Email)
				})
			if err != nil {
				zap.L().Warn("pipeline: email verification failed",
					zap.String("email", contact.Email),
					zap.Error(err),
				)
				continue
			}

			contact.EmailValid = result.Deliverable()
		}
	}
}
