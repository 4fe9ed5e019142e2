// Package contacts resolves named decision-makers for discovered
// companies: per-role candidate search with synonym expansion,
// past-role rejection, keyword role matching, NER name extraction,
// email synthesis, and per-company deduplication.
package contacts

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/ner"
	"github.com/sells-group/prospect-cli/pkg/serp"
)

// contactSource tags contacts extracted from broker search results.
const contactSource = "serp"

// Resolver finds decision-maker contacts for companies.
type Resolver struct {
	serp     serp.Client
	names    *Extractor
	expander *SynonymExpander
}

// NewResolver creates a Resolver. A nil expander uses the built-in
// synonym map.
func NewResolver(client serp.Client, rec ner.Recognizer, expander *SynonymExpander) *Resolver {
	if expander == nil {
		expander = NewSynonymExpander()
	}
	return &Resolver{
		serp:     client,
		names:    NewExtractor(rec),
		expander: expander,
	}
}

// Resolve populates Contacts on each company for the target roles and
// returns the same slice. Callers must not assume the input is left
// unmodified. Each role contributes at most one contact; duplicates
// across roles collapse in the final per-company dedup.
func (r *Resolver) Resolve(ctx context.Context, companies []model.Company, roles []string) []model.Company {
	if len(companies) == 0 {
		return companies
	}

	log := zap.L().With(zap.String("component", "contacts"))
	log.Info("resolving contacts", zap.Strings("roles", roles), zap.Int("companies", len(companies)))

	for i := range companies {
		company := &companies[i]

		var found []model.Contact
		for _, role := range roles {
			contact, ok := r.searchRole(ctx, *company, role)
			if !ok {
				continue
			}

			contact = Enrich(contact, company.Domain)
			if contact.Valid() {
				found = append(found, contact)
			}
		}

		company.Contacts = DedupContacts(found)
		log.Info("contacts resolved",
			zap.String("company", company.Name),
			zap.Int("contacts", len(company.Contacts)),
		)
	}

	return companies
}

// searchRole tries each expanded term in priority order and stops at
// the first term that yields an accepted candidate. The company name is
// deliberately not quote-wrapped, to avoid over-constraining the match.
func (r *Resolver) searchRole(ctx context.Context, company model.Company, role string) (model.Contact, bool) {
	for _, term := range r.expander.Expand(role) {
		query := fmt.Sprintf(`%s "%s" site:linkedin.com/in/`, company.Name, term)

		resp, err := r.serp.Search(ctx, query)
		if err != nil {
			zap.L().Warn("contacts: search failed", zap.String("query", query), zap.Error(err))
			continue
		}

		if contact, ok := r.extractFromResults(resp.Results, term, company.Name); ok {
			return contact, true
		}
	}

	return model.Contact{}, false
}

// extractFromResults scans results in rank order for one that survives
// the past-role check and role matching and yields a person name. The
// contact's Title is the specific term that matched, not necessarily
// the canonical role requested.
func (r *Resolver) extractFromResults(results []serp.Result, term, companyName string) (model.Contact, bool) {
	for _, res := range results {
		title := strings.TrimSpace(res.Title)
		snippet := strings.TrimSpace(res.Snippet)

		if IsPastRole(title) {
			continue
		}

		if RoleMatchScore(term, title+" "+snippet) < RoleMatchThreshold {
			continue
		}

		first, last, ok := r.names.Extract(title, companyName)
		if !ok {
			continue
		}

		return model.Contact{
			FirstName:   first,
			LastName:    last,
			Title:       term,
			LinkedInURL: res.Link,
			Source:      contactSource,
		}, true
	}

	return model.Contact{}, false
}
