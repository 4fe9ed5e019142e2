package discovery

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/serp"
)

// staticICPScore is the fixed heuristic weight assigned at discovery
// time. Dynamic scoring belongs to the lead-scoring collaborator.
const staticICPScore = 85

// maxDescriptionRunes bounds the snippet carried on a Company.
const maxDescriptionRunes = 200

// companySource tags companies found via the site-restricted search.
const companySource = "linkedin_site_search"

// blockedTLDs disqualify non-commercial domains outright.
var blockedTLDs = []string{".org", ".gov", ".edu"}

// blockedPaths mark job postings and personal profiles, not company pages.
var blockedPaths = []string{"/jobs/", "/people/"}

// nameSeparators are stripped from titles in priority order; the text
// before the first occurrence of each survives.
var nameSeparators = []string{" | ", " - ", " : ", " on LinkedIn"}

// socialHosts never count as a company's official website.
var socialHosts = []string{"linkedin", "facebook", "twitter", "instagram", "crunchbase", "wikipedia"}

// processResults filters raw search results into Company candidates.
// Structural rejection runs first so the optional AI judgment only
// spends tokens on plausible items.
func (o *Orchestrator) processResults(ctx context.Context, results []serp.Result, industry string) []model.Company {
	log := zap.L().With(zap.String("component", "discovery"))

	var companies []model.Company
	for _, item := range results {
		title := strings.TrimSpace(item.Title)
		link := item.Link
		snippet := item.Snippet

		domain := ExtractDomain(link)
		if rejectStructurally(domain, link) {
			continue
		}

		ok, err := o.judge.IsCompany(ctx, title, snippet)
		if err != nil {
			// Fail open: the structural filter already removed the
			// worst noise.
			log.Warn("company judgment failed, accepting", zap.String("title", title), zap.Error(err))
			ok = true
		}
		if !ok {
			continue
		}

		name := cleanName(title)
		if n := utf8.RuneCountInString(name); n <= 1 || n >= 50 {
			continue
		}

		realDomain := o.resolveWebsite(ctx, name)
		if realDomain == "" {
			realDomain = domain
		}

		companies = append(companies, model.Company{
			Name:        name,
			Industry:    industry,
			Domain:      realDomain,
			LinkedInURL: link,
			Description: truncateRunes(snippet, maxDescriptionRunes),
			Source:      companySource,
			ICPScore:    staticICPScore,
		})
	}

	return companies
}

// rejectStructurally drops items that cannot be company pages.
func rejectStructurally(domain, link string) bool {
	for _, tld := range blockedTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}
	for _, path := range blockedPaths {
		if strings.Contains(link, path) {
			return true
		}
	}
	return false
}

// cleanName strips known separator suffixes from a result title,
// keeping the text before the first occurrence of each separator.
func cleanName(title string) string {
	clean := title
	for _, sep := range nameSeparators {
		if i := strings.Index(clean, sep); i >= 0 {
			clean = clean[:i]
		}
	}
	return strings.TrimSpace(clean)
}

// resolveWebsite looks up "<name> official website" and returns the
// domain of the first result that isn't a social or reference site.
// Empty means no better domain than the one already derived.
func (o *Orchestrator) resolveWebsite(ctx context.Context, name string) string {
	results := o.search(ctx, name+" official website")
	for _, r := range results {
		if r.Link == "" || isSocialHost(r.Link) {
			continue
		}
		return ExtractDomain(r.Link)
	}
	return ""
}

func isSocialHost(link string) bool {
	for _, host := range socialHosts {
		if strings.Contains(link, host) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
