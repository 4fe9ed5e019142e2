package discovery

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/pkg/serp"
	"github.com/sells-group/prospect-cli/pkg/serp/mocks"
)

func TestCleanName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Razorpay | LinkedIn", "Razorpay"},
		{"M2P Fintech - Payments Infrastructure", "M2P Fintech"},
		{"Acme : About Us", "Acme"},
		{"Stripe on LinkedIn", "Stripe"},
		{"Razorpay | Overview - LinkedIn", "Razorpay"},
		{"  Plain Name  ", "Plain Name"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanName(tc.title), "title %q", tc.title)
	}
}

func TestRejectStructurally(t *testing.T) {
	t.Parallel()

	assert.True(t, rejectStructurally("redcross.org", "https://redcross.org"))
	assert.True(t, rejectStructurally("irs.gov", "https://irs.gov"))
	assert.True(t, rejectStructurally("mit.edu", "https://mit.edu"))
	assert.True(t, rejectStructurally("", "https://linkedin.com/jobs/view/123"))
	assert.True(t, rejectStructurally("", "https://linkedin.com/people/jane"))
	assert.False(t, rejectStructurally("acme.io", "https://acme.io/about"))
	// Suffix match, not substring: .org.uk-style domains survive only
	// when they don't end in a blocked TLD.
	assert.False(t, rejectStructurally("organic-foods.com", "https://organic-foods.com"))
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncateRunes("abc", 200))
	assert.Len(t, []rune(truncateRunes(strings.Repeat("x", 300), 200)), 200)
	assert.Equal(t, "héllo", truncateRunes("héllo wörld", 5))
}

// rejectTitles is a judge that rejects exact titles and fails on demand.
type rejectTitles struct {
	reject map[string]bool
	err    error
}

func (j rejectTitles) IsCompany(_ context.Context, title, _ string) (bool, error) {
	if j.err != nil {
		return false, j.err
	}
	return !j.reject[title], nil
}

func newTestOrchestrator(t *testing.T, client serp.Client, judge rejectTitles) *Orchestrator {
	t.Helper()
	return NewOrchestrator(client, judge, &config.DiscoveryConfig{
		SearchDelayMillis: 1,
		DefaultLimit:      10,
	})
}

func websiteLookup(m *mocks.MockClient, resp *serp.SearchResponse) {
	m.On("Search", mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.HasSuffix(q, "official website")
	})).Return(resp, nil)
}

func TestProcessResults_FullPipeline(t *testing.T) {
	t.Parallel()

	m := &mocks.MockClient{}
	websiteLookup(m, &serp.SearchResponse{Results: []serp.Result{
		{Title: "Razorpay - Payments", Link: "https://linkedin.com/company/razorpay-inc/about"}, // social, skipped
		{Title: "Razorpay", Link: "https://razorpay.com/"},
	}})

	o := newTestOrchestrator(t, m, rejectTitles{reject: map[string]bool{"Top FinTech Startups 2026": true}})

	results := []serp.Result{
		{Title: "Razorpay | LinkedIn", Snippet: "Payments platform", Link: "https://linkedin.com/company/razorpay-inc/about"},
		{Title: "Red Cross | LinkedIn", Snippet: "Charity", Link: "https://redcross.org/about"},
		{Title: "Engineer Jobs at Acme", Snippet: "Apply now", Link: "https://linkedin.com/jobs/view/99"},
		{Title: "Top FinTech Startups 2026", Snippet: "A list", Link: "https://blog.example.com/top-fintech"},
		{Title: "X", Snippet: "Too short after cleaning", Link: "https://x.io/home"},
	}

	companies := o.processResults(context.Background(), results, "FinTech")

	require.Len(t, companies, 1)
	got := companies[0]
	assert.Equal(t, "Razorpay", got.Name)
	assert.Equal(t, "FinTech", got.Industry)
	assert.Equal(t, "razorpay.com", got.Domain)
	assert.Equal(t, "https://linkedin.com/company/razorpay-inc/about", got.LinkedInURL)
	assert.Equal(t, "Payments platform", got.Description)
	assert.Equal(t, "linkedin_site_search", got.Source)
	assert.Equal(t, 85, got.ICPScore)
}

func TestProcessResults_JudgeErrorFailsOpen(t *testing.T) {
	t.Parallel()

	m := &mocks.MockClient{}
	websiteLookup(m, &serp.SearchResponse{})

	o := newTestOrchestrator(t, m, rejectTitles{err: assert.AnError})

	companies := o.processResults(context.Background(), []serp.Result{
		{Title: "Acme Corp", Snippet: "Widgets", Link: "https://acme.io/about"},
	}, "SaaS")

	require.Len(t, companies, 1)
	assert.Equal(t, "Acme Corp", companies[0].Name)
	// Website lookup found nothing, so the link-derived domain stands.
	assert.Equal(t, "acme.io", companies[0].Domain)
}

func TestProcessResults_LongNameRejected(t *testing.T) {
	t.Parallel()

	m := &mocks.MockClient{}
	websiteLookup(m, &serp.SearchResponse{})
	o := newTestOrchestrator(t, m, rejectTitles{})

	companies := o.processResults(context.Background(), []serp.Result{
		{Title: strings.Repeat("A", 50), Snippet: "", Link: "https://a.io/x"},
	}, "SaaS")
	assert.Empty(t, companies)
}

func TestResolveWebsite_SkipsSocialHosts(t *testing.T) {
	t.Parallel()

	m := &mocks.MockClient{}
	websiteLookup(m, &serp.SearchResponse{Results: []serp.Result{
		{Title: "Acme on LinkedIn", Link: "https://linkedin.com/company/acme/about"},
		{Title: "Acme - Crunchbase", Link: "https://crunchbase.com/organization/acme"},
		{Title: "Acme Corp", Link: "https://acme.io/"},
	}})
	o := newTestOrchestrator(t, m, rejectTitles{})

	assert.Equal(t, "acme.io", o.resolveWebsite(context.Background(), "Acme"))
}

func TestResolveWebsite_SearchFailureIsEmpty(t *testing.T) {
	t.Parallel()

	m := &mocks.MockClient{}
	m.On("Search", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	o := newTestOrchestrator(t, m, rejectTitles{})

	assert.Empty(t, o.resolveWebsite(context.Background(), "Acme"))
}
