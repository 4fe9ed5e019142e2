// Package discovery turns an Ideal-Customer-Profile description into
// validated Company records by driving a fixed sequence of search-query
// variants through structural and AI-based filtering.
package discovery

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/prospect-cli/internal/classify"
	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/serp"
)

// Request describes the ICP criteria for one discovery run.
type Request struct {
	Industry  string `json:"industry"`
	SizeRange string `json:"size_range"`
	Location  string `json:"location"`
	Limit     int    `json:"limit"`
}

// Orchestrator drives company discovery against the search broker.
type Orchestrator struct {
	serp    serp.Client
	judge   classify.CompanyJudge
	limiter *rate.Limiter
	cfg     *config.DiscoveryConfig
}

// NewOrchestrator creates an Orchestrator. A nil judge disables AI
// filtering (every candidate passes that step).
func NewOrchestrator(client serp.Client, judge classify.CompanyJudge, cfg *config.DiscoveryConfig) *Orchestrator {
	if judge == nil {
		judge = classify.Accept{}
	}

	delay := time.Duration(cfg.SearchDelayMillis) * time.Millisecond
	if delay <= 0 {
		delay = time.Second
	}

	return &Orchestrator{
		serp:    client,
		judge:   judge,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		cfg:     cfg,
	}
}

// queryTemplates returns the fixed ordered list of query variants.
// Each template reaches a different slice of results, standing in for
// pagination the broker doesn't expose. The last is a broad non-network
// search that excludes listicles.
func queryTemplates(industry, location string) []string {
	return []string{
		fmt.Sprintf(`site:linkedin.com/company "%s" "%s"`, industry, location),
		fmt.Sprintf(`site:linkedin.com/company "%s" "%s" "Overview"`, industry, location),
		fmt.Sprintf(`site:linkedin.com/company "%s" "%s" "About"`, industry, location),
		fmt.Sprintf(`"%s" companies in "%s" -intitle:Top -intitle:List`, industry, location),
	}
}

// Discover produces up to req.Limit unique companies matching the ICP.
// Query templates are tried in order; each batch is filtered, merged
// into the running unique set, and the count checked before the next
// template is issued. May return fewer than Limit if all templates
// exhaust; never more.
func (o *Orchestrator) Discover(ctx context.Context, req Request) []model.Company {
	limit := req.Limit
	if limit <= 0 {
		limit = o.cfg.DefaultLimit
	}

	log := zap.L().With(zap.String("component", "discovery"))
	log.Info("discovering companies",
		zap.String("industry", req.Industry),
		zap.String("size_range", req.SizeRange),
		zap.String("location", req.Location),
		zap.Int("limit", limit),
	)

	var unique []model.Company
	for _, query := range queryTemplates(req.Industry, req.Location) {
		if len(unique) >= limit {
			break
		}

		// Politeness delay against the upstream rate limit.
		if err := o.limiter.Wait(ctx); err != nil {
			break
		}

		log.Debug("querying", zap.String("query", query))
		results := o.search(ctx, query)

		batch := o.processResults(ctx, results, req.Industry)

		before := len(unique)
		unique = dedupCompanies(append(unique, batch...))
		log.Info("batch merged",
			zap.Int("batch", len(batch)),
			zap.Int("new_unique", len(unique)-before),
			zap.Int("total_unique", len(unique)),
		)
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// search treats any broker failure as an empty result set; one bad
// query must not abort the run.
func (o *Orchestrator) search(ctx context.Context, query string) []serp.Result {
	resp, err := o.serp.Search(ctx, query)
	if err != nil {
		zap.L().Warn("discovery: search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	return resp.Results
}

// dedupCompanies keeps the first occurrence per lower-cased name,
// preserving insertion order.
func dedupCompanies(companies []model.Company) []model.Company {
	seen := make(map[string]struct{}, len(companies))
	unique := companies[:0:0]
	for _, c := range companies {
		key := c.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
