// Package scoring ranks prospects for outreach priority. The default
// scorer keeps the score assigned at discovery time; richer scorers
// plug in behind the same interface.
package scoring

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Scorer computes an ICP fit score (0-100) for one company.
type Scorer interface {
	Score(ctx context.Context, company model.Company) (int, error)
}

// Static keeps the score assigned at discovery time.
type Static struct{}

func (Static) Score(_ context.Context, company model.Company) (int, error) {
	return company.ICPScore, nil
}

// Apply rescores companies in place and sorts them best-first. A scorer
// error leaves that company's score untouched; one bad company must not
// sink the run.
func Apply(ctx context.Context, scorer Scorer, companies []model.Company) []model.Company {
	if scorer == nil {
		scorer = Static{}
	}

	for i := range companies {
		score, err := scorer.Score(ctx, companies[i])
		if err != nil {
			zap.L().Warn("scoring: keeping existing score",
				zap.String("company", companies[i].Name),
				zap.Error(err),
			)
			continue
		}
		companies[i].ICPScore = score
	}

	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].ICPScore > companies[j].ICPScore
	})
	return companies
}
