package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
	"github.com/hoshii/erabu/pkg/utils"
)

// Composite bonuses and penalties. These were tuned to compensate for sparse
// business-listing text; named so future tuning touches one place.
const (
	localBusinessBonus     = 0.3
	verifiedSourceBonus    = 0.2
	diversityPenaltyFactor = 0.7
)

// verifiedSources get the source bonus when the candidate's source field
// contains one of them.
var verifiedSources = []string{"yelp", "google"}

// Ranker combines the sub-scorers into a weighted composite score and sorts
// candidates by it.
type Ranker struct {
	cfg        *config.SearchConfig
	text       *TextScorer
	freshness  *FreshnessScorer
	authority  *AuthorityScorer
	engagement *EngagementScorer
}

// NewRanker creates a ranker using the weights in cfg.
func NewRanker(cfg *config.SearchConfig) *Ranker {
	return &Ranker{
		cfg:        cfg,
		text:       NewTextScorer(),
		freshness:  NewFreshnessScorer(),
		authority:  NewAuthorityScorer(),
		engagement: NewEngagementScorer(),
	}
}

// Score computes the composite score for one candidate: weighted sub-scores,
// an optional diversity penalty, and flat bonuses for local-business intent
// and verified directory sources. Rounded to 3 decimals. Scores are not
// normalized back to [0,1]; values above 1.0 are meaningful for relative
// ranking only.
func (r *Ranker) Score(ctx *ScoringContext) float64 {
	score := r.cfg.TextRelevanceWeight*r.text.Score(ctx) +
		r.cfg.FreshnessWeight*r.freshness.Score(ctx) +
		r.cfg.AuthorityWeight*r.authority.Score(ctx) +
		r.cfg.EngagementWeight*r.engagement.Score(ctx)

	if ctx.Candidate.DiversityPenalty {
		score *= diversityPenaltyFactor
	}

	if ctx.Intent == query.IntentLocalBusiness {
		score += localBusinessBonus
	}

	source := strings.ToLower(ctx.Candidate.Source)
	for _, v := range verifiedSources {
		if strings.Contains(source, v) {
			score += verifiedSourceBonus
			break
		}
	}

	return utils.Round3(score)
}

// ScoreWithBreakdown returns the composite score along with sub-scores.
func (r *Ranker) ScoreWithBreakdown(ctx *ScoringContext) Breakdown {
	b := Breakdown{
		TextRelevance: r.text.Score(ctx),
		Freshness:     r.freshness.Score(ctx),
		Authority:     r.authority.Score(ctx),
		Engagement:    r.engagement.Score(ctx),
	}
	b.FinalScore = r.Score(ctx)
	return b
}

// Rank scores every candidate and returns them sorted by score descending.
// The sort is stable: candidates with equal scores keep their input order.
func (r *Ranker) Rank(candidates []models.Candidate, normalized string, intent query.Intent, now time.Time) []models.Scored {
	keyPhrases := query.KeyPhrases(normalized)

	scored := make([]models.Scored, 0, len(candidates))
	for i := range candidates {
		ctx := NewScoringContext(&candidates[i], normalized, intent, keyPhrases, now)
		scored = append(scored, models.Scored{
			Candidate: candidates[i],
			Score:     r.Score(ctx),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
