package ranking

const (
	engagementBase      = 0.5
	ratingBonusCap      = 0.3
	reviewBonusCap      = 0.2
	ratingDivisor       = 10.0
	reviewCountDivisor  = 1000.0
)

// EngagementScorer scores candidates by rating and review volume.
type EngagementScorer struct{}

// NewEngagementScorer creates an engagement scorer.
func NewEngagementScorer() *EngagementScorer { return &EngagementScorer{} }

// Name returns the scorer name.
func (s *EngagementScorer) Name() string { return "engagement" }

// Score starts from a neutral base and adds capped bonuses for rating and
// review count, with the total capped at 1.0.
func (s *EngagementScorer) Score(ctx *ScoringContext) float64 {
	score := engagementBase

	if r := ctx.Candidate.Rating; r > 0 {
		bonus := r / ratingDivisor
		if bonus > ratingBonusCap {
			bonus = ratingBonusCap
		}
		score += bonus
	}

	if n := ctx.Candidate.ReviewCount; n > 0 {
		bonus := float64(n) / reviewCountDivisor
		if bonus > reviewBonusCap {
			bonus = reviewBonusCap
		}
		score += bonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
