package ranking

import (
	"strings"

	"github.com/hoshii/erabu/pkg/utils"
)

// Text-relevance tuning. The business floor and presence bonuses compensate
// for sparse directory listings that carry little text; tuned values, keep as
// named constants for future adjustment.
const (
	phraseMatchUnit      = 0.2
	wordOverlapCap       = 0.3
	businessTextFloor    = 0.2
	titlePresenceBonus   = 0.1
	contentPresenceBonus = 0.1
	minWordLength        = 3
)

// businessQueryWords mark a query as business-flavored for the floor rule.
var businessQueryWords = []string{"coffee", "shop", "cafe", "restaurant", "food", "business"}

// TextScorer scores keyword and phrase overlap between query and content.
type TextScorer struct{}

// NewTextScorer creates a text-relevance scorer.
func NewTextScorer() *TextScorer { return &TextScorer{} }

// Name returns the scorer name.
func (s *TextScorer) Name() string { return "text_relevance" }

// Score combines a phrase-match score (scaled by phrase word count) with a
// word-overlap score, capped at 1.0. Business-flavored queries get a floor
// and presence bonuses so sparse listings are not filtered on text alone.
func (s *TextScorer) Score(ctx *ScoringContext) float64 {
	content := ctx.Content

	phraseScore := 0.0
	for _, phrase := range ctx.KeyPhrases {
		if strings.Contains(content, phrase) {
			phraseScore += float64(len(strings.Fields(phrase))) * phraseMatchUnit
		}
	}

	queryWords := strings.Fields(strings.ToLower(ctx.Query))
	matches := 0
	for _, w := range queryWords {
		if len(w) > minWordLength && strings.Contains(content, w) {
			matches++
		}
	}
	denom := len(queryWords)
	if denom < 1 {
		denom = 1
	}
	ratio := float64(matches) / float64(denom)
	if ratio > 1.0 {
		ratio = 1.0
	}
	wordScore := ratio * wordOverlapCap

	total := phraseScore + wordScore

	if s.isBusinessQuery(ctx.Query) {
		if total < businessTextFloor {
			total = businessTextFloor
		}
		if len(strings.TrimSpace(strings.ToLower(ctx.Candidate.Title))) > 2 {
			total += titlePresenceBonus
		}
		if strings.TrimSpace(content) != "" {
			total += contentPresenceBonus
		}
	}

	return utils.Clamp01(total)
}

func (s *TextScorer) isBusinessQuery(q string) bool {
	lower := strings.ToLower(q)
	for _, w := range businessQueryWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
