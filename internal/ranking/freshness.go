package ranking

import "regexp"

// unknownDateScore is the neutral score for candidates without a usable date.
const unknownDateScore = 0.5

var yearPattern = regexp.MustCompile(`20\d{2}`)

// FreshnessScorer scores candidates by content age.
type FreshnessScorer struct{}

// NewFreshnessScorer creates a freshness scorer.
func NewFreshnessScorer() *FreshnessScorer { return &FreshnessScorer{} }

// Name returns the scorer name.
func (s *FreshnessScorer) Name() string { return "freshness" }

// Score extracts a 4-digit year from the candidate's date field and decays
// with age: max(0.1, 1/(1 + age_years*0.5)). No date yields the neutral 0.5.
func (s *FreshnessScorer) Score(ctx *ScoringContext) float64 {
	date := ctx.Candidate.Date
	if date == "" {
		return unknownDateScore
	}
	match := yearPattern.FindString(date)
	if match == "" {
		return unknownDateScore
	}
	year := 0
	for _, c := range match {
		year = year*10 + int(c-'0')
	}
	age := float64(ctx.Now.Year() - year)
	score := 1.0 / (1.0 + age*0.5)
	if score < 0.1 {
		score = 0.1
	}
	return score
}
