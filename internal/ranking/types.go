// Package ranking computes composite relevance scores for candidates.
package ranking

import (
	"strings"
	"time"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
)

// Scorer is the interface for all sub-score components. Each returns a value
// in [0, 1]; the ranker combines them with configured weights.
type Scorer interface {
	// Score calculates the sub-score for a candidate given the scoring context.
	Score(ctx *ScoringContext) float64
	// Name returns the name of the scorer for debugging/logging.
	Name() string
}

// ScoringContext provides all the context needed to score one candidate.
type ScoringContext struct {
	// Candidate is the record being scored.
	Candidate *models.Candidate
	// Query is the normalized query text.
	Query string
	// Intent is the classified query intent.
	Intent query.Intent
	// KeyPhrases is the ordered key-phrase set extracted from the query.
	KeyPhrases []string
	// Content is the lowercased concatenation of title and snippet.
	Content string
	// Now anchors age calculations so scoring is deterministic in tests.
	Now time.Time
}

// NewScoringContext builds a context for one candidate. KeyPhrases are
// extracted once per query by the caller and shared across candidates.
func NewScoringContext(c *models.Candidate, normalized string, intent query.Intent, keyPhrases []string, now time.Time) *ScoringContext {
	return &ScoringContext{
		Candidate:  c,
		Query:      normalized,
		Intent:     intent,
		KeyPhrases: keyPhrases,
		Content:    strings.ToLower(c.Title) + " " + strings.ToLower(c.Snippet),
		Now:        now,
	}
}

// Breakdown provides detailed scoring information for debugging.
type Breakdown struct {
	TextRelevance float64 `json:"text_relevance"`
	Freshness     float64 `json:"freshness"`
	Authority     float64 `json:"authority"`
	Engagement    float64 `json:"engagement"`
	FinalScore    float64 `json:"final_score"`
}
