package pipeline

import (
	"strings"
	"time"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/pkg/utils"
)

// Relevance-reason score tiers.
const (
	highRelevanceThreshold = 0.8
	goodRelevanceThreshold = 0.6
)

// ApplyThreshold drops scored candidates below minScore, preserving order.
func ApplyThreshold(scored []models.Scored, minScore float64) []models.Scored {
	kept := make([]models.Scored, 0, len(scored))
	for _, s := range scored {
		if s.Score >= minScore {
			kept = append(kept, s)
		}
	}
	return kept
}

// Format maps surviving scored candidates to the uniform output schema:
// truncated title/snippet, synthesized relevance reason, and derived tags.
func Format(scored []models.Scored, cfg *config.SearchConfig, now time.Time) []models.Result {
	results := make([]models.Result, 0, len(scored))
	for _, s := range scored {
		c := s.Candidate
		results = append(results, models.Result{
			Title:           utils.TruncateWords(c.Title, cfg.MaxTitleLength),
			URL:             c.URL,
			Source:          c.Source,
			FetchedAt:       now.Format(time.RFC3339),
			Snippet:         utils.TruncateWords(c.Snippet, cfg.MaxSnippetLength),
			Tags:            extractTags(&c),
			Rating:          c.Rating,
			Address:         c.Address,
			Author:          c.Author,
			Date:            c.Date,
			Score:           s.Score,
			RelevanceReason: relevanceReason(&c, s.Score),
		})
	}
	return results
}

// extractTags derives tags from the candidate's source and title signals.
func extractTags(c *models.Candidate) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(ts ...string) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}

	source := strings.ToLower(c.Source)
	if strings.Contains(source, "yelp") {
		add("business", "local", "reviews")
	} else if strings.Contains(source, "google") {
		add("web", "search")
	}

	title := strings.ToLower(c.Title)
	for _, w := range []string{"tutorial", "guide", "how-to"} {
		if strings.Contains(title, w) {
			add("tutorial")
			break
		}
	}
	for _, w := range []string{"news", "latest", "update"} {
		if strings.Contains(title, w) {
			add("news")
			break
		}
	}
	return tags
}

// relevanceReason builds the human-readable explanation string, tiered by
// score with source and freshness qualifiers.
func relevanceReason(c *models.Candidate, score float64) string {
	var reasons []string

	switch {
	case score > highRelevanceThreshold:
		reasons = append(reasons, "high relevance")
	case score > goodRelevanceThreshold:
		reasons = append(reasons, "good relevance")
	default:
		reasons = append(reasons, "moderate relevance")
	}

	source := strings.ToLower(c.Source)
	if strings.Contains(source, "yelp") || strings.Contains(source, "google") {
		reasons = append(reasons, "verified source")
	}
	if c.Date != "" {
		reasons = append(reasons, "recent content")
	}

	return strings.Join(reasons, " • ")
}
