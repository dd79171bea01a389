// Package pipeline runs the result-quality stages: relevance filtering,
// deduplication, source-diversity capping, scoring, and formatting.
package pipeline

import (
	"strings"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
)

// businessSignals are content words that mark a candidate as business-shaped
// for the lenient local-business gate.
var businessSignals = []string{"restaurant", "food", "cafe", "shop", "business", "service", "coffee"}

// minimum title/snippet lengths for the lenient general-intent gate.
const (
	minTitleLen   = 3
	minSnippetLen = 5
)

// FilterRelevance applies the intent-aware hard gate. Failing candidates are
// permanently dropped, never merely down-scored. The output is always a
// subset of the input in original order. minMatches is the configured phrase
// match floor for keyword-gated intents; values below 1 are treated as 1.
func FilterRelevance(candidates []models.Candidate, normalized string, intent query.Intent, minMatches int) []models.Candidate {
	if minMatches < 1 {
		minMatches = 1
	}
	keyPhrases := query.KeyPhrases(normalized)

	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		title := strings.ToLower(c.Title)
		snippet := strings.ToLower(c.Snippet)
		content := title + " " + snippet

		switch intent {
		case query.IntentGeneral:
			// Lenient: basic quality only, no keyword requirement.
			if len(title) >= minTitleLen && len(snippet) >= minSnippetLen {
				kept = append(kept, c)
			}
		case query.IntentLocalBusiness:
			matches := countPhraseMatches(keyPhrases, content)
			if matches >= minMatches+1 {
				kept = append(kept, c)
				continue
			}
			if matches >= minMatches && hasBusinessSignal(content) {
				kept = append(kept, c)
			}
		default:
			if countPhraseMatches(keyPhrases, content) >= minMatches {
				kept = append(kept, c)
			}
		}
	}
	return kept
}

func countPhraseMatches(phrases []string, content string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(content, p) {
			count++
		}
	}
	return count
}

func hasBusinessSignal(content string) bool {
	for _, s := range businessSignals {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}
