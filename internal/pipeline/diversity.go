package pipeline

import (
	"strings"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/ranking"
)

// trustedDirectoryDomains are business/maps providers exempted from the
// standard per-domain cap; they may accumulate up to max_results.
var trustedDirectoryDomains = []string{"yelp.com", "google.com"}

// LimitDiversity caps per-domain result counts in a single left-to-right
// pass. The (N+1)-th candidate from a capped domain is dropped, not
// reordered. Candidates without a parseable URL share the "unknown" domain.
func LimitDiversity(candidates []models.Candidate, maxDomainRepeats, maxResults int) []models.Candidate {
	counts := make(map[string]int)

	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		domain := ranking.Domain(c.URL)
		counts[domain]++

		limit := maxDomainRepeats
		if isTrustedDirectory(domain) {
			limit = maxResults
		}
		if counts[domain] <= limit {
			kept = append(kept, c)
		}
	}
	return kept
}

func isTrustedDirectory(domain string) bool {
	for _, trusted := range trustedDirectoryDomains {
		if strings.Contains(domain, trusted) {
			return true
		}
	}
	return false
}
