package pipeline

import (
	"net/url"
	"strings"

	"github.com/hoshii/erabu/internal/models"
)

// titleSimilarityThreshold is the token-set Jaccard similarity above which
// two titles are treated as duplicates.
const titleSimilarityThreshold = 0.8

// trackingParams are query-parameter substrings stripped during URL
// normalization.
var trackingParams = []string{"utm_", "fbclid", "gclid", "ref", "source"}

// Dedupe collapses near-duplicate candidates. Either check triggers a drop:
// exact equality of normalized URLs, or fuzzy title similarity against any
// previously accepted title. First occurrence wins and output order matches
// first-seen order. Title comparison is O(n²); acceptable since result counts
// are capped at tens.
func Dedupe(candidates []models.Candidate) []models.Candidate {
	seenURLs := make(map[string]bool)
	var seenTitles []string

	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		normalized := NormalizeURL(c.URL)
		if seenURLs[normalized] {
			continue
		}
		if similarToAny(c.Title, seenTitles) {
			continue
		}
		seenURLs[normalized] = true
		seenTitles = append(seenTitles, c.Title)
		kept = append(kept, c)
	}
	return kept
}

// NormalizeURL strips tracking query parameters and the fragment so URLs
// differing only in those compare equal. Unparseable URLs are returned as-is.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	values := u.Query()
	for key := range values {
		lower := strings.ToLower(key)
		for _, tracker := range trackingParams {
			if strings.Contains(lower, tracker) {
				values.Del(key)
				break
			}
		}
	}
	u.RawQuery = values.Encode()
	u.Fragment = ""
	return u.String()
}

// similarToAny reports whether title's token-set Jaccard similarity with any
// seen title meets the threshold.
func similarToAny(title string, seen []string) bool {
	tokens := tokenSet(title)
	for _, s := range seen {
		if jaccard(tokens, tokenSet(s)) >= titleSimilarityThreshold {
			return true
		}
	}
	return false
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
