package query

import "strings"

// Phrase categories for key-phrase extraction, in claim order: multi-word
// business/location phrases first, then single important words, location
// words, and action verbs.
var businessLocationPhrases = []string{
	"coffee shop", "restaurant", "cafe", "business", "service",
	"san francisco", "new york", "los angeles", "chicago", "miami",
	"bay area", "silicon valley", "manhattan", "brooklyn",
	"new york city", "nyc", "queens",
}

var importantWords = []string{
	"coffee", "shop", "cafe", "restaurant", "food", "business", "service",
	"rating", "price",
}

var locationWords = []string{
	"san", "francisco", "york", "angeles", "chicago", "miami", "boston",
	"seattle", "city",
}

var actionWords = []string{"find", "top", "best", "compare", "search", "locate"}

// KeyPhrases extracts an ordered, deduplicated key-phrase set from the query.
// Longer phrases claim their leading word, so later categories skip any word
// already claimed by an earlier phrase. Extraction order is stable so the
// relevance filter and scorer see the same phrase set for a given query.
func KeyPhrases(q string) []string {
	lower := strings.ToLower(q)
	words := strings.Fields(lower)

	var phrases []string
	seen := make(map[string]bool)
	claimed := make(map[string]bool) // leading words of accepted phrases

	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		phrases = append(phrases, p)
		claimed[strings.Fields(p)[0]] = true
	}

	for _, phrase := range businessLocationPhrases {
		if strings.Contains(lower, phrase) {
			add(phrase)
		}
	}

	addWordsFrom := func(category []string) {
		inCategory := make(map[string]bool, len(category))
		for _, w := range category {
			inCategory[w] = true
		}
		for _, w := range words {
			if inCategory[w] && !claimed[w] {
				add(w)
			}
		}
	}
	addWordsFrom(importantWords)
	addWordsFrom(locationWords)
	addWordsFrom(actionWords)

	return phrases
}
