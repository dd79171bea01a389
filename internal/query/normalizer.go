// Package query provides query normalization, intent classification, and
// key-phrase extraction for the result-quality pipeline.
package query

import (
	"regexp"
	"strings"
)

// stopWords are dropped from queries during normalization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "said": true, "each": true, "which": true,
	"she": true, "do": true, "how": true, "their": true, "if": true,
	"up": true, "out": true, "many": true, "then": true, "them": true,
	"these": true, "so": true, "some": true, "her": true, "would": true,
	"make": true, "like": true, "into": true, "him": true, "time": true,
	"two": true, "more": true, "go": true, "no": true, "way": true,
	"could": true, "my": true, "than": true, "first": true, "been": true,
	"call": true, "who": true, "now": true, "find": true, "long": true,
	"down": true, "day": true, "did": true, "get": true, "come": true,
	"made": true, "may": true, "part": true,
}

// interrogatives are kept even when they appear in the stop-word set because
// they carry intent signal.
var interrogatives = map[string]bool{
	"how": true, "what": true, "when": true, "where": true, "why": true,
	"which": true, "who": true,
}

// synonym expansions are applied in declaration order so normalization is
// deterministic. Matching is substring containment over the joined filtered
// query, and each hit appends its expansion to the end of the string.
var synonyms = []struct {
	key       string
	expansion string
}{
	{"tutorial", "guide how-to learn"},
	{"guide", "tutorial how-to learn"},
	{"how-to", "tutorial guide learn"},
	{"learn", "tutorial guide how-to"},
	{"best", "top excellent great"},
	{"top", "best excellent great"},
	{"compare", "vs versus comparison"},
	{"vs", "compare versus comparison"},
	{"versus", "compare vs comparison"},
	{"review", "rating feedback opinion"},
	{"rating", "review feedback opinion"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize lowercases the query, collapses whitespace, drops stop words
// (keeping interrogatives), and appends synonym expansions.
//
// Normalization is not idempotent: synonym expansion is additive and not
// closed, so re-applying it appends duplicate expansions. Callers normalize
// exactly once per query.
func Normalize(raw string) string {
	q := strings.ToLower(raw)
	q = strings.TrimSpace(whitespaceRun.ReplaceAllString(q, " "))

	var kept []string
	for _, word := range strings.Fields(q) {
		if !stopWords[word] || interrogatives[word] {
			kept = append(kept, word)
		}
	}

	expanded := strings.Join(kept, " ")
	for _, s := range synonyms {
		if strings.Contains(expanded, s.key) {
			expanded += " " + s.expansion
		}
	}
	return expanded
}
