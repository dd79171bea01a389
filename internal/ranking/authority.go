package ranking

import (
	"net/url"
	"strings"
)

// domainAuthority is a fixed lookup of known high-signal domains.
var domainAuthority = map[string]float64{
	"stackoverflow.com":      0.9,
	"github.com":             0.9,
	"docs.microsoft.com":     0.8,
	"developer.mozilla.org":  0.8,
	"python.org":             0.8,
	"reactjs.org":            0.8,
	"vuejs.org":              0.8,
	"angular.io":             0.8,
	"medium.com":             0.6,
	"dev.to":                 0.6,
	"hashnode.dev":           0.6,
	"blog.logrocket.com":     0.7,
	"css-tricks.com":         0.7,
	"smashingmagazine.com":   0.7,
	"alistapart.com":         0.7,
}

// AuthorityScorer scores candidates by source domain reputation.
type AuthorityScorer struct{}

// NewAuthorityScorer creates an authority scorer.
func NewAuthorityScorer() *AuthorityScorer { return &AuthorityScorer{} }

// Name returns the scorer name.
func (s *AuthorityScorer) Name() string { return "authority" }

// Score looks the domain up in the authority table, falling back to a score
// by top-level domain. Unknown or unparseable hosts score 0.5.
func (s *AuthorityScorer) Score(ctx *ScoringContext) float64 {
	domain := Domain(ctx.Candidate.URL)

	if score, ok := domainAuthority[domain]; ok {
		return score
	}

	switch {
	case strings.HasSuffix(domain, ".gov"):
		return 0.8
	case strings.HasSuffix(domain, ".org"), strings.HasSuffix(domain, ".edu"):
		return 0.7
	case strings.HasSuffix(domain, ".com"):
		return 0.6
	default:
		return 0.5
	}
}

// Domain extracts the host from a URL, or "unknown" when absent or
// unparseable. Shared with the diversity limiter so both stages agree on
// what counts as a domain.
func Domain(raw string) string {
	if raw == "" {
		return "unknown"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
