package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ctxFor(c models.Candidate, normalized string, intent query.Intent) *ScoringContext {
	return NewScoringContext(&c, normalized, intent, query.KeyPhrases(normalized), testNow)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTextScorer(t *testing.T) {
	s := NewTextScorer()

	tests := []struct {
		name      string
		query     string
		candidate models.Candidate
		expected  float64
	}{
		{
			name:      "no overlap non-business",
			query:     "kubernetes networking",
			candidate: models.Candidate{Title: "Gardening at home", Snippet: "Soil and seeds"},
			expected:  0.0,
		},
		{
			name:  "full word overlap non-business",
			query: "kubernetes networking",
			candidate: models.Candidate{
				Title:   "Kubernetes networking deep dive",
				Snippet: "Pods and services",
			},
			// 2/2 words matched, ratio 1.0 * 0.3; no key phrases for this query.
			expected: 0.3,
		},
		{
			name:      "business floor applies to empty listing",
			query:     "coffee shop",
			candidate: models.Candidate{Title: "", Snippet: ""},
			// floor 0.2, no title bonus, no content bonus (content is a single space).
			expected: 0.2,
		},
		{
			name:      "business listing gets presence bonuses",
			query:     "coffee shop",
			candidate: models.Candidate{Title: "Joe's Diner", Snippet: "Breakfast all day"},
			// floor 0.2 + title 0.1 + content 0.1.
			expected: 0.4,
		},
		{
			name:  "phrase match scales with word count",
			query: "coffee shop in san francisco",
			candidate: models.Candidate{
				Title:   "Blue Bottle coffee shop",
				Snippet: "Best espresso in san francisco",
			},
			// phrases: "coffee shop" (2 words, 0.4) + "san francisco" (2 words, 0.4)
			// + "shop" (0.2) + "francisco" (0.2) = 1.2; clamped to 1.0.
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(ctxFor(tt.candidate, tt.query, query.IntentGeneral))
			if !almostEqual(got, tt.expected) {
				t.Errorf("Score() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFreshnessScorer(t *testing.T) {
	s := NewFreshnessScorer()

	tests := []struct {
		name     string
		date     string
		expected float64
	}{
		{"empty date is neutral", "", 0.5},
		{"no year is neutral", "last Tuesday", 0.5},
		{"current year", "2025-06-01", 1.0},
		{"one year old", "2024-03-10", 1.0 / 1.5},
		{"four years old", "2021", 1.0 / 3.0},
		{"very old content floors at 0.1", "2001", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Candidate{Date: tt.date}
			got := s.Score(ctxFor(c, "anything", query.IntentGeneral))
			if !almostEqual(got, tt.expected) {
				t.Errorf("Score(date=%q) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestAuthorityScorer(t *testing.T) {
	s := NewAuthorityScorer()

	tests := []struct {
		name     string
		url      string
		expected float64
	}{
		{"known high authority", "https://stackoverflow.com/q/1", 0.9},
		{"known mid authority", "https://medium.com/@x/post", 0.6},
		{"gov fallback", "https://data.census.gov/table", 0.8},
		{"org fallback", "https://golang.org/doc", 0.7},
		{"com fallback", "https://example.com/page", 0.6},
		{"unknown tld", "https://service.internal/page", 0.5},
		{"empty url", "", 0.5},
		{"relative url has no host", "/just/a/path", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Candidate{URL: tt.url}
			got := s.Score(ctxFor(c, "q", query.IntentGeneral))
			if !almostEqual(got, tt.expected) {
				t.Errorf("Score(url=%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"https://www.yelp.com/biz/x", "www.yelp.com"},
		{"http://example.com", "example.com"},
		{"", "unknown"},
		{"not a url at all ://", "unknown"},
		{"/relative/path", "unknown"},
	}
	for _, tt := range tests {
		if got := Domain(tt.raw); got != tt.expected {
			t.Errorf("Domain(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestEngagementScorer(t *testing.T) {
	s := NewEngagementScorer()

	tests := []struct {
		name     string
		rating   float64
		reviews  int
		expected float64
	}{
		{"no signals is neutral base", 0, 0, 0.5},
		{"rating only", 2.0, 0, 0.7},
		{"rating bonus capped", 9.9, 0, 0.8},
		{"reviews only", 0, 100, 0.6},
		{"review bonus capped", 0, 5000, 0.7},
		{"both capped stays at 1.0", 5.0, 2000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Candidate{Rating: tt.rating, ReviewCount: tt.reviews}
			got := s.Score(ctxFor(c, "q", query.IntentGeneral))
			if !almostEqual(got, tt.expected) {
				t.Errorf("Score(rating=%v reviews=%d) = %v, want %v", tt.rating, tt.reviews, got, tt.expected)
			}
		})
	}
}
