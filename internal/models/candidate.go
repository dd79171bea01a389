// Package models defines core data structures for candidates, requests, and search responses.
package models

// Candidate is a single fetched result record before scoring and filtering.
// Provider adapters convert their raw API records into this canonical shape
// at the boundary, so downstream pipeline stages never branch on missing fields.
type Candidate struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Snippet     string   `json:"snippet"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	Rating      float64  `json:"rating,omitempty"`
	ReviewCount int      `json:"review_count,omitempty"`
	Price       string   `json:"price,omitempty"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Author      string   `json:"author,omitempty"`
	Date        string   `json:"date,omitempty"`
	Categories  []string `json:"categories,omitempty"`

	// DiversityPenalty marks a candidate for a multiplicative score penalty.
	// Reserved for per-result flags set upstream; the diversity limiter itself
	// drops over-cap candidates rather than flagging them.
	DiversityPenalty bool `json:"diversity_penalty,omitempty"`
}

// Scored pairs a candidate with its composite score. The score is only
// meaningful after ranking; comparisons before that stage are undefined.
type Scored struct {
	Candidate
	Score float64
}
