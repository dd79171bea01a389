package models

// Result is the uniform output schema for a single scored result.
// Terminal form of a candidate; never mutated after formatting.
type Result struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Source          string   `json:"source"`
	FetchedAt       string   `json:"fetched_at"`
	Snippet         string   `json:"snippet"`
	Tags            []string `json:"tags"`
	Rating          float64  `json:"rating,omitempty"`
	Address         string   `json:"address,omitempty"`
	Author          string   `json:"author,omitempty"`
	Date            string   `json:"date,omitempty"`
	Score           float64  `json:"score"`
	RelevanceReason string   `json:"relevance_reason"`
}

// QualityMetrics reports how many candidates each pipeline stage removed.
// This is a required diagnostic on every successful response.
type QualityMetrics struct {
	RelevanceFiltered      int    `json:"relevance_filtered"`
	DuplicatesRemoved      int    `json:"duplicates_removed"`
	SourceDiversityApplied int    `json:"source_diversity_applied"`
	FinalScoreRange        string `json:"final_score_range"`
}

// Response is the envelope returned for a search request.
type Response struct {
	Source          string          `json:"source"`
	QueryUsed       string          `json:"query_used"`
	NormalizedQuery string          `json:"normalized_query,omitempty"`
	Intent          string          `json:"intent"`
	Location        string          `json:"location,omitempty"`
	Count           int             `json:"count"`
	Results         []Result        `json:"results"`
	Timestamp       string          `json:"timestamp"`
	Message         string          `json:"message,omitempty"`
	Suggestions     []string        `json:"suggestions,omitempty"`
	QualityMetrics  *QualityMetrics `json:"quality_metrics,omitempty"`
}
