package models

import "fmt"

// Request is a search request from the orchestration layer.
type Request struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// Validate ensures the request has valid fields and normalizes the count.
// Returns an error if the query is empty; a zero count is filled in by the
// engine from the configured max_results.
func (r *Request) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.Count < 0 {
		r.Count = 0
	}
	if r.Count > 50 {
		r.Count = 50
	}
	return nil
}
