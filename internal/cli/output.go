// Package cli renders search responses for the command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hoshii/erabu/internal/models"
)

// OutputFormat is the format for search result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteResponse writes the search response to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteResponse(w io.Writer, response *models.Response, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeResponseText(w, response)
		return nil
	}
}

func writeResponseText(w io.Writer, response *models.Response) {
	if response.Count == 0 {
		fmt.Fprintf(w, "\n%s\n", response.Message)
		if len(response.Suggestions) > 0 {
			fmt.Fprintln(w, "\nSuggestions:")
			for _, s := range response.Suggestions {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
		return
	}

	fmt.Fprintf(w, "\nFound %d results for %q (intent: %s, source: %s)\n\n",
		response.Count, response.QueryUsed, response.Intent, response.Source)
	for i, r := range response.Results {
		writeOneResult(w, i+1, &r)
	}
	if qm := response.QualityMetrics; qm != nil {
		fmt.Fprintf(w, "Quality: %d passed relevance, %d duplicates removed, %d capped for diversity, scores %s\n",
			qm.RelevanceFiltered, qm.DuplicatesRemoved, qm.SourceDiversityApplied, qm.FinalScoreRange)
	}
}

func writeOneResult(w io.Writer, rank int, r *models.Result) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "%d. %s\n", rank, r.Title)
	fmt.Fprintf(w, "   Score: %.3f | Source: %s", r.Score, r.Source)
	if r.Rating > 0 {
		fmt.Fprintf(w, " | Rating: %.1f", r.Rating)
	}
	fmt.Fprintln(w)
	if r.Address != "" {
		fmt.Fprintf(w, "   Address: %s\n", r.Address)
	}
	if r.URL != "" {
		fmt.Fprintf(w, "   URL: %s\n", r.URL)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "   Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintf(w, "   %s\n", r.Snippet)
	fmt.Fprintf(w, "   Why: %s\n\n", r.RelevanceReason)
}

// ParseFormat maps a flag value to an output format, defaulting to text.
func ParseFormat(s string) OutputFormat {
	if strings.EqualFold(s, string(OutputJSON)) {
		return OutputJSON
	}
	return OutputText
}
