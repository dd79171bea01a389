package pipeline

import (
	"testing"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
)

func TestFilterRelevanceGeneral(t *testing.T) {
	candidates := []models.Candidate{
		{ID: "ok", Title: "Go concurrency patterns", Snippet: "Channels and goroutines explained"},
		{ID: "short-title", Title: "Go", Snippet: "A fine snippet here"},
		{ID: "short-snippet", Title: "Go concurrency", Snippet: "abc"},
		{ID: "empty", Title: "", Snippet: ""},
	}

	kept := FilterRelevance(candidates, "golang concurrency", query.IntentGeneral, 1)
	if len(kept) != 1 || kept[0].ID != "ok" {
		t.Errorf("expected only %q to pass the general gate, got %v", "ok", ids(kept))
	}
}

func TestFilterRelevanceLocalBusiness(t *testing.T) {
	normalized := "coffee shop in san francisco"

	tests := []struct {
		name      string
		candidate models.Candidate
		kept      bool
	}{
		{
			name: "two phrase matches",
			candidate: models.Candidate{
				Title:   "Blue Bottle coffee shop",
				Snippet: "In the heart of san francisco",
			},
			kept: true,
		},
		{
			// Only the "shop" phrase matches, but "shop" is also a business
			// signal, so the lenient branch keeps it.
			name: "one match plus business signal",
			candidate: models.Candidate{
				Title:   "Ritual roasters",
				Snippet: "A cozy shop with great espresso",
			},
			kept: true,
		},
		{
			// Only the "francisco" phrase matches and nothing in the content
			// looks business-shaped.
			name: "one match without business signal",
			candidate: models.Candidate{
				Title:   "Francisco Varela biography",
				Snippet: "Life of a neuroscientist",
			},
			kept: false,
		},
		{
			name: "zero matches",
			candidate: models.Candidate{
				Title:   "Chicago pizza rankings",
				Snippet: "Deep dish compared",
			},
			kept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := FilterRelevance([]models.Candidate{tt.candidate}, normalized, query.IntentLocalBusiness, 1)
			if (len(kept) == 1) != tt.kept {
				t.Errorf("kept = %v, want kept=%v", ids(kept), tt.kept)
			}
		})
	}
}

func TestFilterRelevanceOtherIntents(t *testing.T) {
	normalized := "best coffee"
	candidates := []models.Candidate{
		{ID: "match", Title: "Best coffee beans ranked", Snippet: "Top roasts"},
		{ID: "no-match", Title: "Tea varieties", Snippet: "Green and black"},
	}

	for _, intent := range []query.Intent{query.IntentCompareRank, query.IntentAIAutomation} {
		kept := FilterRelevance(candidates, normalized, intent, 1)
		if len(kept) != 1 || kept[0].ID != "match" {
			t.Errorf("intent %s: expected only %q, got %v", intent, "match", ids(kept))
		}
	}
}

// A raised floor drops candidates that only clear the default one-phrase bar.
func TestFilterRelevanceMatchFloor(t *testing.T) {
	normalized := "best coffee"
	candidates := []models.Candidate{
		{ID: "both", Title: "Best coffee beans ranked", Snippet: "Top roasts"},
		{ID: "one", Title: "Coffee brewing basics", Snippet: "Pour over methods"},
	}

	kept := FilterRelevance(candidates, normalized, query.IntentCompareRank, 2)
	if len(kept) != 1 || kept[0].ID != "both" {
		t.Errorf("floor 2: expected only %q, got %v", "both", ids(kept))
	}

	// Zero falls back to the minimum of one.
	kept = FilterRelevance(candidates, normalized, query.IntentCompareRank, 0)
	if len(kept) != 2 {
		t.Errorf("floor 0: expected both kept, got %v", ids(kept))
	}
}

// Output is a subset of the input in original order, with no mutation.
func TestFilterRelevanceSubsetProperty(t *testing.T) {
	candidates := []models.Candidate{
		{ID: "a", Title: "Best coffee guide", Snippet: "All about coffee"},
		{ID: "b", Title: "xx", Snippet: "y"},
		{ID: "c", Title: "Coffee brewing", Snippet: "Methods compared"},
	}

	kept := FilterRelevance(candidates, "coffee", query.IntentGeneral, 1)
	pos := 0
	for _, k := range kept {
		found := false
		for ; pos < len(candidates); pos++ {
			if candidates[pos].ID == k.ID {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("output %v is not an ordered subset of input", ids(kept))
		}
	}
}

func ids(candidates []models.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}
	return out
}
