package query

import (
	"reflect"
	"testing"
)

func TestKeyPhrases(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:  "phrase claims its leading word",
			query: "coffee shop in san francisco",
			// "coffee shop" claims "coffee", "san francisco" claims "san",
			// so the single words "coffee" and "san" are skipped but
			// "shop" and "francisco" still qualify.
			expected: []string{"coffee shop", "san francisco", "shop", "francisco"},
		},
		{
			name:     "single important words",
			query:    "cheap food near home",
			expected: []string{"food"},
		},
		{
			name:     "action words last",
			query:    "find best restaurant",
			expected: []string{"restaurant", "find", "best"},
		},
		{
			name:     "no matches",
			query:    "quantum entanglement basics",
			expected: nil,
		},
		{
			name:     "duplicates collapse",
			query:    "coffee coffee coffee",
			expected: []string{"coffee"},
		},
		{
			name:     "case insensitive",
			query:    "Best CAFE in Chicago",
			expected: []string{"cafe", "chicago", "best"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyPhrases(tt.query)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("KeyPhrases(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestKeyPhrasesStableOrder(t *testing.T) {
	q := "find top coffee shop in san francisco with best rating"
	first := KeyPhrases(q)
	for i := 0; i < 10; i++ {
		if got := KeyPhrases(q); !reflect.DeepEqual(got, first) {
			t.Fatalf("KeyPhrases order unstable: %v vs %v", got, first)
		}
	}
}
