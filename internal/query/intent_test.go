package query

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{
			name:     "ai automation keyword",
			query:    "workflow automation platforms",
			expected: IntentAIAutomation,
		},
		{
			name:     "rpa shorthand",
			query:    "rpa vendors",
			expected: IntentAIAutomation,
		},
		{
			name:     "business plus location",
			query:    "coffee shop in san francisco",
			expected: IntentLocalBusiness,
		},
		{
			name:     "business without location stays general",
			query:    "good pizza",
			expected: IntentGeneral,
		},
		{
			name:     "location without business stays general",
			query:    "weather san francisco",
			expected: IntentGeneral,
		},
		{
			name:     "learning dominates business",
			query:    "tutorial opening a restaurant in new york",
			expected: IntentGeneral,
		},
		{
			name:     "pure comparison",
			query:    "iphone versus pixel",
			expected: IntentCompareRank,
		},
		{
			name:     "comparison with learning keyword stays general",
			query:    "compare python courses", // "compare" is also a learning keyword
			expected: IntentGeneral,
		},
		{
			name:     "news stays general",
			query:    "latest golang announcement",
			expected: IntentGeneral,
		},
		{
			name:     "no match falls back to general",
			query:    "zebra migration patterns",
			expected: IntentGeneral,
		},
		{
			name:     "empty query",
			query:    "",
			expected: IntentGeneral,
		},
		{
			name:     "mixed case input",
			query:    "Coffee Shop In San Francisco",
			expected: IntentLocalBusiness,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.query); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.expected)
			}
		})
	}
}

// ai_automation is the first rule, so it wins even when learning or business
// signals are also present.
func TestClassifyAIAutomationPrecedence(t *testing.T) {
	queries := []string{
		"ai automation tutorial",
		"best workflow automation near me",
		"compare top rpa tools",
	}
	for _, q := range queries {
		if got := Classify(q); got != IntentAIAutomation {
			t.Errorf("Classify(%q) = %s, want %s", q, got, IntentAIAutomation)
		}
	}
}

func TestRulesOrdering(t *testing.T) {
	expected := []string{"ai_automation", "learning", "local_business", "news", "comparison"}
	if len(Rules) != len(expected) {
		t.Fatalf("expected %d rules, got %d", len(expected), len(Rules))
	}
	for i, name := range expected {
		if Rules[i].Name != name {
			t.Errorf("rule %d = %q, want %q", i, Rules[i].Name, name)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	q := "best coffee shop near me in seattle"
	first := Classify(q)
	for i := 0; i < 20; i++ {
		if got := Classify(q); got != first {
			t.Fatalf("Classify is not deterministic: %s vs %s", got, first)
		}
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected string
	}{
		{IntentGeneral, "general"},
		{IntentLocalBusiness, "local_business"},
		{IntentCompareRank, "compare_rank"},
		{IntentAIAutomation, "ai_automation"},
		{Intent(99), "general"},
	}
	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.expected {
			t.Errorf("Intent(%d).String() = %q, want %q", tt.intent, got, tt.expected)
		}
	}
}
