package config

import (
	"sync"
	"testing"
)

func TestStoreApply(t *testing.T) {
	s := NewStore(Default())

	updated, err := s.Apply(map[string]interface{}{
		"min_relevance_score": 0.5,
		"max_results":         float64(7), // JSON numbers decode as float64
	})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if updated.Search.MinRelevanceScore != 0.5 || updated.Search.MaxResults != 7 {
		t.Errorf("updates not applied: %+v", updated.Search)
	}
	if s.Current().Search.MaxResults != 7 {
		t.Error("Current() does not reflect applied update")
	}
}

func TestStoreApplyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		updates map[string]interface{}
	}{
		{"unknown field", map[string]interface{}{"not_a_field": 1}},
		{"negative value", map[string]interface{}{"min_relevance_score": -0.1}},
		{"non-numeric", map[string]interface{}{"max_results": "ten"}},
		{"fractional int", map[string]interface{}{"max_results": 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(Default())
			before := s.Current()
			if _, err := s.Apply(tt.updates); err == nil {
				t.Fatal("expected error")
			}
			if s.Current() != before {
				t.Error("failed Apply must leave the live snapshot untouched")
			}
		})
	}
}

// A rejected batch must be all-or-nothing even when some fields were valid.
func TestStoreApplyAtomicBatch(t *testing.T) {
	s := NewStore(Default())
	_, err := s.Apply(map[string]interface{}{
		"min_relevance_score": 0.9,
		"bogus":               1,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if s.Current().Search.MinRelevanceScore == 0.9 {
		t.Error("partial update leaked into the live snapshot")
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore(Default())
	snapshot := s.Current()

	if _, err := s.Apply(map[string]interface{}{"max_results": 3}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if snapshot.Search.MaxResults != 10 {
		t.Error("earlier snapshot mutated by a later update")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = s.Apply(map[string]interface{}{"max_results": float64(j + 1)})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := s.Current()
				if cfg.Search.MaxResults < 1 {
					t.Error("observed invalid snapshot")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewStoreNilSeedsDefaults(t *testing.T) {
	s := NewStore(nil)
	if s.Current().Search.MaxResults != 10 {
		t.Error("nil seed should fall back to defaults")
	}
}

func TestReplaceAppliesDefaults(t *testing.T) {
	s := NewStore(Default())
	s.Replace(&Config{Debug: true})

	cfg := s.Current()
	if !cfg.Debug {
		t.Error("Replace lost explicit field")
	}
	if cfg.Search.MaxResults != 10 {
		t.Error("Replace should zero-fill defaults")
	}
}
