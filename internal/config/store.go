package config

import (
	"fmt"
	"sync/atomic"
)

// Store holds the live configuration as an immutable snapshot. Readers get a
// consistent view via Current while admin updates and file reloads swap in a
// fresh copy atomically, so in-flight pipeline runs never observe a partial
// mutation.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	if cfg == nil {
		cfg = Default()
	}
	s.current.Store(cfg)
	return s
}

// Current returns the active snapshot. The returned config must be treated
// as read-only.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Replace swaps in a completely new snapshot (used by the file watcher).
func (s *Store) Replace(cfg *Config) {
	ApplyDefaults(cfg)
	s.current.Store(cfg)
}

// Apply validates the given field updates, builds a new snapshot with them
// applied, and swaps it in. On any invalid field the live config is left
// untouched and an error is returned.
func (s *Store) Apply(updates map[string]interface{}) (*Config, error) {
	next := *s.Current() // shallow copy; Config holds no reference fields

	for key, raw := range updates {
		switch key {
		case "min_relevance_score":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MinRelevanceScore = v
		case "min_keyword_matches":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MinKeywordMatches = v
		case "max_domain_repeats":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MaxDomainRepeats = v
		case "max_results":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MaxResults = v
		case "max_age_days":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MaxAgeDays = v
		case "text_relevance_weight":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.TextRelevanceWeight = v
		case "freshness_weight":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.FreshnessWeight = v
		case "authority_weight":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.AuthorityWeight = v
		case "engagement_weight":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.EngagementWeight = v
		case "diversity_weight":
			v, err := asFloat(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.DiversityWeight = v
		case "max_title_length":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MaxTitleLength = v
		case "max_snippet_length":
			v, err := asInt(key, raw)
			if err != nil {
				return nil, err
			}
			next.Search.MaxSnippetLength = v
		default:
			return nil, fmt.Errorf("unknown config field %q", key)
		}
	}

	s.current.Store(&next)
	return &next, nil
}

func asFloat(key string, raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("field %q must be non-negative", key)
		}
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("field %q must be non-negative", key)
		}
		return float64(v), nil
	default:
		return 0, fmt.Errorf("field %q must be numeric, got %T", key, raw)
	}
}

func asInt(key string, raw interface{}) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) || v < 0 {
			return 0, fmt.Errorf("field %q must be a non-negative integer", key)
		}
		return int(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("field %q must be a non-negative integer", key)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("field %q must be numeric, got %T", key, raw)
	}
}
