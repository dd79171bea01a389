// Package config provides configuration loading and the live snapshot store
// for the erabu server.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool           `yaml:"debug"`
	Server    ServerConfig   `yaml:"server"`
	Providers ProviderConfig `yaml:"providers"`
	Search    SearchConfig   `yaml:"search"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ProviderConfig holds external provider credentials. A missing or
// placeholder key makes the corresponding provider report itself unavailable
// rather than fail the pipeline.
type ProviderConfig struct {
	YelpAPIKey        string  `yaml:"yelp_api_key"`
	GooglePlacesKey   string  `yaml:"google_places_key"`
	CustomSearchKey   string  `yaml:"custom_search_key"`
	CustomSearchCX    string  `yaml:"custom_search_cx"`
	DefaultLocation   string  `yaml:"default_location"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// SearchConfig holds the tunable weights and thresholds of the result-quality
// pipeline. The four scoring weights are expected to sum near 1.0 but this is
// not enforced; WeightSum exposes the drift check to callers and tests.
type SearchConfig struct {
	MinRelevanceScore float64 `yaml:"min_relevance_score"`
	MinKeywordMatches int     `yaml:"min_keyword_matches"`
	MaxDomainRepeats  int     `yaml:"max_domain_repeats"`

	MaxAgeDays int `yaml:"max_age_days"`

	TextRelevanceWeight float64 `yaml:"text_relevance_weight"`
	FreshnessWeight     float64 `yaml:"freshness_weight"`
	AuthorityWeight     float64 `yaml:"authority_weight"`
	EngagementWeight    float64 `yaml:"engagement_weight"`
	DiversityWeight     float64 `yaml:"diversity_weight"`

	MaxTitleLength   int `yaml:"max_title_length"`
	MaxSnippetLength int `yaml:"max_snippet_length"`
	MaxResults       int `yaml:"max_results"`
}

// WeightSum returns the sum of the four composite scoring weights.
func (s *SearchConfig) WeightSum() float64 {
	return s.TextRelevanceWeight + s.FreshnessWeight + s.AuthorityWeight + s.EngagementWeight
}

// WeightsNearOne reports whether the scoring weights sum to 1.0 within tol.
func (s *SearchConfig) WeightsNearOne(tol float64) bool {
	return math.Abs(s.WeightSum()+s.DiversityWeight-1.0) <= tol
}

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path. Used for persisting admin updates.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
