package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9090
search:
  min_relevance_score: 0.35
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug not parsed")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Host default missing: %q", cfg.Server.Host)
	}
	if cfg.Search.MinRelevanceScore != 0.35 {
		t.Errorf("MinRelevanceScore = %v, want 0.35", cfg.Search.MinRelevanceScore)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("MaxResults default missing: %d", cfg.Search.MaxResults)
	}
	if cfg.Providers.DefaultLocation != "San Francisco, CA" {
		t.Errorf("DefaultLocation default missing: %q", cfg.Providers.DefaultLocation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not: a: mapping"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Search.MinRelevanceScore = 0.42
	cfg.Providers.YelpAPIKey = "secret"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Search.MinRelevanceScore != 0.42 {
		t.Errorf("MinRelevanceScore = %v after round trip", loaded.Search.MinRelevanceScore)
	}
	if loaded.Providers.YelpAPIKey != "secret" {
		t.Errorf("YelpAPIKey lost in round trip")
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	cfg := Default()
	if !cfg.Search.WeightsNearOne(0.001) {
		t.Errorf("default weights sum to %v (+%v diversity), want 1.0",
			cfg.Search.WeightSum(), cfg.Search.DiversityWeight)
	}
}

func TestWeightsNearOne(t *testing.T) {
	s := SearchConfig{
		TextRelevanceWeight: 0.5,
		FreshnessWeight:     0.2,
		AuthorityWeight:     0.2,
		EngagementWeight:    0.1,
		DiversityWeight:     0.1,
	}
	if s.WeightsNearOne(0.01) {
		t.Error("weights summing to 1.1 should not pass a 0.01 tolerance")
	}
	if !s.WeightsNearOne(0.2) {
		t.Error("weights summing to 1.1 should pass a 0.2 tolerance")
	}
}
