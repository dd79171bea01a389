package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Providers.DefaultLocation == "" {
		cfg.Providers.DefaultLocation = "San Francisco, CA"
	}
	if cfg.Providers.TimeoutSeconds == 0 {
		cfg.Providers.TimeoutSeconds = 10
	}
	if cfg.Providers.RequestsPerSecond == 0 {
		cfg.Providers.RequestsPerSecond = 5
	}
	if cfg.Search.MinRelevanceScore == 0 {
		cfg.Search.MinRelevanceScore = 0.2
	}
	if cfg.Search.MinKeywordMatches == 0 {
		cfg.Search.MinKeywordMatches = 1
	}
	if cfg.Search.MaxDomainRepeats == 0 {
		cfg.Search.MaxDomainRepeats = 2
	}
	if cfg.Search.MaxAgeDays == 0 {
		cfg.Search.MaxAgeDays = 365
	}
	if cfg.Search.TextRelevanceWeight == 0 {
		cfg.Search.TextRelevanceWeight = 0.4
	}
	if cfg.Search.FreshnessWeight == 0 {
		cfg.Search.FreshnessWeight = 0.2
	}
	if cfg.Search.AuthorityWeight == 0 {
		cfg.Search.AuthorityWeight = 0.2
	}
	if cfg.Search.EngagementWeight == 0 {
		cfg.Search.EngagementWeight = 0.1
	}
	if cfg.Search.DiversityWeight == 0 {
		cfg.Search.DiversityWeight = 0.1
	}
	if cfg.Search.MaxTitleLength == 0 {
		cfg.Search.MaxTitleLength = 80
	}
	if cfg.Search.MaxSnippetLength == 0 {
		cfg.Search.MaxSnippetLength = 160
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 10
	}
}

// Default returns a config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
