// Package provider implements the source adapters that fetch raw candidates
// from external search providers, plus the intent router with its fallback
// chain. Every adapter converts its provider-specific response into
// models.Candidate at the boundary.
package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
)

// ErrUnavailable is returned by an adapter whose credentials are missing or
// placeholders. The router treats it like any other provider failure and
// moves on to the next source.
var ErrUnavailable = errors.New("provider unavailable")

// Query holds the parameters for one provider fetch.
type Query struct {
	Term     string
	Location string
	Limit    int
}

// Provider fetches raw candidate records from one external source.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]models.Candidate, error)
}

// placeholder API key values that count as "not configured".
var placeholderKeys = map[string]bool{
	"":                                  true,
	"your_yelp_api_key_here":            true,
	"your_google_api_key_here":          true,
	"your_custom_search_engine_id_here": true,
}

func configured(key string) bool {
	return !placeholderKeys[key]
}

// newHTTPClient builds the shared client shape for provider calls: a fixed
// per-call timeout so a slow provider degrades to the fallback chain instead
// of stalling the pipeline.
func newHTTPClient(cfg *config.ProviderConfig) *http.Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// newLimiter builds the per-provider rate limiter.
func newLimiter(cfg *config.ProviderConfig) *rate.Limiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
