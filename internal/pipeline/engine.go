package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/provider"
	"github.com/hoshii/erabu/internal/query"
	"github.com/hoshii/erabu/internal/ranking"
)

// noResultsSuggestions accompany an empty response.
var noResultsSuggestions = []string{
	"Use more specific keywords",
	"Try different phrasing",
	"Check spelling",
	"Broaden your search scope",
}

// Fetcher is the provider-router contract the engine depends on. Satisfied
// by provider.Router; tests substitute stubs.
type Fetcher interface {
	Fetch(ctx context.Context, intent query.Intent, q provider.Query) (string, []models.Candidate)
}

// Engine runs the result-quality pipeline: normalize, classify, fetch,
// filter, dedupe, diversify, score, threshold, format.
type Engine struct {
	store  *config.Store
	router Fetcher
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine with the given dependencies.
func NewEngine(store *config.Store, router Fetcher, logger *zap.Logger) *Engine {
	return &Engine{
		store:  store,
		router: router,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the engine clock. Used by tests for deterministic
// freshness scores and timestamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Search executes the full pipeline for one request. Provider failures and
// empty result sets never surface as errors; only an invalid request does.
func (e *Engine) Search(ctx context.Context, req *models.Request) (*models.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// One snapshot read per run; admin updates swap the pointer, so an
	// in-flight run keeps a consistent view.
	cfg := e.store.Current().Search
	count := req.Count
	if count == 0 {
		count = cfg.MaxResults
	}
	now := e.now()

	// Normalization is additive and not closed under re-application, so it
	// runs exactly once per query.
	normalized := query.Normalize(req.Query)
	intent := query.Classify(normalized)
	e.logger.Debug("query analyzed",
		zap.String("query", req.Query),
		zap.String("normalized", normalized),
		zap.String("intent", intent.String()))

	source, candidates := e.router.Fetch(ctx, intent, provider.Query{
		Term:     normalized,
		Location: req.Location,
		Limit:    count,
	})
	candidates = dropMalformed(candidates)
	if len(candidates) == 0 {
		return e.noResultsResponse(req, normalized, intent, now), nil
	}

	filtered := FilterRelevance(candidates, normalized, intent, cfg.MinKeywordMatches)
	deduped := Dedupe(filtered)
	diverse := LimitDiversity(deduped, cfg.MaxDomainRepeats, cfg.MaxResults)

	ranker := ranking.NewRanker(&cfg)
	scored := ranker.Rank(diverse, normalized, intent, now)
	final := ApplyThreshold(scored, cfg.MinRelevanceScore)

	e.logger.Debug("pipeline stages",
		zap.Int("fetched", len(candidates)),
		zap.Int("relevance_filtered", len(filtered)),
		zap.Int("deduped", len(deduped)),
		zap.Int("diverse", len(diverse)),
		zap.Int("final", len(final)))

	// Filtering everything out gets the same structured reply as an empty
	// fetch, with the stage counts preserved so callers can see where the
	// candidates were lost.
	if len(final) == 0 {
		resp := e.noResultsResponse(req, normalized, intent, now)
		resp.QualityMetrics = &models.QualityMetrics{
			RelevanceFiltered:      len(filtered),
			DuplicatesRemoved:      len(filtered) - len(deduped),
			SourceDiversityApplied: len(deduped) - len(diverse),
			FinalScoreRange:        scoreRange(scored),
		}
		return resp, nil
	}

	results := Format(final, &cfg, now)

	return &models.Response{
		Source:          source,
		QueryUsed:       req.Query,
		NormalizedQuery: normalized,
		Intent:          intent.String(),
		Location:        req.Location,
		Count:           len(results),
		Results:         results,
		Timestamp:       now.Format(time.RFC3339),
		QualityMetrics: &models.QualityMetrics{
			RelevanceFiltered:      len(filtered),
			DuplicatesRemoved:      len(filtered) - len(deduped),
			SourceDiversityApplied: len(deduped) - len(diverse),
			FinalScoreRange:        scoreRange(scored),
		},
	}, nil
}

// dropMalformed skips candidates with no displayable content at all. One bad
// record never aborts the batch.
func dropMalformed(candidates []models.Candidate) []models.Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Title == "" && c.Snippet == "" && c.URL == "" {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func (e *Engine) noResultsResponse(req *models.Request, normalized string, intent query.Intent, now time.Time) *models.Response {
	return &models.Response{
		Source:          "no_results",
		QueryUsed:       req.Query,
		NormalizedQuery: normalized,
		Intent:          intent.String(),
		Location:        req.Location,
		Count:           0,
		Results:         []models.Result{},
		Timestamp:       now.Format(time.RFC3339),
		Message:         fmt.Sprintf("No relevant results found for %q. Try adjusting your search terms or broadening your query.", req.Query),
		Suggestions:     noResultsSuggestions,
	}
}

func scoreRange(scored []models.Scored) string {
	if len(scored) == 0 {
		return "0.00 - 0.00"
	}
	min, max := scored[0].Score, scored[0].Score
	for _, s := range scored[1:] {
		if s.Score < min {
			min = s.Score
		}
		if s.Score > max {
			max = s.Score
		}
	}
	return fmt.Sprintf("%.2f - %.2f", min, max)
}
