package provider

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/query"
)

// Router picks providers by intent and walks the fallback chain. A provider
// failure is never surfaced to the caller: the next provider is tried, and
// the synthetic fallback generator closes the chain.
type Router struct {
	business []Provider
	web      []Provider
	fallback *Fallback
	logger   *zap.Logger
}

// NewRouter creates a router. business providers serve local_business
// queries, web providers everything else.
func NewRouter(business, web []Provider, fallback *Fallback, logger *zap.Logger) *Router {
	return &Router{
		business: business,
		web:      web,
		fallback: fallback,
		logger:   logger,
	}
}

// Fetch returns candidates for the query along with the name of the source
// that produced them. It never returns an error; an exhausted provider chain
// ends at the synthetic fallback.
func (r *Router) Fetch(ctx context.Context, intent query.Intent, q Query) (string, []models.Candidate) {
	providers := r.web
	if intent == query.IntentLocalBusiness {
		providers = r.business
	}

	for _, p := range providers {
		candidates, err := p.Search(ctx, q)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				r.logger.Debug("provider not configured", zap.String("provider", p.Name()))
			} else {
				r.logger.Warn("provider failed, trying next",
					zap.String("provider", p.Name()), zap.Error(err))
			}
			continue
		}
		if len(candidates) > 0 {
			r.logger.Debug("provider returned results",
				zap.String("provider", p.Name()), zap.Int("count", len(candidates)))
			return p.Name(), candidates
		}
	}

	r.logger.Debug("all providers exhausted, using fallback",
		zap.String("intent", intent.String()))
	if intent == query.IntentLocalBusiness {
		return r.fallback.Business(q)
	}
	return r.fallback.Web(q)
}
