package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// Places searches the Google Places text search API.
type Places struct {
	apiKey          string
	baseURL         string
	defaultLocation string
	client          *http.Client
	limiter         *rate.Limiter
}

// NewPlaces creates a Google Places adapter from provider config.
func NewPlaces(cfg *config.ProviderConfig) *Places {
	return &Places{
		apiKey:          cfg.GooglePlacesKey,
		baseURL:         placesBaseURL,
		defaultLocation: cfg.DefaultLocation,
		client:          newHTTPClient(cfg),
		limiter:         newLimiter(cfg),
	}
}

// Name returns the provider name.
func (p *Places) Name() string { return "google_places" }

type place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Website          string   `json:"website"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Phone            string   `json:"formatted_phone_number"`
	Types            []string `json:"types"`
}

type placesResponse struct {
	Status  string  `json:"status"`
	Results []place `json:"results"`
}

// Search queries the text search endpoint and converts results to
// candidates. Returns ErrUnavailable when no API key is configured.
func (p *Places) Search(ctx context.Context, q Query) ([]models.Candidate, error) {
	if !configured(p.apiKey) {
		return nil, ErrUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	location := q.Location
	if location == "" {
		location = p.defaultLocation
	}
	params := url.Values{
		"query": {fmt.Sprintf("%s in %s", q.Term, location)},
		"key":   {p.apiKey},
		"type":  {"establishment"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/textsearch/json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("places response decode failed: %w", err)
	}
	if decoded.Status != "OK" {
		return nil, fmt.Errorf("places returned status %q", decoded.Status)
	}

	results := decoded.Results
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	candidates := make([]models.Candidate, 0, len(results))
	for _, pl := range results {
		candidates = append(candidates, pl.toCandidate())
	}
	return candidates, nil
}

func (pl place) toCandidate() models.Candidate {
	address := pl.FormattedAddress
	if address == "" {
		address = "Unknown location"
	}
	price := "N/A"
	if pl.PriceLevel > 0 {
		price = strings.Repeat("$", pl.PriceLevel)
	}
	return models.Candidate{
		ID:          pl.PlaceID,
		Title:       pl.Name,
		Snippet:     fmt.Sprintf("Place in %s", address),
		URL:         pl.Website,
		Source:      "google_places",
		Rating:      pl.Rating,
		ReviewCount: pl.UserRatingsTotal,
		Price:       price,
		Address:     pl.FormattedAddress,
		Phone:       pl.Phone,
		Categories:  pl.Types,
	}
}
