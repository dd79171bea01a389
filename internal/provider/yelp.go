package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
)

const yelpBaseURL = "https://api.yelp.com/v3"

// Yelp searches the Yelp Fusion business API.
type Yelp struct {
	apiKey          string
	baseURL         string
	defaultLocation string
	client          *http.Client
	limiter         *rate.Limiter
}

// NewYelp creates a Yelp adapter from provider config.
func NewYelp(cfg *config.ProviderConfig) *Yelp {
	return &Yelp{
		apiKey:          cfg.YelpAPIKey,
		baseURL:         yelpBaseURL,
		defaultLocation: cfg.DefaultLocation,
		client:          newHTTPClient(cfg),
		limiter:         newLimiter(cfg),
	}
}

// Name returns the provider name.
func (y *Yelp) Name() string { return "yelp" }

type yelpBusiness struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Price       string  `json:"price"`
	Phone       string  `json:"phone"`
	Location    struct {
		Address1 string `json:"address1"`
		City     string `json:"city"`
	} `json:"location"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
}

type yelpSearchResponse struct {
	Businesses []yelpBusiness `json:"businesses"`
}

// Search queries the business search endpoint and converts results to
// candidates. Returns ErrUnavailable when no API key is configured.
func (y *Yelp) Search(ctx context.Context, q Query) ([]models.Candidate, error) {
	if !configured(y.apiKey) {
		return nil, ErrUnavailable
	}
	if err := y.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	location := q.Location
	if location == "" {
		location = y.defaultLocation
	}
	params := url.Values{
		"term":     {q.Term},
		"location": {location},
		"limit":    {strconv.Itoa(q.Limit)},
		"sort_by":  {"rating"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		y.baseURL+"/businesses/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+y.apiKey)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp returned status %d", resp.StatusCode)
	}

	var decoded yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("yelp response decode failed: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(decoded.Businesses))
	for _, b := range decoded.Businesses {
		candidates = append(candidates, b.toCandidate())
	}
	return candidates, nil
}

func (b yelpBusiness) toCandidate() models.Candidate {
	category := "Business"
	if len(b.Categories) > 0 && b.Categories[0].Title != "" {
		category = b.Categories[0].Title
	}
	city := b.Location.City
	if city == "" {
		city = "Unknown"
	}
	categories := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.Title)
	}
	return models.Candidate{
		ID:          b.ID,
		Title:       b.Name,
		Snippet:     fmt.Sprintf("%s in %s", category, city),
		URL:         b.URL,
		Source:      "yelp",
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Price:       b.Price,
		Address:     b.Location.Address1,
		Phone:       b.Phone,
		Categories:  categories,
	}
}
