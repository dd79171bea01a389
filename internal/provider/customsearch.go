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

const customSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

// maxCSEResults is the per-request cap imposed by the Custom Search API.
const maxCSEResults = 10

// CustomSearch searches the Google Custom Search JSON API.
type CustomSearch struct {
	apiKey  string
	cx      string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewCustomSearch creates a Custom Search adapter from provider config.
func NewCustomSearch(cfg *config.ProviderConfig) *CustomSearch {
	return &CustomSearch{
		apiKey:  cfg.CustomSearchKey,
		cx:      cfg.CustomSearchCX,
		baseURL: customSearchBaseURL,
		client:  newHTTPClient(cfg),
		limiter: newLimiter(cfg),
	}
}

// Name returns the provider name.
func (c *CustomSearch) Name() string { return "google_custom_search" }

type cseItem struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
}

type cseResponse struct {
	Items []cseItem `json:"items"`
}

// Search queries the API and converts items to candidates. Returns
// ErrUnavailable when the key or engine ID is missing.
func (c *CustomSearch) Search(ctx context.Context, q Query) ([]models.Candidate, error) {
	if !configured(c.apiKey) || !configured(c.cx) {
		return nil, ErrUnavailable
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	num := q.Limit
	if num <= 0 || num > maxCSEResults {
		num = maxCSEResults
	}
	params := url.Values{
		"key":  {c.apiKey},
		"cx":   {c.cx},
		"q":    {q.Term},
		"num":  {strconv.Itoa(num)},
		"safe": {"active"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("custom search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("custom search returned status %d", resp.StatusCode)
	}

	var decoded cseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("custom search response decode failed: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		candidates = append(candidates, models.Candidate{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
			Source:  "google_custom_search",
		})
	}
	return candidates, nil
}
