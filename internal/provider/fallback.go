package provider

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/hoshii/erabu/internal/models"
)

// fallbackResultCap bounds how many synthetic records a fallback generates.
const fallbackResultCap = 10

// corpusDoc is one curated reference page held in the in-memory index.
type corpusDoc struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Date    string `json:"date"`
}

// referenceCorpus seeds the fallback index with well-known developer and
// general-interest reference pages, so a dead web provider still yields
// real URLs instead of purely synthetic ones.
var referenceCorpus = map[string]corpusDoc{
	"mdn-js": {
		Title:   "JavaScript Guide - Learn web development",
		Content: "A comprehensive tutorial and guide to JavaScript for beginners and experienced developers, covering syntax, objects, and asynchronous programming.",
		URL:     "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
		Date:    "2025-03-14",
	},
	"mdn-react": {
		Title:   "Getting started with React tutorial",
		Content: "Learn React basics in this tutorial: components, JSX, props, and state, with a step-by-step guide to building your first application.",
		URL:     "https://developer.mozilla.org/en-US/docs/Learn/Tools_and_testing/Client-side_JavaScript_frameworks/React_getting_started",
		Date:    "2025-01-22",
	},
	"python-tutorial": {
		Title:   "The Python Tutorial",
		Content: "An informal introduction to Python covering data structures, modules, classes, and the standard library. A guide for programmers learning the language.",
		URL:     "https://python.org/3/tutorial/",
		Date:    "2024-11-02",
	},
	"so-async": {
		Title:   "How do I return the response from an asynchronous call?",
		Content: "Canonical Stack Overflow answer explaining callbacks, promises, and async/await patterns in JavaScript with worked examples.",
		URL:     "https://stackoverflow.com/questions/14220321",
		Date:    "2024-06-17",
	},
	"gh-awesome": {
		Title:   "Awesome Go - curated list of Go frameworks and libraries",
		Content: "A community-curated list of Go software: web frameworks, databases, search and ranking libraries, automation tools, and learning resources.",
		URL:     "https://github.com/avelino/awesome-go",
		Date:    "2025-05-09",
	},
	"css-flexbox": {
		Title:   "A Complete Guide to Flexbox",
		Content: "CSS-Tricks guide to flexbox layout: containers, items, alignment, and common patterns with visual examples and browser support notes.",
		URL:     "https://css-tricks.com/snippets/css/a-guide-to-flexbox/",
		Date:    "2024-09-30",
	},
	"workflow-automation": {
		Title:   "Workflow automation best practices and AI tools",
		Content: "An overview of workflow automation, robotic process automation, and AI powered automation platforms for business process automation.",
		URL:     "https://dev.to/guides/workflow-automation",
		Date:    "2025-02-11",
	},
}

// Fallback generates candidates when every live provider fails. Web queries
// first consult an in-memory index of the reference corpus; only when it has
// no hits are purely synthetic records produced. Business queries always
// synthesize directory-shaped records.
type Fallback struct {
	index bleve.Index
}

// NewFallback builds the in-memory corpus index.
func NewFallback() (*Fallback, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("title", textFieldMapping)
	docMapping.AddFieldMappingsAt("content", textFieldMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback index: %w", err)
	}
	for id, doc := range referenceCorpus {
		if err := index.Index(id, doc); err != nil {
			return nil, fmt.Errorf("failed to index corpus doc %s: %w", id, err)
		}
	}
	return &Fallback{index: index}, nil
}

// Web returns corpus hits for the query, or synthetic web results when the
// corpus has none. The returned source names which path was taken.
func (f *Fallback) Web(q Query) (string, []models.Candidate) {
	limit := q.Limit
	if limit <= 0 || limit > fallbackResultCap {
		limit = fallbackResultCap
	}

	if hits := f.searchCorpus(q.Term, limit); len(hits) > 0 {
		return "reference_corpus", hits
	}
	return "simulated_web_search", simulateWebResults(q.Term, limit)
}

// Business returns synthetic business-directory records.
func (f *Fallback) Business(q Query) (string, []models.Candidate) {
	limit := q.Limit
	if limit <= 0 || limit > fallbackResultCap {
		limit = fallbackResultCap
	}
	location := q.Location
	if location == "" {
		location = "San Francisco, CA"
	}

	candidates := make([]models.Candidate, 0, limit)
	for i := 0; i < limit; i++ {
		candidates = append(candidates, models.Candidate{
			ID:          fmt.Sprintf("fallback_%d", i+1),
			Title:       fmt.Sprintf("%s Business %d", titleCase(q.Term), i+1),
			Snippet:     fmt.Sprintf("Local %s business in %s", q.Term, location),
			URL:         fmt.Sprintf("https://example.com/business-%d", i+1),
			Source:      "fallback",
			Rating:      3.5 + float64(i)*0.3,
			ReviewCount: 50 + i*25,
			Price:       strings.Repeat("$", 1+i%3),
			Address:     fmt.Sprintf("%d Main St, %s", i+100, location),
			Phone:       fmt.Sprintf("+1-555-%04d", 1000+i),
			Categories:  []string{titleCase(q.Term)},
		})
	}
	return "fallback_business", candidates
}

func (f *Fallback) searchCorpus(term string, limit int) []models.Candidate {
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(term))
	req.Size = limit
	req.Fields = []string{"*"}

	res, err := f.index.Search(req)
	if err != nil {
		return nil
	}

	candidates := make([]models.Candidate, 0, len(res.Hits))
	for _, hit := range res.Hits {
		c := models.Candidate{ID: hit.ID, Source: "reference_corpus"}
		if v, ok := hit.Fields["title"].(string); ok {
			c.Title = v
		}
		if v, ok := hit.Fields["content"].(string); ok {
			c.Snippet = v
		}
		if v, ok := hit.Fields["url"].(string); ok {
			c.URL = v
		}
		if v, ok := hit.Fields["date"].(string); ok {
			c.Date = v
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func simulateWebResults(term string, limit int) []models.Candidate {
	candidates := make([]models.Candidate, 0, limit)
	for i := 0; i < limit; i++ {
		candidates = append(candidates, models.Candidate{
			Title:   fmt.Sprintf("Result %d: %s Information", i+1, titleCase(term)),
			Snippet: fmt.Sprintf("This is a simulated search result about %s. It contains relevant information that would normally be found through web search.", term),
			URL:     fmt.Sprintf("https://example.com/result-%d", i+1),
			Source:  "simulated_web_search",
		})
	}
	return candidates
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
