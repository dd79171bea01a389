// Package digest renders search results into email-ready digests and
// provides the supporting summarization and recency helpers.
package digest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hoshii/erabu/internal/models"
)

const (
	// DefaultRecipient receives digests when the caller names nobody.
	DefaultRecipient = "founders@company.com"
	// DefaultSubject is the digest subject line.
	DefaultSubject = "AI Automation Digest"
	// maxDigestItems caps how many results appear in a draft.
	maxDigestItems = 5
	// RecentContentWindow bounds the recency filter for focused digests.
	RecentContentWindow = 30 * 24 * time.Hour
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Summarize reduces content to its first sentence, with an ellipsis when
// more follows. Short content is returned unchanged.
func Summarize(content string) string {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 50 {
		return content
	}

	parts := sentenceEnd.Split(trimmed, -1)
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) <= 1 {
		return content
	}

	first := sentences[0]
	if !strings.HasSuffix(first, ".") && !strings.HasSuffix(first, "!") && !strings.HasSuffix(first, "?") {
		first += "."
	}
	return first + "..."
}

// EmailDraft renders results into a plain-text email draft. At most five
// items are included, each with a one-sentence summary and source link.
func EmailDraft(results []models.Result, recipient, subject string) string {
	if len(results) == 0 {
		return "No results to include in email."
	}
	if recipient == "" {
		recipient = DefaultRecipient
	}
	if subject == "" {
		subject = DefaultSubject
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n\nDear Team,\n\n", subject)
	fmt.Fprintf(&b, "Here's your daily AI automation digest with the top %d items:\n\n", len(results))

	items := results
	if len(items) > maxDigestItems {
		items = items[:maxDigestItems]
	}
	for i, r := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   %s\n", Summarize(r.Snippet))
		fmt.Fprintf(&b, "   Source: %s\n\n", r.URL)
	}

	b.WriteString("Best regards,\nErabu Digest\n")
	return b.String()
}

// FilterRecent keeps results whose date falls within the window before now.
// Results with a missing or unparseable date are kept; recency filtering
// should never silently discard undated content.
func FilterRecent(results []models.Result, window time.Duration, now time.Time) []models.Result {
	kept := make([]models.Result, 0, len(results))
	for _, r := range results {
		if r.Date == "" {
			kept = append(kept, r)
			continue
		}
		parsed, err := parseDate(r.Date)
		if err != nil {
			kept = append(kept, r)
			continue
		}
		if now.Sub(parsed) <= window {
			kept = append(kept, r)
		}
	}
	return kept
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
