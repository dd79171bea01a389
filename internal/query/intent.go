package query

import "strings"

// Intent is the classified purpose of a query. It drives which providers are
// consulted and which relevance-filter rules apply.
type Intent int

const (
	// IntentGeneral routes to general web search. This is the fallback intent.
	IntentGeneral Intent = iota
	// IntentLocalBusiness routes to business directory providers.
	IntentLocalBusiness
	// IntentCompareRank marks comparison/ranking queries.
	IntentCompareRank
	// IntentAIAutomation marks AI/workflow automation queries.
	IntentAIAutomation
)

// String returns the wire representation of the intent.
func (i Intent) String() string {
	switch i {
	case IntentLocalBusiness:
		return "local_business"
	case IntentCompareRank:
		return "compare_rank"
	case IntentAIAutomation:
		return "ai_automation"
	default:
		return "general"
	}
}

var aiAutomationKeywords = []string{
	"ai automation", "artificial intelligence automation", "automation tools",
	"workflow automation", "process automation", "ai workflow", "automation ai",
	"intelligent automation", "ai tools", "automation software", "ai platform",
	"machine learning automation", "robotic process automation", "rpa",
	"business process automation", "ai powered automation", "smart automation",
}

var learningKeywords = []string{
	"youtube", "channel", "learn", "learning", "tutorial", "course", "education",
	"how to", "guide", "tips", "advice", "best practices", "examples", "research",
	"video", "podcast", "blog", "article", "resource", "study", "training",
	"what is", "explain", "understand", "knowledge", "information", "find out",
	"discover", "explore", "investigate", "analyze", "compare", "review",
}

var businessKeywords = []string{
	"restaurant", "food", "cafe", "bar", "shop", "store", "business", "service",
	"near me", "local", "address", "phone", "rating", "review", "hours", "open",
	"delivery", "takeout", "reservation", "booking", "appointment", "salon",
	"spa", "gym", "dentist", "doctor", "lawyer", "plumber", "electrician",
	"mechanic", "car wash", "gas station", "bank", "pharmacy", "hospital",
	"coffee shop", "pizza", "burger", "sushi", "steak", "italian", "chinese",
}

var locationIndicators = []string{
	"in ", "near ", "around ", "at ", "by ", "close to ", "within ",
	"new york", "san francisco", "los angeles", "chicago", "miami", "boston",
	"seattle", "denver", "austin", "dallas", "houston", "phoenix", "atlanta",
	"bay area", "silicon valley", "manhattan", "brooklyn", "queens", "bronx",
}

var newsKeywords = []string{
	"news", "latest", "recent", "update", "announcement", "release",
	"trend", "trending", "breaking", "today", "this week", "this month",
	"current", "happening now", "latest news", "breaking news",
}

var comparisonKeywords = []string{
	"compare", "versus", "vs", "top", "best", "worst", "ranking", "rank",
	"compare top", "top 10", "top 5", "best 10", "best 5", "better than",
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

// Rule is one classification rule. Rules are evaluated in priority order and
// the first match wins, making the precedence explicit and testable per rule.
type Rule struct {
	Name   string
	Match  func(q string) bool
	Intent Intent
}

// Rules is the ordered rule table used by Classify.
//
// Learning intent deliberately dominates business intent: a query matching
// both always resolves to general web search. Likewise a comparison query
// only ranks as compare_rank when neither learning nor business+location
// signals are present.
var Rules = []Rule{
	{
		Name:   "ai_automation",
		Match:  func(q string) bool { return containsAny(q, aiAutomationKeywords) },
		Intent: IntentAIAutomation,
	},
	{
		Name:   "learning",
		Match:  func(q string) bool { return containsAny(q, learningKeywords) },
		Intent: IntentGeneral,
	},
	{
		Name: "local_business",
		Match: func(q string) bool {
			return containsAny(q, businessKeywords) && containsAny(q, locationIndicators)
		},
		Intent: IntentLocalBusiness,
	},
	{
		Name:   "news",
		Match:  func(q string) bool { return containsAny(q, newsKeywords) },
		Intent: IntentGeneral,
	},
	{
		Name: "comparison",
		Match: func(q string) bool {
			if !containsAny(q, comparisonKeywords) {
				return false
			}
			if containsAny(q, learningKeywords) {
				return false
			}
			if containsAny(q, businessKeywords) && containsAny(q, locationIndicators) {
				return false
			}
			return true
		},
		Intent: IntentCompareRank,
	},
}

// Classify maps a normalized query to exactly one intent. The function is
// total and deterministic; queries matching no rule fall back to general.
func Classify(normalized string) Intent {
	q := strings.ToLower(normalized)
	for _, r := range Rules {
		if r.Match(q) {
			return r.Intent
		}
	}
	return IntentGeneral
}
