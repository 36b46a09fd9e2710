package faq

import (
	"context"
	"time"

	"github.com/yanqian/faq-chatbot/pkg/metrics"
)

// Answer sources reported to the transport.
const (
	// SourceFAQ means a corpus entry scored above the threshold.
	SourceFAQ = "faq"
	// SourceCache means a previously generated answer was reused.
	SourceCache = "cache"
	// SourceLLM means the fallback generator produced the answer.
	SourceLLM = "llm"
)

// Record is one corpus entry. Only active records participate in search.
type Record struct {
	Question   string
	Note       string
	Answer     string
	Categories []string
	Active     bool
}

// HasCategory reports exact membership of category in the record's tag set.
func (r Record) HasCategory(category string) bool {
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Request encapsulates one inbound question.
type Request struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Answer          string              `json:"answer"`
	Source          string              `json:"source"`
	Score           int                 `json:"score"`
	MatchedQuestion string              `json:"matchedQuestion,omitempty"`
	Category        string              `json:"category,omitempty"`
	DurationMs      int64               `json:"durationMs,omitempty"`
	TokenUsage      *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// Selection is the outcome of scanning a candidate set.
// Score is reported even on a miss so callers can observe near-matches.
type Selection struct {
	Record  *Record
	Score   int
	Matched bool
}

// Generated carries a fallback answer and the token cost of producing it.
type Generated struct {
	Answer string
	Usage  metrics.TokenUsage
}

// AnswerCache stores generated answers so repeated misses skip the LLM call.
type AnswerCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, answer string, ttl time.Duration) error
}
