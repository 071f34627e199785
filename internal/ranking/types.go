// Package ranking provides the rule-driven keyword relevance scorer.
//
// A query is scored against every document in the corpus. When a specialized
// intent is active, one strategy — chosen by a fixed precedence order —
// scores all documents and the general scorer is bypassed; otherwise the
// general weighted term-overlap scorer applies.
package ranking

import (
	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/query"
)

// QueryContext holds the per-query derived artifacts. It is built once per
// retrieval call and never persisted.
type QueryContext struct {
	// Raw is the original question text.
	Raw string
	// Normalized is the diacritic-stripped, lowercased form.
	Normalized string
	// Tokens are the normalized query tokens.
	Tokens []string
	// Expanded is the token set after domain synonym expansion.
	Expanded []string
	// Intents are the active intent flags.
	Intents query.IntentSet
}

// NewQueryContext normalizes, tokenizes, expands, and classifies a question.
func NewQueryContext(raw string) *QueryContext {
	normalized := query.Normalize(raw)
	tokens := query.Tokenize(raw)
	return &QueryContext{
		Raw:        raw,
		Normalized: normalized,
		Tokens:     tokens,
		Expanded:   query.Expand(tokens),
		Intents:    query.Classify(normalized),
	}
}

// Strategy scores every document for a query when its intent is active.
type Strategy interface {
	// Name returns the strategy name for debugging/logging.
	Name() string
	// Applies reports whether the strategy handles the given intent set.
	Applies(intents query.IntentSet) bool
	// Score calculates the keyword score for one document.
	Score(q *QueryContext, doc *models.Document) float64
}
