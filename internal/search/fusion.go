// Package search provides hybrid retrieval: score fusion and orchestration
// of the keyword scorer and the vector search provider.
package search

import (
	"sort"

	"github.com/quipu-ai/matriq/internal/query"
)

// Candidate is a transient scored document reference produced per retrieval
// call, ordered by combined score descending.
type Candidate struct {
	Index    int
	Score    float64
	Semantic float64
	Keyword  float64
}

// Weights is a semantic/keyword blend. The pair is selected purely from the
// active intent set, so two queries with the same intents always fuse with
// identical weights.
type Weights struct {
	Semantic float64
	Keyword  float64
}

// Admission gates: a candidate qualifies when its semantic score exceeds the
// low semantic gate OR its keyword score exceeds the higher keyword gate.
// The axes are independent; a document can qualify on either alone.
const (
	SemanticGate = 0.1
	KeywordGate  = 5.0
)

// WeightsFor selects the weight blend for an intent set. Precedence across
// co-firing intents follows the keyword scorer's dispatch order.
func WeightsFor(intents query.IntentSet) Weights {
	switch {
	case intents.Has(query.IntentAuthority),
		intents.Has(query.IntentEquivalence),
		intents.Has(query.IntentException),
		intents.Has(query.IntentContact),
		intents.Has(query.IntentCredits),
		intents.Has(query.IntentConsequence),
		intents.Has(query.IntentDefinition):
		return Weights{Semantic: 0.05, Keyword: 0.95}
	case intents.Has(query.IntentValidation) && !intents.Has(query.IntentAmount):
		return Weights{Semantic: 0.10, Keyword: 0.90}
	case intents.Has(query.IntentCost):
		// "Where do I pay" style questions are keyword-dominated; generic
		// cost questions keep some semantic signal.
		if intents.Has(query.IntentPaymentProcedure) || intents.Has(query.IntentPlace) {
			return Weights{Semantic: 0.05, Keyword: 0.95}
		}
		return Weights{Semantic: 0.20, Keyword: 0.80}
	case intents.Has(query.IntentRestriction):
		return Weights{Semantic: 0.30, Keyword: 0.70}
	case intents.Has(query.IntentDate), intents.Has(query.IntentPlace):
		return Weights{Semantic: 0.50, Keyword: 0.50}
	default:
		return Weights{Semantic: 0.70, Keyword: 0.30}
	}
}

// Fuse combines semantic and keyword score maps over the union of document
// indices, applies the admission gates, and returns the top-k candidates.
// Missing semantic entries count as zero, so a nil or empty semantic map
// yields keyword-only ranking. Ties in combined score are broken by original
// document index (stable sort).
func Fuse(semantic, keyword map[int]float64, w Weights, k int) []*Candidate {
	indices := make(map[int]bool, len(semantic)+len(keyword))
	for i := range semantic {
		indices[i] = true
	}
	for i := range keyword {
		indices[i] = true
	}

	candidates := make([]*Candidate, 0, len(indices))
	for i := range indices {
		sem := semantic[i]
		kw := keyword[i]
		if sem <= SemanticGate && kw <= KeywordGate {
			continue
		}
		candidates = append(candidates, &Candidate{
			Index:    i,
			Score:    sem*w.Semantic + kw*w.Keyword,
			Semantic: sem,
			Keyword:  kw,
		})
	}

	// Order by index first so the stable sort breaks score ties by original
	// document position.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Index < candidates[j].Index
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if k >= 0 && k < len(candidates) {
		candidates = candidates[:k]
	}
	return candidates
}
