package ranking

import (
	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/query"
)

// Scorer produces a keyword relevance score per document. One specialized
// strategy — the first in precedence order whose intent is active — scores
// every document; without a specialized intent the general scorer applies.
type Scorer struct {
	cfg        *Config
	strategies []Strategy
	general    *GeneralScorer
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyDefaults()

	return &Scorer{
		cfg:        cfg,
		strategies: specializedStrategies(cfg),
		general:    NewGeneralScorer(cfg),
	}
}

// Score maps document index to keyword score for the query. The document
// slice order must match the corpus order used by the vector provider.
func (s *Scorer) Score(q *QueryContext, docs []*models.Document) map[int]float64 {
	scores := make(map[int]float64, len(docs))
	strategy := s.pick(q.Intents)
	for i, doc := range docs {
		if strategy != nil {
			scores[i] = strategy.Score(q, doc)
		} else {
			scores[i] = s.general.Score(q, doc)
		}
	}
	return scores
}

// StrategyFor returns the name of the specialized strategy that would score
// the given intent set, or "general" when none applies.
func (s *Scorer) StrategyFor(intents query.IntentSet) string {
	if st := s.pick(intents); st != nil {
		return st.Name()
	}
	return s.general.Name()
}

func (s *Scorer) pick(intents query.IntentSet) Strategy {
	for _, st := range s.strategies {
		if st.Applies(intents) {
			return st
		}
	}
	return nil
}

// Config returns the scoring configuration.
func (s *Scorer) Config() *Config {
	return s.cfg
}
