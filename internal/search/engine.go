package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/ranking"
	"github.com/quipu-ai/matriq/internal/store"
	"github.com/quipu-ai/matriq/internal/vector"
)

// Engine performs hybrid retrieval: the keyword scorer and the vector
// provider run over the same corpus, and their scores are fused per query.
type Engine struct {
	corpus   *store.Corpus
	scorer   *ranking.Scorer
	provider vector.Provider
	// candidatePool is how many semantic neighbors to request before fusion.
	candidatePool int
	logger        *zap.Logger
}

// NewEngine creates a hybrid retrieval engine. provider may be nil, in which
// case retrieval is keyword-only.
func NewEngine(corpus *store.Corpus, scorer *ranking.Scorer, provider vector.Provider, candidatePool int, logger *zap.Logger) *Engine {
	if candidatePool <= 0 {
		candidatePool = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		corpus:        corpus,
		scorer:        scorer,
		provider:      provider,
		candidatePool: candidatePool,
		logger:        logger,
	}
}

// Retrieve returns the top-k documents for a question, ranked by the fused
// semantic and keyword scores. A provider failure is returned to the caller;
// use RetrieveKeywordOnly to degrade.
func (e *Engine) Retrieve(ctx context.Context, question string, k int) ([]*models.RetrievedDocument, error) {
	if e.corpus.Len() == 0 {
		return []*models.RetrievedDocument{}, nil
	}

	qc := ranking.NewQueryContext(question)

	semantic := map[int]float64{}
	if e.provider != nil {
		hits, err := e.provider.Search(ctx, qc.Normalized, e.candidatePool)
		if err != nil {
			return nil, fmt.Errorf("semantic search failed: %w", err)
		}
		for _, hit := range hits {
			if hit.Index < 0 || hit.Index >= e.corpus.Len() {
				return nil, fmt.Errorf("vector hit %q resolves to position %d outside corpus of %d", hit.DocID, hit.Index, e.corpus.Len())
			}
			semantic[hit.Index] = hit.Score
		}
	}

	return e.retrieve(qc, semantic, k), nil
}

// RetrieveKeywordOnly ranks on the keyword axis alone. Candidates still
// qualify through the keyword admission gate.
func (e *Engine) RetrieveKeywordOnly(question string, k int) []*models.RetrievedDocument {
	if e.corpus.Len() == 0 {
		return []*models.RetrievedDocument{}
	}
	qc := ranking.NewQueryContext(question)
	return e.retrieve(qc, nil, k)
}

func (e *Engine) retrieve(qc *ranking.QueryContext, semantic map[int]float64, k int) []*models.RetrievedDocument {
	keyword := e.scorer.Score(qc, e.corpus.Documents())
	weights := WeightsFor(qc.Intents)
	candidates := Fuse(semantic, keyword, weights, k)

	e.logger.Debug("retrieval",
		zap.String("strategy", e.scorer.StrategyFor(qc.Intents)),
		zap.Strings("intents", qc.Intents.Strings()),
		zap.Float64("semantic_weight", weights.Semantic),
		zap.Int("candidates", len(candidates)))

	results := make([]*models.RetrievedDocument, 0, len(candidates))
	for rank, c := range candidates {
		results = append(results, &models.RetrievedDocument{
			Document:      e.corpus.Get(c.Index),
			Score:         c.Score,
			SemanticScore: c.Semantic,
			KeywordScore:  c.Keyword,
			Rank:          rank + 1,
		})
	}
	return results
}

// Search runs a raw retrieval request and wraps the results in a response.
func (e *Engine) Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error) {
	start := time.Now()
	results, err := e.Retrieve(ctx, q.Query, q.Limit)
	if err != nil {
		return nil, err
	}
	return &models.SearchResponse{
		Results:   results,
		Total:     len(results),
		QueryTime: time.Since(start).Milliseconds(),
		Query:     q.Query,
	}, nil
}

// Corpus returns the engine's document corpus.
func (e *Engine) Corpus() *store.Corpus {
	return e.corpus
}

// VectorIndexSize returns the number of indexed vectors, zero when the
// engine runs keyword-only.
func (e *Engine) VectorIndexSize() int {
	if e.provider == nil {
		return 0
	}
	return e.provider.Size()
}
