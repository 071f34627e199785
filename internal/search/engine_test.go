package search

import (
	"context"
	"errors"
	"testing"

	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/ranking"
	"github.com/quipu-ai/matriq/internal/store"
	"github.com/quipu-ai/matriq/internal/vector"
)

type stubProvider struct {
	hits []vector.Hit
	err  error
}

func (p *stubProvider) Search(ctx context.Context, queryText string, k int) ([]vector.Hit, error) {
	return p.hits, p.err
}

func (p *stubProvider) Size() int { return len(p.hits) }

func testCorpus(t *testing.T) *store.Corpus {
	t.Helper()
	corpus, err := store.NewCorpus([]*models.Document{
		{ID: "mat-001", Content: "La matricula es el acto formal y voluntario que se realiza bajo responsabilidad del estudiante."},
		{ID: "mat-002", Content: "El cronograma de matricula inicia el 17 de marzo y termina el 28 de marzo."},
		{ID: "mat-003", Content: "El pago de la tasa educacional se realiza en la caja universitaria."},
	})
	if err != nil {
		t.Fatal(err)
	}
	return corpus
}

func TestEngineRetrieve(t *testing.T) {
	corpus := testCorpus(t)
	provider := &stubProvider{hits: []vector.Hit{
		{DocID: "mat-002", Index: 1, Score: 0.9},
		{DocID: "mat-001", Index: 0, Score: 0.4},
	}}
	engine := NewEngine(corpus, ranking.NewScorer(nil), provider, 10, nil)

	results, err := engine.Retrieve(context.Background(), "¿Cuándo inicia la matrícula?", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Document.ID != "mat-002" {
		t.Errorf("top result = %s, want mat-002", results[0].Document.ID)
	}
	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("result %d has rank %d", i, r.Rank)
		}
		if r.Score <= 0 {
			t.Errorf("result %d has non-positive score", i)
		}
	}
}

func TestEngineRetrieveProviderError(t *testing.T) {
	corpus := testCorpus(t)
	provider := &stubProvider{err: errors.New("index offline")}
	engine := NewEngine(corpus, ranking.NewScorer(nil), provider, 10, nil)

	if _, err := engine.Retrieve(context.Background(), "matrícula", 3); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestEngineRetrieveOutOfRangeHit(t *testing.T) {
	corpus := testCorpus(t)
	provider := &stubProvider{hits: []vector.Hit{{DocID: "ghost", Index: 99, Score: 0.9}}}
	engine := NewEngine(corpus, ranking.NewScorer(nil), provider, 10, nil)

	if _, err := engine.Retrieve(context.Background(), "matrícula", 3); err == nil {
		t.Fatal("expected error for hit outside corpus range")
	}
}

func TestEngineRetrieveKeywordOnly(t *testing.T) {
	corpus := testCorpus(t)
	engine := NewEngine(corpus, ranking.NewScorer(nil), nil, 10, nil)

	results := engine.RetrieveKeywordOnly("¿Qué es la matrícula?", 3)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	// Definition question: the acto-formal document wins on the keyword axis.
	if results[0].Document.ID != "mat-001" {
		t.Errorf("top result = %s, want mat-001", results[0].Document.ID)
	}
	for _, r := range results {
		if r.SemanticScore != 0 {
			t.Errorf("keyword-only result has semantic score %v", r.SemanticScore)
		}
	}
}

func TestEngineEmptyCorpus(t *testing.T) {
	corpus, err := store.NewCorpus(nil)
	if err != nil {
		t.Fatal(err)
	}
	engine := NewEngine(corpus, ranking.NewScorer(nil), &stubProvider{}, 10, nil)

	results, err := engine.Retrieve(context.Background(), "matrícula", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("empty corpus returned %d results", len(results))
	}
}

func TestEngineSearch(t *testing.T) {
	corpus := testCorpus(t)
	engine := NewEngine(corpus, ranking.NewScorer(nil), nil, 10, nil)

	resp, err := engine.Search(context.Background(), &models.SearchQuery{Query: "cronograma de matrícula", Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != len(resp.Results) {
		t.Errorf("Total = %d, Results = %d", resp.Total, len(resp.Results))
	}
	if len(resp.Results) > 2 {
		t.Errorf("limit not applied: %d results", len(resp.Results))
	}
	if resp.Query != "cronograma de matrícula" {
		t.Errorf("Query echoed as %q", resp.Query)
	}
}
