package vector

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/quipu-ai/matriq/internal/embedding"
	"github.com/quipu-ai/matriq/internal/models"
)

const collectionName = "normativa"

// ChromemProvider implements Provider with an in-memory chromem-go
// collection built from the corpus at startup. Hits carry both the document
// ID and the corpus position; a hit whose ID is unknown to the position map
// indicates the index and the corpus diverged, which is a configuration
// error, not a per-query condition.
type ChromemProvider struct {
	db         *chromem.DB
	collection *chromem.Collection
	positions  map[string]int
}

// NewChromemProvider builds the collection from the ordered document slice.
// Embeddings are produced by the given embedder.
func NewChromemProvider(ctx context.Context, docs []*models.Document, embedder embedding.Embedder) (*ChromemProvider, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, toEmbeddingFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	positions := make(map[string]int, len(docs))
	chromemDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		positions[doc.ID] = i
		chromemDocs[i] = chromem.Document{
			ID:      doc.ID,
			Content: doc.Content,
			Metadata: map[string]string{
				"category": doc.Category,
			},
		}
	}
	if len(chromemDocs) > 0 {
		if err := col.AddDocuments(ctx, chromemDocs, 1); err != nil {
			return nil, fmt.Errorf("index documents: %w", err)
		}
	}

	return &ChromemProvider{db: db, collection: col, positions: positions}, nil
}

// Search returns the top-k documents by cosine similarity for the query text.
func (p *ChromemProvider) Search(ctx context.Context, queryText string, k int) ([]Hit, error) {
	count := p.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k <= 0 || k > count {
		k = count
	}

	results, err := p.collection.Query(ctx, queryText, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		idx, ok := p.positions[r.ID]
		if !ok {
			return nil, fmt.Errorf("vector index references unknown document %q", r.ID)
		}
		hits = append(hits, Hit{DocID: r.ID, Index: idx, Score: float64(r.Similarity)})
	}
	return hits, nil
}

// Size returns the number of indexed documents.
func (p *ChromemProvider) Size() int {
	return p.collection.Count()
}

// toEmbeddingFunc bridges an Embedder to chromem's per-text embedding hook.
func toEmbeddingFunc(e embedding.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.Embed(ctx, text)
	}
}
