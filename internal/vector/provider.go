// Package vector provides the semantic search provider over the corpus.
package vector

import "context"

// Hit is a single semantic search result. DocID is the stable join key with
// the corpus; Index is the corpus position it resolves to. Score is a
// cosine-like similarity, higher is better.
type Hit struct {
	DocID string
	Index int
	Score float64
}

// Provider performs nearest-neighbor search for a query over the corpus.
type Provider interface {
	Search(ctx context.Context, queryText string, k int) ([]Hit, error)
	Size() int
}
