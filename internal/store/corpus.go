// Package store provides the document corpus and chat history persistence.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quipu-ai/matriq/internal/models"
)

// Corpus is the ordered, read-only document collection. Position in the
// slice is the join key with the vector index, so the load order is the
// dataset file order and is never changed afterwards. Concurrent reads are
// safe without locking because the corpus is never mutated after load.
type Corpus struct {
	docs []*models.Document
	byID map[string]int
}

// LoadCorpus reads the JSON dataset at path. Duplicate or empty document IDs
// are a fatal configuration error: the ID is what ties a vector hit back to
// a corpus position.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var docs []*models.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	return NewCorpus(docs)
}

// NewCorpus builds a corpus from an ordered document slice.
func NewCorpus(docs []*models.Document) (*Corpus, error) {
	byID := make(map[string]int, len(docs))
	for i, doc := range docs {
		if strings.TrimSpace(doc.ID) == "" {
			return nil, fmt.Errorf("document at position %d has no id", i)
		}
		if prev, ok := byID[doc.ID]; ok {
			return nil, fmt.Errorf("duplicate document id %q at positions %d and %d", doc.ID, prev, i)
		}
		if doc.Content == "" {
			return nil, fmt.Errorf("document %q has no content", doc.ID)
		}
		byID[doc.ID] = i
	}
	return &Corpus{docs: docs, byID: byID}, nil
}

// Documents returns the ordered document slice. Callers must not mutate it.
func (c *Corpus) Documents() []*models.Document {
	return c.docs
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Get returns the document at position i, or nil when out of range.
func (c *Corpus) Get(i int) *models.Document {
	if i < 0 || i >= len(c.docs) {
		return nil
	}
	return c.docs[i]
}

// Position returns the corpus position for a document ID.
func (c *Corpus) Position(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}
