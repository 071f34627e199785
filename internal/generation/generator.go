// Package generation renders answers from retrieved documents through an
// OpenAI-compatible chat-completion endpoint.
package generation

import (
	"context"

	"github.com/quipu-ai/matriq/internal/models"
)

// Generator produces a natural-language answer for a question from the
// retrieved context documents.
type Generator interface {
	Answer(ctx context.Context, question string, docs []*models.Document) (string, error)
}
