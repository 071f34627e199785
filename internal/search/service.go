package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quipu-ai/matriq/internal/generation"
	"github.com/quipu-ai/matriq/internal/models"
)

// noResultsAnswer is returned when nothing in the corpus qualifies for the
// question.
const noResultsAnswer = "Lo siento, no encontré información relevante sobre tu consulta en las normativas de matrícula. " +
	"¿Podrías reformular tu pregunta o consultar directamente con la oficina de matrículas de la UNSA?"

// generationFailedAnswer is returned when retrieval succeeded but the
// completion endpoint did not.
const generationFailedAnswer = "Encontré información relacionada con tu consulta, pero no pude generar una respuesta en este momento. " +
	"Por favor intenta nuevamente en unos minutos."

// HistoryStore persists question/answer pairs.
type HistoryStore interface {
	Save(ctx context.Context, msg *models.ChatMessage) error
	Recent(ctx context.Context, limit int) ([]*models.ChatMessage, error)
}

// Service answers questions: retrieve, generate, persist. The engine can be
// swapped at runtime when the dataset is reloaded.
type Service struct {
	mu        sync.RWMutex
	engine    *Engine
	generator generation.Generator
	history   HistoryStore
	topK      int
	logger    *zap.Logger
	onEmpty   func()
}

// SetEmptyObserver registers a hook called whenever a question matches no
// documents, used for instrumentation.
func (s *Service) SetEmptyObserver(fn func()) {
	s.onEmpty = fn
}

// NewService wires retrieval, generation and history together. history may be
// nil to disable persistence.
func NewService(engine *Engine, generator generation.Generator, history HistoryStore, topK int, logger *zap.Logger) *Service {
	if topK <= 0 {
		topK = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:    engine,
		generator: generator,
		history:   history,
		topK:      topK,
		logger:    logger,
	}
}

// Ask answers a question over the corpus. A vector provider failure degrades
// to keyword-only retrieval instead of failing the request; a generation
// failure returns a fixed fallback answer. The exchange is persisted
// best-effort.
func (s *Service) Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	engine := s.Engine()
	results, err := engine.Retrieve(ctx, req.Question, s.topK)
	if err != nil {
		s.logger.Warn("semantic retrieval failed, degrading to keyword-only", zap.Error(err))
		results = engine.RetrieveKeywordOnly(req.Question, s.topK)
	}

	answer := noResultsAnswer
	if len(results) == 0 && s.onEmpty != nil {
		s.onEmpty()
	}
	if len(results) > 0 {
		docs := make([]*models.Document, len(results))
		for i, r := range results {
			docs[i] = r.Document
		}
		answer, err = s.generator.Answer(ctx, req.Question, docs)
		if err != nil {
			s.logger.Error("answer generation failed", zap.Error(err))
			answer = generationFailedAnswer
		}
	}

	resp := &models.AskResponse{Answer: answer, Timestamp: time.Now()}
	s.saveHistory(ctx, req.Question, answer)
	return resp, nil
}

// Search exposes raw retrieval without generation.
func (s *Service) Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.Engine().Search(ctx, q)
}

// History returns the most recent chat messages.
func (s *Service) History(ctx context.Context, limit int) ([]*models.ChatMessage, error) {
	if s.history == nil {
		return []*models.ChatMessage{}, nil
	}
	return s.history.Recent(ctx, limit)
}

// Engine returns the current retrieval engine.
func (s *Service) Engine() *Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// CorpusSize returns the number of documents in the active corpus.
func (s *Service) CorpusSize() int {
	return s.Engine().Corpus().Len()
}

// VectorIndexSize returns the number of indexed vectors.
func (s *Service) VectorIndexSize() int {
	return s.Engine().VectorIndexSize()
}

// SwapEngine replaces the retrieval engine, used on dataset reload.
func (s *Service) SwapEngine(engine *Engine) {
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
}

func (s *Service) saveHistory(ctx context.Context, question, answer string) {
	if s.history == nil {
		return
	}
	msg := &models.ChatMessage{Question: question, Answer: answer, CreatedAt: time.Now()}
	if err := s.history.Save(ctx, msg); err != nil {
		s.logger.Warn("failed to persist chat message", zap.Error(err))
	}
}
