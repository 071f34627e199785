// Package server provides the HTTP API for the matriq chatbot.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quipu-ai/matriq/internal/config"
	"github.com/quipu-ai/matriq/internal/metrics"
	"github.com/quipu-ai/matriq/internal/models"
)

// ChatService is the part of the search service the HTTP layer needs.
type ChatService interface {
	Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error)
	Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error)
	History(ctx context.Context, limit int) ([]*models.ChatMessage, error)
}

// StatusReporter exposes runtime counts for the status endpoint.
type StatusReporter interface {
	CorpusSize() int
	VectorIndexSize() int
}

// Server is the HTTP server for the matriq API.
type Server struct {
	service ChatService
	status  StatusReporter
	metrics *metrics.Metrics
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies. m may be nil to
// disable instrumentation.
func NewServer(service ChatService, status StatusReporter, m *metrics.Metrics, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		service: service,
		status:  status,
		metrics: m,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the chi router with all middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Post("/api/v1/chat", s.handleChat)
	r.Get("/api/v1/chat/history", s.handleHistory)
	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
