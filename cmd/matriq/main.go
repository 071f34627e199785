// Package main is the matriq CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quipu-ai/matriq/internal/config"
	"github.com/quipu-ai/matriq/internal/embedding"
	"github.com/quipu-ai/matriq/internal/generation"
	"github.com/quipu-ai/matriq/internal/metrics"
	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/ranking"
	"github.com/quipu-ai/matriq/internal/search"
	"github.com/quipu-ai/matriq/internal/server"
	"github.com/quipu-ai/matriq/internal/store"
	"github.com/quipu-ai/matriq/internal/vector"
	"github.com/quipu-ai/matriq/internal/watcher"
	"github.com/quipu-ai/matriq/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "config.yaml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "search":
		runSearch()
	case "version", "--version", "-v":
		fmt.Printf("matriq version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`matriq - asistente de normativas de matrícula UNSA

Usage:
  matriq server [-config path] [-debug]   start the HTTP API
  matriq ask [-config path] <question>    answer one question and exit
  matriq search [-config path] <query>    print ranked documents for a query
  matriq version                          print version
  matriq help                             show this help`)
}

// loadConfig loads config from path, falling back to defaults when the
// default path does not exist.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, nil
		}
	}
	return config.Load(path)
}

// components holds the wired application pieces.
type components struct {
	Corpus    *store.Corpus
	Engine    *search.Engine
	Service   *search.Service
	Generator generation.Generator
	History   *store.History
}

func (c *components) Close() {
	if c.History != nil {
		_ = c.History.Close()
	}
}

// newEmbedder picks the configured embedding backend. Without an API key the
// deterministic hashing embedder keeps retrieval usable offline.
func newEmbedder(cfg *config.Config, logger *zap.Logger) embedding.Embedder {
	apiKey := cfg.Embedding.APIKey()
	if apiKey == "" {
		logger.Warn("no embedding API key set, using hashing embedder",
			zap.String("env", cfg.Embedding.APIKeyEnv))
		return embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	}
	return embedding.NewOpenAIEmbedder(cfg.Embedding.BaseURL, apiKey, cfg.Embedding.Model, cfg.Embedding.Dimensions)
}

func buildEngine(ctx context.Context, cfg *config.Config, corpus *store.Corpus, logger *zap.Logger) (*search.Engine, error) {
	scorer := ranking.NewScorer(&cfg.Ranking)

	provider, err := vector.NewChromemProvider(ctx, corpus.Documents(), newEmbedder(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build vector index: %w", err)
	}

	return search.NewEngine(corpus, scorer, provider, cfg.Search.CandidatePool, logger), nil
}

func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger, withHistory bool) (*components, error) {
	corpus, err := store.LoadCorpus(cfg.Corpus.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	logger.Info("corpus loaded",
		zap.String("path", cfg.Corpus.DatasetPath),
		zap.Int("documents", corpus.Len()))

	engine, err := buildEngine(ctx, cfg, corpus, logger)
	if err != nil {
		return nil, err
	}

	generator := generation.NewGroqGenerator(
		cfg.Generation.BaseURL,
		cfg.Generation.APIKey(),
		cfg.Generation.Model,
		cfg.Generation.MaxTokens,
		cfg.Generation.Temperature,
	)

	var history *store.History
	if withHistory {
		history, err = store.NewHistory(cfg.Corpus.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open chat history: %w", err)
		}
	}

	var historyStore search.HistoryStore
	if history != nil {
		historyStore = history
	}
	service := search.NewService(engine, generator, historyStore, cfg.Search.TopK, logger)

	return &components{
		Corpus:    corpus,
		Engine:    engine,
		Service:   service,
		Generator: generator,
		History:   history,
	}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger, true)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer comps.Close()

	watchCtx, watchCancel := context.WithCancel(ctx)
	defer watchCancel()
	if cfg.Corpus.Watch {
		if err := startDatasetWatcher(watchCtx, cfg, comps.Service, logger); err != nil {
			logger.Fatal("Failed to start dataset watcher", zap.Error(err))
		}
	}

	m := metrics.New()
	comps.Service.SetEmptyObserver(m.ObserveEmptyRetrieval)
	srv := server.NewServer(comps.Service, comps.Service, m, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		fmt.Println("Usage: matriq ask [-config path] <question>")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger, false)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer comps.Close()

	resp, err := comps.Service.Ask(ctx, &models.AskRequest{Question: question})
	if err != nil {
		logger.Fatal("ask failed", zap.Error(err))
	}
	fmt.Println(resp.Answer)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 0, "number of results (default from config)")
	_ = fs.Parse(os.Args[2:])

	queryText := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if queryText == "" {
		fmt.Println("Usage: matriq search [-config path] [-limit n] <query>")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	comps, err := initializeComponents(ctx, cfg, logger, false)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer comps.Close()

	k := *limit
	if k <= 0 {
		k = cfg.Search.TopK
	}
	results, err := comps.Engine.Retrieve(ctx, queryText, k)
	if err != nil {
		logger.Warn("semantic retrieval failed, showing keyword-only results", zap.Error(err))
		results = comps.Engine.RetrieveKeywordOnly(queryText, k)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for _, r := range results {
		fmt.Printf("%d. [%s] %s (score %.2f, kw %.2f, sem %.3f)\n",
			r.Rank, r.Document.ID, r.Document.Title, r.Score, r.KeywordScore, r.SemanticScore)
		fmt.Printf("   %s\n", utils.Truncate(r.Document.Content, 160))
	}
}

// startDatasetWatcher reloads the corpus and rebuilds the engine when the
// dataset file changes. A broken dataset keeps the previous engine running.
func startDatasetWatcher(ctx context.Context, cfg *config.Config, svc *search.Service, logger *zap.Logger) error {
	datasetPath, err := filepath.Abs(cfg.Corpus.DatasetPath)
	if err != nil {
		return err
	}
	w := watcher.NewWatcher(datasetPath, func() {
		corpus, err := store.LoadCorpus(datasetPath)
		if err != nil {
			logger.Error("dataset reload failed, keeping previous corpus", zap.Error(err))
			return
		}
		engine, err := buildEngine(ctx, cfg, corpus, logger)
		if err != nil {
			logger.Error("engine rebuild failed, keeping previous corpus", zap.Error(err))
			return
		}
		svc.SwapEngine(engine)
		logger.Info("corpus reloaded", zap.Int("documents", corpus.Len()))
	}, logger)
	return w.Start(ctx)
}
