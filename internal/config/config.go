// Package config provides configuration loading and structs for the matriq server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quipu-ai/matriq/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Generation GenerationConfig `yaml:"generation"`
	Search     SearchConfig     `yaml:"search"`
	Ranking    ranking.Config   `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig holds dataset and history storage paths.
type CorpusConfig struct {
	DatasetPath string `yaml:"dataset_path"`
	HistoryPath string `yaml:"history_path"`
	// Watch reloads the corpus when the dataset file changes.
	Watch bool `yaml:"watch"`
}

// EmbeddingConfig holds settings for the OpenAI-compatible embedding endpoint.
type EmbeddingConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIKeyEnv  string `yaml:"api_key_env"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// GenerationConfig holds settings for the chat-completion endpoint.
type GenerationConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

// SearchConfig holds retrieval settings.
type SearchConfig struct {
	// TopK is the number of documents handed to generation.
	TopK int `yaml:"top_k"`
	// CandidatePool is how many semantic candidates to request from the
	// vector provider before fusion.
	CandidatePool int `yaml:"candidate_pool"`
	// HistoryLimit is how many chat messages the history endpoint returns.
	HistoryLimit int `yaml:"history_limit"`
}

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// APIKey resolves the embedding API key from the environment.
func (c *EmbeddingConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// APIKey resolves the generation API key from the environment.
func (c *GenerationConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}
