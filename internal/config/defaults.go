package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Corpus.DatasetPath == "" {
		cfg.Corpus.DatasetPath = "data/dataset_matriculas.json"
	}
	if cfg.Corpus.HistoryPath == "" {
		cfg.Corpus.HistoryPath = "data/chat_history.db"
	}
	if cfg.Embedding.APIKeyEnv == "" {
		cfg.Embedding.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 1536
	}
	if cfg.Generation.BaseURL == "" {
		cfg.Generation.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Generation.APIKeyEnv == "" {
		cfg.Generation.APIKeyEnv = "GROQ_API_KEY"
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "llama3-8b-8192"
	}
	if cfg.Generation.MaxTokens == 0 {
		cfg.Generation.MaxTokens = 500
	}
	if cfg.Generation.Temperature == 0 {
		cfg.Generation.Temperature = 0.7
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = 3
	}
	if cfg.Search.CandidatePool == 0 {
		cfg.Search.CandidatePool = cfg.Search.TopK * 2
	}
	if cfg.Search.HistoryLimit == 0 {
		cfg.Search.HistoryLimit = 50
	}
	cfg.Ranking.ApplyDefaults()
}
