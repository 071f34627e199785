package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Generation.Model != "llama3-8b-8192" {
		t.Errorf("generation model = %s", cfg.Generation.Model)
	}
	if cfg.Search.TopK != 3 {
		t.Errorf("TopK = %d", cfg.Search.TopK)
	}
	if cfg.Search.CandidatePool != 6 {
		t.Errorf("CandidatePool = %d, want 2x TopK", cfg.Search.CandidatePool)
	}
	if cfg.Search.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d", cfg.Search.HistoryLimit)
	}
	if cfg.Ranking.TriadBonus == 0 {
		t.Error("ranking defaults not applied")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.Search.TopK = 5
	ApplyDefaults(cfg)

	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("TopK = %d", cfg.Search.TopK)
	}
	if cfg.Search.CandidatePool != 10 {
		t.Errorf("CandidatePool = %d, want 2x explicit TopK", cfg.Search.CandidatePool)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
debug: true
server:
  port: 9090
corpus:
  dataset_path: /tmp/dataset.json
  watch: true
ranking:
  triad_bonus: 750
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("Debug not read")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Host default not filled: %s", cfg.Server.Host)
	}
	if cfg.Corpus.DatasetPath != "/tmp/dataset.json" {
		t.Errorf("DatasetPath = %s", cfg.Corpus.DatasetPath)
	}
	if !cfg.Corpus.Watch {
		t.Error("Watch not read")
	}
	if cfg.Ranking.TriadBonus != 750 {
		t.Errorf("TriadBonus = %v", cfg.Ranking.TriadBonus)
	}
	if cfg.Ranking.FloorScore != 0.1 {
		t.Errorf("ranking defaults not filled: floor = %v", cfg.Ranking.FloorScore)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(":::not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	t.Setenv("GROQ_API_KEY", "test-key")
	if got := cfg.Generation.APIKey(); got != "test-key" {
		t.Errorf("APIKey = %q", got)
	}
}
