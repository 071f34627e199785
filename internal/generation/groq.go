package generation

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quipu-ai/matriq/internal/models"
)

// GroqGenerator generates answers through Groq's OpenAI-compatible chat API.
type GroqGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewGroqGenerator creates a generator. baseURL may be empty for the default
// OpenAI endpoint; for Groq pass its OpenAI-compatible URL.
func NewGroqGenerator(baseURL, apiKey, model string, maxTokens int, temperature float32) *GroqGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GroqGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Answer renders the context prompt and requests a completion.
func (g *GroqGenerator) Answer(ctx context.Context, question string, docs []*models.Document) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(question, docs)},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
