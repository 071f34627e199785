package models

import (
	"fmt"
	"strings"
	"time"
)

// ChatMessage is a persisted question/answer pair.
type ChatMessage struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// AskRequest is the body of a chat request.
type AskRequest struct {
	Question string `json:"question"`
}

// Validate rejects empty or whitespace-only questions before they reach the
// retrieval core.
func (r *AskRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question cannot be empty")
	}
	return nil
}

// AskResponse is the body of a chat response.
type AskResponse struct {
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
