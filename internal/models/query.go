package models

import "fmt"

// SearchQuery represents a raw retrieval request.
type SearchQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Validate ensures the query has valid fields and sets defaults.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 3
	}
	if q.Limit > 20 {
		q.Limit = 20
	}
	return nil
}
