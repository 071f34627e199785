package models

// RetrievedDocument is a single ranked hit with its score components.
type RetrievedDocument struct {
	Document      *Document `json:"document"`
	Score         float64   `json:"score"`
	SemanticScore float64   `json:"semantic_score"`
	KeywordScore  float64   `json:"keyword_score"`
	Rank          int       `json:"rank"`
}

// SearchResponse is the response for a raw retrieval request.
type SearchResponse struct {
	Results   []*RetrievedDocument `json:"results"`
	Total     int                  `json:"total"`
	QueryTime int64                `json:"query_time_ms"`
	Query     string               `json:"query"`
}
