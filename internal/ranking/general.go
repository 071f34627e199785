package ranking

import (
	"regexp"
	"strings"

	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/query"
)

// datePatterns match the date forms that appear in enrollment schedules:
// "28 de marzo", "marzo 2025", "2025 - a", "del 17 al 28". Content is
// normalized (lowercase, no diacritics) before matching.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}\s+de\s+[a-z]+`),
	regexp.MustCompile(`\b[a-z]+\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{4}\s*-\s*[ab]\b`),
	regexp.MustCompile(`\bdel\s+\d{1,2}\s+al\s+\d{1,2}\b`),
}

var placeKeywords = []string{
	"mesa de partes", "oficina", "secretaria", "ventanilla",
	"plataforma", "virtual", "presencial", "direccion de escuela",
}

// GeneralScorer is the intent-independent fallback: weighted term overlap
// plus fixed additive bonuses for date patterns, place keywords, structured
// fields, keyword-list overlap, and category overlap.
type GeneralScorer struct {
	cfg *Config
}

// NewGeneralScorer creates a GeneralScorer with the given config.
func NewGeneralScorer(cfg *Config) *GeneralScorer {
	return &GeneralScorer{cfg: cfg}
}

// Name returns the scorer name.
func (g *GeneralScorer) Name() string { return "general" }

// Score calculates the fallback keyword score for one document.
func (g *GeneralScorer) Score(q *QueryContext, doc *models.Document) float64 {
	content := query.Normalize(doc.Content)

	score := 0.0
	for _, term := range q.Expanded {
		score += float64(strings.Count(content, term)) * g.cfg.TermOccurrenceWeight
	}
	if q.Normalized != "" && strings.Contains(content, q.Normalized) {
		score += g.cfg.VerbatimQueryBonus
	}

	if MatchesDatePattern(content) {
		score += g.cfg.DateRegexBonus
	}
	if anyIn(content, placeKeywords) {
		score += g.cfg.PlaceKeywordBonus
	}
	if doc.Activity != "" || doc.Dates != "" {
		score += g.cfg.ScheduleFieldBonus
	}
	if doc.PaymentPlace != "" {
		score += g.cfg.LocationFieldBonus
	}
	if overlapsKeywords(doc.Keywords, q.Expanded) {
		score += g.cfg.KeywordOverlapBonus
	}
	if overlapsCategory(doc, q.Expanded) {
		score += g.cfg.CategoryOverlapBonus
	}

	return score
}

// MatchesDatePattern reports whether normalized content contains any of the
// schedule date forms.
func MatchesDatePattern(content string) bool {
	for _, p := range datePatterns {
		if p.MatchString(content) {
			return true
		}
	}
	return false
}

func overlapsKeywords(keywords []string, terms []string) bool {
	for _, kw := range keywords {
		normalized := query.Normalize(kw)
		for _, t := range terms {
			if normalized == t {
				return true
			}
		}
	}
	return false
}

func overlapsCategory(doc *models.Document, terms []string) bool {
	for _, label := range []string{doc.Category, doc.Subcategory} {
		if label == "" {
			continue
		}
		for _, tok := range query.Tokenize(label) {
			for _, t := range terms {
				if tok == t {
					return true
				}
			}
		}
	}
	return false
}
