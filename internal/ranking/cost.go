package ranking

import (
	"strings"

	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/query"
)

// costStrategy handles cost questions, sub-branching on whether the query is
// about a payment amount, the payment procedure, or cost in general.
type costStrategy struct {
	cfg *Config
}

func newCostStrategy(cfg *Config) *costStrategy {
	return &costStrategy{cfg: cfg}
}

func (s *costStrategy) Name() string { return "cost" }

func (s *costStrategy) Applies(intents query.IntentSet) bool {
	return intents.Has(query.IntentCost) ||
		intents.Has(query.IntentAmount) ||
		intents.Has(query.IntentPaymentProcedure)
}

func (s *costStrategy) Score(q *QueryContext, doc *models.Document) float64 {
	switch {
	case q.Intents.Has(query.IntentAmount):
		return s.scoreAmount(q, doc)
	case q.Intents.Has(query.IntentPaymentProcedure):
		return s.scoreProcedure(q, doc)
	default:
		return s.scoreGeneric(q, doc)
	}
}

// Modality and provenance terms a query can name explicitly. The document's
// modality attribute (e.g. "Profesional - Universidad Particular") is matched
// against these to pick the right fee tier.
var (
	modalityTerms   = []string{"profesional", "ordinario"}
	provenanceTerms = []string{"particular", "nacional"}
)

// scoreAmount scores fee-amount questions. Documents without a fee attribute
// are zeroed: they cannot answer "how much". When the query names a modality
// or provenance, a matching document gets a large bonus and a mismatched one
// is multiplicatively penalized to near zero — near zero rather than
// excluded, so it can still surface when nothing else qualifies.
func (s *costStrategy) scoreAmount(q *QueryContext, doc *models.Document) float64 {
	if !doc.HasFee() {
		return 0
	}

	score := s.cfg.AmountBaseScore
	modality := query.Normalize(doc.Modality)

	mismatch := false
	if named := termsIn(q.Normalized, modalityTerms); len(named) > 0 {
		if anyIn(modality, named) {
			score += s.cfg.ModalityMatchBonus
		} else {
			mismatch = true
		}
	}
	if named := termsIn(q.Normalized, provenanceTerms); len(named) > 0 {
		if anyIn(modality, named) {
			score += s.cfg.ProvenanceMatchBonus
		} else {
			mismatch = true
		}
	}

	if mismatch {
		score *= s.cfg.ProvenanceMismatchFactor
	}
	return score
}

var procedureKeywords = []string{
	"pago", "banco", "caja universitaria", "comprobante", "boleta",
	"recibo", "voucher", "tramite", "plataforma",
}

// scoreProcedure scores payment-procedure questions; a payment-location
// attribute is a strong signal.
func (s *costStrategy) scoreProcedure(q *QueryContext, doc *models.Document) float64 {
	content := query.Normalize(doc.Content)

	score := 0.0
	for _, kw := range procedureKeywords {
		if strings.Contains(content, kw) {
			score += s.cfg.KeywordMatchWeight
		}
	}
	if doc.PaymentPlace != "" {
		score += s.cfg.PaymentPlaceBonus
	}

	if score == 0 {
		return s.cfg.FloorScore
	}
	return score
}

var costKeywords = []string{
	"costo", "tasa", "tarifa", "monto", "soles", "pago", "derecho de tramite",
}

func (s *costStrategy) scoreGeneric(q *QueryContext, doc *models.Document) float64 {
	content := query.Normalize(doc.Content)

	score := 0.0
	for _, kw := range costKeywords {
		if strings.Contains(content, kw) {
			score += s.cfg.KeywordMatchWeight
		}
	}
	if doc.HasFee() {
		score += s.cfg.FeeFieldBonus
	}

	if score == 0 {
		return s.cfg.FloorScore
	}
	return score
}

// termsIn returns the subset of terms present in text.
func termsIn(text string, terms []string) []string {
	var found []string
	for _, t := range terms {
		if strings.Contains(text, t) {
			found = append(found, t)
		}
	}
	return found
}

// anyIn reports whether text contains any of the terms.
func anyIn(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
