package ranking

import (
	"testing"

	"github.com/quipu-ai/matriq/internal/models"
)

func docs(contents ...string) []*models.Document {
	out := make([]*models.Document, len(contents))
	for i, c := range contents {
		out[i] = &models.Document{ID: string(rune('a' + i)), Content: c}
	}
	return out
}

func TestScorerStrategyDispatch(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name     string
		question string
		want     string
	}{
		{name: "authority", question: "¿Quién aprueba el cronograma?", want: "authority"},
		{name: "equivalence", question: "tabla de equivalencias de cursos", want: "equivalence"},
		{name: "exception", question: "matrícula por excepción", want: "exception_enrollment"},
		{name: "contact", question: "¿A quién me dirijo?", want: "contact"},
		{name: "credits", question: "¿Cuántos créditos como máximo?", want: "credits"},
		{name: "consequence", question: "¿Qué pasa si no pago?", want: "consequence"},
		{name: "definition", question: "¿Qué es la matrícula?", want: "definition"},
		{name: "validation", question: "convalidación de asignaturas", want: "validation"},
		{name: "fee question about validation goes to cost", question: "¿Cuánto cuesta convalidar un curso?", want: "cost"},
		{name: "cost", question: "¿Cuánto cuesta el trámite?", want: "cost"},
		{name: "general fallback", question: "reserva de matrícula", want: "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueryContext(tt.question)
			if got := scorer.StrategyFor(q.Intents); got != tt.want {
				t.Errorf("StrategyFor(%q) = %q, want %q (intents %v)",
					tt.question, got, tt.want, q.Intents.Strings())
			}
		})
	}
}

// Authority precedes cost in the dispatch order: a query firing both intents
// is scored entirely by the authority strategy.
func TestScorerPrecedence(t *testing.T) {
	scorer := NewScorer(nil)
	q := NewQueryContext("¿Quién aprueba el pago de la tasa?")
	if q.Intents.Empty() {
		t.Fatal("expected intents to fire")
	}
	if got := scorer.StrategyFor(q.Intents); got != "authority" {
		t.Errorf("StrategyFor = %q, want authority", got)
	}
}

// One strategy scores every document for a query; documents irrelevant to the
// active strategy get the floor, not a general-scorer score.
func TestScorerMutualExclusion(t *testing.T) {
	scorer := NewScorer(nil)
	cfg := scorer.Config()

	corpus := docs(
		"El Consejo Universitario aprueba el cronograma mediante resolucion.",
		"El pago se realiza en el banco con la boleta correspondiente.",
	)

	q := NewQueryContext("¿Quién aprueba el cronograma de pagos?")
	scores := scorer.Score(q, corpus)

	if len(scores) != 2 {
		t.Fatalf("scored %d documents, want 2", len(scores))
	}
	if scores[0] <= cfg.TriadBonus {
		t.Errorf("authority document scored %.2f, want triad bonus applied", scores[0])
	}
	// The payment document has no authority phrases; under the authority
	// strategy it gets at most a few partial-term hits, never a payment score.
	if scores[1] >= cfg.KeywordMatchWeight {
		t.Errorf("non-authority document scored %.2f under authority strategy", scores[1])
	}
	if scores[1] <= 0 {
		t.Errorf("score must stay positive, got %.2f", scores[1])
	}
}

func TestScorerFloor(t *testing.T) {
	scorer := NewScorer(nil)
	corpus := docs("texto sin vinculo alguno")

	q := NewQueryContext("¿Qué es la matrícula?")
	scores := scorer.Score(q, corpus)
	if scores[0] != scorer.Config().FloorScore {
		t.Errorf("unrelated document scored %.2f, want floor %.2f", scores[0], scorer.Config().FloorScore)
	}
}

func TestScorerEmptyCorpus(t *testing.T) {
	scorer := NewScorer(nil)
	q := NewQueryContext("¿Cuándo es la matrícula?")
	scores := scorer.Score(q, nil)
	if len(scores) != 0 {
		t.Errorf("empty corpus produced %d scores", len(scores))
	}
}

func TestNewScorerNilConfig(t *testing.T) {
	scorer := NewScorer(nil)
	if scorer.Config().TriadBonus != DefaultConfig().TriadBonus {
		t.Error("nil config should fall back to defaults")
	}
}
