package ranking

import (
	"strings"

	"github.com/quipu-ai/matriq/internal/models"
	"github.com/quipu-ai/matriq/internal/query"
)

// listStrategy scores documents against a curated keyword/phrase list for one
// intent. Each phrase hit adds a fixed weight; when all defining phrases of
// the triad are present the document gets a large structural bonus. Documents
// with no hits receive a small non-zero floor so they stay eligible for
// ranking.
type listStrategy struct {
	name    string
	intent  query.Intent
	cfg     *Config
	phrases []string
	triad   []string
	// unless yields dispatch to a later strategy when one of these intents
	// is also active.
	unless []query.Intent
}

func (s *listStrategy) Name() string { return s.name }

func (s *listStrategy) Applies(intents query.IntentSet) bool {
	for _, u := range s.unless {
		if intents.Has(u) {
			return false
		}
	}
	return intents.Has(s.intent)
}

func (s *listStrategy) Score(q *QueryContext, doc *models.Document) float64 {
	content := query.Normalize(doc.Content)

	score := 0.0
	for _, p := range s.phrases {
		if strings.Contains(content, p) {
			score += s.cfg.KeywordMatchWeight
		}
	}

	if len(s.triad) > 0 && allPresent(content, s.triad) {
		score += s.cfg.TriadBonus
	}

	// Partial overlap with the expanded query terms keeps near-misses ahead
	// of the floor.
	for _, term := range q.Expanded {
		if strings.Contains(content, term) {
			score += s.cfg.TermOccurrenceWeight
		}
	}

	if score == 0 {
		return s.cfg.FloorScore
	}
	return score
}

func allPresent(content string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(content, p) {
			return false
		}
	}
	return true
}

// specializedStrategies returns the strategy table in dispatch precedence
// order: authority > equivalence > exception enrollment > contact > credits >
// consequence > definition > validation > cost. The first strategy whose
// intent is active scores every document for the query.
func specializedStrategies(cfg *Config) []Strategy {
	return []Strategy{
		&listStrategy{
			name:   "authority",
			intent: query.IntentAuthority,
			cfg:    cfg,
			phrases: []string{
				"consejo universitario", "consejo de facultad", "vicerrectorado academico",
				"direccion de escuela", "establece", "aprueba", "autoriza", "resolucion",
			},
			triad: []string{"consejo universitario", "aprueba", "resolucion"},
		},
		&listStrategy{
			name:   "equivalence",
			intent: query.IntentEquivalence,
			cfg:    cfg,
			phrases: []string{
				"equivalencia", "tabla de equivalencias", "plan de estudios",
				"asignaturas equivalentes", "curricula", "malla curricular",
			},
			triad: []string{"tabla de equivalencias", "plan de estudios", "asignaturas"},
		},
		&listStrategy{
			name:   "exception_enrollment",
			intent: query.IntentException,
			cfg:    cfg,
			phrases: []string{
				"matricula por excepcion", "egresar", "prerrequisito", "ultimo semestre",
				"curricula rigida", "asignaturas pendientes", "casos no contemplados",
			},
			triad: []string{"matricula por excepcion", "egresar", "prerrequisito"},
		},
		&listStrategy{
			name:   "contact",
			intent: query.IntentContact,
			cfg:    cfg,
			phrases: []string{
				"mesa de partes", "secretaria", "correo", "telefono",
				"direccion de escuela", "oficina", "atencion",
			},
		},
		&listStrategy{
			name:   "credits",
			intent: query.IntentCredits,
			cfg:    cfg,
			phrases: []string{
				"creditos", "creditaje", "minimo", "maximo",
				"promedio ponderado", "semestre academico",
			},
			triad: []string{"creditos", "minimo", "maximo"},
		},
		&listStrategy{
			name:   "consequence",
			intent: query.IntentConsequence,
			cfg:    cfg,
			phrases: []string{
				"pierde", "perdida", "sancion", "no podra", "abandono",
				"retiro", "queda sin efecto",
			},
		},
		&listStrategy{
			name:   "definition",
			intent: query.IntentDefinition,
			cfg:    cfg,
			phrases: []string{
				"es el acto formal", "acto formal", "se define", "se entiende por",
				"consiste en", "proceso mediante el cual", "voluntario", "responsabilidad",
			},
			triad: []string{"acto formal", "voluntario", "responsabilidad"},
		},
		&listStrategy{
			name:   "validation",
			intent: query.IntentValidation,
			cfg:    cfg,
			phrases: []string{
				"convalidacion", "convalidar", "silabo", "contenidos",
				"nota aprobatoria", "creditos", "requisitos",
			},
			triad: []string{"convalidacion", "silabo", "creditos"},
			// "cuanto cuesta convalidar" is a fee question; the cost
			// strategy's amount branch owns it, not validation.
			unless: []query.Intent{query.IntentAmount},
		},
		newCostStrategy(cfg),
	}
}
