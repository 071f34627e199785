package generation

import (
	"strings"
	"testing"

	"github.com/quipu-ai/matriq/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	fee := 176.0
	docs := []*models.Document{
		{
			ID:      "mat-001",
			Title:   "Convalidación",
			Content: "La convalidación requiere nota aprobatoria.",
			Fee:     &fee,
			Dates:   "Del 17 al 28 de marzo",
		},
		{
			ID:      "mat-002",
			Content: "El cronograma se publica en marzo.",
		},
	}

	prompt := BuildPrompt("¿Cuánto cuesta la convalidación?", docs)

	for _, want := range []string{
		"CONTEXTO:",
		"Convalidación",
		"La convalidación requiere nota aprobatoria.",
		"Tasa: S/ 176.00",
		"Fechas: Del 17 al 28 de marzo",
		"\n---\n",
		"PREGUNTA: ¿Cuánto cuesta la convalidación?",
		"RESPUESTA:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	if strings.Index(prompt, "CONTEXTO:") > strings.Index(prompt, "PREGUNTA:") {
		t.Error("context must precede the question")
	}
}

func TestBuildPromptOmitsEmptyFields(t *testing.T) {
	docs := []*models.Document{{ID: "a", Content: "contenido"}}
	prompt := BuildPrompt("pregunta", docs)

	for _, label := range []string{"Tasa:", "Fechas:", "Lugar de pago:", "Modalidad:", "Categoría:"} {
		if strings.Contains(prompt, label) {
			t.Errorf("prompt should not render empty field %q", label)
		}
	}
}

func TestBuildPromptNoDocs(t *testing.T) {
	prompt := BuildPrompt("pregunta", nil)
	if !strings.Contains(prompt, "PREGUNTA: pregunta") {
		t.Error("question missing")
	}
}
