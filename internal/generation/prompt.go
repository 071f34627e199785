package generation

import (
	"fmt"
	"strings"

	"github.com/quipu-ai/matriq/internal/models"
)

const systemPrompt = "Eres un asistente virtual de la Universidad Nacional de San Agustín (UNSA). " +
	"Responde de manera clara y precisa basándote únicamente en el contexto sobre normativas " +
	"universitarias proporcionado. Si no tienes información suficiente, indica que no puedes " +
	"responder esa consulta específica. Mantén un tono profesional y amigable. " +
	"Cita las fechas, lugares y montos exactamente como aparecen en el contexto."

// BuildPrompt renders the user prompt: the document context followed by the
// question. Structured attributes are rendered verbatim so the model can
// quote dates, places and fees exactly.
func BuildPrompt(question string, docs []*models.Document) string {
	var b strings.Builder
	b.WriteString("CONTEXTO:\n")
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		b.WriteString(renderDocument(doc))
	}
	b.WriteString("\n\nPREGUNTA: ")
	b.WriteString(question)
	b.WriteString("\n\nRESPUESTA:")
	return b.String()
}

// renderDocument emits the content plus any structured attributes. Field
// names and values are passed through unchanged; the generation step renders
// them verbatim.
func renderDocument(doc *models.Document) string {
	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(doc.Title)
		b.WriteString("\n")
	}
	b.WriteString(doc.Content)

	writeField := func(label, value string) {
		if value != "" {
			b.WriteString("\n")
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(value)
		}
	}
	writeField("Categoría", doc.Category)
	writeField("Subcategoría", doc.Subcategory)
	writeField("Actividad", doc.Activity)
	writeField("Fechas", doc.Dates)
	writeField("Lugar de pago", doc.PaymentPlace)
	if doc.Fee != nil {
		writeField("Tasa", fmt.Sprintf("S/ %.2f", *doc.Fee))
	}
	writeField("Modalidad", doc.Modality)

	return b.String()
}
