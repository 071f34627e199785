// Package models defines core data structures for documents, queries, and chat.
package models

// Document is a single normative record about enrollment procedures.
// Documents are loaded once at startup and never mutated afterwards; their
// position in the corpus slice is the join key with the vector index.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`

	// Structured attributes, all optional. Absence means "not applicable",
	// never an error.
	Activity     string   `json:"activity,omitempty"`      // schedule activity label, e.g. "Matrícula regular"
	Dates        string   `json:"dates,omitempty"`         // human-readable range, e.g. "del 17 al 28 de marzo"
	PaymentPlace string   `json:"payment_place,omitempty"` // e.g. "Caja Universitaria"
	Fee          *float64 `json:"fee,omitempty"`           // amount in soles
	Modality     string   `json:"modality,omitempty"`      // e.g. "Profesional - Universidad Particular"
	Keywords     []string `json:"keywords,omitempty"`
	Year         string   `json:"year,omitempty"`
	DocumentType string   `json:"document_type,omitempty"`
}

// HasFee reports whether the document carries a fee amount.
func (d *Document) HasFee() bool {
	return d.Fee != nil
}
