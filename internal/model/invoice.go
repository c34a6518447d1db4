// Package model defines the core data structures for the mentat application.
package model

// LineItem is a single line on an extracted invoice. Its identity is its
// position within the invoice's line-item sequence.
type LineItem struct {
	SKU         *string `json:"sku"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
}

// InvoiceFields holds the structured fields produced by the upstream
// extractor. Monetary totals carry currency-minor-unit precision (2 decimal
// places). GrossTotal ≈ NetTotal + TaxTotal only after VAT-inclusive
// recalculation has run; raw extractor output may violate it.
type InvoiceFields struct {
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   string     `json:"invoice_date"`
	ServiceDate   *string    `json:"service_date"`
	Currency      *string    `json:"currency"`
	PONumber      *string    `json:"po_number,omitempty"`
	NetTotal      float64    `json:"net_total"`
	TaxRate       float64    `json:"tax_rate"`
	TaxTotal      float64    `json:"tax_total"`
	GrossTotal    float64    `json:"gross_total"`
	LineItems     []LineItem `json:"line_items"`
	VATIncluded   *bool      `json:"vat_included,omitempty"`
	PaymentTerms  *string    `json:"payment_terms,omitempty"`
}

// Clone returns a deep copy of the fields, so the engine can normalize a
// working copy without mutating the extractor's output.
func (f InvoiceFields) Clone() InvoiceFields {
	out := f
	out.ServiceDate = clonePtr(f.ServiceDate)
	out.Currency = clonePtr(f.Currency)
	out.PONumber = clonePtr(f.PONumber)
	out.VATIncluded = clonePtr(f.VATIncluded)
	out.PaymentTerms = clonePtr(f.PaymentTerms)
	if f.LineItems != nil {
		out.LineItems = make([]LineItem, len(f.LineItems))
		for i, item := range f.LineItems {
			item.SKU = clonePtr(item.SKU)
			out.LineItems[i] = item
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ExtractedInvoice is the immutable input to the engine: one invoice as the
// upstream OCR/extraction process produced it, confidence in [0,1].
type ExtractedInvoice struct {
	InvoiceID  string        `json:"invoice_id"`
	Vendor     string        `json:"vendor"`
	Confidence float64       `json:"confidence"`
	RawText    string        `json:"raw_text"`
	Fields     InvoiceFields `json:"fields"`
}

// InvoiceHistoryEntry records an accepted invoice for duplicate detection.
type InvoiceHistoryEntry struct {
	InvoiceID   string `json:"invoice_id"`
	Vendor      string `json:"vendor"`
	InvoiceDate string `json:"invoice_date"`
}

// StrPtr returns a pointer to s. Convenience for optional invoice fields.
func StrPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
