package engine

import (
	"time"

	"github.com/Veraticus/mentat/internal/model"
)

const invoiceDateLayout = "2006-01-02"

// FindDuplicate scans history for a prior invoice with the same vendor, the
// same invoice id, and an invoice-date gap strictly inside the window.
// Returns the prior entry's id when found. Detection never errors: an
// unparseable date or empty history simply means no duplicate.
func FindDuplicate(invoiceID, vendor, invoiceDate string, history []model.InvoiceHistoryEntry, window time.Duration) (string, bool) {
	candidate, err := time.Parse(invoiceDateLayout, invoiceDate)
	if err != nil {
		return "", false
	}

	for _, entry := range history {
		if entry.Vendor != vendor || entry.InvoiceID != invoiceID {
			continue
		}
		prior, err := time.Parse(invoiceDateLayout, entry.InvoiceDate)
		if err != nil {
			continue
		}
		gap := candidate.Sub(prior)
		if gap < 0 {
			gap = -gap
		}
		if gap < window {
			return entry.InvoiceID, true
		}
	}

	return "", false
}
