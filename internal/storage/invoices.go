package storage

import (
	"context"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
)

// GetInvoiceHistory returns every accepted invoice, oldest first.
func (s *SQLiteStorage) GetInvoiceHistory(ctx context.Context) ([]model.InvoiceHistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT invoice_id, vendor, invoice_date
		FROM invoice_history
		ORDER BY created_at, invoice_id
	`)
	if err != nil {
		return nil, common.StoreError("get invoice history", err)
	}
	defer func() { _ = rows.Close() }()

	var history []model.InvoiceHistoryEntry
	for rows.Next() {
		var entry model.InvoiceHistoryEntry
		if err := rows.Scan(&entry.InvoiceID, &entry.Vendor, &entry.InvoiceDate); err != nil {
			return nil, common.StoreError("scan invoice history", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, common.StoreError("iterate invoice history", err)
	}

	return history, nil
}

// SaveProcessedInvoice appends an invoice to history, skipping exact
// (invoice id, vendor) duplicates.
func (s *SQLiteStorage) SaveProcessedInvoice(ctx context.Context, entry model.InvoiceHistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistoryEntry(entry); err != nil {
		return err
	}

	op := func() error {
		_, execErr := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO invoice_history (invoice_id, vendor, invoice_date)
			VALUES (?, ?, ?)
		`, entry.InvoiceID, entry.Vendor, entry.InvoiceDate)
		return execErr
	}

	if err := common.WithRetry(ctx, op, common.RetryOptions{MaxAttempts: 3}); err != nil {
		return common.StoreError("save processed invoice", err)
	}

	return nil
}
