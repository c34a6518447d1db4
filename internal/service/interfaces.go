// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/mentat/internal/model"
)

// Storage defines the contract for the record store backing learned memories
// and invoice history. The engine treats every call as a blocking
// request/response collaborator; failures must surface as
// common.ErrStoreUnavailable wrapped with detail, never as a silent partial
// result. Implementations must serialize memory read-modify-write per vendor
// so concurrent documents for the same vendor cannot lose confidence or
// hit-count updates.
type Storage interface {
	// Memory operations
	GetMemories(ctx context.Context, vendor string) ([]model.Memory, error)
	SaveMemory(ctx context.Context, memory *model.Memory) error
	GetAllMemories(ctx context.Context) ([]model.Memory, error)

	// Invoice history operations
	GetInvoiceHistory(ctx context.Context) ([]model.InvoiceHistoryEntry, error)
	// SaveProcessedInvoice appends an entry, skipping exact
	// (invoiceID, vendor) duplicates.
	SaveProcessedInvoice(ctx context.Context, entry model.InvoiceHistoryEntry) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
