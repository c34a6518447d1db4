// Package engine implements the memory application pipeline: recall learned
// memories for a vendor, apply them to an extracted invoice, and decide
// whether the result still needs human review.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/service"
)

// Confidence increments applied on a successful memory application.
const (
	memoryApplyBoost   = 0.02
	documentApplyBoost = 0.03
)

// FlagDuplicate is the correction note appended when a candidate invoice is
// a near-duplicate of a prior one. Part of the output contract.
const FlagDuplicate = "FLAG_DUPLICATE"

// Engine orchestrates invoice processing against the record store.
type Engine struct {
	storage     service.Storage
	thresholds  model.Thresholds
	vendorLocks *common.KeyedMutex
	now         func() time.Time
}

// Config holds configuration options for the engine.
type Config struct {
	Thresholds model.Thresholds
	// VendorLocks serializes per-vendor read-modify-write on memories. Share
	// one instance with the learner when both run in the same process.
	VendorLocks *common.KeyedMutex
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// New creates an engine with default thresholds and its own vendor locks.
func New(storage service.Storage) *Engine {
	return NewWithConfig(storage, Config{})
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(storage service.Storage, config Config) *Engine {
	if config.Thresholds == (model.Thresholds{}) {
		config.Thresholds = model.DefaultThresholds()
	}
	if config.VendorLocks == nil {
		config.VendorLocks = common.NewKeyedMutex()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Engine{
		storage:     storage,
		thresholds:  config.Thresholds,
		vendorLocks: config.VendorLocks,
		now:         config.Now,
	}
}

// Process runs the full document flow for one invoice: recall the vendor's
// memories, apply them, check for duplicates against history, and append the
// invoice to history when it is not a duplicate. The ExtractedInvoice
// argument is never mutated.
func (e *Engine) Process(ctx context.Context, invoice model.ExtractedInvoice) (*model.ProcessingResult, error) {
	e.vendorLocks.Lock(invoice.Vendor)
	defer e.vendorLocks.Unlock(invoice.Vendor)

	memories, err := e.storage.GetMemories(ctx, invoice.Vendor)
	if err != nil {
		return nil, fmt.Errorf("recall for vendor %q: %w", invoice.Vendor, err)
	}

	result, err := e.ApplyMemories(ctx, invoice, memories)
	if err != nil {
		return nil, err
	}

	history, err := e.storage.GetInvoiceHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load invoice history: %w", err)
	}

	if dupID, found := FindDuplicate(invoice.InvoiceID, invoice.Vendor, invoice.Fields.InvoiceDate, history, e.thresholds.DuplicateWindow); found {
		slog.Warn("Duplicate invoice detected",
			"invoice_id", invoice.InvoiceID,
			"vendor", invoice.Vendor,
			"duplicate_of", dupID)

		result.RequiresHumanReview = true
		result.ConfidenceScore = 0
		result.ProposedCorrections = append(result.ProposedCorrections,
			fmt.Sprintf("%s: matches prior invoice %s within the duplicate window", FlagDuplicate, dupID))
		result.Reasoning = fmt.Sprintf("Possible duplicate of %s; review required.", dupID)
		result.AuditTrail = append(result.AuditTrail, model.AuditLog{
			Step:      model.StepDecide,
			Timestamp: e.now(),
			Details:   fmt.Sprintf("Flagged as duplicate of %s", dupID),
		})
		return result, nil
	}

	entry := model.InvoiceHistoryEntry{
		InvoiceID:   invoice.InvoiceID,
		Vendor:      invoice.Vendor,
		InvoiceDate: invoice.Fields.InvoiceDate,
	}
	if err := e.storage.SaveProcessedInvoice(ctx, entry); err != nil {
		return nil, fmt.Errorf("save invoice history: %w", err)
	}

	return result, nil
}
