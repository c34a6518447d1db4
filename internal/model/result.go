package model

import "time"

// AuditStep names a stage of the processing pipeline. The vocabulary is part
// of the output contract consumed downstream; do not rename.
type AuditStep string

// Audit step constants.
const (
	StepRecall AuditStep = "recall"
	StepApply  AuditStep = "apply"
	StepDecide AuditStep = "decide"
	StepLearn  AuditStep = "learn"
)

// AuditLog is one entry in a processing result's audit trail.
type AuditLog struct {
	Step      AuditStep `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// ProcessingResult is the sole output of processing one invoice: the
// normalized fields, what was corrected and why, whether a human still needs
// to look at it, and the full audit trail.
type ProcessingResult struct {
	InvoiceID           string        `json:"invoice_id"`
	NormalizedInvoice   InvoiceFields `json:"normalized_invoice"`
	ProposedCorrections []string      `json:"proposed_corrections"`
	MemoryUpdates       []string      `json:"memory_updates"`
	RequiresHumanReview bool          `json:"requires_human_review"`
	Reasoning           string        `json:"reasoning"`
	ConfidenceScore     float64       `json:"confidence_score"`
	AuditTrail          []AuditLog    `json:"audit_trail"`
}
