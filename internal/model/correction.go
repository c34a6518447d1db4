package model

// FinalDecision is the reviewer's verdict on an invoice.
type FinalDecision string

// Final decision constants.
const (
	DecisionApproved FinalDecision = "approved"
	DecisionRejected FinalDecision = "rejected"
)

// CorrectionItem is a single field fix from a human reviewer. From holds the
// prior (incorrect) value and To the corrected one; both are free-form since
// corrections span scalar fields and line items.
type CorrectionItem struct {
	Field  string `json:"field"`
	From   any    `json:"from"`
	To     any    `json:"to"`
	Reason string `json:"reason"`
}

// HumanCorrection is the full review outcome for one invoice, fed to the
// correction learner.
type HumanCorrection struct {
	InvoiceID     string           `json:"invoice_id"`
	Vendor        string           `json:"vendor"`
	Corrections   []CorrectionItem `json:"corrections"`
	FinalDecision FinalDecision    `json:"final_decision"`
}
