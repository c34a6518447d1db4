package engine

import (
	"fmt"

	"github.com/Veraticus/mentat/internal/model"
)

// decide fills in the review decision, reasoning, and the decide audit entry
// on a result whose normalized fields and confidence are final.
func (e *Engine) decide(result *model.ProcessingResult) {
	corrections := len(result.ProposedCorrections)
	result.RequiresHumanReview = e.requiresReview(result.NormalizedInvoice, result.ConfidenceScore, corrections)

	outcome := "auto-approved"
	if result.RequiresHumanReview {
		outcome = "requires human review"
	}

	if corrections > 0 {
		result.Reasoning = fmt.Sprintf("Applied %d correction(s) based on past vendor behavior; confidence %.0f%%; %s.",
			corrections, result.ConfidenceScore*100, outcome)
	} else {
		result.Reasoning = fmt.Sprintf("No applicable memories improved the extraction; confidence %.0f%%; %s.",
			result.ConfidenceScore*100, outcome)
	}

	result.AuditTrail = append(result.AuditTrail, model.AuditLog{
		Step:      model.StepDecide,
		Timestamp: e.now(),
		Details:   fmt.Sprintf("Decision: %s (confidence %.2f, corrections %d)", outcome, result.ConfidenceScore, corrections),
	})
}

// requiresReview is the review-decision policy: a pure function of the
// normalized fields, the document confidence, and the correction count.
func (e *Engine) requiresReview(fields model.InvoiceFields, confidence float64, corrections int) bool {
	complete := fields.InvoiceNumber != "" && fields.Currency != nil && fields.GrossTotal > 0

	if confidence >= e.thresholds.AutoApprove && complete {
		return false
	}

	// A small number of trusted, pattern-based fixes is self-certifying.
	if confidence >= e.thresholds.AutoCorrect &&
		corrections >= e.thresholds.AutoCorrectMin && corrections <= e.thresholds.AutoCorrectMax {
		return false
	}

	return true
}
