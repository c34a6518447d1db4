package model

import "time"

// Thresholds holds the process-wide decision tuning. Fixed at start-up,
// never mutated during processing.
type Thresholds struct {
	// AutoApprove is the confidence at or above which a structurally
	// complete invoice skips review.
	AutoApprove float64
	// AutoCorrect is the confidence at or above which a small number of
	// pattern-based fixes is treated as self-certifying.
	AutoCorrect float64
	// MemoryApplication is the minimum memory confidence the engine will act on.
	MemoryApplication float64
	// MemoryDecayRate is reserved for a future decay policy; no pruning runs today.
	MemoryDecayRate float64
	// AutoCorrectMin and AutoCorrectMax bound the correction count that the
	// auto-correct branch accepts.
	AutoCorrectMin int
	AutoCorrectMax int
	// DuplicateWindow is the span within which two invoices sharing id and
	// vendor count as the same document resubmitted.
	DuplicateWindow time.Duration
}

// DefaultThresholds returns the standard tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AutoApprove:       0.85,
		AutoCorrect:       0.70,
		MemoryApplication: 0.70,
		MemoryDecayRate:   0.05,
		AutoCorrectMin:    1,
		AutoCorrectMax:    2,
		DuplicateWindow:   7 * 24 * time.Hour,
	}
}
