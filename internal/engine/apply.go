package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/mentat/internal/extract"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/money"
)

// ApplyMemories normalizes one invoice using the vendor's memories and
// returns the processing result. Memories are applied highest-confidence
// first; each application re-checks its own precondition, so a weaker rule
// never overwrites a field a stronger one already set. The invoice argument
// is cloned, never mutated; the only persistence side effects are the
// usage-statistic updates on memories that actually applied.
func (e *Engine) ApplyMemories(ctx context.Context, invoice model.ExtractedInvoice, memories []model.Memory) (*model.ProcessingResult, error) {
	normalized := invoice.Fields.Clone()

	result := &model.ProcessingResult{
		InvoiceID:           invoice.InvoiceID,
		ProposedCorrections: []string{},
		MemoryUpdates:       []string{},
		ConfidenceScore:     invoice.Confidence,
	}

	result.AuditTrail = append(result.AuditTrail, model.AuditLog{
		Step:      model.StepRecall,
		Timestamp: e.now(),
		Details:   fmt.Sprintf("Fetched %d memories for vendor: %s", len(memories), invoice.Vendor),
	})

	// Highest confidence first; stable so equal-confidence memories keep
	// their recall order.
	sorted := make([]model.Memory, len(memories))
	copy(sorted, memories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	for i := range sorted {
		memory := &sorted[i]
		if !e.applicable(memory) {
			continue
		}

		correction, applied := e.applyMemory(memory, &normalized, invoice.RawText)
		if !applied {
			continue
		}

		before := memory.Confidence
		memory.RecordUse(e.now())
		memory.Reinforce(memoryApplyBoost)
		if err := e.storage.SaveMemory(ctx, memory); err != nil {
			return nil, fmt.Errorf("persist memory %s: %w", memory.ID, err)
		}

		result.ProposedCorrections = append(result.ProposedCorrections, correction)
		result.MemoryUpdates = append(result.MemoryUpdates,
			fmt.Sprintf("Reinforced %s (confidence %.2f -> %.2f, hits %d)", memory.Key, before, memory.Confidence, memory.HitCount))
		result.AuditTrail = append(result.AuditTrail, model.AuditLog{
			Step:      model.StepApply,
			Timestamp: e.now(),
			Details:   fmt.Sprintf("Applied memory [%s]: %s", memory.Key, correction),
		})

		result.ConfidenceScore = model.ClampConfidence(result.ConfidenceScore + documentApplyBoost)
	}

	result.NormalizedInvoice = normalized
	e.decide(result)

	return result, nil
}

// applicable reports whether a memory has earned enough trust to act on.
// Human-verified memories apply immediately: a reviewer confirming a pattern
// outranks the confidence it has accumulated on its own.
func (e *Engine) applicable(memory *model.Memory) bool {
	if memory.Confidence >= e.thresholds.MemoryApplication {
		return true
	}
	return memory.Metadata != nil && memory.Metadata.HumanVerified
}

// applyMemory dispatches one memory against the working invoice fields.
// Returns a human-readable correction description when the memory applied.
// Keys outside the canonical application set are no-ops; so are patterns
// whose variant does not match the key's expectation.
func (e *Engine) applyMemory(memory *model.Memory, fields *model.InvoiceFields, rawText string) (string, bool) {
	switch memory.Key {
	case model.KeyServiceDateExtraction:
		if fields.ServiceDate != nil || memory.Pattern.Kind != model.PatternRegex {
			return "", false
		}
		value, ok := extract.WithRegex(rawText, *memory.Pattern.Regex)
		if !ok {
			return "", false
		}
		fields.ServiceDate = &value
		return fmt.Sprintf("Filled missing service date with %s", value), true

	case model.KeyCurrencyRecovery:
		if fields.Currency != nil || memory.Pattern.Kind != model.PatternRegex {
			return "", false
		}
		value, ok := extract.WithRegex(rawText, *memory.Pattern.Regex)
		if !ok {
			return "", false
		}
		fields.Currency = &value
		return fmt.Sprintf("Recovered missing currency as %s", value), true

	case model.KeyVATIncludedDetection:
		if memory.Pattern.Kind != model.PatternRegex {
			return "", false
		}
		if !extract.Matches(rawText, *memory.Pattern.Regex) {
			return "", false
		}
		fields.VATIncluded = model.BoolPtr(true)
		net, tax := money.FromGross(fields.GrossTotal, fields.TaxRate)
		fields.NetTotal = net
		fields.TaxTotal = tax
		return fmt.Sprintf("Detected VAT-inclusive pricing; recalculated net %.2f and tax %.2f from gross %.2f", net, tax, fields.GrossTotal), true

	case model.KeyPOMatching:
		if fields.PONumber != nil || memory.Pattern.Kind != model.PatternRegex {
			return "", false
		}
		value, ok := extract.WithRegex(rawText, *memory.Pattern.Regex)
		if !ok {
			return "", false
		}
		fields.PONumber = &value
		return fmt.Sprintf("Matched purchase order %s from raw text", value), true

	case model.KeySkontoTerms:
		if memory.Pattern.Kind != model.PatternRegex {
			return "", false
		}
		value, ok := extract.WithRegex(rawText, *memory.Pattern.Regex)
		if !ok {
			return "", false
		}
		fields.PaymentTerms = &value
		return fmt.Sprintf("Captured early-payment terms: %s", value), true

	case model.KeySKUMapping:
		if memory.Pattern.Kind != model.PatternRule {
			return "", false
		}
		rule := memory.Pattern.Rule
		keyword := strings.ToLower(rule.Keyword)
		mapped := 0
		for i := range fields.LineItems {
			item := &fields.LineItems[i]
			if item.SKU != nil || item.Description == "" {
				continue
			}
			if strings.Contains(strings.ToLower(item.Description), keyword) {
				sku := rule.MappedValue
				item.SKU = &sku
				mapped++
			}
		}
		if mapped == 0 {
			return "", false
		}
		return fmt.Sprintf("Mapped %d line item(s) matching %q to SKU %s", mapped, rule.Keyword, rule.MappedValue), true

	default:
		// Non-application keys (e.g. resolution_*) exist for learning and
		// audit only.
		return "", false
	}
}
