package learning

import (
	"fmt"
	"strings"

	"github.com/Veraticus/mentat/internal/model"
)

// Fixed pattern templates, one per canonical key. Learning does not train
// anything: it recognizes which template a correction exercised and stores
// that template for the vendor.
var (
	serviceDateTemplate = model.RegexPattern{
		Pattern:      `Leistungsdatum:?\s*(\d{2}\.\d{2}\.\d{4})`,
		Flags:        "i",
		CaptureGroup: 1,
		Transform:    "parseGermanDate",
	}
	currencyTemplate = model.RegexPattern{
		Pattern:      `(EUR|USD|GBP|CHF)`,
		Flags:        "i",
		CaptureGroup: 1,
		Transform:    "uppercase",
	}
	vatIncludedTemplate = model.RegexPattern{
		Pattern: `(MwSt\.?\s*inkl|VAT\s*incl|prices?\s*incl)`,
		Flags:   "i",
	}
	poTemplate = model.RegexPattern{
		Pattern:      `PO[\s-]?([A-Z]-\d{3})`,
		Flags:        "i",
		CaptureGroup: 1,
	}
	skontoTemplate = model.RegexPattern{
		Pattern:      `(\d+%\s*Skonto.*?\d+\s*Tage)`,
		Flags:        "i",
		CaptureGroup: 1,
	}
)

// InferPattern derives a reusable memory pattern from one correction item,
// using the same heuristic keyword rules as the key mapping. Combinations
// outside the templates fall back to a static value.
func InferPattern(item model.CorrectionItem) model.MemoryPattern {
	reason := strings.ToLower(item.Reason)

	if item.Field == "serviceDate" && strings.Contains(reason, "leistungsdatum") {
		return model.RegexMemoryPattern(serviceDateTemplate)
	}

	if item.Field == "currency" {
		return model.RegexMemoryPattern(currencyTemplate)
	}

	if strings.Contains(reason, "inkl") || strings.Contains(reason, "included") {
		return model.RegexMemoryPattern(vatIncludedTemplate)
	}

	if item.Field == "poNumber" {
		return model.RegexMemoryPattern(poTemplate)
	}

	if strings.Contains(reason, "skonto") {
		return model.RegexMemoryPattern(skontoTemplate)
	}

	if item.Field == "sku" || strings.Contains(reason, "mapping") {
		return model.RulePattern(keywordFrom(item.From), valueString(item.To))
	}

	return model.StaticPattern(valueString(item.To))
}

// keywordFrom pulls the description out of the prior (incorrect) line item,
// lower-cased. Corrections without a usable description fall back to
// "freight", the dominant unmapped line-item class in practice.
func keywordFrom(from any) string {
	switch v := from.(type) {
	case model.LineItem:
		if v.Description != "" {
			return strings.ToLower(v.Description)
		}
	case *model.LineItem:
		if v != nil && v.Description != "" {
			return strings.ToLower(v.Description)
		}
	case map[string]any:
		if desc, ok := v["description"].(string); ok && desc != "" {
			return strings.ToLower(desc)
		}
	}
	return "freight"
}

// valueString renders a corrected value for storage in a pattern.
func valueString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
