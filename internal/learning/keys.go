// Package learning implements the correction-learning pipeline: map a human
// correction to a canonical memory key, infer a reusable pattern, and
// reinforce or create the vendor's memory.
package learning

import (
	"strings"

	"github.com/Veraticus/mentat/internal/model"
)

// keyRule pairs a predicate with the canonical key it selects. Rules are
// evaluated top to bottom and the first match wins; some predicates overlap
// ("included" wording can co-occur with other fields), so order matters.
type keyRule struct {
	key   string
	match func(field, reason string) bool
}

var keyRules = []keyRule{
	{
		key: model.KeyServiceDateExtraction,
		match: func(field, reason string) bool {
			return field == "serviceDate" && strings.Contains(reason, "leistungsdatum")
		},
	},
	{
		key: model.KeyCurrencyRecovery,
		match: func(field, _ string) bool {
			return field == "currency"
		},
	},
	{
		key: model.KeyVATIncludedDetection,
		match: func(field, reason string) bool {
			if field != "taxRate" && field != "netTotal" && field != "taxTotal" {
				return false
			}
			return strings.Contains(reason, "inkl") || strings.Contains(reason, "included")
		},
	},
	{
		key: model.KeyPOMatching,
		match: func(field, _ string) bool {
			return field == "poNumber"
		},
	},
	{
		key: model.KeySkontoTerms,
		match: func(field, reason string) bool {
			return field == "paymentTerms" && strings.Contains(reason, "skonto")
		},
	},
	{
		key: model.KeySKUMapping,
		match: func(field, reason string) bool {
			if field == "sku" {
				return true
			}
			return field == "lineItems" && (strings.Contains(reason, "sku") || strings.Contains(reason, "mapping"))
		},
	},
}

// MapToMemoryKey resolves a corrected field plus its free-text reason to a
// canonical memory key. The reason scan is case-insensitive. A combination
// matching no rule returns false: a deliberate unknown-pattern drop, not an
// error.
func MapToMemoryKey(field, reason string) (string, bool) {
	reasonLower := strings.ToLower(reason)
	for _, rule := range keyRules {
		if rule.match(field, reasonLower) {
			return rule.key, true
		}
	}
	return "", false
}

// memoryTypeForKey classifies a new memory: keys describing a reusable
// extraction become vendor patterns, anything else is a plain correction.
func memoryTypeForKey(key string) model.MemoryType {
	if strings.Contains(key, "extraction") || strings.Contains(key, "recovery") || strings.Contains(key, "detection") {
		return model.TypeVendorPattern
	}
	return model.TypeCorrection
}
