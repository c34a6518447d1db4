package model

import "time"

// MemoryType indicates how a memory came to exist.
type MemoryType string

const (
	// TypeVendorPattern is a reusable extraction pattern learned for a vendor.
	TypeVendorPattern MemoryType = "vendor-pattern"
	// TypeCorrection is a learned fix that is not a reusable extraction pattern.
	TypeCorrection MemoryType = "correction"
	// TypeResolution tracks how often a vendor's invoices end up approved or rejected.
	TypeResolution MemoryType = "resolution"
)

// Canonical memory keys. Lookups are scoped by (vendor, key); the application
// engine dispatches on these, and any other key is a no-op for application.
const (
	KeyServiceDateExtraction = "serviceDate_extraction"
	KeyCurrencyRecovery      = "currency_recovery"
	KeyVATIncludedDetection  = "vat_included_detection"
	KeyPOMatching            = "po_matching"
	KeySkontoTerms           = "skonto_terms"
	KeySKUMapping            = "sku_mapping"
)

// PatternKind discriminates the MemoryPattern variants.
type PatternKind string

const (
	// PatternStatic holds a literal value.
	PatternStatic PatternKind = "static"
	// PatternRegex extracts a value from raw text.
	PatternRegex PatternKind = "regex"
	// PatternRule maps a description keyword to a target value.
	PatternRule PatternKind = "rule"
)

// RegexPattern describes a regex extraction: pattern plus flags, which
// capture group to take, and an optional named transform applied to the
// captured value.
type RegexPattern struct {
	Pattern      string `json:"pattern"`
	Flags        string `json:"flags,omitempty"`
	CaptureGroup int    `json:"capture_group,omitempty"`
	Transform    string `json:"transform,omitempty"`
}

// MappingRule maps line-item descriptions containing Keyword
// (case-insensitive) to MappedValue.
type MappingRule struct {
	Keyword     string `json:"keyword"`
	MappedValue string `json:"mapped_value"`
}

// MemoryPattern is a tagged union: exactly the variant named by Kind is set.
// The engine matches on Kind exhaustively, so a pattern of an unexpected
// shape degrades to a no-op instead of a partial application.
type MemoryPattern struct {
	Kind   PatternKind   `json:"kind"`
	Static string        `json:"static,omitempty"`
	Regex  *RegexPattern `json:"regex,omitempty"`
	Rule   *MappingRule  `json:"rule,omitempty"`
}

// StaticPattern builds a static-value pattern.
func StaticPattern(value string) MemoryPattern {
	return MemoryPattern{Kind: PatternStatic, Static: value}
}

// RegexMemoryPattern builds a regex pattern.
func RegexMemoryPattern(rp RegexPattern) MemoryPattern {
	return MemoryPattern{Kind: PatternRegex, Regex: &rp}
}

// RulePattern builds a keyword-mapping rule pattern.
func RulePattern(keyword, mappedValue string) MemoryPattern {
	return MemoryPattern{Kind: PatternRule, Rule: &MappingRule{Keyword: keyword, MappedValue: mappedValue}}
}

// MemoryMetadata carries provenance for a memory.
type MemoryMetadata struct {
	CreatedFrom   string `json:"created_from,omitempty"`
	HumanVerified bool   `json:"human_verified,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Memory is a learned, confidence-weighted rule associating a vendor and
// canonical key with a pattern for fixing or filling an invoice field.
type Memory struct {
	ID           string          `json:"id"`
	Type         MemoryType      `json:"type"`
	Vendor       string          `json:"vendor"`
	Key          string          `json:"key"`
	Pattern      MemoryPattern   `json:"pattern"`
	Confidence   float64         `json:"confidence"`
	LastUsed     time.Time       `json:"last_used"`
	HitCount     int             `json:"hit_count"`
	SuccessCount int             `json:"success_count"`
	FailureCount int             `json:"failure_count"`
	Metadata     *MemoryMetadata `json:"metadata,omitempty"`
}

// Reinforce bumps the memory's confidence by delta, clamped to [0,1].
// Reinforcement never decreases confidence.
func (m *Memory) Reinforce(delta float64) {
	m.Confidence = ClampConfidence(m.Confidence + delta)
}

// RecordUse updates usage statistics after a successful application.
func (m *Memory) RecordUse(now time.Time) {
	m.HitCount++
	m.SuccessCount++
	m.LastUsed = now
}

// ClampConfidence restricts a confidence score to [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
