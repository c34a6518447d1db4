package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/extract"
	"github.com/Veraticus/mentat/internal/model"
)

func TestInferPattern_ServiceDate(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "serviceDate",
		To:     "2024-01-01",
		Reason: "Leistungsdatum found in raw text",
	})

	require.Equal(t, model.PatternRegex, pattern.Kind)
	assert.Equal(t, "parseGermanDate", pattern.Regex.Transform)

	value, ok := extract.WithRegex("Leistungsdatum: 15.01.2024", *pattern.Regex)
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", value)
}

func TestInferPattern_Currency(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "currency",
		To:     "EUR",
		Reason: "Currency inferred from vendor location",
	})

	require.Equal(t, model.PatternRegex, pattern.Kind)

	value, ok := extract.WithRegex("Total: 2380.00 eur", *pattern.Regex)
	require.True(t, ok)
	assert.Equal(t, "EUR", value)
}

func TestInferPattern_VATIncluded(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "netTotal",
		From:   1190.0,
		To:     1000.0,
		Reason: "VAT included - recalculated net amount",
	})

	require.Equal(t, model.PatternRegex, pattern.Kind)
	assert.True(t, extract.Matches("Prices incl. VAT 19%", *pattern.Regex))
	assert.True(t, extract.Matches("MwSt. inkl. 19%", *pattern.Regex))
}

func TestInferPattern_PurchaseOrder(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "poNumber",
		To:     "PO-A-051",
		Reason: "PO number found in invoice text",
	})

	require.Equal(t, model.PatternRegex, pattern.Kind)

	value, ok := extract.WithRegex("Rechnung INV-2024-003\nPO-A-051\nBetrag", *pattern.Regex)
	require.True(t, ok)
	assert.Equal(t, "A-051", value)
}

func TestInferPattern_Skonto(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "paymentTerms",
		To:     "2% Skonto bei Zahlung innerhalb 10 Tage",
		Reason: "Skonto terms found in invoice",
	})

	require.Equal(t, model.PatternRegex, pattern.Kind)

	value, ok := extract.WithRegex("2% Skonto bei Zahlung innerhalb 10 Tage", *pattern.Regex)
	require.True(t, ok)
	assert.Equal(t, "2% Skonto bei Zahlung innerhalb 10 Tage", value)
}

func TestInferPattern_SKUMapping(t *testing.T) {
	tests := []struct {
		name        string
		from        any
		wantKeyword string
	}{
		{
			name:        "keyword from prior line item",
			from:        model.LineItem{Description: "Seefracht Hamburg-Shanghai"},
			wantKeyword: "seefracht hamburg-shanghai",
		},
		{
			name:        "keyword from decoded JSON map",
			from:        map[string]any{"description": "Seefracht Hamburg-Shanghai", "sku": nil},
			wantKeyword: "seefracht hamburg-shanghai",
		},
		{
			name:        "missing description falls back to freight",
			from:        nil,
			wantKeyword: "freight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := InferPattern(model.CorrectionItem{
				Field:  "sku",
				From:   tt.from,
				To:     "FREIGHT",
				Reason: "Seefracht/Shipping description maps to SKU FREIGHT",
			})

			require.Equal(t, model.PatternRule, pattern.Kind)
			assert.Equal(t, tt.wantKeyword, pattern.Rule.Keyword)
			assert.Equal(t, "FREIGHT", pattern.Rule.MappedValue)
		})
	}
}

func TestInferPattern_FallbackStatic(t *testing.T) {
	pattern := InferPattern(model.CorrectionItem{
		Field:  "invoiceNumber",
		To:     "INV-2024-001",
		Reason: "typo fixed",
	})

	require.Equal(t, model.PatternStatic, pattern.Kind)
	assert.Equal(t, "INV-2024-001", pattern.Static)
}
