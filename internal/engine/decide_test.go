package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/testutil"
)

func TestRequiresReview(t *testing.T) {
	eng := newTestEngine(testutil.NewMemStore())

	complete := model.InvoiceFields{
		InvoiceNumber: "INV-1",
		Currency:      model.StrPtr("EUR"),
		GrossTotal:    1190.0,
	}

	tests := []struct {
		name        string
		fields      model.InvoiceFields
		confidence  float64
		corrections int
		wantReview  bool
	}{
		{
			name:       "auto-approve at threshold with complete fields",
			fields:     complete,
			confidence: 0.85,
			wantReview: false,
		},
		{
			name:       "just below threshold requires review",
			fields:     complete,
			confidence: 0.84,
			wantReview: true,
		},
		{
			name:        "auto-correct branch accepts one trusted fix",
			fields:      complete,
			confidence:  0.84,
			corrections: 1,
			wantReview:  false,
		},
		{
			name:        "auto-correct branch accepts two fixes",
			fields:      complete,
			confidence:  0.70,
			corrections: 2,
			wantReview:  false,
		},
		{
			name:        "three corrections is too many to self-certify",
			fields:      complete,
			confidence:  0.84,
			corrections: 3,
			wantReview:  true,
		},
		{
			name:        "auto-correct needs at least the base confidence",
			fields:      complete,
			confidence:  0.69,
			corrections: 1,
			wantReview:  true,
		},
		{
			name: "missing invoice number blocks auto-approve",
			fields: model.InvoiceFields{
				Currency:   model.StrPtr("EUR"),
				GrossTotal: 1190.0,
			},
			confidence: 0.95,
			wantReview: true,
		},
		{
			name: "missing currency blocks auto-approve",
			fields: model.InvoiceFields{
				InvoiceNumber: "INV-1",
				GrossTotal:    1190.0,
			},
			confidence: 0.95,
			wantReview: true,
		},
		{
			name: "non-positive gross total blocks auto-approve",
			fields: model.InvoiceFields{
				InvoiceNumber: "INV-1",
				Currency:      model.StrPtr("EUR"),
			},
			confidence: 0.95,
			wantReview: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eng.requiresReview(tt.fields, tt.confidence, tt.corrections)
			assert.Equal(t, tt.wantReview, got)
		})
	}
}

func TestDecide_Reasoning(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(testutil.NewMemStore())

	invoice := testInvoice()
	invoice.Confidence = 0.90

	result, err := eng.ApplyMemories(ctx, invoice, nil)
	require.NoError(t, err)

	assert.False(t, result.RequiresHumanReview)
	assert.Contains(t, result.Reasoning, "auto-approved")
	assert.Contains(t, result.Reasoning, "90%")
}
