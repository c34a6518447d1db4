package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/learning"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/sampledata"
	"github.com/Veraticus/mentat/internal/testutil"
)

// The full loop: process, human corrects, learn, and the next invoice from
// the same vendor is fixed automatically.
func TestLearningLoop_ServiceDate(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)
	learner := learning.New(store)

	// First invoice: service date missing, no memories yet.
	first, err := eng.Process(ctx, sampledata.InvoiceA1)
	require.NoError(t, err)
	assert.Nil(t, first.NormalizedInvoice.ServiceDate)

	// Reviewer fixes the service date, citing the Leistungsdatum.
	_, err = learner.LearnFromCorrection(ctx, sampledata.CorrectionA1)
	require.NoError(t, err)

	memories, err := store.GetMemories(ctx, "Supplier GmbH")
	require.NoError(t, err)
	var learned *model.Memory
	for i := range memories {
		if memories[i].Key == model.KeyServiceDateExtraction {
			learned = &memories[i]
		}
	}
	require.NotNil(t, learned)
	assert.Equal(t, model.TypeVendorPattern, learned.Type)

	// Second invoice: the learned pattern extracts the new date, no human
	// needed.
	second, err := eng.Process(ctx, sampledata.InvoiceA2)
	require.NoError(t, err)
	require.NotNil(t, second.NormalizedInvoice.ServiceDate)
	assert.Equal(t, "2024-01-15", *second.NormalizedInvoice.ServiceDate)
}

func TestLearningLoop_VATInclusive(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)
	learner := learning.New(store)

	_, err := eng.Process(ctx, sampledata.InvoiceB1)
	require.NoError(t, err)

	_, err = learner.LearnFromCorrection(ctx, sampledata.CorrectionB1)
	require.NoError(t, err)

	result, err := eng.Process(ctx, sampledata.InvoiceB2)
	require.NoError(t, err)

	require.NotNil(t, result.NormalizedInvoice.VATIncluded)
	assert.True(t, *result.NormalizedInvoice.VATIncluded)
	assert.InDelta(t, 2000.0, result.NormalizedInvoice.NetTotal, 0.001)
	assert.InDelta(t, 380.0, result.NormalizedInvoice.TaxTotal, 0.001)

	// The currency memory learned from the same correction recovers the
	// missing currency too.
	require.NotNil(t, result.NormalizedInvoice.Currency)
	assert.Equal(t, "EUR", *result.NormalizedInvoice.Currency)
}

func TestLearningLoop_SkontoAndSKU(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)
	learner := learning.New(store)

	_, err := eng.Process(ctx, sampledata.InvoiceC1)
	require.NoError(t, err)

	_, err = learner.LearnFromCorrection(ctx, sampledata.CorrectionC1)
	require.NoError(t, err)

	result, err := eng.Process(ctx, sampledata.InvoiceC2)
	require.NoError(t, err)

	require.NotNil(t, result.NormalizedInvoice.PaymentTerms)
	assert.Equal(t, "2% Skonto innerhalb 10 Tage", *result.NormalizedInvoice.PaymentTerms)
}

func TestLearningLoop_POMatching(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)
	learner := learning.New(store)

	// The PO correction arrives while the invoice is still in review, so the
	// memory exists before the document goes through the pipeline.
	_, err := learner.LearnFromCorrection(ctx, sampledata.CorrectionA3)
	require.NoError(t, err)

	result, err := eng.Process(ctx, sampledata.InvoiceA3)
	require.NoError(t, err)

	require.NotNil(t, result.NormalizedInvoice.PONumber)
	assert.Equal(t, "A-051", *result.NormalizedInvoice.PONumber)
	// Only a PO memory exists for this vendor; nothing touches the service date.
	assert.Nil(t, result.NormalizedInvoice.ServiceDate)
}
