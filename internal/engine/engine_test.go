package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/sampledata"
	"github.com/Veraticus/mentat/internal/testutil"
)

func TestProcess_AppendsToHistory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)

	result, err := eng.Process(ctx, sampledata.InvoiceA1)
	require.NoError(t, err)
	assert.Equal(t, "INV-A-001", result.InvoiceID)

	history, err := store.GetInvoiceHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.InvoiceHistoryEntry{
		InvoiceID:   "INV-A-001",
		Vendor:      "Supplier GmbH",
		InvoiceDate: "2024-01-12",
	}, history[0])
}

func TestProcess_DuplicateFlagged(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)

	_, err := eng.Process(ctx, sampledata.InvoiceA4)
	require.NoError(t, err)

	result, err := eng.Process(ctx, sampledata.InvoiceA4Resubmitted)
	require.NoError(t, err)

	assert.True(t, result.RequiresHumanReview)
	assert.Zero(t, result.ConfidenceScore)
	require.NotEmpty(t, result.ProposedCorrections)
	assert.Contains(t, result.ProposedCorrections[len(result.ProposedCorrections)-1], FlagDuplicate)

	// The duplicate is excluded from history.
	history, err := store.GetInvoiceHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestProcess_OutsideDuplicateWindow(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	eng := newTestEngine(store)

	_, err := eng.Process(ctx, sampledata.InvoiceA4)
	require.NoError(t, err)

	// Same id and vendor, dated well past the window.
	late := sampledata.InvoiceA4Resubmitted
	late.Fields.InvoiceDate = "2024-02-10"

	result, err := eng.Process(ctx, late)
	require.NoError(t, err)

	for _, correction := range result.ProposedCorrections {
		assert.NotContains(t, correction, FlagDuplicate)
	}
}

func TestProcess_StoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	store.FailWith = errors.New("disk on fire")
	eng := newTestEngine(store)

	_, err := eng.Process(ctx, sampledata.InvoiceA1)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}
