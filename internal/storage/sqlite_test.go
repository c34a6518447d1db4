package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/storage"
	"github.com/Veraticus/mentat/internal/testutil"
)

func TestSQLiteStorage_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	memory := &model.Memory{
		ID:     "mem-1",
		Type:   model.TypeVendorPattern,
		Vendor: "Supplier GmbH",
		Key:    model.KeyServiceDateExtraction,
		Pattern: model.RegexMemoryPattern(model.RegexPattern{
			Pattern:      `Leistungsdatum:?\s*(\d{2}\.\d{2}\.\d{4})`,
			Flags:        "i",
			CaptureGroup: 1,
			Transform:    "parseGermanDate",
		}),
		Confidence:   0.65,
		LastUsed:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		HitCount:     1,
		SuccessCount: 0,
		Metadata: &model.MemoryMetadata{
			CreatedFrom:   "INV-A-001",
			HumanVerified: true,
			Notes:         "Leistungsdatum found in raw text",
		},
	}

	require.NoError(t, store.SaveMemory(ctx, memory))

	got, err := store.GetMemories(ctx, "Supplier GmbH")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, memory.ID, got[0].ID)
	assert.Equal(t, memory.Type, got[0].Type)
	assert.Equal(t, memory.Key, got[0].Key)
	assert.Equal(t, memory.Pattern, got[0].Pattern)
	assert.InDelta(t, memory.Confidence, got[0].Confidence, 0.0001)
	assert.True(t, memory.LastUsed.Equal(got[0].LastUsed))
	require.NotNil(t, got[0].Metadata)
	assert.Equal(t, *memory.Metadata, *got[0].Metadata)
}

func TestSQLiteStorage_SaveMemoryUpserts(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	memory := &model.Memory{
		ID:         "mem-1",
		Type:       model.TypeCorrection,
		Vendor:     "Freight & Co",
		Key:        model.KeySKUMapping,
		Pattern:    model.RulePattern("seefracht", "FREIGHT"),
		Confidence: 0.65,
		HitCount:   1,
	}
	require.NoError(t, store.SaveMemory(ctx, memory))

	memory.Confidence = 0.75
	memory.HitCount = 2
	require.NoError(t, store.SaveMemory(ctx, memory))

	got, err := store.GetMemories(ctx, "Freight & Co")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.75, got[0].Confidence, 0.0001)
	assert.Equal(t, 2, got[0].HitCount)
}

func TestSQLiteStorage_GetMemoriesScopedByVendor(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	for _, m := range []*model.Memory{
		{ID: "mem-1", Type: model.TypeResolution, Vendor: "Supplier GmbH", Key: "resolution_approved", Pattern: model.StaticPattern("approved"), Confidence: 0.5},
		{ID: "mem-2", Type: model.TypeResolution, Vendor: "Parts AG", Key: "resolution_approved", Pattern: model.StaticPattern("approved"), Confidence: 0.5},
	} {
		require.NoError(t, store.SaveMemory(ctx, m))
	}

	got, err := store.GetMemories(ctx, "Supplier GmbH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mem-1", got[0].ID)

	all, err := store.GetAllMemories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteStorage_SaveMemoryValidates(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	err := store.SaveMemory(ctx, &model.Memory{ID: "mem-1", Vendor: "V", Key: "k", Confidence: 1.5, Pattern: model.StaticPattern("x")})
	assert.ErrorIs(t, err, storage.ErrInvalidMemory)

	err = store.SaveMemory(ctx, &model.Memory{ID: "mem-2", Vendor: "V", Key: "k", Pattern: model.MemoryPattern{Kind: "mystery"}})
	assert.ErrorIs(t, err, storage.ErrInvalidMemory)

	err = store.SaveMemory(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrNilParameter)
}

func TestSQLiteStorage_InvoiceHistory(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	entry := model.InvoiceHistoryEntry{
		InvoiceID:   "INV-A-001",
		Vendor:      "Supplier GmbH",
		InvoiceDate: "2024-01-12",
	}
	require.NoError(t, store.SaveProcessedInvoice(ctx, entry))

	// Exact (invoice id, vendor) duplicates are skipped silently.
	require.NoError(t, store.SaveProcessedInvoice(ctx, entry))

	other := model.InvoiceHistoryEntry{
		InvoiceID:   "INV-A-001",
		Vendor:      "Parts AG",
		InvoiceDate: "2024-01-13",
	}
	require.NoError(t, store.SaveProcessedInvoice(ctx, other))

	history, err := store.GetInvoiceHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSQLiteStorage_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	history, err := store.GetInvoiceHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	// SetupTestDB already migrated once.
	require.NoError(t, store.Migrate(ctx))
}
