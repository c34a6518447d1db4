// Package testutil provides test utilities for the mentat project: an
// in-memory record store with failure injection, and helpers for spinning up
// real SQLite databases in tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/service"
	"github.com/Veraticus/mentat/internal/storage"
)

// MemStore is an in-memory service.Storage for tests. Safe for concurrent
// use. Set FailWith to make every operation return a store failure.
type MemStore struct {
	mu       sync.Mutex
	memories []model.Memory
	history  []model.InvoiceHistoryEntry

	// FailWith, when non-nil, is returned (wrapped as a store failure) by
	// every operation.
	FailWith error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

var _ service.Storage = (*MemStore)(nil)

func (s *MemStore) fail(op string) error {
	if s.FailWith == nil {
		return nil
	}
	return common.StoreError(op, s.FailWith)
}

// GetMemories returns copies of the vendor's memories in insertion order.
func (s *MemStore) GetMemories(_ context.Context, vendor string) ([]model.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get memories"); err != nil {
		return nil, err
	}

	var out []model.Memory
	for _, m := range s.memories {
		if m.Vendor == vendor {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetAllMemories returns copies of every memory.
func (s *MemStore) GetAllMemories(_ context.Context) ([]model.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get all memories"); err != nil {
		return nil, err
	}

	out := make([]model.Memory, len(s.memories))
	copy(out, s.memories)
	return out, nil
}

// SaveMemory upserts by memory id.
func (s *MemStore) SaveMemory(_ context.Context, memory *model.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("save memory"); err != nil {
		return err
	}
	if memory == nil {
		return errors.New("nil memory")
	}

	for i := range s.memories {
		if s.memories[i].ID == memory.ID {
			s.memories[i] = *memory
			return nil
		}
	}
	s.memories = append(s.memories, *memory)
	return nil
}

// GetInvoiceHistory returns all accepted invoices in insertion order.
func (s *MemStore) GetInvoiceHistory(_ context.Context) ([]model.InvoiceHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get invoice history"); err != nil {
		return nil, err
	}

	out := make([]model.InvoiceHistoryEntry, len(s.history))
	copy(out, s.history)
	return out, nil
}

// SaveProcessedInvoice appends, skipping exact (invoice id, vendor) duplicates.
func (s *MemStore) SaveProcessedInvoice(_ context.Context, entry model.InvoiceHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("save processed invoice"); err != nil {
		return err
	}

	for _, existing := range s.history {
		if existing.InvoiceID == entry.InvoiceID && existing.Vendor == entry.Vendor {
			return nil
		}
	}
	s.history = append(s.history, entry)
	return nil
}

// Migrate is a no-op for the in-memory store.
func (s *MemStore) Migrate(_ context.Context) error {
	return s.fail("migrate")
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error {
	return nil
}

// SetupTestDB creates a migrated SQLite database in the test's temp
// directory and closes it on cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(t.TempDir() + "/mentat.db")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return store
}
