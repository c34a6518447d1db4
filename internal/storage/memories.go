package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
)

// GetMemories retrieves all memories for a vendor, in creation order.
func (s *SQLiteStorage) GetMemories(ctx context.Context, vendor string) ([]model.Memory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(vendor, "vendor"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, vendor, key, pattern, confidence, last_used,
		       hit_count, success_count, failure_count, metadata
		FROM memories
		WHERE vendor = ?
		ORDER BY created_at, id
	`, vendor)
	if err != nil {
		return nil, common.StoreError("get memories", err)
	}
	defer func() { _ = rows.Close() }()

	return scanMemories(rows)
}

// GetAllMemories retrieves every memory across vendors.
func (s *SQLiteStorage) GetAllMemories(ctx context.Context) ([]model.Memory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, vendor, key, pattern, confidence, last_used,
		       hit_count, success_count, failure_count, metadata
		FROM memories
		ORDER BY vendor, created_at, id
	`)
	if err != nil {
		return nil, common.StoreError("get all memories", err)
	}
	defer func() { _ = rows.Close() }()

	return scanMemories(rows)
}

// SaveMemory upserts a memory by identifier.
func (s *SQLiteStorage) SaveMemory(ctx context.Context, memory *model.Memory) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMemory(memory); err != nil {
		return err
	}

	patternJSON, err := json.Marshal(memory.Pattern)
	if err != nil {
		return fmt.Errorf("failed to encode pattern: %w", err)
	}

	var metadataJSON []byte
	if memory.Metadata != nil {
		metadataJSON, err = json.Marshal(memory.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
	}

	op := func() error {
		_, execErr := s.db.ExecContext(ctx, `
			INSERT INTO memories (id, type, vendor, key, pattern, confidence, last_used,
			                      hit_count, success_count, failure_count, metadata)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				type = excluded.type,
				vendor = excluded.vendor,
				key = excluded.key,
				pattern = excluded.pattern,
				confidence = excluded.confidence,
				last_used = excluded.last_used,
				hit_count = excluded.hit_count,
				success_count = excluded.success_count,
				failure_count = excluded.failure_count,
				metadata = excluded.metadata
		`,
			memory.ID, string(memory.Type), memory.Vendor, memory.Key, string(patternJSON),
			memory.Confidence, memory.LastUsed, memory.HitCount, memory.SuccessCount,
			memory.FailureCount, nullableString(metadataJSON))
		return execErr
	}

	// SQLITE_BUSY under write contention is transient; retry here so the
	// engine above never has to.
	if err := common.WithRetry(ctx, op, common.RetryOptions{MaxAttempts: 3}); err != nil {
		return common.StoreError("save memory", err)
	}

	return nil
}

func scanMemories(rows *sql.Rows) ([]model.Memory, error) {
	var memories []model.Memory

	for rows.Next() {
		var (
			memory       model.Memory
			memType      string
			patternJSON  string
			lastUsed     sql.NullTime
			metadataJSON sql.NullString
		)

		if err := rows.Scan(
			&memory.ID, &memType, &memory.Vendor, &memory.Key, &patternJSON,
			&memory.Confidence, &lastUsed, &memory.HitCount, &memory.SuccessCount,
			&memory.FailureCount, &metadataJSON,
		); err != nil {
			return nil, common.StoreError("scan memory", err)
		}

		memory.Type = model.MemoryType(memType)
		if lastUsed.Valid {
			memory.LastUsed = lastUsed.Time.UTC()
		}
		if err := json.Unmarshal([]byte(patternJSON), &memory.Pattern); err != nil {
			return nil, fmt.Errorf("failed to decode pattern for memory %s: %w", memory.ID, err)
		}
		if metadataJSON.Valid && metadataJSON.String != "" {
			memory.Metadata = &model.MemoryMetadata{}
			if err := json.Unmarshal([]byte(metadataJSON.String), memory.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode metadata for memory %s: %w", memory.ID, err)
			}
		}

		memories = append(memories, memory)
	}

	if err := rows.Err(); err != nil {
		return nil, common.StoreError("iterate memories", err)
	}

	return memories, nil
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
