package learning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/mentat/internal/common"
	"github.com/Veraticus/mentat/internal/model"
	"github.com/Veraticus/mentat/internal/service"
)

// Confidence tuning for learned memories.
const (
	// newMemoryConfidence is the starting trust of a freshly learned pattern.
	newMemoryConfidence = 0.65
	// resolutionConfidence is fixed: resolution memories track decision
	// frequency, not rule trust, so reinforcement never boosts them.
	resolutionConfidence = 0.5
	// reinforceBoost is the confidence increase when a human re-confirms an
	// existing memory.
	reinforceBoost = 0.1
)

// Learner turns human corrections into vendor memories.
type Learner struct {
	storage     service.Storage
	vendorLocks *common.KeyedMutex
	now         func() time.Time
}

// Config holds configuration options for the learner.
type Config struct {
	// VendorLocks serializes per-vendor read-modify-write on memories. Share
	// one instance with the engine when both run in the same process.
	VendorLocks *common.KeyedMutex
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// New creates a learner with its own vendor locks.
func New(storage service.Storage) *Learner {
	return NewWithConfig(storage, Config{})
}

// NewWithConfig creates a learner with custom configuration.
func NewWithConfig(storage service.Storage, config Config) *Learner {
	if config.VendorLocks == nil {
		config.VendorLocks = common.NewKeyedMutex()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Learner{
		storage:     storage,
		vendorLocks: config.VendorLocks,
		now:         config.Now,
	}
}

// LearnFromCorrection records a resolution memory for the review decision
// and then reinforces or creates one memory per corrected field. Re-applying
// an identical correction only increases confidence; it never changes the
// key mapping. Returns human-readable update descriptions for reporting.
func (l *Learner) LearnFromCorrection(ctx context.Context, correction model.HumanCorrection) ([]string, error) {
	l.vendorLocks.Lock(correction.Vendor)
	defer l.vendorLocks.Unlock(correction.Vendor)

	slog.Info("Learning from correction",
		"invoice_id", correction.InvoiceID,
		"vendor", correction.Vendor,
		"corrections", len(correction.Corrections))

	existing, err := l.storage.GetMemories(ctx, correction.Vendor)
	if err != nil {
		return nil, fmt.Errorf("recall for vendor %q: %w", correction.Vendor, err)
	}

	// Index by key so repeat items within one correction reinforce instead
	// of creating duplicate keys. Lookups use (vendor, key); the store does
	// not enforce uniqueness, so we search then upsert.
	byKey := make(map[string]*model.Memory, len(existing))
	for i := range existing {
		byKey[existing[i].Key] = &existing[i]
	}

	var updates []string

	update, err := l.storeResolution(ctx, correction, byKey)
	if err != nil {
		return nil, err
	}
	updates = append(updates, update)

	for _, item := range correction.Corrections {
		update, err := l.processItem(ctx, item, correction, byKey)
		if err != nil {
			return nil, err
		}
		if update != "" {
			updates = append(updates, update)
		}
	}

	return updates, nil
}

// storeResolution records how the review ended. One resolution memory per
// (vendor, decision); its confidence never moves.
func (l *Learner) storeResolution(ctx context.Context, correction model.HumanCorrection, byKey map[string]*model.Memory) (string, error) {
	key := fmt.Sprintf("resolution_%s", correction.FinalDecision)

	if memory, ok := byKey[key]; ok && memory.Type == model.TypeResolution {
		memory.HitCount++
		memory.LastUsed = l.now()
		if err := l.storage.SaveMemory(ctx, memory); err != nil {
			return "", fmt.Errorf("persist resolution memory: %w", err)
		}
		return fmt.Sprintf("Reinforced %s (hits %d)", key, memory.HitCount), nil
	}

	memory := &model.Memory{
		ID:         newMemoryID(),
		Type:       model.TypeResolution,
		Vendor:     correction.Vendor,
		Key:        key,
		Pattern:    model.StaticPattern(string(correction.FinalDecision)),
		Confidence: resolutionConfidence,
		LastUsed:   l.now(),
		HitCount:   1,
		Metadata: &model.MemoryMetadata{
			CreatedFrom: correction.InvoiceID,
		},
	}
	if err := l.storage.SaveMemory(ctx, memory); err != nil {
		return "", fmt.Errorf("persist resolution memory: %w", err)
	}
	byKey[key] = memory

	return fmt.Sprintf("Created resolution memory %s", key), nil
}

// processItem maps one corrected field to its canonical key and reinforces
// or creates the memory. Unknown field/reason combinations are skipped.
func (l *Learner) processItem(ctx context.Context, item model.CorrectionItem, correction model.HumanCorrection, byKey map[string]*model.Memory) (string, error) {
	key, ok := MapToMemoryKey(item.Field, item.Reason)
	if !ok {
		slog.Debug("Skipping correction with no known pattern",
			"field", item.Field,
			"reason", item.Reason)
		return "", nil
	}

	pattern := InferPattern(item)

	if memory, ok := byKey[key]; ok {
		before := memory.Confidence
		memory.Pattern = pattern
		memory.Reinforce(reinforceBoost)
		memory.LastUsed = l.now()
		memory.HitCount++
		if memory.Metadata == nil {
			memory.Metadata = &model.MemoryMetadata{}
		}
		memory.Metadata.HumanVerified = true

		if err := l.storage.SaveMemory(ctx, memory); err != nil {
			return "", fmt.Errorf("persist memory %s: %w", memory.ID, err)
		}
		slog.Info("Reinforced memory", "key", key, "confidence", memory.Confidence)
		return fmt.Sprintf("Reinforced %s (confidence %.2f -> %.2f)", key, before, memory.Confidence), nil
	}

	memory := &model.Memory{
		ID:         newMemoryID(),
		Type:       memoryTypeForKey(key),
		Vendor:     correction.Vendor,
		Key:        key,
		Pattern:    pattern,
		Confidence: newMemoryConfidence,
		LastUsed:   l.now(),
		HitCount:   1,
		Metadata: &model.MemoryMetadata{
			CreatedFrom:   correction.InvoiceID,
			HumanVerified: true,
			Notes:         item.Reason,
		},
	}
	if err := l.storage.SaveMemory(ctx, memory); err != nil {
		return "", fmt.Errorf("persist memory %s: %w", memory.ID, err)
	}
	byKey[key] = memory

	slog.Info("Created memory", "key", key, "type", memory.Type)
	return fmt.Sprintf("Created %s memory %s", memory.Type, key), nil
}

func newMemoryID() string {
	return fmt.Sprintf("mem-%s", uuid.NewString())
}
