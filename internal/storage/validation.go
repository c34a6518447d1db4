package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/mentat/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidMemory = errors.New("invalid memory")
	ErrInvalidEntry  = errors.New("invalid history entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMemory validates a memory before persistence.
func validateMemory(memory *model.Memory) error {
	if memory == nil {
		return fmt.Errorf("%w: memory", ErrNilParameter)
	}
	if memory.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidMemory)
	}
	if memory.Vendor == "" {
		return fmt.Errorf("%w: missing vendor", ErrInvalidMemory)
	}
	if memory.Key == "" {
		return fmt.Errorf("%w: missing key", ErrInvalidMemory)
	}
	if memory.Confidence < 0 || memory.Confidence > 1 {
		return fmt.Errorf("%w: confidence %f outside [0,1]", ErrInvalidMemory, memory.Confidence)
	}
	switch memory.Pattern.Kind {
	case model.PatternStatic:
	case model.PatternRegex:
		if memory.Pattern.Regex == nil {
			return fmt.Errorf("%w: regex pattern missing body", ErrInvalidMemory)
		}
	case model.PatternRule:
		if memory.Pattern.Rule == nil {
			return fmt.Errorf("%w: rule pattern missing body", ErrInvalidMemory)
		}
	default:
		return fmt.Errorf("%w: unknown pattern kind %q", ErrInvalidMemory, memory.Pattern.Kind)
	}
	return nil
}

// validateHistoryEntry validates an invoice-history entry.
func validateHistoryEntry(entry model.InvoiceHistoryEntry) error {
	if entry.InvoiceID == "" {
		return fmt.Errorf("%w: missing invoice id", ErrInvalidEntry)
	}
	if entry.Vendor == "" {
		return fmt.Errorf("%w: missing vendor", ErrInvalidEntry)
	}
	return nil
}
