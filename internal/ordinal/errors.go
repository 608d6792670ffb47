package ordinal

import (
	"errors"
	"fmt"
)

// PositionError represents a failure detected during an engine operation.
//
// Position errors include:
//   - Store unavailable: the store cannot be reached or the atomic unit
//     cannot be started
//   - Transaction conflict: the atomic unit lost to a concurrent unit
//     touching the same group
//   - Invariant violation: the group's ordinals are already corrupted
//     (zero or multiple siblings at an expected slot)
//
// PositionError includes structured fields for diagnostics and recovery.
type PositionError struct {
	// Code identifies the error category.
	Code PositionErrorCode

	// Message is a human-readable description.
	Message string

	// RecordID identifies the acting record, when there is one.
	RecordID string

	// Group identifies the affected group.
	Group string

	// Ordinal is the slot involved (for invariant violations).
	Ordinal int

	// Err is the underlying store error, if any.
	Err error
}

// PositionErrorCode categorizes engine errors.
type PositionErrorCode string

const (
	// ErrCodeStoreUnavailable indicates the store could not serve the
	// operation. Surfaced immediately; the engine never retries.
	ErrCodeStoreUnavailable PositionErrorCode = "STORE_UNAVAILABLE"

	// ErrCodeConflict indicates the atomic unit of work failed to commit
	// due to concurrent contention. Retry policy is the caller's.
	ErrCodeConflict PositionErrorCode = "TX_CONFLICT"

	// ErrCodeInvariantViolation indicates the group's ordinals do not form
	// a dense {1..N} sequence. The engine fails loudly rather than repair.
	ErrCodeInvariantViolation PositionErrorCode = "INVARIANT_VIOLATION"
)

// Error implements the error interface.
func (e *PositionError) Error() string {
	switch {
	case e.RecordID != "" && e.Group != "":
		return fmt.Sprintf("%s: %s (record=%s, group=%s)", e.Code, e.Message, e.RecordID, e.Group)
	case e.Group != "":
		return fmt.Sprintf("%s: %s (group=%s)", e.Code, e.Message, e.Group)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying store error for errors.Is/errors.As.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// IsConflict returns true if the error is a transaction conflict.
// Uses errors.As to handle wrapped errors.
func IsConflict(err error) bool {
	var pe *PositionError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeConflict
	}
	return false
}

// IsInvariantViolation returns true if the error reports a corrupted group.
// Uses errors.As to handle wrapped errors.
func IsInvariantViolation(err error) bool {
	var pe *PositionError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeInvariantViolation
	}
	return false
}

// NewInvariantError creates a PositionError for a swap-target lookup that
// found siblings at the expected slot where exactly one was required.
func NewInvariantError(group string, ordinal, siblings int) *PositionError {
	return &PositionError{
		Code:    ErrCodeInvariantViolation,
		Message: fmt.Sprintf("expected exactly one sibling at ordinal %d, found %d", ordinal, siblings),
		Group:   group,
		Ordinal: ordinal,
	}
}
