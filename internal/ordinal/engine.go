package ordinal

import (
	"errors"
	"fmt"

	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
)

// Engine is the ordinal position engine.
//
// It operates transiently on record values supplied by the caller and on
// the store's persisted copies; the store is the sole durable owner. The
// engine keeps no per-call state (no cached ordinals), so it is safe for
// concurrent use - isolation comes entirely from the store's atomic units.
type Engine struct {
	store *store.Store
	ids   record.IDGenerator
}

// New creates an Engine over the given store.
//
// ids generates identifiers for records created without one. Pass
// record.UUIDv7Generator{} in production and record.NewFixedGenerator in
// tests that need deterministic IDs.
func New(s *store.Store, ids record.IDGenerator) *Engine {
	return &Engine{store: s, ids: ids}
}

// classify maps a failed operation's error to the engine's error surface.
//
// Lookup misses (store.ErrNotFound) pass through unchanged: the caller
// referenced a record that does not exist, which is not an engine failure.
// Everything else is wrapped in a PositionError; the original error stays
// reachable through Unwrap.
func (e *Engine) classify(op string, rec record.Record, err error) error {
	if err == nil {
		return nil
	}

	var pe *PositionError
	if errors.As(err, &pe) {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	code := ErrCodeStoreUnavailable
	msg := fmt.Sprintf("%s failed", op)
	if store.IsConflict(err) {
		code = ErrCodeConflict
		msg = fmt.Sprintf("%s lost to a concurrent operation", op)
	}

	return &PositionError{
		Code:     code,
		Message:  msg,
		RecordID: rec.ID,
		Group:    rec.Group,
		Err:      err,
	}
}
