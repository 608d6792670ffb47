package store

import (
	"context"
	"fmt"
)

// Atomic runs fn inside a single all-or-nothing unit of work.
//
// fn receives a transaction-bound Store exposing the same read/write
// surface as the receiver. If fn returns an error, every write it performed
// is rolled back and the error is propagated unchanged (wrapped errors stay
// matchable with errors.Is/errors.As).
//
// Calling Atomic on an already transaction-bound Store runs fn in the
// enclosing transaction; SQLite serializes writers, so nested savepoints
// buy nothing here.
//
// Two units touching different groups proceed in parallel up to SQLite's
// single-writer limit; two units touching the same group serialize on the
// database lock (busy_timeout applies).
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	if s.db == nil {
		// Already inside a transaction
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("atomic: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("atomic: commit: %w", err)
	}

	return nil
}
