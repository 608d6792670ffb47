package ordinal

import (
	"context"
	"errors"

	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
)

// Promote moves a record one step toward position 1 by swapping with its
// immediate lower-ordinal sibling.
//
// If the record is already lowest in its group this is a no-op and returns
// normally. Otherwise both halves of the swap commit in one atomic unit:
// at no point is a state durable where the sibling has moved but the
// record has not, or vice versa.
//
// Returns the record with its committed ordinal, refreshed from the store.
func (e *Engine) Promote(ctx context.Context, rec record.Record) (record.Record, error) {
	out, err := e.swap(ctx, rec, -1)
	if err != nil {
		return record.Record{}, e.classify("promote", rec, err)
	}
	return out, nil
}

// Demote moves a record one step toward the end of its group by swapping
// with its immediate higher-ordinal sibling. Symmetric to Promote: a no-op
// when the record is already highest.
func (e *Engine) Demote(ctx context.Context, rec record.Record) (record.Record, error) {
	out, err := e.swap(ctx, rec, +1)
	if err != nil {
		return record.Record{}, e.classify("demote", rec, err)
	}
	return out, nil
}

// swap performs the adjacent swap in direction dir (-1 promote, +1 demote).
//
// The boundary check runs inside the transaction, against the same
// snapshot the swap acts on. Checking earlier would leave a window where a
// concurrent move pushes the record to the boundary and the stale check
// lets the swap underflow past position 1.
func (e *Engine) swap(ctx context.Context, rec record.Record, dir int) (record.Record, error) {
	out := rec

	err := e.store.Atomic(ctx, func(tx *store.Store) error {
		// Refresh: the caller's copy may be stale.
		cur, err := tx.GetRecord(ctx, rec.ID)
		if err != nil {
			return err
		}
		out = cur

		var bound int
		if dir < 0 {
			bound, err = tx.MinOrdinal(ctx, cur.Group)
		} else {
			bound, err = tx.MaxOrdinal(ctx, cur.Group)
		}
		if err != nil {
			return err
		}
		if cur.Ordinal == bound {
			// Already at the extreme: nothing to swap with.
			return nil
		}

		target := cur.Ordinal + dir

		// The current occupant of the target slot, excluding the acting
		// record by identity. Exactly one sibling is expected; zero means
		// a gap, more than one means a duplicate - both are corruption and
		// abort the unit rather than being silently "fixed".
		sibling, err := tx.FindByGroupAndOrdinal(ctx, cur.Group, target)
		if errors.Is(err, store.ErrNotFound) {
			return NewInvariantError(cur.Group, target, 0)
		}
		if errors.Is(err, store.ErrAmbiguous) {
			return NewInvariantError(cur.Group, target, 2)
		}
		if err != nil {
			return err
		}
		if sibling.ID == cur.ID {
			return NewInvariantError(cur.Group, target, 0)
		}

		// Push the sibling into the acting record's slot, then move the
		// record into the freed one.
		affected, err := tx.ShiftAt(ctx, cur.Group, target, -dir, cur.ID)
		if err != nil {
			return err
		}
		if affected != 1 {
			return NewInvariantError(cur.Group, target, int(affected))
		}

		if err := tx.SetOrdinal(ctx, cur.ID, target); err != nil {
			return err
		}

		cur.Ordinal = target
		out = cur
		return nil
	})
	if err != nil {
		return record.Record{}, err
	}

	return out, nil
}
