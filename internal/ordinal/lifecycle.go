package ordinal

import (
	"context"
	"fmt"

	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
)

// Create assigns the record its position and stores it, in one atomic unit.
//
// If the record's ordinal is unset it becomes highest-in-group + 1 (so 1 in
// an empty group). Assignment and insert share a transaction: two
// concurrent creations into the same group cannot both compute the same
// "next" slot, because the second one recomputes after the first commits.
//
// An empty ID is filled from the engine's ID generator. The group key is
// normalized to NFC. Returns the record as stored.
//
// Assignment is an explicit pre-insert step by design - there is no hidden
// save hook. Callers create ordered records through here, never through
// the store directly.
func (e *Engine) Create(ctx context.Context, rec record.Record) (record.Record, error) {
	if rec.Group == "" {
		return record.Record{}, fmt.Errorf("create: empty group")
	}
	if rec.ID == "" {
		rec.ID = e.ids.Generate()
	}
	rec.Group = record.NormalizeGroup(rec.Group)

	err := e.store.Atomic(ctx, func(tx *store.Store) error {
		if !rec.Assigned() {
			max, err := tx.MaxOrdinal(ctx, rec.Group)
			if err != nil {
				return err
			}
			rec.Ordinal = max + 1
		}
		return tx.InsertRecord(ctx, rec)
	})
	if err != nil {
		return record.Record{}, e.classify("create", rec, err)
	}

	return rec, nil
}

// Delete removes a record and closes the gap it leaves: every sibling with
// a higher ordinal moves down one slot, inside the same atomic unit as the
// delete, so the group invariant holds at every commit point.
func (e *Engine) Delete(ctx context.Context, rec record.Record) error {
	err := e.store.Atomic(ctx, func(tx *store.Store) error {
		cur, err := tx.GetRecord(ctx, rec.ID)
		if err != nil {
			return err
		}
		if err := tx.DeleteRecord(ctx, cur.ID); err != nil {
			return err
		}
		_, err = tx.ShiftAbove(ctx, cur.Group, cur.Ordinal, -1)
		return err
	})
	return e.classify("delete", rec, err)
}

// Audit verifies the density invariant for one group: with N records the
// ordinals must be exactly {1..N}, each held once. Returns a description
// of every violated slot; an empty result means the group is healthy.
//
// An empty group is healthy by definition.
func (e *Engine) Audit(ctx context.Context, group string) ([]string, error) {
	recs, err := e.store.ListGroup(ctx, group)
	if err != nil {
		return nil, e.classify("audit", record.Record{Group: group}, err)
	}

	byOrdinal := make(map[int][]string, len(recs))
	for _, rec := range recs {
		byOrdinal[rec.Ordinal] = append(byOrdinal[rec.Ordinal], rec.ID)
	}

	var problems []string
	for want := 1; want <= len(recs); want++ {
		switch holders := byOrdinal[want]; len(holders) {
		case 1:
			// healthy slot
		case 0:
			problems = append(problems, fmt.Sprintf("ordinal %d: no record", want))
		default:
			problems = append(problems, fmt.Sprintf("ordinal %d: held by %d records %v", want, len(holders), holders))
		}
	}
	for _, rec := range recs {
		if rec.Ordinal < 1 || rec.Ordinal > len(recs) {
			problems = append(problems, fmt.Sprintf("ordinal %d: out of range 1..%d (record %s)", rec.Ordinal, len(recs), rec.ID))
		}
	}

	return problems, nil
}
