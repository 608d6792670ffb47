package ordinal

import (
	"context"

	"github.com/quillboard/ordinal/internal/record"
)

// Boundary queries are pure reads, recomputed from the store on each call.
// They always reflect the latest committed state; a caller holding a stale
// in-memory record should refresh it (engine mutations return the fresh
// copy) before relying on IsLowest/IsHighest.

// LowestOrdinal returns the minimum ordinal in a group, or 0 if the group
// is empty. The group is an explicit argument, so advance queries need no
// live record in the group.
func (e *Engine) LowestOrdinal(ctx context.Context, group string) (int, error) {
	min, err := e.store.MinOrdinal(ctx, group)
	if err != nil {
		return 0, e.classify("lowest ordinal", record.Record{Group: group}, err)
	}
	return min, nil
}

// HighestOrdinal returns the maximum ordinal in a group, or 0 if the group
// is empty. In a healthy group this equals the record count.
func (e *Engine) HighestOrdinal(ctx context.Context, group string) (int, error) {
	max, err := e.store.MaxOrdinal(ctx, group)
	if err != nil {
		return 0, e.classify("highest ordinal", record.Record{Group: group}, err)
	}
	return max, nil
}

// NextOrdinal returns the ordinal a record created in the group right now
// would receive: highest + 1, so 1 for an empty group.
//
// This is advisory outside an atomic unit - Create recomputes it inside
// its transaction, where it cannot race another creation.
func (e *Engine) NextOrdinal(ctx context.Context, group string) (int, error) {
	max, err := e.HighestOrdinal(ctx, group)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// IsLowest reports whether the record holds the minimum ordinal in its
// group. A record that is its group's only member is both lowest and
// highest at once.
func (e *Engine) IsLowest(ctx context.Context, rec record.Record) (bool, error) {
	min, err := e.LowestOrdinal(ctx, rec.Group)
	if err != nil {
		return false, err
	}
	return rec.Assigned() && rec.Ordinal == min, nil
}

// IsHighest reports whether the record holds the maximum ordinal in its
// group.
func (e *Engine) IsHighest(ctx context.Context, rec record.Record) (bool, error) {
	max, err := e.HighestOrdinal(ctx, rec.Group)
	if err != nil {
		return false, err
	}
	return rec.Assigned() && rec.Ordinal == max, nil
}
