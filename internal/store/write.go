package store

import (
	"context"
	"fmt"

	"github.com/quillboard/ordinal/internal/record"
)

// InsertRecord inserts a record. The record must already carry an assigned
// ordinal - creation-time assignment happens in the engine, inside the same
// atomic unit as the insert, so two concurrent creations into one group
// cannot compute the same slot.
//
// The group key is normalized to NFC before storage.
func (s *Store) InsertRecord(ctx context.Context, rec record.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	if !rec.Assigned() {
		return fmt.Errorf("insert record %s: ordinal unassigned", rec.ID)
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO records (id, grp, ordinal, title)
		VALUES (?, ?, ?, ?)
	`,
		rec.ID,
		record.NormalizeGroup(rec.Group),
		rec.Ordinal,
		rec.Title,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

// SetOrdinal writes a single record's ordinal.
// Returns ErrNotFound if no record has that ID.
func (s *Store) SetOrdinal(ctx context.Context, id string, ordinal int) error {
	result, err := s.q.ExecContext(ctx, `
		UPDATE records SET ordinal = ?
		WHERE id = ?
	`, ordinal, id)
	if err != nil {
		return fmt.Errorf("set ordinal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set ordinal: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("set ordinal for %s: %w", id, ErrNotFound)
	}

	return nil
}

// ShiftAt adds delta to the ordinal of every record in a group holding
// exactly the given ordinal, excluding one record by identity. Returns the
// number of rows affected.
//
// This is the swap-target move: in a healthy group it affects exactly one
// row. The engine treats any other count as an invariant violation.
func (s *Store) ShiftAt(ctx context.Context, group string, ordinalEquals, delta int, excludeID string) (int64, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE records SET ordinal = ordinal + ?
		WHERE grp = ? AND ordinal = ? AND id <> ?
	`, delta, record.NormalizeGroup(group), ordinalEquals, excludeID)
	if err != nil {
		return 0, fmt.Errorf("shift at ordinal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("shift at ordinal: rows affected: %w", err)
	}

	return affected, nil
}

// ShiftAbove adds delta to the ordinal of every record in a group with an
// ordinal strictly greater than the given one. Returns the number of rows
// affected.
//
// Used for gap compaction after a delete: every higher sibling moves down
// one slot inside the same atomic unit as the delete.
func (s *Store) ShiftAbove(ctx context.Context, group string, ordinalAbove, delta int) (int64, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE records SET ordinal = ordinal + ?
		WHERE grp = ? AND ordinal > ?
	`, delta, record.NormalizeGroup(group), ordinalAbove)
	if err != nil {
		return 0, fmt.Errorf("shift above ordinal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("shift above ordinal: rows affected: %w", err)
	}

	return affected, nil
}

// DeleteRecord removes a record by ID.
// Returns ErrNotFound if no record has that ID.
//
// DeleteRecord does NOT compact the group's ordinals; use the engine's
// Delete so removal and compaction share one atomic unit.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.q.ExecContext(ctx, `
		DELETE FROM records WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete record %s: %w", id, ErrNotFound)
	}

	return nil
}
