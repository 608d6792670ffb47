package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quillboard/ordinal/internal/record"
)

// GetRecord retrieves a single record by ID.
// Returns ErrNotFound if no record has that ID.
func (s *Store) GetRecord(ctx context.Context, id string) (record.Record, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, grp, ordinal, title
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return record.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// ListGroup returns all records in a group, ordered by ordinal with a
// deterministic id tie-break.
//
// Returns an empty slice (not nil) if the group holds no records.
func (s *Store) ListGroup(ctx context.Context, group string) ([]record.Record, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, grp, ordinal, title
		FROM records
		WHERE grp = ?
		ORDER BY ordinal ASC, id COLLATE BINARY ASC
	`, record.NormalizeGroup(group))
	if err != nil {
		return nil, fmt.Errorf("list group: %w", err)
	}
	defer rows.Close()

	var recs []record.Record
	for rows.Next() {
		var rec record.Record
		if err := rows.Scan(&rec.ID, &rec.Group, &rec.Ordinal, &rec.Title); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	// Return empty slice instead of nil
	if recs == nil {
		recs = []record.Record{}
	}

	return recs, nil
}

// Groups returns the distinct group keys present in the store, sorted.
func (s *Store) Groups(ctx context.Context) ([]string, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT DISTINCT grp
		FROM records
		ORDER BY grp COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}

	if groups == nil {
		groups = []string{}
	}

	return groups, nil
}

// MinOrdinal returns the minimum ordinal in a group, or 0 if the group is
// empty. Ordinals start at 1, so 0 is an unambiguous empty-group sentinel.
func (s *Store) MinOrdinal(ctx context.Context, group string) (int, error) {
	var min int
	err := s.q.QueryRowContext(ctx, `
		SELECT COALESCE(MIN(ordinal), 0)
		FROM records
		WHERE grp = ?
	`, record.NormalizeGroup(group)).Scan(&min)
	if err != nil {
		return 0, fmt.Errorf("min ordinal: %w", err)
	}
	return min, nil
}

// MaxOrdinal returns the maximum ordinal in a group, or 0 if the group is
// empty. In a healthy group this equals the record count.
func (s *Store) MaxOrdinal(ctx context.Context, group string) (int, error) {
	var max int
	err := s.q.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(ordinal), 0)
		FROM records
		WHERE grp = ?
	`, record.NormalizeGroup(group)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max ordinal: %w", err)
	}
	return max, nil
}

// FindByGroupAndOrdinal returns the single record holding an ordinal slot
// within a group.
//
// Returns ErrNotFound if the slot is empty and ErrAmbiguous if more than
// one record holds it (prior corruption - callers must not pick one).
func (s *Store) FindByGroupAndOrdinal(ctx context.Context, group string, ordinal int) (record.Record, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, grp, ordinal, title
		FROM records
		WHERE grp = ? AND ordinal = ?
		ORDER BY id COLLATE BINARY ASC
	`, record.NormalizeGroup(group), ordinal)
	if err != nil {
		return record.Record{}, fmt.Errorf("find by ordinal: %w", err)
	}
	defer rows.Close()

	var recs []record.Record
	for rows.Next() {
		var rec record.Record
		if err := rows.Scan(&rec.ID, &rec.Group, &rec.Ordinal, &rec.Title); err != nil {
			return record.Record{}, fmt.Errorf("scan record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return record.Record{}, fmt.Errorf("iterate records: %w", err)
	}

	switch len(recs) {
	case 0:
		return record.Record{}, fmt.Errorf("find by ordinal %d in group %q: %w", ordinal, group, ErrNotFound)
	case 1:
		return recs[0], nil
	default:
		return record.Record{}, fmt.Errorf("find by ordinal %d in group %q: %d records: %w", ordinal, group, len(recs), ErrAmbiguous)
	}
}

// scanRecord scans a single-row query result into a Record.
func scanRecord(row *sql.Row) (record.Record, error) {
	var rec record.Record
	if err := row.Scan(&rec.ID, &rec.Group, &rec.Ordinal, &rec.Title); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}
