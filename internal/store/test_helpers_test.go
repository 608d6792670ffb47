package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quillboard/ordinal/internal/record"
)

// openTestStore creates a store backed by a fresh database in a temp dir.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// mustInsert inserts a record or fails the test.
func mustInsert(t *testing.T, s *Store, id, group string, ordinal int) {
	t.Helper()

	rec := record.Record{ID: id, Group: group, Ordinal: ordinal, Title: id}
	if err := s.InsertRecord(context.Background(), rec); err != nil {
		t.Fatalf("InsertRecord(%s) failed: %v", id, err)
	}
}

// seedGroup inserts records with ordinals 1..len(ids) in insertion order.
func seedGroup(t *testing.T, s *Store, group string, ids ...string) {
	t.Helper()

	for i, id := range ids {
		mustInsert(t, s, id, group, i+1)
	}
}

// groupOrdinals returns id -> ordinal for every record in the group.
func groupOrdinals(t *testing.T, s *Store, group string) map[string]int {
	t.Helper()

	recs, err := s.ListGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("ListGroup(%s) failed: %v", group, err)
	}
	out := make(map[string]int, len(recs))
	for _, rec := range recs {
		out[rec.ID] = rec.Ordinal
	}
	return out
}
