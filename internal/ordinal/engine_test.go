package ordinal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
)

// newTestEngine creates an engine over a fresh temp database.
func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return New(s, record.UUIDv7Generator{}), s
}

// seed creates one record per title, in order, and returns them by title.
func seed(t *testing.T, eng *Engine, group string, titles ...string) map[string]record.Record {
	t.Helper()

	recs := make(map[string]record.Record, len(titles))
	for _, title := range titles {
		rec, err := eng.Create(context.Background(), record.Record{Group: group, Title: title})
		require.NoError(t, err)
		recs[title] = rec
	}
	return recs
}

// ordinals returns title -> ordinal for every record in the group.
func ordinals(t *testing.T, s *store.Store, group string) map[string]int {
	t.Helper()

	recs, err := s.ListGroup(context.Background(), group)
	require.NoError(t, err)

	out := make(map[string]int, len(recs))
	for _, rec := range recs {
		out[rec.Title] = rec.Ordinal
	}
	return out
}

// requireHealthy asserts the group's ordinals form exactly {1..N}.
func requireHealthy(t *testing.T, eng *Engine, group string) {
	t.Helper()

	problems, err := eng.Audit(context.Background(), group)
	require.NoError(t, err)
	require.Empty(t, problems, "group %q violates the density invariant", group)
}
