package ordinal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillboard/ordinal/internal/record"
)

func TestBounds_EmptyGroupSentinel(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	low, err := eng.LowestOrdinal(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, low)

	high, err := eng.HighestOrdinal(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestBounds_ReflectCommittedState(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	seed(t, eng, "base", "a", "b", "c")

	low, err := eng.LowestOrdinal(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, 1, low)

	high, err := eng.HighestOrdinal(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, 3, high)
}

func TestNextOrdinal(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	next, err := eng.NextOrdinal(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, 1, next, "empty group assigns 1")

	seed(t, eng, "base", "a", "b")

	next, err = eng.NextOrdinal(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestIsLowestIsHighest(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	recs := seed(t, eng, "base", "a", "b", "c")

	lowest, err := eng.IsLowest(ctx, recs["a"])
	require.NoError(t, err)
	assert.True(t, lowest)

	lowest, err = eng.IsLowest(ctx, recs["b"])
	require.NoError(t, err)
	assert.False(t, lowest)

	highest, err := eng.IsHighest(ctx, recs["c"])
	require.NoError(t, err)
	assert.True(t, highest)

	highest, err = eng.IsHighest(ctx, recs["b"])
	require.NoError(t, err)
	assert.False(t, highest)
}

func TestIsLowestIsHighest_SoleMember(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	recs := seed(t, eng, "alt", "e")

	lowest, err := eng.IsLowest(ctx, recs["e"])
	require.NoError(t, err)
	highest, err := eng.IsHighest(ctx, recs["e"])
	require.NoError(t, err)

	assert.True(t, lowest, "sole member is lowest")
	assert.True(t, highest, "sole member is highest")
}

func TestIsLowest_UnassignedRecord(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	// An unassigned record can never sit at a boundary, even though its
	// zero ordinal equals the empty-group sentinel.
	unassigned := record.Record{ID: "new", Group: "empty", Ordinal: record.OrdinalUnassigned}

	lowest, err := eng.IsLowest(ctx, unassigned)
	require.NoError(t, err)
	assert.False(t, lowest)
}
