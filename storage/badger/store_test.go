package badger

import (
	"context"
	"testing"

	"github.com/poiesic/clausewise/core"
	"github.com/poiesic/clausewise/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSegments() []core.Segment {
	return []core.Segment{
		{
			Text:       "The policy covers in-patient hospitalization.",
			Category:   core.CategoryCoverage,
			Attributes: map[string]string{"page": "1"},
		},
		{
			Text:         "Cosmetic surgery is not covered.",
			Category:     core.CategoryExclusion,
			Dependencies: []int{0},
			Attributes:   map[string]string{"page": "2"},
		},
		{
			Text:     "The waiting period for cataract is 24 months.",
			Category: core.CategoryTemporal,
		},
	}
}

func TestAppendAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.AppendSegments(ctx, testSegments()...)
	require.NoError(t, err)
	assert.Equal(t, 0, first)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	segment, err := store.GetSegment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cosmetic surgery is not covered.", segment.Text)
	assert.Equal(t, core.CategoryExclusion, segment.Category)
	assert.Equal(t, []int{0}, segment.Dependencies)
}

func TestAppendSegments_PositionsAccumulate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	segments := testSegments()
	first, err := store.AppendSegments(ctx, segments[0])
	require.NoError(t, err)
	assert.Equal(t, 0, first)

	first, err = store.AppendSegments(ctx, segments[1], segments[2])
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetSegments_PreservesArgumentOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AppendSegments(ctx, testSegments()...)
	require.NoError(t, err)

	segments, err := store.GetSegments(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "The waiting period for cataract is 24 months.", segments[0].Text)
	assert.Equal(t, "The policy covers in-patient hospitalization.", segments[1].Text)
}

func TestGetSegment_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetSegment(ctx, 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetSegment(ctx, -1)
	assert.ErrorIs(t, err, storage.ErrNegativePosition)
}

func TestGetSegments_MissingPosition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AppendSegments(ctx, testSegments()[0])
	require.NoError(t, err)

	_, err = store.GetSegments(ctx, 0, 5)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCount_Empty(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
