package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/clausewise/ai/mock"
	"github.com/poiesic/clausewise/core"
)

func testSegments() []core.Segment {
	return []core.Segment{
		{Text: "cataract surgery is covered after a waiting period of 24 months", Category: core.CategoryTemporal, Dependencies: []int{3}},
		{Text: "the sum insured is 600000 per policy year", Category: core.CategoryCalculation},
		{Text: "a copay of 5 percent applies for insured persons aged 75 or above", Category: core.CategoryCondition, Dependencies: []int{1}},
		{Text: "cataract means clouding of the natural lens of the eye", Category: core.CategoryDefinition},
		{Text: "pre-existing diseases are not covered during the first 12 months", Category: core.CategoryExclusion},
	}
}

func newTestHybrid(t *testing.T, segments []core.Segment) *Hybrid {
	t.Helper()

	h, err := Build(context.Background(), segments, mock.NewMockEmbedder())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHybridSearch(t *testing.T) {
	ctx := context.Background()
	segments := testSegments()
	h := newTestHybrid(t, segments)

	t.Run("returns at most topK hits over valid positions", func(t *testing.T) {
		hits, err := h.Search(ctx, "waiting period for cataract", 3)
		require.NoError(t, err)
		require.Len(t, hits, 3)
		for _, hit := range hits {
			assert.GreaterOrEqual(t, hit.SegmentIndex, 0)
			assert.Less(t, hit.SegmentIndex, len(segments))
		}
	})

	t.Run("scores are non-increasing", func(t *testing.T) {
		hits, err := h.Search(ctx, "sum insured copay", 5)
		require.NoError(t, err)
		for i := 1; i < len(hits); i++ {
			assert.LessOrEqual(t, hits[i].Score, hits[i-1].Score)
		}
	})

	t.Run("exact segment text ranks that segment first", func(t *testing.T) {
		hits, err := h.Search(ctx, segments[1].Text, 5)
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		assert.Equal(t, 1, hits[0].SegmentIndex)
	})

	t.Run("each segment appears at most once", func(t *testing.T) {
		hits, err := h.Search(ctx, "covered", len(segments))
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, hit := range hits {
			assert.False(t, seen[hit.SegmentIndex])
			seen[hit.SegmentIndex] = true
		}
	})

	t.Run("non-positive topK returns empty", func(t *testing.T) {
		hits, err := h.Search(ctx, "anything", 0)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestHybridSearchDeterministic(t *testing.T) {
	ctx := context.Background()
	segments := testSegments()

	first := newTestHybrid(t, segments)
	second := newTestHybrid(t, segments)

	for _, query := range []string{"cataract waiting period", "copay age", "sum insured limit"} {
		a, err := first.Search(ctx, query, 4)
		require.NoError(t, err)
		b, err := second.Search(ctx, query, 4)
		require.NoError(t, err)
		assert.Equal(t, a, b, "query %q", query)
	}
}

func TestHybridBlankSegments(t *testing.T) {
	ctx := context.Background()
	segments := []core.Segment{
		{Text: "the grievance officer address is printed on the policy schedule", Category: core.CategoryStakeholder},
		{Text: "   ", Category: core.CategoryCoverage},
	}

	embedder := mock.NewMockEmbedder()
	h, err := Build(ctx, segments, embedder, WithPoolSize(1))
	require.NoError(t, err)
	defer h.Close()

	// Only the non-blank segment hits the provider.
	assert.Equal(t, 1, embedder.CallCount())
	assert.Equal(t, 2, h.Size())

	hits, err := h.Search(ctx, "grievance officer", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].SegmentIndex)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestHybridRelated(t *testing.T) {
	h := newTestHybrid(t, testSegments())

	// Segment 0 depends on 3; segment 2 depends on 1.
	assert.Equal(t, []int{3}, h.Related(0, 2))
	assert.Equal(t, []int{2}, h.Related(1, 0))
	assert.Empty(t, h.Related(99, 2))
}

func TestHybridBuildEmbeddingFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, assert.AnError
	}

	_, err := Build(context.Background(), testSegments(), embedder, WithPoolSize(1))
	assert.Error(t, err)
}

func TestHybridBuildEmptyDocument(t *testing.T) {
	h, err := Build(context.Background(), nil, mock.NewMockEmbedder())
	require.NoError(t, err)
	defer h.Close()

	hits, err := h.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Zero(t, h.Size())
}
