package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalScorer(t *testing.T) {
	texts := []string{
		"cataract surgery has a waiting period of 24 months",
		"the policyholder must pay the premium annually",
		"",
		"pre-existing diseases are excluded for 12 months",
	}

	scorer, err := NewLexicalScorer(texts)
	require.NoError(t, err)
	defer scorer.Close()

	t.Run("best hit scores one and matches outrank non-matches", func(t *testing.T) {
		scores, err := scorer.Scores("cataract waiting period")
		require.NoError(t, err)
		require.Len(t, scores, len(texts))

		assert.InDelta(t, 1.0, scores[0], 1e-9)
		assert.Greater(t, scores[0], scores[1])
	})

	t.Run("blank segments always score zero", func(t *testing.T) {
		scores, err := scorer.Scores("waiting period months")
		require.NoError(t, err)
		assert.Zero(t, scores[2])
	})

	t.Run("blank query yields all zeros", func(t *testing.T) {
		scores, err := scorer.Scores("   ")
		require.NoError(t, err)
		require.Len(t, scores, len(texts))
		for _, s := range scores {
			assert.Zero(t, s)
		}
	})

	t.Run("unmatched query yields all zeros", func(t *testing.T) {
		scores, err := scorer.Scores("zymurgy")
		require.NoError(t, err)
		for _, s := range scores {
			assert.Zero(t, s)
		}
	})

	t.Run("scores stay within the unit interval", func(t *testing.T) {
		scores, err := scorer.Scores("months premium excluded")
		require.NoError(t, err)
		for _, s := range scores {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	})
}

func TestLexicalScorerEmptyDocument(t *testing.T) {
	scorer, err := NewLexicalScorer(nil)
	require.NoError(t, err)
	defer scorer.Close()

	scores, err := scorer.Scores("anything")
	require.NoError(t, err)
	assert.Empty(t, scores)
}
