package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatL2Search(t *testing.T) {
	t.Run("returns nearest first", func(t *testing.T) {
		idx := NewFlatL2()
		idx.Add([]float32{1, 0})
		idx.Add([]float32{0, 1})
		idx.Add([]float32{0.9, 0.1})

		got := idx.Search([]float32{1, 0}, 3)
		require.Len(t, got, 3)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 2, got[1].Position)
		assert.Equal(t, 1, got[2].Position)
		assert.Zero(t, got[0].Distance)
	})

	t.Run("distances are non-decreasing", func(t *testing.T) {
		idx := NewFlatL2()
		idx.Add([]float32{0, 0})
		idx.Add([]float32{3, 3})
		idx.Add([]float32{1, 1})
		idx.Add([]float32{2, 2})

		got := idx.Search([]float32{0, 0}, 4)
		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i].Distance, got[i-1].Distance)
		}
	})

	t.Run("clamps k to the stored count", func(t *testing.T) {
		idx := NewFlatL2()
		idx.Add([]float32{1, 2})

		got := idx.Search([]float32{1, 2}, 10)
		assert.Len(t, got, 1)
	})

	t.Run("ties break on lower position", func(t *testing.T) {
		idx := NewFlatL2()
		idx.Add([]float32{1, 1})
		idx.Add([]float32{1, 1})

		got := idx.Search([]float32{1, 1}, 2)
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 1, got[1].Position)
	})

	t.Run("empty index and non-positive k", func(t *testing.T) {
		idx := NewFlatL2()
		assert.Empty(t, idx.Search([]float32{1}, 5))

		idx.Add([]float32{1})
		assert.Empty(t, idx.Search([]float32{1}, 0))
		assert.Equal(t, 1, idx.Len())
	})
}
