package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/clausewise/ai/mock"
)

func TestNewMultiResolutionEncoder(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	t.Run("orders resolutions descending and deduplicates", func(t *testing.T) {
		encoder, err := NewMultiResolutionEncoder(embedder, []int{64, 256, 128, 64})
		require.NoError(t, err)
		assert.Equal(t, []int{256, 128, 64}, encoder.Resolutions())
		assert.Equal(t, 256, encoder.MaxResolution())
	})

	t.Run("rejects empty resolutions", func(t *testing.T) {
		_, err := NewMultiResolutionEncoder(embedder, nil)
		assert.ErrorIs(t, err, ErrNoResolutions)
	})

	t.Run("rejects non-positive resolution", func(t *testing.T) {
		_, err := NewMultiResolutionEncoder(embedder, []int{256, 0})
		assert.ErrorIs(t, err, ErrInvalidResolution)
	})
}

func TestMultiResolutionEncoderEncode(t *testing.T) {
	ctx := context.Background()

	t.Run("lower resolutions are prefixes of higher ones", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		bundle, err := encoder.Encode(ctx, "the insurer shall cover cataract surgery")
		require.NoError(t, err)
		require.Len(t, bundle, 3)

		require.Len(t, bundle[256], 256)
		require.Len(t, bundle[128], 128)
		require.Len(t, bundle[64], 64)
		assert.Equal(t, bundle[256][:128], bundle[128])
		assert.Equal(t, bundle[256][:64], bundle[64])
	})

	t.Run("single provider call per encode", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		_, err = encoder.Encode(ctx, "waiting period of 24 months")
		require.NoError(t, err)
		assert.Equal(t, 1, embedder.CallCount())
	})

	t.Run("blank text skips the provider", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		bundle, err := encoder.Encode(ctx, "   \n\t")
		require.NoError(t, err)
		assert.Nil(t, bundle)
		assert.Equal(t, 0, embedder.CallCount())
	})

	t.Run("caps resolutions at the provider dimension", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return mock.DeterministicVector(text, 100), nil
		}
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		bundle, err := encoder.Encode(ctx, "sum insured")
		require.NoError(t, err)
		assert.Len(t, bundle[256], 100)
		assert.Len(t, bundle[128], 100)
		assert.Len(t, bundle[64], 64)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("provider unavailable")
		}
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		_, err = encoder.Encode(ctx, "deductible")
		assert.Error(t, err)
	})

	t.Run("rejects empty provider vectors", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{}, nil
		}
		encoder, err := NewMultiResolutionEncoder(embedder, DefaultResolutions)
		require.NoError(t, err)

		_, err = encoder.Encode(ctx, "deductible")
		assert.ErrorIs(t, err, ErrEmptyEmbedding)
	})
}
