package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.GenerationHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.GenerationModel)
	assert.Equal(t, "none", cfg.Token)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.GenerationHost)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.GenerationHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithGenerationHost("http://generate:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://generate:9090/v1", cfg.GenerationHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-small"),
			WithGenerationModel("gpt-4o-mini"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "gpt-4o-mini", cfg.GenerationModel)
	})

	t.Run("with token", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))

		assert.Equal(t, "sk-test", cfg.Token)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("appends /v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.GenerationHost)
	})

	t.Run("strips trailing slash before appending", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves canonical hosts untouched", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := NewConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing generation model", func(t *testing.T) {
		cfg := NewConfig()
		cfg.GenerationModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Token = ""
		assert.Error(t, cfg.Validate())
	})
}
