package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator maps a prompt string to a response string. It is the opaque
// generative capability the reasoning layer falls back to; the core only
// specifies prompt construction and response parsing around it.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate produces a free-form completion for the prompt.
	// A non-nil error is a per-question fatal failure for the caller;
	// no retrying happens at this layer.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateGrounded produces a structured answer with supporting
	// source quotes. The response format is not guaranteed by the
	// underlying model, so implementations must repair what they can
	// and return FallbackGroundedAnswer() when the output remains
	// unparseable, rather than an error.
	GenerateGrounded(ctx context.Context, prompt string) (*GroundedAnswer, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Generator instances, ensuring they share configuration appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the generative completion service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
