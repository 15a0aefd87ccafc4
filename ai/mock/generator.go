package mock

import (
	"context"

	"github.com/poiesic/clausewise/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields and records
// every prompt it receives for test assertions.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default echo behavior.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	// GenerateGroundedFunc is called by GenerateGrounded if set.
	// If nil, wraps the Generate result in a GroundedAnswer.
	GenerateGroundedFunc func(ctx context.Context, prompt string) (*ai.GroundedAnswer, error)

	prompts   []string
	callCount int
}

// NewMockGenerator creates a mock generator with default echo behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the prompt and produces a deterministic response.
// Default behavior: a fixed completion carrying the "Final Answer:"
// marker so post-processing paths are exercised.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	return "Final Answer: mock answer", nil
}

// GenerateGrounded records the prompt and produces a structured response.
func (m *MockGenerator) GenerateGrounded(ctx context.Context, prompt string) (*ai.GroundedAnswer, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.GenerateGroundedFunc != nil {
		return m.GenerateGroundedFunc(ctx, prompt)
	}

	return &ai.GroundedAnswer{Answer: "mock answer", Sources: []string{}}, nil
}

// CallCount returns the number of times any method was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Prompts returns the prompts received so far, in call order.
func (m *MockGenerator) Prompts() []string {
	return m.prompts
}

// LastPrompt returns the most recent prompt, or "" when none was received.
func (m *MockGenerator) LastPrompt() string {
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Reset clears recorded prompts, the call count, and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.prompts = nil
	m.GenerateFunc = nil
	m.GenerateGroundedFunc = nil
}
