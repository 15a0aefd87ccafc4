package reason

import "github.com/poiesic/clausewise/core"

// Tool is a deterministic reasoner over an assembled context. Apply
// returns an empty Finding when the tool does not recognize its pattern
// in the inputs; it never guesses.
type Tool interface {
	// Name identifies the tool in answer source tags.
	Name() string

	// Apply evaluates the context and question. Implementations are pure
	// functions and safe for concurrent use.
	Apply(contextText, question string) core.Finding
}

// DefaultTools returns the standard tool set in evaluation order.
func DefaultTools() []Tool {
	return []Tool{
		NewTemporalTool(),
		&ConstraintTool{},
		&ConflictTool{},
	}
}
