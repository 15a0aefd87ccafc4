package reason

import "errors"

var (
	// ErrProviderRequired indicates an Arbiter was created without an AI
	// provider.
	ErrProviderRequired = errors.New("ai provider is required")

	// ErrEmptyQuestion indicates an Answer call with a blank question.
	ErrEmptyQuestion = errors.New("question must not be blank")
)
