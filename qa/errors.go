package qa

import "errors"

var (
	// ErrProviderRequired indicates an Engine was created without an AI
	// provider.
	ErrProviderRequired = errors.New("ai provider is required")

	// ErrEmptyDocument indicates a Process call with a blank document.
	ErrEmptyDocument = errors.New("document must not be blank")

	// ErrNoQuestions indicates a Process call without questions.
	ErrNoQuestions = errors.New("at least one question is required")
)
