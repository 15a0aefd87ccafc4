package ai

// GroundedAnswer is the structured response shape requested from the
// generative capability when the caller wants supporting quotes.
type GroundedAnswer struct {
	// Answer is the answer text.
	Answer string `json:"answer"`

	// Sources are verbatim quotes from the supplied context that
	// support the answer. Empty when the model produced malformed
	// output and the fallback was substituted.
	Sources []string `json:"sources"`
}

// fallbackAnswerText is returned when structured output cannot be
// parsed even after repair.
const fallbackAnswerText = "Unable to determine the answer from the provided policy context."

// FallbackGroundedAnswer returns the defined fallback for malformed
// structured output: a fixed answer with an empty source list.
func FallbackGroundedAnswer() *GroundedAnswer {
	return &GroundedAnswer{
		Answer:  fallbackAnswerText,
		Sources: []string{},
	}
}
