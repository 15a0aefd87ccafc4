package reason

import "strings"

const (
	// BaseConfidence is the starting score for every generated answer.
	BaseConfidence = 0.85

	// ToolPreferenceThreshold is the finding confidence above which the
	// Arbiter reformats a tool result instead of answering generatively.
	ToolPreferenceThreshold = 0.9

	// MinConfidence and MaxConfidence bound the reported score.
	MinConfidence = 0.5
	MaxConfidence = 0.99

	// Denials and contexts with exceptions are where wrong answers hide;
	// amounts in the answer suggest it engaged with the numbers.
	negationPenalty = 0.9
	exceptionPenalty = 0.95
	currencyBoost    = 1.05
)

// currencySymbols flag an answer that quotes a monetary amount.
const currencySymbols = "$₹€£"

// answerConfidence scores a cleaned answer against the context blocks it
// was generated from.
func answerConfidence(answer string, blocks []string) float64 {
	confidence := BaseConfidence

	if strings.Contains(strings.ToLower(answer), "not cover") {
		confidence *= negationPenalty
	}
	for _, block := range blocks {
		if strings.Contains(block, "exception") {
			confidence *= exceptionPenalty
			break
		}
	}
	if strings.ContainsAny(answer, currencySymbols) {
		confidence *= currencyBoost
	}

	if confidence < MinConfidence {
		return MinConfidence
	}
	if confidence > MaxConfidence {
		return MaxConfidence
	}
	return confidence
}
