package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerConfidence(t *testing.T) {
	t.Run("plain answer scores the base", func(t *testing.T) {
		got := answerConfidence("Cataract surgery is covered.", []string{"some clause"})
		assert.InDelta(t, BaseConfidence, got, 1e-9)
	})

	t.Run("denials are penalized", func(t *testing.T) {
		got := answerConfidence("This treatment is not covered.", []string{"some clause"})
		assert.InDelta(t, BaseConfidence*0.9, got, 1e-9)
	})

	t.Run("exception in context is penalized", func(t *testing.T) {
		got := answerConfidence("Covered.", []string{"an exception applies", "other"})
		assert.InDelta(t, BaseConfidence*0.95, got, 1e-9)
	})

	t.Run("single exception penalty for multiple exception blocks", func(t *testing.T) {
		got := answerConfidence("Covered.", []string{"exception one", "exception two"})
		assert.InDelta(t, BaseConfidence*0.95, got, 1e-9)
	})

	t.Run("monetary amounts are boosted", func(t *testing.T) {
		got := answerConfidence("The limit is ₹75,000.", []string{"some clause"})
		assert.InDelta(t, BaseConfidence*1.05, got, 1e-9)
	})

	t.Run("result stays within bounds", func(t *testing.T) {
		got := answerConfidence("This is not covered.", []string{"exception"})
		assert.GreaterOrEqual(t, got, MinConfidence)
		assert.LessOrEqual(t, got, MaxConfidence)
	})
}
