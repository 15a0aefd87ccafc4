package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintToolApply(t *testing.T) {
	tool := &ConstraintTool{}

	t.Run("senior copay applies from age 75", func(t *testing.T) {
		got := tool.Apply(
			"A copay applies for senior citizens.",
			"What is the copay for a person of age 76?",
		)
		require.False(t, got.Empty())
		assert.Equal(t, "copay = 5; age = 76", got.Result)
		assert.InDelta(t, 0.92, got.Confidence, 1e-9)
		assert.Equal(t, "constraint_solving", got.Tool)
	})

	t.Run("no copay below age 75", func(t *testing.T) {
		got := tool.Apply(
			"A copay applies for senior citizens.",
			"What is the copay for a person of age 60?",
		)
		assert.Equal(t, "copay = 0; age = 60", got.Result)
	})

	t.Run("limit depends on sum insured", func(t *testing.T) {
		got := tool.Apply(
			"The cataract limit depends on the plan: for a sum insured of Rs. 6,00,000 higher sub-limits apply.",
			"What is the limit for cataract surgery?",
		)
		assert.Equal(t, "sum_insured = 600000; limit = 75000", got.Result)
	})

	t.Run("lower limit at or below the breakpoint", func(t *testing.T) {
		got := tool.Apply(
			"The limit varies with the sum insured of Rs. 4,00,000.",
			"What is the limit?",
		)
		assert.Equal(t, "sum_insured = 400000; limit = 50000", got.Result)
	})

	t.Run("per eye cap overrides the sub-limit", func(t *testing.T) {
		got := tool.Apply(
			"The limit for a sum insured of 6,00,000 is subject to a cap per eye.",
			"What is the limit per eye?",
		)
		assert.Equal(t, "sum_insured = 600000; limit = 40000", got.Result)
	})

	t.Run("unparseable sum insured skips that binding", func(t *testing.T) {
		got := tool.Apply(
			"The limit depends on the sum insured chosen by the policyholder.",
			"What is the limit?",
		)
		assert.True(t, got.Empty())
	})

	t.Run("combined copay and limit bindings keep a fixed order", func(t *testing.T) {
		got := tool.Apply(
			"A copay applies. The limit depends on the sum insured of 6,00,000.",
			"What does a person of age 80 pay?",
		)
		assert.Equal(t, "sum_insured = 600000; limit = 75000; copay = 5; age = 80", got.Result)
	})

	t.Run("no recognized pattern yields no finding", func(t *testing.T) {
		got := tool.Apply(
			"The policyholder must notify the insurer of hospitalization.",
			"When must the insurer be notified?",
		)
		assert.True(t, got.Empty())
	})
}
