package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictToolApply(t *testing.T) {
	tool := &ConflictTool{}

	t.Run("exception clause wins a contradiction", func(t *testing.T) {
		context := "The policy covers all daycare procedures.\n\n" +
			"The policy does not cover cosmetic surgery.\n\n" +
			"Cosmetic surgery is excluded; however, reconstructive surgery after an accident is covered."
		got := tool.Apply(context, "Is reconstructive surgery covered?")
		require.False(t, got.Empty())
		assert.Contains(t, got.Result, "however")
		assert.InDelta(t, 0.85, got.Confidence, 1e-9)
		assert.Equal(t, "conflict_resolution", got.Tool)
	})

	t.Run("first exception clause is chosen", func(t *testing.T) {
		context := "Treatment is covered except during the waiting period.\n\n" +
			"Pre-existing diseases are not covered.\n\n" +
			"Claims are admissible except when fraudulent."
		got := tool.Apply(context, "Is treatment covered?")
		assert.Equal(t, "Treatment is covered except during the waiting period.", got.Result)
	})

	t.Run("last clause wins without an exception", func(t *testing.T) {
		context := "The policy covers hospitalization expenses.\n\n" +
			"The policy does not cover outpatient consultations."
		got := tool.Apply(context, "Are consultations covered?")
		require.False(t, got.Empty())
		assert.Equal(t, "The policy does not cover outpatient consultations.", got.Result)
		assert.InDelta(t, 0.80, got.Confidence, 1e-9)
	})

	t.Run("no contradiction yields no finding", func(t *testing.T) {
		got := tool.Apply(
			"The policy covers hospitalization.\n\nThe policy covers ambulance charges.",
			"What is covered?",
		)
		assert.True(t, got.Empty())
	})

	t.Run("exclusions alone yield no finding", func(t *testing.T) {
		got := tool.Apply(
			"Premiums are payable annually.\n\nClaims require prior authorization.",
			"How are premiums paid?",
		)
		assert.True(t, got.Empty())
	})
}
