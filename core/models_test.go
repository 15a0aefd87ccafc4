package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("the policy covers hospitalization")
		id2 := IDFromContent("the policy covers hospitalization")
		assert.Equal(t, id1, id2)
	})

	t.Run("distinct content produces distinct IDs", func(t *testing.T) {
		id1 := IDFromContent("clause one")
		id2 := IDFromContent("clause two")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		id := IDFromContent("")
		assert.Equal(t, id, IDFromContent(""))
	})
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryDefinition, "definition"},
		{CategoryCondition, "condition"},
		{CategoryExclusion, "exclusion"},
		{CategoryCoverage, "coverage"},
		{CategoryTemporal, "temporal"},
		{CategoryCalculation, "calculation"},
		{CategoryException, "exception"},
		{CategoryStakeholder, "stakeholder"},
		{CategoryJurisdiction, "jurisdiction"},
		{Category(0), "unknown"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestFindingEmpty(t *testing.T) {
	assert.True(t, Finding{}.Empty())
	assert.True(t, Finding{Tool: "temporal_reasoning"}.Empty())
	assert.False(t, Finding{Tool: "temporal_reasoning", Result: "Coverage is available", Confidence: 0.95}.Empty())
}

func TestAnswerToolAssisted(t *testing.T) {
	assert.True(t, Answer{Source: SourceToolPrefix + "constraint_solving"}.ToolAssisted())
	assert.False(t, Answer{Source: SourceGeneration}.ToolAssisted())
	assert.False(t, Answer{Source: SourceGeneration + RerunSuffix}.ToolAssisted())
}
