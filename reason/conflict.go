// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reason

import (
	"strings"

	"github.com/poiesic/clausewise/core"
)

const (
	conflictToolName = "conflict_resolution"

	// A clause that carves out an exception is a deliberate resolution of
	// the conflict; falling back to the last clause is a weaker heuristic.
	specificClauseConfidence = 0.85
	lastClauseConfidence     = 0.80
)

// ConflictTool resolves contradictory coverage statements. When the
// context both grants and denies coverage, the most specific clause wins:
// an explicit exception if one exists, otherwise the last clause, on the
// convention that later clauses qualify earlier ones.
type ConflictTool struct{}

func (t *ConflictTool) Name() string {
	return conflictToolName
}

func (t *ConflictTool) Apply(contextText, _ string) core.Finding {
	blocks := strings.Split(contextText, "\n\n")

	var grants, denies bool
	for _, block := range blocks {
		lower := strings.ToLower(block)
		if strings.Contains(lower, "cover") {
			grants = true
		}
		if strings.Contains(lower, "not cover") {
			denies = true
		}
	}
	if !grants || !denies {
		return core.Finding{}
	}

	for _, block := range blocks {
		if strings.Contains(block, "except") || strings.Contains(block, "however") {
			return core.Finding{
				Tool:       conflictToolName,
				Result:     block,
				Confidence: specificClauseConfidence,
			}
		}
	}
	return core.Finding{
		Tool:       conflictToolName,
		Result:     blocks[len(blocks)-1],
		Confidence: lastClauseConfidence,
	}
}
