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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/clausewise/core"
)

const (
	constraintToolName   = "constraint_solving"
	constraintConfidence = 0.92

	// Policy constants for copay and sub-limit rules.
	seniorCopayAge     = 75
	seniorCopayPercent = 5

	sumInsuredBreakpoint = 500000
	limitAboveBreakpoint = 75000
	limitBelowBreakpoint = 50000
	perEyeLimit          = 40000
)

var (
	ageRe        = regexp.MustCompile(`age (\d+)`)
	sumInsuredRe = regexp.MustCompile(`(?i)sum insured\D{0,20}(\d[\d,]*)`)
)

// ConstraintTool resolves numeric policy constraints: age-conditional
// copays, sum-insured-dependent sub-limits, and per-eye caps. Variables
// it cannot bind from the inputs are left out of the result.
type ConstraintTool struct{}

func (t *ConstraintTool) Name() string {
	return constraintToolName
}

func (t *ConstraintTool) Apply(contextText, question string) core.Finding {
	lowerContext := strings.ToLower(contextText)
	lowerQuestion := strings.ToLower(question)

	var sumInsured, limit, copay, age *int

	if strings.Contains(lowerContext, "copay") && strings.Contains(lowerQuestion, "age") {
		if m := ageRe.FindStringSubmatch(lowerQuestion); m != nil {
			if a, err := strconv.Atoi(m[1]); err == nil {
				age = &a
				c := 0
				if a >= seniorCopayAge {
					c = seniorCopayPercent
				}
				copay = &c
			}
		}
	}

	if strings.Contains(lowerContext, "limit") && strings.Contains(lowerContext, "sum insured") {
		if si, ok := extractSumInsured(contextText); ok {
			sumInsured = &si
			l := limitBelowBreakpoint
			if si > sumInsuredBreakpoint {
				l = limitAboveBreakpoint
			}
			limit = &l
		}
	}

	if strings.Contains(lowerContext, "per eye") {
		l := perEyeLimit
		limit = &l
	}

	parts := make([]string, 0, 4)
	for _, binding := range []struct {
		name  string
		value *int
	}{
		{"sum_insured", sumInsured},
		{"limit", limit},
		{"copay", copay},
		{"age", age},
	} {
		if binding.value != nil {
			parts = append(parts, fmt.Sprintf("%s = %d", binding.name, *binding.value))
		}
	}
	if len(parts) == 0 {
		return core.Finding{}
	}

	return core.Finding{
		Tool:       constraintToolName,
		Result:     strings.Join(parts, "; "),
		Confidence: constraintConfidence,
	}
}

// extractSumInsured pulls the sum insured amount from phrasing like
// "sum insured of Rs. 6,00,000".
func extractSumInsured(contextText string) (int, bool) {
	m := sumInsuredRe.FindStringSubmatch(contextText)
	if m == nil {
		return 0, false
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return value, true
}
