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
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/clausewise/core"
)

const (
	temporalToolName = "temporal_reasoning"

	// Waiting periods stated as "24 months" and "12 months" dominate the
	// corpus and carry exact day counts; anything else approximates a
	// month as 30 days.
	daysTwoYears = 730
	daysOneYear  = 365
	daysPerMonth = 30

	availableResult    = "Coverage is available"
	notCompletedResult = "Waiting period not completed"

	availableConfidence    = 0.95
	notCompletedConfidence = 0.90
)

var (
	// Dates are day-first: 15/3/2024, 15-03-24.
	dateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)

	monthsRe = regexp.MustCompile(`(\d+)\s+months?`)

	// Questions may pin the evaluation date instead of using wall time.
	currentDateRe = regexp.MustCompile(`current date is (\d{1,2})/(\d{1,2})/(\d{4})`)
)

// TemporalTool evaluates waiting-period clauses. It reads the policy
// start date from the context, the evaluation date from the question when
// stated there, and decides whether the waiting period has elapsed.
type TemporalTool struct {
	// Now supplies the evaluation date when the question does not state
	// one. Defaults to time.Now.
	Now func() time.Time
}

// NewTemporalTool returns a TemporalTool using wall-clock time.
func NewTemporalTool() *TemporalTool {
	return &TemporalTool{Now: time.Now}
}

func (t *TemporalTool) Name() string {
	return temporalToolName
}

// Apply returns an empty finding when the context contains no date; a
// waiting period without a reference date is not decidable.
func (t *TemporalTool) Apply(contextText, question string) core.Finding {
	match := dateRe.FindStringSubmatch(contextText)
	if match == nil {
		return core.Finding{}
	}
	start := dateFromParts(match[1], match[2], match[3])

	current := t.now()
	if m := currentDateRe.FindStringSubmatch(question); m != nil {
		current = dateFromParts(m[1], m[2], m[3])
	}

	waitingDays := waitingPeriodDays(contextText)
	elapsed := int(current.Sub(start).Hours() / 24)

	if elapsed >= waitingDays {
		return core.Finding{
			Tool:       temporalToolName,
			Result:     availableResult,
			Confidence: availableConfidence,
		}
	}
	return core.Finding{
		Tool:       temporalToolName,
		Result:     notCompletedResult,
		Confidence: notCompletedConfidence,
	}
}

func (t *TemporalTool) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// waitingPeriodDays extracts the waiting period from the context. No
// stated period means no wait.
func waitingPeriodDays(contextText string) int {
	switch {
	case strings.Contains(contextText, "24 months"):
		return daysTwoYears
	case strings.Contains(contextText, "12 months"):
		return daysOneYear
	}
	if m := monthsRe.FindStringSubmatch(contextText); m != nil {
		months, err := strconv.Atoi(m[1])
		if err == nil {
			return months * daysPerMonth
		}
	}
	return 0
}

// dateFromParts builds a UTC date from day/month/year strings. Two-digit
// years are taken as 2000-based.
func dateFromParts(day, month, year string) time.Time {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if y < 100 {
		y += 2000
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
