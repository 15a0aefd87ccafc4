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


package core

import "fmt"

// ValidateSegment validates a Segment according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Category must be a member of the closed set
//   - Dependency indices must not be negative
//
// NOT validated:
//   - Dependencies referencing indices not yet present (forward references
//     are allowed; the dependency graph tolerates dangling edges)
//   - Level (metadata only, any value accepted)
func ValidateSegment(segment *Segment) error {
	if segment == nil {
		return fmt.Errorf("%w: segment is nil", ErrInvalidSegment)
	}

	if segment.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptyText)
	}

	if err := ValidateCategory(segment.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, err)
	}

	for _, dep := range segment.Dependencies {
		if dep < 0 {
			return fmt.Errorf("%w: %w: %d", ErrInvalidSegment, ErrNegativeDependency, dep)
		}
	}

	return nil
}

// ValidateCategory checks that a Category is a member of the closed set.
func ValidateCategory(category Category) error {
	if category < CategoryDefinition || category > CategoryJurisdiction {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, category)
	}
	return nil
}

// ValidateConfidence checks that a confidence score lies in [0, 1].
func ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("%w: %f", ErrInvalidConfidence, confidence)
	}
	return nil
}
