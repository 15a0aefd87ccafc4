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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSegment indicates a Segment failed validation.
	ErrInvalidSegment = errors.New("invalid segment")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("segment text cannot be empty")

	// ErrInvalidCategory indicates an invalid Category value.
	ErrInvalidCategory = errors.New("invalid segment category")

	// ErrNegativeDependency indicates a dependency index below zero.
	ErrNegativeDependency = errors.New("dependency index cannot be negative")

	// ErrInvalidConfidence indicates a confidence outside [0, 1].
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")
)
