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


package index

import "errors"

var (
	// ErrNoResolutions indicates an encoder was configured without any
	// embedding resolutions.
	ErrNoResolutions = errors.New("at least one embedding resolution is required")

	// ErrInvalidResolution indicates a non-positive embedding resolution.
	ErrInvalidResolution = errors.New("embedding resolutions must be positive")

	// ErrEmptyEmbedding indicates the embedding provider returned a
	// zero-length vector.
	ErrEmptyEmbedding = errors.New("embedding provider returned an empty vector")

	// ErrClosed indicates an operation on an index that has been closed.
	ErrClosed = errors.New("index is closed")
)
