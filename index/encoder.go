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

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/clausewise/ai"
)

// DefaultResolutions are the embedding prefix lengths used when no
// explicit resolutions are configured, from finest to coarsest.
var DefaultResolutions = []int{256, 128, 64}

// MultiResolutionEncoder produces one embedding per configured resolution
// from a single provider call. Each lower-resolution vector is a prefix
// truncation of the full embedding, so the bundle costs exactly one
// round trip to the embedding provider.
type MultiResolutionEncoder struct {
	embedder    ai.Embedder
	resolutions []int
}

// NewMultiResolutionEncoder returns an encoder over the given resolutions.
// Resolutions are deduplicated and kept in descending order.
func NewMultiResolutionEncoder(embedder ai.Embedder, resolutions []int) (*MultiResolutionEncoder, error) {
	if len(resolutions) == 0 {
		return nil, ErrNoResolutions
	}

	seen := make(map[int]bool, len(resolutions))
	ordered := make([]int, 0, len(resolutions))
	for _, res := range resolutions {
		if res <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, res)
		}
		if !seen[res] {
			seen[res] = true
			ordered = append(ordered, res)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	return &MultiResolutionEncoder{embedder: embedder, resolutions: ordered}, nil
}

// Encode embeds text once and returns the per-resolution vector bundle.
// Blank text returns a nil bundle without calling the provider; callers
// treat that as "no vector entry".
func (e *MultiResolutionEncoder) Encode(ctx context.Context, text string) (map[int][]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	full, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	if len(full) == 0 {
		return nil, ErrEmptyEmbedding
	}

	bundle := make(map[int][]float32, len(e.resolutions))
	for _, res := range e.resolutions {
		n := res
		if n > len(full) {
			n = len(full)
		}
		vec := make([]float32, n)
		copy(vec, full[:n])
		bundle[res] = vec
	}
	return bundle, nil
}

// Resolutions returns the configured resolutions in descending order.
func (e *MultiResolutionEncoder) Resolutions() []int {
	return e.resolutions
}

// MaxResolution returns the finest configured resolution.
func (e *MultiResolutionEncoder) MaxResolution() int {
	return e.resolutions[0]
}
