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

import "sort"

// Neighbor is a single nearest-neighbor result. Position is the insertion
// order within the sub-index, not a segment index; the hybrid index maps
// positions back to segments.
type Neighbor struct {
	Position int
	Distance float64
}

// VectorIndex is the similarity-search contract for one resolution
// sub-index. Implementations need not be safe for concurrent Add, but
// must support concurrent Search once building is done.
type VectorIndex interface {
	// Add appends a vector; its position is the count of prior Adds.
	Add(vector []float32)

	// Len reports the number of stored vectors.
	Len() int

	// Search returns up to k nearest neighbors, closest first. Ties
	// break on lower position so results are deterministic.
	Search(query []float32, k int) []Neighbor
}

// FlatL2 is a brute-force VectorIndex using squared L2 distance. For the
// per-document segment counts seen here an exhaustive scan is faster than
// any structure worth maintaining.
type FlatL2 struct {
	vectors [][]float32
}

// NewFlatL2 returns an empty flat index.
func NewFlatL2() *FlatL2 {
	return &FlatL2{}
}

func (f *FlatL2) Add(vector []float32) {
	f.vectors = append(f.vectors, vector)
}

func (f *FlatL2) Len() int {
	return len(f.vectors)
}

func (f *FlatL2) Search(query []float32, k int) []Neighbor {
	if k <= 0 || len(f.vectors) == 0 {
		return nil
	}

	neighbors := make([]Neighbor, len(f.vectors))
	for i, vec := range f.vectors {
		neighbors[i] = Neighbor{Position: i, Distance: squaredL2(query, vec)}
	}
	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Distance != neighbors[b].Distance {
			return neighbors[a].Distance < neighbors[b].Distance
		}
		return neighbors[a].Position < neighbors[b].Position
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// squaredL2 compares over the shorter of the two vectors so a query
// truncated below a sub-index's resolution still scores sensibly.
func squaredL2(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
