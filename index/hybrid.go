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
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/clausewise/ai"
	"github.com/poiesic/clausewise/core"
)

const (
	// vectorWeight and lexicalWeight blend the two retrieval signals into
	// the combined score.
	vectorWeight  = 0.7
	lexicalWeight = 0.3

	// candidateMultiplier widens each sub-index search beyond topK so
	// segments ranked differently across resolutions still accumulate
	// contributions.
	candidateMultiplier = 3

	// distanceScale maps squared L2 distance into a similarity
	// contribution via 1 - distance/distanceScale.
	distanceScale = 10.0
)

// Hit is one search result: a segment position and its combined score.
type Hit struct {
	SegmentIndex int
	Score        float64
}

// Option configures index construction.
type Option func(*buildConfig)

type buildConfig struct {
	resolutions []int
	poolSize    int
	factory     func() VectorIndex
	logger      *slog.Logger
}

// WithResolutions overrides the embedding resolutions used for the
// per-resolution sub-indexes.
func WithResolutions(resolutions []int) Option {
	return func(cfg *buildConfig) {
		cfg.resolutions = resolutions
	}
}

// WithPoolSize sets the number of concurrent embedding workers used
// during Build.
func WithPoolSize(size int) Option {
	return func(cfg *buildConfig) {
		if size > 0 {
			cfg.poolSize = size
		}
	}
}

// WithVectorIndexFactory swaps the similarity backend. Each resolution
// gets its own instance from the factory.
func WithVectorIndexFactory(factory func() VectorIndex) Option {
	return func(cfg *buildConfig) {
		if factory != nil {
			cfg.factory = factory
		}
	}
}

// WithLogger sets the logger used for build and search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *buildConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Hybrid combines per-resolution vector sub-indexes, a lexical scorer,
// and a dependency graph over one document's segments. After Build it is
// read-only and safe for concurrent Search.
type Hybrid struct {
	encoder   *MultiResolutionEncoder
	sub       map[int]VectorIndex
	segmentAt map[int][]int // sub-index position -> segment position
	lexical   *LexicalScorer
	graph     *DependencyGraph
	size      int
	logger    *slog.Logger
}

// Build embeds every non-blank segment once and assembles the hybrid
// index. Embeddings run on a worker pool, but sub-index insertion order
// always follows segment order, so rebuilding the same segments yields an
// identical index.
func Build(ctx context.Context, segments []core.Segment, embedder ai.Embedder, opts ...Option) (*Hybrid, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	cfg := buildConfig{
		resolutions: DefaultResolutions,
		poolSize:    poolSize,
		factory:     func() VectorIndex { return NewFlatL2() },
		logger:      slog.Default().With("component", "index"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	encoder, err := NewMultiResolutionEncoder(embedder, cfg.resolutions)
	if err != nil {
		return nil, err
	}

	bundles, err := encodeAll(ctx, encoder, segments, cfg.poolSize)
	if err != nil {
		return nil, err
	}

	sub := make(map[int]VectorIndex, len(encoder.Resolutions()))
	segmentAt := make(map[int][]int, len(encoder.Resolutions()))
	for _, res := range encoder.Resolutions() {
		sub[res] = cfg.factory()
	}
	for i, bundle := range bundles {
		if bundle == nil {
			continue // blank segment, lexical-only
		}
		for _, res := range encoder.Resolutions() {
			vec, ok := bundle[res]
			if !ok {
				continue
			}
			sub[res].Add(vec)
			segmentAt[res] = append(segmentAt[res], i)
		}
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	lexical, err := NewLexicalScorer(texts)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("built hybrid index",
		"segments", len(segments),
		"resolutions", encoder.Resolutions())

	return &Hybrid{
		encoder:   encoder,
		sub:       sub,
		segmentAt: segmentAt,
		lexical:   lexical,
		graph:     NewDependencyGraph(segments),
		size:      len(segments),
		logger:    cfg.logger,
	}, nil
}

// encodeAll embeds segments concurrently while keeping results aligned
// with segment positions.
func encodeAll(ctx context.Context, encoder *MultiResolutionEncoder, segments []core.Segment, poolSize int) ([]map[int][]float32, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("create embedding pool: %w", err)
	}
	defer pool.Release()

	bundles := make([]map[int][]float32, len(segments))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := range segments {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			bundle, err := encoder.Encode(ctx, segments[i].Text)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("encode segment %d: %w", i, err)
				}
				mu.Unlock()
				return
			}
			bundles[i] = bundle
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit segment %d: %w", i, submitErr)
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return bundles, nil
}

// Search scores the query against every segment and returns the top topK
// hits by combined score, best first. Finer resolutions contribute
// proportionally more to the vector signal; the lexical signal covers
// segments that never entered a vector sub-index.
func (h *Hybrid) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	if topK <= 0 || h.size == 0 {
		return []Hit{}, nil
	}

	vectorScores := make([]float64, h.size)
	bundle, err := h.encoder.Encode(ctx, query)
	if err != nil {
		return nil, err
	}
	if bundle != nil {
		maxRes := float64(h.encoder.MaxResolution())
		for _, res := range h.encoder.Resolutions() {
			sub := h.sub[res]
			if sub.Len() == 0 {
				continue
			}
			weight := float64(res) / maxRes
			for _, neighbor := range sub.Search(bundle[res], topK*candidateMultiplier) {
				segment := h.segmentAt[res][neighbor.Position]
				vectorScores[segment] += (1 - neighbor.Distance/distanceScale) * weight
			}
		}
	}

	lexicalScores, err := h.lexical.Scores(query)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, h.size)
	for i := range hits {
		hits[i] = Hit{
			SegmentIndex: i,
			Score:        vectorWeight*vectorScores[i] + lexicalWeight*lexicalScores[i],
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})
	if topK < len(hits) {
		hits = hits[:topK]
	}

	h.logger.Debug("hybrid search", "query_len", len(query), "top_k", topK)
	return hits, nil
}

// Related exposes dependency-graph expansion for a segment position.
func (h *Hybrid) Related(segment, depth int) []int {
	return h.graph.Related(segment, depth)
}

// Size reports the number of indexed segments.
func (h *Hybrid) Size() int {
	return h.size
}

// Close releases the lexical index. The vector sub-indexes and graph are
// plain memory and need no teardown.
func (h *Hybrid) Close() error {
	return h.lexical.Close()
}
