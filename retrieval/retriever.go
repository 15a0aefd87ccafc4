package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/clausewise/core"
	"github.com/poiesic/clausewise/index"
	"github.com/poiesic/clausewise/storage"
)

// ContextSegment is one entry of an assembled answer context.
type ContextSegment struct {
	// Position is the segment's position within the document.
	Position int

	// Segment is the stored segment.
	Segment *core.Segment

	// Score is the combined hybrid score of the hit that pulled this
	// segment in. Related segments inherit their originating hit's score.
	Score float64

	// Related is true when the segment entered via the dependency graph
	// rather than as a search hit.
	Related bool
}

// Retriever assembles answer context for a question.
type Retriever struct {
	index  *index.Hybrid
	store  storage.SegmentStore
	logger *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a retriever over a built index and its segment
// store.
func NewRetriever(idx *index.Hybrid, store storage.SegmentStore, opts ...Option) (*Retriever, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	r := &Retriever{
		index:  idx,
		store:  store,
		logger: slog.Default().With("component", "retrieval"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Retrieve returns the assembled context for a question.
// topK bounds the number of search hits and depth bounds dependency
// expansion per hit.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK, depth int) ([]*ContextSegment, error) {
	return r.RetrieveWithMonitor(ctx, query, topK, depth, nil)
}

// RetrieveWithMonitor retrieves context while reporting each stage to the
// monitor. For every hit, in rank order, the hit's graph-related segments
// are emitted before the hit itself; a segment already emitted for an
// earlier hit is not repeated.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, query string, topK, depth int, monitor Monitor) ([]*ContextSegment, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	monitor.Start(query)

	hits, err := r.index.Search(ctx, query, topK)
	if err != nil {
		r.logger.Error("error searching index", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterHybridSearch(hits)

	if len(hits) == 0 {
		monitor.Finish(nil)
		return []*ContextSegment{}, nil
	}

	// Plan the context before touching storage so all segments load in
	// one call.
	type planned struct {
		position int
		score    float64
		related  bool
	}
	seen := make(map[int]bool)
	plan := make([]planned, 0, len(hits))
	for _, hit := range hits {
		related := r.index.Related(hit.SegmentIndex, depth)
		monitor.RelatedSegments(hit.SegmentIndex, related)

		for _, pos := range related {
			if seen[pos] {
				continue
			}
			seen[pos] = true
			plan = append(plan, planned{position: pos, score: hit.Score, related: true})
		}
		if !seen[hit.SegmentIndex] {
			seen[hit.SegmentIndex] = true
			plan = append(plan, planned{position: hit.SegmentIndex, score: hit.Score})
		}
	}

	positions := make([]int, len(plan))
	for i, p := range plan {
		positions[i] = p.position
	}
	segments, err := r.store.GetSegments(ctx, positions...)
	if err != nil {
		r.logger.Error("error loading segments", "count", len(positions), "err", err)
		return nil, err
	}
	monitor.AfterSegmentRetrieval(segments)

	assembled := make([]*ContextSegment, len(plan))
	for i, p := range plan {
		seg := segments[i]
		assembled[i] = &ContextSegment{
			Position: p.position,
			Segment:  &seg,
			Score:    p.score,
			Related:  p.related,
		}
	}

	monitor.Finish(assembled)
	r.logger.Debug("assembled context",
		"query_len", len(query),
		"hits", len(hits),
		"segments", len(assembled))
	return assembled, nil
}
