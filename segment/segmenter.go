package segment

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/poiesic/clausewise/core"
	"github.com/tmc/langchaingo/textsplitter"
)

// Splitting parameters for oversized clauses. Values tuned for fitting
// retrieved context into a generation prompt.
const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 150
)

// Segmenter converts ordered clauses into searchable segments.
type Segmenter struct {
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithChunkSize sets the maximum segment text length before splitting.
func WithChunkSize(size int) Option {
	return func(s *Segmenter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between consecutive split chunks.
func WithChunkOverlap(overlap int) Option {
	return func(s *Segmenter) {
		if overlap >= 0 {
			s.chunkOverlap = overlap
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Segmenter) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSegmenter creates a segmenter with default splitting parameters.
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment converts clauses to segments in document order.
//
// Clauses longer than the chunk size are split recursively; every chunk
// becomes its own segment inheriting the clause's metadata and
// dependencies. Dependency indices keep referring to clause positions in
// the input; when a clause splits, its chunks share the clause's first
// segment position through the "clause" attribute so graph edges stay
// meaningful.
func (s *Segmenter) Segment(clauses []Clause) ([]core.Segment, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(s.chunkSize),
		textsplitter.WithChunkOverlap(s.chunkOverlap),
	)

	// First segment position of each clause, for dependency remapping.
	clauseStart := make([]int, len(clauses))

	segments := make([]core.Segment, 0, len(clauses))
	for clauseIdx, clause := range clauses {
		clauseStart[clauseIdx] = len(segments)

		chunks := []string{clause.Text}
		if len(clause.Text) > s.chunkSize {
			split, err := splitter.SplitText(clause.Text)
			if err != nil {
				return nil, fmt.Errorf("split clause %d: %w", clauseIdx, err)
			}
			chunks = split
		}

		for _, chunk := range chunks {
			if chunk == "" {
				continue
			}
			segments = append(segments, core.Segment{
				Text:         chunk,
				Category:     Classify(chunk),
				Level:        clause.Level,
				Dependencies: append([]int(nil), clause.DependsOn...),
				Attributes:   clauseAttributes(clause, clauseIdx),
			})
		}
	}

	// Remap clause-indexed dependencies to segment positions. Forward
	// references beyond the clause list are kept as-is: the graph
	// tolerates dangling edges.
	for i := range segments {
		for j, dep := range segments[i].Dependencies {
			if dep >= 0 && dep < len(clauseStart) {
				segments[i].Dependencies[j] = clauseStart[dep]
			}
		}
	}

	s.logger.Debug("segmented document", "clauses", len(clauses), "segments", len(segments))
	return segments, nil
}

func clauseAttributes(clause Clause, clauseIdx int) map[string]string {
	attrs := map[string]string{
		"clause": strconv.Itoa(clauseIdx),
	}
	if clause.Page > 0 {
		attrs["page"] = strconv.Itoa(clause.Page)
	}
	if clause.SourceURL != "" {
		attrs["source_url"] = clause.SourceURL
	}
	return attrs
}
