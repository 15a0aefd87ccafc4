package storage

import (
	"context"

	"github.com/poiesic/clausewise/core"
)

// SegmentStore provides positional access to one document's segments.
// Implementations must be thread-safe for concurrent reads; writes only
// happen during index build, before any reader exists.
type SegmentStore interface {
	// AppendSegments stores segments at the next free positions, in
	// argument order. Returns the position of the first appended segment.
	AppendSegments(ctx context.Context, segments ...core.Segment) (int, error)

	// GetSegment retrieves the segment at a position.
	// Returns ErrNotFound if the position was never written.
	GetSegment(ctx context.Context, position int) (*core.Segment, error)

	// GetSegments retrieves the segments at the given positions, in
	// argument order. Returns ErrNotFound if any position is missing.
	GetSegments(ctx context.Context, positions ...int) ([]core.Segment, error)

	// Count returns the number of stored segments.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
