package retrieval

import (
	"github.com/poiesic/clausewise/core"
	"github.com/poiesic/clausewise/index"
)

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during context
// assembly.
type Monitor interface {
	Start(query string)
	AfterHybridSearch(hits []index.Hit)
	RelatedSegments(origin int, related []int)
	AfterSegmentRetrieval(segments []core.Segment)
	Finish(context []*ContextSegment)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterHybridSearch(_ []index.Hit)         {}
func (n *noopMonitor) RelatedSegments(_ int, _ []int)          {}
func (n *noopMonitor) AfterSegmentRetrieval(_ []core.Segment)  {}
func (n *noopMonitor) Finish(_ []*ContextSegment)              {}
