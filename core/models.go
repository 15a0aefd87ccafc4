package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which is how
// document identity is established for index caching.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category classifies the structural role of a document segment.
type Category int

const (
	// CategoryDefinition marks a segment that defines a term.
	CategoryDefinition Category = iota + 1
	// CategoryCondition marks a segment stating a precondition.
	CategoryCondition
	// CategoryExclusion marks a segment excluding something from coverage.
	CategoryExclusion
	// CategoryCoverage marks a segment granting coverage. This is the
	// default when a segment cannot be classified.
	CategoryCoverage
	// CategoryTemporal marks a segment carrying dates or waiting periods.
	CategoryTemporal
	// CategoryCalculation marks a segment with amounts or formulas.
	CategoryCalculation
	// CategoryException marks a segment carving out an exception.
	CategoryException
	// CategoryStakeholder marks a segment naming a party to the policy.
	CategoryStakeholder
	// CategoryJurisdiction marks a segment about governing law.
	CategoryJurisdiction
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryDefinition:
		return "definition"
	case CategoryCondition:
		return "condition"
	case CategoryExclusion:
		return "exclusion"
	case CategoryCoverage:
		return "coverage"
	case CategoryTemporal:
		return "temporal"
	case CategoryCalculation:
		return "calculation"
	case CategoryException:
		return "exception"
	case CategoryStakeholder:
		return "stakeholder"
	case CategoryJurisdiction:
		return "jurisdiction"
	default:
		return "unknown"
	}
}

// Segment is a retrievable unit of document text.
// Segments are created once per document ingestion and are immutable
// afterward; they are discarded when the owning document's index entry
// is evicted.
type Segment struct {
	Text         string
	Category     Category
	Level        int               // structural depth, metadata only
	Dependencies []int             // indices of segments this one depends on; forward references allowed
	Attributes   map[string]string // provenance such as page or source URL
}

// Finding is a deterministic tool's proposed answer fragment.
// A zero-valued Result means the tool was not applicable.
type Finding struct {
	Tool       string
	Result     string
	Confidence float64
}

// Empty reports whether the finding carries no result.
func (f Finding) Empty() bool {
	return f.Result == ""
}

// Source tag values for Answer provenance.
const (
	// SourceGeneration tags answers produced by the generative fallback.
	SourceGeneration = "llm_generation"
	// SourceToolPrefix prefixes answers derived from a symbolic tool
	// finding; the tool name follows the colon.
	SourceToolPrefix = "tool_assisted:"
	// RerunSuffix is appended to the source tag of a low-confidence
	// re-run's replacement answer.
	RerunSuffix = "_rerun"
)

// Answer is the result of processing one question.
type Answer struct {
	Text       string
	Confidence float64
	Source     string
}

// ToolAssisted reports whether the answer was derived from a symbolic
// tool finding rather than free-form generation.
func (a Answer) ToolAssisted() bool {
	return strings.HasPrefix(a.Source, SourceToolPrefix)
}
