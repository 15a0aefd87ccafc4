// Package segment converts extracted document clauses into the flat list
// of searchable segments the hybrid index is built from.
//
// A Clause is what document extraction hands over: ordered text with
// structural metadata. The Segmenter splits oversized clauses, classifies
// each piece into a closed category set, and records provenance in the
// segment attributes. Segments are immutable after segmentation.
package segment
