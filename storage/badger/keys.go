package badger

import "encoding/binary"

// Key prefixes for different data types
const (
	segmentPrefix   = "seg"
	segmentCountKey = "segcount"
)

// makeSegmentKey generates a key for a segment by position.
// Positions are written in BigEndian order so lexicographic iteration
// matches document order.
func makeSegmentKey(position int) []byte {
	prefix := segmentPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}
