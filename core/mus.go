package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types the storage layer persists.
// Field order is part of the wire format and must not change.

var (
	segmentDepsSer  = ord.NewSliceSer[int](varint.Int)
	segmentAttrsSer = ord.NewMapSer[string, string](ord.String, ord.String)
)

// IDMUS serializes ID values using varint encoding.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// SegmentMUS serializes Segment values.
var SegmentMUS = segmentMUS{}

type segmentMUS struct{}

func (segmentMUS) Marshal(s Segment, bs []byte) (n int) {
	n = ord.String.Marshal(s.Text, bs)
	n += varint.Int.Marshal(int(s.Category), bs[n:])
	n += varint.Int.Marshal(s.Level, bs[n:])
	n += segmentDepsSer.Marshal(s.Dependencies, bs[n:])
	n += segmentAttrsSer.Marshal(s.Attributes, bs[n:])
	return n
}

func (segmentMUS) Unmarshal(bs []byte) (s Segment, n int, err error) {
	var n1 int
	s.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return s, n, err
	}
	var category int
	category, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Category = Category(category)
	s.Level, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Dependencies, n1, err = segmentDepsSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Attributes, n1, err = segmentAttrsSer.Unmarshal(bs[n:])
	n += n1
	return s, n, err
}

func (segmentMUS) Size(s Segment) (size int) {
	size = ord.String.Size(s.Text)
	size += varint.Int.Size(int(s.Category))
	size += varint.Int.Size(s.Level)
	size += segmentDepsSer.Size(s.Dependencies)
	size += segmentAttrsSer.Size(s.Attributes)
	return size
}

func (segmentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return n, err
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = segmentDepsSer.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = segmentAttrsSer.Skip(bs[n:])
	n += n1
	return n, err
}
