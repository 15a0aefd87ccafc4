package retrieval

import "errors"

var (
	// ErrIndexRequired indicates a Retriever was created without an index.
	ErrIndexRequired = errors.New("hybrid index is required")

	// ErrStoreRequired indicates a Retriever was created without a
	// segment store.
	ErrStoreRequired = errors.New("segment store is required")

	// ErrEmptyQuery indicates a retrieval with a blank question.
	ErrEmptyQuery = errors.New("query must not be blank")
)
