package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/clausewise/core"
	"github.com/poiesic/clausewise/storage"
)

// Store is a BadgerDB-backed segment store for one document.
// Segment indices are not persisted across restarts, so the common
// configuration is in-memory; an on-disk path is supported for tooling
// that wants to inspect a segmented document.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.SegmentStore = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a BadgerDB segment store at the specified path.
// Creates the directory if it doesn't exist. Pass inMemory=true with an
// empty path for a store that vanishes on Close.
func OpenStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "segment-store"),
	}, nil
}

// NewMemoryStore creates an in-memory segment store. This is the
// configuration the index cache uses; it is also convenient in tests.
// Caller must close the store when done.
func NewMemoryStore() (*Store, error) {
	return OpenStore("", true)
}

// AppendSegments stores segments at the next free positions, in argument order.
func (s *Store) AppendSegments(ctx context.Context, segments ...core.Segment) (int, error) {
	if len(segments) == 0 {
		count, err := s.count()
		return count, err
	}

	var first int
	err := s.db.Update(func(tx *badger.Txn) error {
		count, err := readCount(tx)
		if err != nil {
			return err
		}
		first = count

		for i := range segments {
			key := makeSegmentKey(count + i)
			if err := tx.Set(key, storage.MarshalSegment(&segments[i])); err != nil {
				return err
			}
		}

		return writeCount(tx, count+len(segments))
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("appended segments", "count", len(segments), "first", first)
	return first, nil
}

// GetSegment retrieves the segment at a position.
func (s *Store) GetSegment(ctx context.Context, position int) (*core.Segment, error) {
	if position < 0 {
		return nil, fmt.Errorf("%w: %d", storage.ErrNegativePosition, position)
	}

	var segment *core.Segment
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSegmentKey(position))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: position %d", storage.ErrNotFound, position)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			segment, err = storage.UnmarshalSegment(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return segment, nil
}

// GetSegments retrieves the segments at the given positions, in argument order.
func (s *Store) GetSegments(ctx context.Context, positions ...int) ([]core.Segment, error) {
	segments := make([]core.Segment, 0, len(positions))

	err := s.db.View(func(tx *badger.Txn) error {
		for _, position := range positions {
			if position < 0 {
				return fmt.Errorf("%w: %d", storage.ErrNegativePosition, position)
			}
			item, err := tx.Get(makeSegmentKey(position))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: position %d", storage.ErrNotFound, position)
			}
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				segment, err := storage.UnmarshalSegment(val)
				if err != nil {
					return err
				}
				segments = append(segments, *segment)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return segments, nil
}

// Count returns the number of stored segments.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.count()
}

// Close closes the BadgerDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

// IsClosed returns true if the database is closed.
func (s *Store) IsClosed() bool {
	return s.db.IsClosed()
}

func (s *Store) count() (int, error) {
	var count int
	err := s.db.View(func(tx *badger.Txn) error {
		var err error
		count, err = readCount(tx)
		return err
	})
	return count, err
}

func readCount(tx *badger.Txn) (int, error) {
	item, err := tx.Get([]byte(segmentCountKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var count int
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("malformed segment count value")
		}
		count = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return count, err
}

func writeCount(tx *badger.Txn, count int) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(count))
	return tx.Set([]byte(segmentCountKey), buf)
}
