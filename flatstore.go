package flatstore

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/flatstore/blobstore"
	"github.com/hupe1980/flatstore/record"
	"github.com/hupe1980/flatstore/snapshot"
)

// Store is an ordered collection of records, the unit of persistence.
//
// Record order is stable: no operation reorders existing records, and the
// order survives a flush/load round trip. A Store owns its persisted
// location for the lifetime of the session and is not safe for concurrent
// use.
type Store struct {
	records []record.Record
	opts    options
}

// New creates an empty store without touching the persisted location.
func New(optFns ...Option) *Store {
	return &Store{opts: applyOptions(optFns)}
}

// Open loads the store from its configured location.
//
// An absent snapshot yields an empty store; a present snapshot that fails to
// parse is a fatal error with no recovery path.
func Open(ctx context.Context, optFns ...Option) (*Store, error) {
	s := New(optFns...)
	if s.opts.compressor != nil && s.opts.blob == nil {
		return nil, ErrCompressionRequiresBlobStore
	}

	start := time.Now()
	recs, err := s.load(ctx)
	s.opts.metrics.RecordLoad(len(recs), time.Since(start), err)
	s.opts.logger.LogLoad(ctx, s.Location(), len(recs), err)
	if err != nil {
		return nil, err
	}

	s.records = recs
	return s, nil
}

func (s *Store) load(ctx context.Context) ([]record.Record, error) {
	if s.opts.blob == nil {
		return snapshot.ReadFile(s.opts.fsys, s.opts.path, s.opts.codec)
	}

	data, err := s.opts.blob.Get(ctx, s.opts.blobName)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flatstore: load blob %s: %w", s.opts.blobName, err)
	}

	if s.opts.compressor != nil {
		if data, err = s.opts.compressor.Decompress(data); err != nil {
			return nil, fmt.Errorf("flatstore: decompress blob %s: %w", s.opts.blobName, err)
		}
	}

	return snapshot.Decode(data, s.opts.codec)
}

// Location returns the configured snapshot location (file path or blob name).
func (s *Store) Location() string {
	if s.opts.blob != nil {
		return s.opts.blobName
	}
	return s.opts.path
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns an iterator over all records in insertion order.
//
// The yielded records are the store's own: mutating one mutates the store.
func (s *Store) Records() iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Append adds rec to the end of the store. It always succeeds; there is no
// uniqueness constraint across records.
func (s *Store) Append(rec record.Record) {
	start := time.Now()
	s.records = append(s.records, rec)
	s.opts.metrics.RecordAppend(time.Since(start))
	s.opts.logger.LogAppend(context.Background(), len(rec))
}

// Search scans the store in insertion order and returns the first record
// whose field key is present and equals value exactly.
//
// A miss returns (nil, false) and is a normal outcome, not an error. Every
// search is an O(n) scan; there is deliberately no index acceleration.
func (s *Store) Search(key, value string) (record.Record, bool) {
	start := time.Now()
	for _, rec := range s.records {
		if rec.Matches(key, value) {
			s.opts.metrics.RecordSearch(time.Since(start), true)
			s.opts.logger.LogSearch(context.Background(), key, true)
			return rec, true
		}
	}
	s.opts.metrics.RecordSearch(time.Since(start), false)
	s.opts.logger.LogSearch(context.Background(), key, false)
	return nil, false
}

// Update sets field key on rec to value, creating the field if absent.
//
// rec is typically a record obtained from Search; because records are maps,
// the mutation is visible in the store. Update is unconditional assignment
// and cannot fail.
func (s *Store) Update(rec record.Record, key, value string) {
	start := time.Now()
	rec.Set(key, value)
	s.opts.metrics.RecordUpdate(time.Since(start))
	s.opts.logger.LogUpdate(context.Background(), key)
}

// UpdateMatch resolves the first record whose field key equals oldValue and
// sets that field to newValue.
//
// On a miss nothing is changed and false is returned; callers must treat
// that as a reported no-op, not an error.
func (s *Store) UpdateMatch(key, oldValue, newValue string) bool {
	rec, ok := s.Search(key, oldValue)
	if !ok {
		return false
	}
	s.Update(rec, key, newValue)
	return true
}

// Flush persists the store to its configured location, replacing any prior
// content.
//
// With the default file backend the write is two-phase with no atomicity
// across the phases (see the snapshot package); blob store backends replace
// the snapshot atomically.
func (s *Store) Flush(ctx context.Context) error {
	start := time.Now()
	err := s.flush(ctx)
	s.opts.metrics.RecordFlush(time.Since(start), err)
	s.opts.logger.LogFlush(ctx, s.Location(), len(s.records), err)
	return err
}

func (s *Store) flush(ctx context.Context) error {
	if s.opts.blob == nil {
		return snapshot.WriteFile(s.opts.fsys, s.opts.path, s.records, s.opts.codec)
	}

	data, err := snapshot.Encode(s.records, s.opts.codec)
	if err != nil {
		return err
	}

	if s.opts.compressor != nil {
		if data, err = s.opts.compressor.Compress(data); err != nil {
			return fmt.Errorf("flatstore: compress snapshot: %w", err)
		}
	}

	if err := s.opts.blob.Put(ctx, s.opts.blobName, data); err != nil {
		return fmt.Errorf("flatstore: put blob %s: %w", s.opts.blobName, err)
	}
	return nil
}
