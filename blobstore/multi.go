package blobstore

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// MultiStore replicates writes across several blob stores.
//
// Put and Delete fan out to every target concurrently and fail if any target
// fails. Get and List read from the first target that answers, falling
// through on ErrNotFound.
type MultiStore struct {
	stores []BlobStore
}

// NewMultiStore creates a MultiStore over the given targets.
// At least one target is required.
func NewMultiStore(stores ...BlobStore) *MultiStore {
	return &MultiStore{stores: stores}
}

// Get reads the blob from the first target that has it.
func (m *MultiStore) Get(ctx context.Context, name string) ([]byte, error) {
	for _, s := range m.stores {
		data, err := s.Get(ctx, name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return data, err
	}
	return nil, ErrNotFound
}

// Put replicates the blob to every target.
func (m *MultiStore) Put(ctx context.Context, name string, data []byte) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range m.stores {
		g.Go(func() error {
			return s.Put(ctx, name, data)
		})
	}
	return g.Wait()
}

// Delete removes the blob from every target.
func (m *MultiStore) Delete(ctx context.Context, name string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range m.stores {
		g.Go(func() error {
			return s.Delete(ctx, name)
		})
	}
	return g.Wait()
}

// List lists from the first target.
func (m *MultiStore) List(ctx context.Context, prefix string) ([]string, error) {
	if len(m.stores) == 0 {
		return nil, nil
	}
	return m.stores[0].List(ctx, prefix)
}
