package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for persisting snapshot blobs.
//
// Unlike the legacy two-phase file write, Put replaces a blob in a single
// atomic operation. Backends built on this interface therefore provide the
// stronger single-phase persistence guarantee.
type BlobStore interface {
	// Get reads the whole blob. Absent blobs return ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put atomically replaces the blob with data.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes the blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
