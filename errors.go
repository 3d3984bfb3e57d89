package flatstore

import (
	"errors"

	"github.com/hupe1980/flatstore/snapshot"
)

var (
	// ErrTooManyRecords is returned by Flush when the store exceeds the
	// snapshot format's 16-bit record count. It aliases
	// snapshot.ErrTooManyRecords.
	ErrTooManyRecords = snapshot.ErrTooManyRecords

	// ErrCompressionRequiresBlobStore is returned by Open when compression
	// is configured for the legacy local file format, which is fixed
	// byte-for-byte.
	ErrCompressionRequiresBlobStore = errors.New("flatstore: compression requires a blob store backend")
)
