package flatstore

import (
	"log/slog"

	"github.com/hupe1980/flatstore/blobstore"
	"github.com/hupe1980/flatstore/codec"
	"github.com/hupe1980/flatstore/compress"
	"github.com/hupe1980/flatstore/internal/fs"
)

// DefaultPath is the persisted snapshot location used when no option
// overrides it.
const DefaultPath = "people.db"

type options struct {
	path       string
	fsys       fs.FileSystem
	codec      codec.Codec
	blob       blobstore.BlobStore
	blobName   string
	compressor compress.Compressor
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures store constructor/load behavior.
type Option func(*options)

// WithPath configures the snapshot file location.
// Ignored when a blob store backend is configured.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithFileSystem configures the file system used for snapshot I/O.
// Primarily useful for fault injection in tests. If nil, the local file
// system is used.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fsys = fsys
	}
}

// WithCodec configures the codec used for the snapshot payload.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithBlobStore persists snapshots to a blob store under the given name
// instead of a local file.
//
// Blob store backends replace the snapshot in a single atomic put, a
// stronger guarantee than the legacy two-phase file write.
func WithBlobStore(bs blobstore.BlobStore, name string) Option {
	return func(o *options) {
		o.blob = bs
		o.blobName = name
	}
}

// WithCompression compresses snapshots before they reach the blob store.
//
// Compression requires a blob store backend: the legacy local file format is
// fixed byte-for-byte and is never compressed. Open fails if compression is
// configured without WithBlobStore.
func WithCompression(c compress.Compressor) Option {
	return func(o *options) {
		o.compressor = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		path:    DefaultPath,
		fsys:    fs.Default,
		codec:   codec.Default,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
