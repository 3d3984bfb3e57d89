// Package flatstore provides a tiny embedded record store for Go.
//
// A store is an ordered sequence of flat records; each record is an
// open-ended mapping from string field names to string field values with no
// fixed schema. The store supports append, linear search by field equality,
// and in-place field update, and persists itself to a single snapshot
// location.
//
// # Quick Start
//
// Local file (legacy snapshot format):
//
//	ctx := context.Background()
//	store, err := flatstore.Open(ctx, flatstore.WithPath("people.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store.Append(record.Record{"name": "Alice", "age": "30"})
//
//	if rec, ok := store.Search("name", "Alice"); ok {
//	    store.Update(rec, "age", "31")
//	}
//
//	if err := store.Flush(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Object storage:
//
//	mc, _ := minio.New("localhost:9000", &minio.Options{...})
//	bs := flatminio.NewStore(mc, "snapshots", "stores/")
//	store, _ := flatstore.Open(ctx,
//	    flatstore.WithBlobStore(bs, "people.db"),
//	    flatstore.WithCompression(compress.Zstd{}),
//	)
//
// # Snapshot Format
//
// The persisted byte stream is a 16-bit big-endian record count followed by
// the serialized record sequence as UTF-8 JSON. The count prefix is written
// correctly but ignored on load; see the snapshot package for the format's
// full contract, including the deliberate two-phase file write.
//
// # Query Contract
//
// Search scans records in insertion order and returns the first record whose
// field equals the given value exactly; a miss is a normal outcome, not an
// error. There is no index acceleration: every search is an O(n) scan.
//
// # Concurrency
//
// A Store is single-session: it assumes exactly one owner of the persisted
// location for its lifetime and is not safe for concurrent use.
//
// The bst package is independent of the store and provides the ordered index
// used for sorted traversal demonstrations.
package flatstore
