package flatstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/flatstore/testutil"
)

func BenchmarkSearch(b *testing.B) {
	store := New()
	for _, rec := range testutil.NewRNG(42).GenerateRecords(10_000) {
		store.Append(rec)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Search("name", "Zed") // worst case: full scan, no match
	}
}

func BenchmarkFlush(b *testing.B) {
	ctx := context.Background()
	store := New(WithPath(filepath.Join(b.TempDir(), "people.db")))
	for _, rec := range testutil.NewRNG(42).GenerateRecords(10_000) {
		store.Append(rec)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Flush(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
