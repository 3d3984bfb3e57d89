package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flatstore/internal/fs"
)

func testBlobStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	// 1. Absent blob
	_, err := store.Get(ctx, "people.db")
	assert.ErrorIs(t, err, ErrNotFound)

	// 2. Put and Get
	require.NoError(t, store.Put(ctx, "people.db", []byte("v1")))
	data, err := store.Get(ctx, "people.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	// 3. Put replaces in one step
	require.NoError(t, store.Put(ctx, "people.db", []byte("v2")))
	data, err = store.Get(ctx, "people.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	// 4. List
	require.NoError(t, store.Put(ctx, "people.bak", []byte("b")))
	names, err := store.List(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, []string{"people.bak", "people.db"}, names)

	// 5. Delete is idempotent
	require.NoError(t, store.Delete(ctx, "people.db"))
	require.NoError(t, store.Delete(ctx, "people.db"))
	_, err = store.Get(ctx, "people.db")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testBlobStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testBlobStore(t, NewLocalStore(nil, t.TempDir()))
}

func TestLocalStore_PutLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(nil, dir)

	require.NoError(t, store.Put(context.Background(), "people.db", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "people.db", entries[0].Name())
}

func TestLocalStore_PutFailureKeepsOldBlob(t *testing.T) {
	dir := t.TempDir()
	ffs := fs.NewFaultyFS(nil)
	store := NewLocalStore(ffs, dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "people.db", []byte("v1")))

	// Fail the temp file write: the old blob must survive untouched
	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 0})
	err := store.Put(ctx, "people.db", []byte("v2"))
	require.ErrorIs(t, err, fs.ErrInjected)

	ffs.ClearRules()
	data, err := store.Get(ctx, "people.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	// No temp leftovers
	_, err = os.Stat(filepath.Join(dir, "people.db.tmp"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMultiStore(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore()
	b := NewMemoryStore()
	multi := NewMultiStore(a, b)

	// Put replicates to every target
	require.NoError(t, multi.Put(ctx, "people.db", []byte("v1")))
	for _, s := range []*MemoryStore{a, b} {
		data, err := s.Get(ctx, "people.db")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)
	}

	// Get falls through to the first target that has the blob
	require.NoError(t, a.Delete(ctx, "people.db"))
	data, err := multi.Get(ctx, "people.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	// Delete fans out
	require.NoError(t, multi.Delete(ctx, "people.db"))
	_, err = multi.Get(ctx, "people.db")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMultiStore_PutFailsIfAnyTargetFails(t *testing.T) {
	dir := t.TempDir()
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 0})

	multi := NewMultiStore(NewMemoryStore(), NewLocalStore(ffs, dir))

	err := multi.Put(context.Background(), "people.db", []byte("v1"))
	assert.ErrorIs(t, err, fs.ErrInjected)
}
