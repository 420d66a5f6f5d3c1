package blobfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	locator, err := store.Put(ctx, "paper.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Contains(t, locator, "paper.pdf")

	data, err := store.Get(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	require.NoError(t, store.Delete(ctx, locator))
	_, err = store.Get(ctx, locator)
	assert.Error(t, err)

	// Deleting an already-deleted blob is not an error.
	assert.NoError(t, store.Delete(ctx, locator))
}

func TestStore_SameNameDistinctLocators(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	a, err := store.Put(ctx, "a.txt", []byte("one"))
	require.NoError(t, err)
	b, err := store.Put(ctx, "a.txt", []byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	gotA, err := store.Get(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), gotA)
}

func TestStore_RejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "../../etc/passwd")
	assert.Error(t, err)
}

func TestStore_SanitizesNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	locator, err := store.Put(ctx, "../../evil.sh", []byte("#!"))
	require.NoError(t, err)
	assert.NotContains(t, locator, "..")

	data, err := store.Get(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, []byte("#!"), data)
}
