package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStoreContract(t *testing.T, kv Store) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "shops", `[{"id":"shop-1"}]`))
	value, err := kv.Get(ctx, "shops")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"shop-1"}]`, value)

	// overwrite
	require.NoError(t, kv.Set(ctx, "shops", `[]`))
	value, err = kv.Get(ctx, "shops")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	// remove, then remove again: the second is a no-op, not an error
	require.NoError(t, kv.Remove(ctx, "shops"))
	_, err = kv.Get(ctx, "shops")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, kv.Remove(ctx, "shops"))
}

func TestMemoryStoreContract(t *testing.T) {
	kv := NewMemoryStore()
	defer kv.Close()
	runStoreContract(t, kv)
}

func TestSQLiteStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()
	runStoreContract(t, kv)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "user", `{"id":"owner-1"}`))
	require.NoError(t, kv.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"owner-1"}`, value)
}
