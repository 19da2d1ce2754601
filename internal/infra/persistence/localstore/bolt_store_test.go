package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *boltStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "dukaan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBoltStore_ReadAbsentKey(t *testing.T) {
	store := openTestStore(t)

	blob, found, err := store.Read(KeyOrders)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, blob)
}

func TestBoltStore_WriteThenRead(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(KeyProducts, []byte(`[{"id":"prod_0"}]`)))

	blob, found, err := store.Read(KeyProducts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"prod_0"}]`, string(blob))
}

func TestBoltStore_WriteReplacesSnapshotWholesale(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(KeySettings, []byte(`{"name":"Old"}`)))
	require.NoError(t, store.Write(KeySettings, []byte(`{"name":"New"}`)))

	blob, found, err := store.Read(KeySettings)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"name":"New"}`, string(blob))
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dukaan.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(KeyOrders, []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	blob, found, err := reopened.Read(KeyOrders)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(blob))
}
