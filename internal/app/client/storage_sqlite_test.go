package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteFavorites_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")

	store, err := NewSQLiteFavorites(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Add(1))
	require.NoError(t, store.Add(2))

	// Duplicate adds are absorbed by the conflict clause
	require.NoError(t, store.Add(1))

	ids, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	require.NoError(t, store.Remove(1))
	ids, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	// Removing an absent id is not an error
	require.NoError(t, store.Remove(99))
}

func TestSQLiteFavorites_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")

	store, err := NewSQLiteFavorites(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(7))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteFavorites(path)
	require.NoError(t, err)
	defer reopened.Close()

	ids, err := reopened.List()
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}

func TestMemoryFavorites(t *testing.T) {
	store := NewMemoryFavorites()

	require.NoError(t, store.Add(1))
	require.NoError(t, store.Add(2))
	require.NoError(t, store.Add(1))

	ids, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	require.NoError(t, store.Remove(2))
	ids, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	require.NoError(t, store.Close())
}
