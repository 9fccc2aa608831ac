package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraconfig "github.com/localmarket/backend/internal/infrastructure/config"
)

func newLocalStore(t *testing.T) *LocalImageStore {
	store, err := NewLocalImageStore(&infraconfig.StorageConfig{
		LocalDir:   t.TempDir(),
		PublicBase: "/assets/images",
	})
	require.NoError(t, err)
	return store
}

func TestLocalImageStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("stores image and returns public path", func(t *testing.T) {
		store := newLocalStore(t)

		path, err := store.Save(ctx, "shop_abc.webp", []byte("webp-bytes"))

		require.NoError(t, err)
		assert.Equal(t, "/assets/images/shop_abc.webp", path)

		data, err := os.ReadFile(filepath.Join(store.Dir(), "shop_abc.webp"))
		require.NoError(t, err)
		assert.Equal(t, []byte("webp-bytes"), data)
	})

	t.Run("overwrites a previous upload for the same entity", func(t *testing.T) {
		store := newLocalStore(t)

		_, err := store.Save(ctx, "shop_abc.webp", []byte("first"))
		require.NoError(t, err)
		_, err = store.Save(ctx, "shop_abc.webp", []byte("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(store.Dir(), "shop_abc.webp"))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)

		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects path traversal in file names", func(t *testing.T) {
		store := newLocalStore(t)

		_, err := store.Save(ctx, "../escape.webp", []byte("x"))
		assert.Error(t, err)
	})
}

func TestLocalImageStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a stored image", func(t *testing.T) {
		store := newLocalStore(t)

		path, err := store.Save(ctx, "product_xyz.webp", []byte("data"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, path))
		_, err = os.Stat(filepath.Join(store.Dir(), "product_xyz.webp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("tolerates already-deleted images", func(t *testing.T) {
		store := newLocalStore(t)

		assert.NoError(t, store.Delete(ctx, "/assets/images/gone.webp"))
	})
}
