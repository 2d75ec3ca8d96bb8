package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStore_StoreAsset(t *testing.T) {
	t.Parallel()

	t.Run("creates media directory and writes bytes", func(t *testing.T) {
		t.Parallel()

		// Given a store whose directory does not exist yet
		dir := filepath.Join(t.TempDir(), "media", "images")
		store := fs.NewAssetStore(dir)

		// When I store an asset
		handle, err := store.StoreAsset(context.Background(), []byte("png"), "photo.png")

		// Then the file is written under its name
		require.NoError(t, err)
		assert.NotEmpty(t, handle.ID)
		assert.Equal(t, "photo.png", handle.Name)
		assert.Equal(t, filepath.Join(dir, "photo.png"), handle.Path)

		data, err := os.ReadFile(handle.Path)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), data)
	})

	t.Run("suffixes colliding names", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAssetStore(t.TempDir())
		ctx := context.Background()

		first, err := store.StoreAsset(ctx, []byte("1"), "a.png")
		require.NoError(t, err)
		second, err := store.StoreAsset(ctx, []byte("2"), "a.png")
		require.NoError(t, err)
		third, err := store.StoreAsset(ctx, []byte("3"), "a.png")
		require.NoError(t, err)

		assert.Equal(t, "a.png", first.Name)
		assert.Equal(t, "a_1.png", second.Name)
		assert.Equal(t, "a_2.png", third.Name)
		assert.NotEqual(t, first.ID, second.ID)

		data, err := os.ReadFile(first.Path)
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), data, "existing file should not be overwritten")
	})

	t.Run("sanitizes filename", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAssetStore(t.TempDir())

		handle, err := store.StoreAsset(context.Background(), []byte("x"), "../1*abc def.jpeg")

		require.NoError(t, err)
		assert.Equal(t, ".._1_abc_def.jpeg", handle.Name)
		assert.Equal(t, store.Dir(), filepath.Dir(handle.Path))
	})

	t.Run("rejects empty data", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAssetStore(t.TempDir())

		_, err := store.StoreAsset(context.Background(), nil, "a.png")

		require.Error(t, err)
		assert.Equal(t, postport.EINVALID, postport.ErrorCode(err))
	})

	t.Run("returns error when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		blocker := filepath.Join(base, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
		store := fs.NewAssetStore(filepath.Join(blocker, "media"))

		_, err := store.StoreAsset(context.Background(), []byte("x"), "a.png")

		require.Error(t, err)
	})
}
