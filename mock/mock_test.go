package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStore_DelegatesToFunc(t *testing.T) {
	t.Parallel()

	var got *postport.ContentRecord
	store := &mock.ContentStore{
		CreateContentRecordFn: func(_ context.Context, rec *postport.ContentRecord) error {
			rec.ID = "rec-1"
			got = rec
			return nil
		},
	}

	rec := &postport.ContentRecord{Title: "T"}
	err := store.CreateContentRecord(context.Background(), rec)

	require.NoError(t, err)
	assert.Same(t, rec, got)
	assert.Equal(t, "rec-1", rec.ID)
}

func TestAssetStore_DelegatesToFunc(t *testing.T) {
	t.Parallel()

	store := &mock.AssetStore{
		StoreAssetFn: func(_ context.Context, data []byte, filename string) (*postport.AssetHandle, error) {
			return &postport.AssetHandle{ID: "a1", Name: filename, Path: "/media/" + filename}, nil
		},
	}

	handle, err := store.StoreAsset(context.Background(), []byte("png"), "x.png")

	require.NoError(t, err)
	assert.Equal(t, "a1", handle.ID)
	assert.Equal(t, "x.png", handle.Name)
}
