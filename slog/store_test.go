package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/mock"
	ppslog "github.com/fwojciec/postport/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAssetStore_StoreAsset(t *testing.T) {
	t.Parallel()

	t.Run("logs stored asset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.AssetStore{
			StoreAssetFn: func(_ context.Context, _ []byte, filename string) (*postport.AssetHandle, error) {
				return &postport.AssetHandle{ID: "a1", Name: filename, Path: "/media/" + filename}, nil
			},
		}

		store := ppslog.NewLoggingAssetStore(inner, logger)
		handle, err := store.StoreAsset(context.Background(), []byte("png"), "a.png")

		require.NoError(t, err)
		assert.Equal(t, "a1", handle.ID)
		output := buf.String()
		assert.Contains(t, output, "store asset")
		assert.Contains(t, output, "filename=a.png")
		assert.Contains(t, output, "bytes=3")
		assert.Contains(t, output, "id=a1")
		assert.Contains(t, output, "path=/media/a.png")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.AssetStore{
			StoreAssetFn: func(context.Context, []byte, string) (*postport.AssetHandle, error) {
				return nil, errors.New("disk full")
			},
		}

		store := ppslog.NewLoggingAssetStore(inner, logger)
		_, err := store.StoreAsset(context.Background(), []byte("png"), "a.png")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"disk full\"")
		assert.NotContains(t, output, "id=")
	})
}

func TestLoggingContentStore_CreateContentRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs assigned id and asset count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentStore{
			CreateContentRecordFn: func(_ context.Context, rec *postport.ContentRecord) error {
				rec.ID = "rec-1"
				return nil
			},
		}

		store := ppslog.NewLoggingContentStore(inner, logger)
		rec := &postport.ContentRecord{
			Title:      "Title",
			SourcePath: "a.html",
			Assets:     []*postport.MediaAsset{{ID: "a1"}, {ID: "a2"}},
		}
		err := store.CreateContentRecord(context.Background(), rec)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create record")
		assert.Contains(t, output, "id=rec-1")
		assert.Contains(t, output, "source=a.html")
		assert.Contains(t, output, "assets=2")
	})
}

func TestLoggingSourceReader_ListSources(t *testing.T) {
	t.Parallel()

	t.Run("logs listing with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SourceReader{
			ListSourcesFn: func(context.Context, string) ([]string, error) {
				return []string{"a.html", "b.html"}, nil
			},
		}

		reader := ppslog.NewLoggingSourceReader(inner, logger)
		paths, err := reader.ListSources(context.Background(), "exports")

		require.NoError(t, err)
		assert.Len(t, paths, 2)
		output := buf.String()
		assert.Contains(t, output, "list sources")
		assert.Contains(t, output, "dir=exports")
		assert.Contains(t, output, "count=2")
	})
}
