package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postport"
)

// Ensure LoggingAssetStore implements postport.AssetStore.
var _ postport.AssetStore = (*LoggingAssetStore)(nil)

// LoggingAssetStore wraps an AssetStore with debug logging.
type LoggingAssetStore struct {
	next   postport.AssetStore
	logger *slog.Logger
}

// NewLoggingAssetStore creates a new LoggingAssetStore.
func NewLoggingAssetStore(next postport.AssetStore, logger *slog.Logger) *LoggingAssetStore {
	return &LoggingAssetStore{next: next, logger: logger}
}

// StoreAsset delegates to the wrapped store and logs the operation.
func (s *LoggingAssetStore) StoreAsset(ctx context.Context, data []byte, filename string) (handle *postport.AssetHandle, err error) {
	defer func(begin time.Time) {
		attrs := []any{"filename", filename, "bytes", len(data)}
		if handle != nil {
			attrs = append(attrs, "id", handle.ID, "path", handle.Path)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("store asset", attrs...)
	}(time.Now())
	return s.next.StoreAsset(ctx, data, filename)
}
