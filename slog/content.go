package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postport"
)

// Ensure LoggingContentStore implements postport.ContentStore.
var _ postport.ContentStore = (*LoggingContentStore)(nil)

// LoggingContentStore wraps a ContentStore with debug logging.
type LoggingContentStore struct {
	next   postport.ContentStore
	logger *slog.Logger
}

// NewLoggingContentStore creates a new LoggingContentStore.
func NewLoggingContentStore(next postport.ContentStore, logger *slog.Logger) *LoggingContentStore {
	return &LoggingContentStore{next: next, logger: logger}
}

// CreateContentRecord delegates to the wrapped store and logs the operation.
func (s *LoggingContentStore) CreateContentRecord(ctx context.Context, rec *postport.ContentRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", rec.ID,
			"source", rec.SourcePath,
			"title", rec.Title,
			"assets", len(rec.Assets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateContentRecord(ctx, rec)
}
