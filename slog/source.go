package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postport"
)

// Ensure LoggingSourceReader implements postport.SourceReader.
var _ postport.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader with debug logging.
type LoggingSourceReader struct {
	next   postport.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next postport.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ListSources delegates to the wrapped reader and logs the operation.
func (s *LoggingSourceReader) ListSources(ctx context.Context, dir string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list sources",
			"dir", dir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListSources(ctx, dir)
}

// ReadSource delegates to the wrapped reader.
func (s *LoggingSourceReader) ReadSource(ctx context.Context, path string) (*postport.SourceFile, error) {
	return s.next.ReadSource(ctx, path)
}
