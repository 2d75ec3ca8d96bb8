package mock

import (
	"context"

	"github.com/fwojciec/postport"
)

var _ postport.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of postport.SourceReader.
type SourceReader struct {
	ListSourcesFn func(ctx context.Context, dir string) ([]string, error)
	ReadSourceFn  func(ctx context.Context, path string) (*postport.SourceFile, error)
}

func (r *SourceReader) ListSources(ctx context.Context, dir string) ([]string, error) {
	return r.ListSourcesFn(ctx, dir)
}

func (r *SourceReader) ReadSource(ctx context.Context, path string) (*postport.SourceFile, error) {
	return r.ReadSourceFn(ctx, path)
}
