package postport

import "context"

// SourceFile is an export file loaded from disk.
type SourceFile struct {
	Path    string
	Content []byte
}

// SourceReader discovers and loads export files.
type SourceReader interface {
	// ListSources returns the paths of all .html files directly inside dir,
	// in lexical order. Returns ENOTFOUND if dir does not exist.
	ListSources(ctx context.Context, dir string) ([]string, error)

	// ReadSource loads a single export file.
	ReadSource(ctx context.Context, path string) (*SourceFile, error)
}
