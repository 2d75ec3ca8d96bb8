package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/postport"
)

// SourceExt is the extension of export files.
const SourceExt = ".html"

// Ensure SourceDir implements postport.SourceReader at compile time.
var _ postport.SourceReader = (*SourceDir)(nil)

// SourceDir reads export files from the local filesystem.
type SourceDir struct{}

// NewSourceDir creates a new SourceDir.
func NewSourceDir() *SourceDir {
	return &SourceDir{}
}

// ListSources returns the sorted paths of regular .html files directly in dir.
// Subdirectories are not descended into.
func (s *SourceDir) ListSources(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, postport.Errorf(postport.ENOTFOUND, "directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, postport.Errorf(postport.EINVALID, "%q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	for _, e := range entries {
		if e.IsDir() || !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), SourceExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

// ReadSource reads the file at path.
func (s *SourceDir) ReadSource(ctx context.Context, path string) (*postport.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, postport.Errorf(postport.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	return &postport.SourceFile{Path: path, Content: content}, nil
}
