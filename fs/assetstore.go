package fs

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/postport"
	"github.com/google/uuid"
)

// Ensure AssetStore implements postport.AssetStore at compile time.
var _ postport.AssetStore = (*AssetStore)(nil)

// AssetStore writes asset bytes into a single media directory.
type AssetStore struct {
	dir string
}

// NewAssetStore creates an AssetStore rooted at dir. The directory is
// created on first write.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{dir: dir}
}

// Dir returns the media directory.
func (s *AssetStore) Dir() string {
	return s.dir
}

// StoreAsset saves data under a sanitized form of filename. An existing file
// is never overwritten; the new file gets a "_N" suffix instead.
func (s *AssetStore) StoreAsset(ctx context.Context, data []byte, filename string) (*postport.AssetHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, postport.Errorf(postport.EINVALID, "asset %q is empty", filename)
	}

	name := postport.SanitizeFilename(filename)
	if name == "" || name == "." || name == ".." {
		name = "image"
	}

	path, err := writeUnique(s.dir, name, data)
	if err != nil {
		return nil, err
	}

	return &postport.AssetHandle{
		ID:   uuid.New().String(),
		Name: filepath.Base(path),
		Path: path,
	}, nil
}
