package postport

import (
	"context"
	"time"
)

// MediaAsset represents a locally stored image that was downloaded
// from an export file.
type MediaAsset struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"recordId"`
	OwnerID   int       `json:"ownerId"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Alt       string    `json:"alt"`
	SourceURL string    `json:"sourceUrl"`
	Size      int       `json:"size"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the asset contains invalid fields.
func (a *MediaAsset) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "asset ID required")
	}
	if a.Filename == "" {
		return Errorf(EINVALID, "asset filename required")
	}
	if a.OwnerID <= 0 {
		return Errorf(EINVALID, "asset owner must be positive")
	}
	return nil
}

// AssetHandle identifies bytes persisted by an AssetStore.
type AssetHandle struct {
	ID   string
	Name string
	Path string
}

// AssetStore persists downloaded image bytes.
type AssetStore interface {
	// StoreAsset writes data under a name derived from filename and returns
	// a handle with a stable identifier and the final stored name.
	// Implementations create the target location if needed.
	StoreAsset(ctx context.Context, data []byte, filename string) (*AssetHandle, error)
}

// AssetService represents a service for registering media assets.
type AssetService interface {
	// CreateAsset registers a stored asset.
	CreateAsset(ctx context.Context, asset *MediaAsset) error

	// FindAssetByID retrieves an asset by ID.
	// Returns ENOTFOUND if asset does not exist.
	FindAssetByID(ctx context.Context, id string) (*MediaAsset, error)

	// FindAssets retrieves assets matching the filter, ordered by position.
	FindAssets(ctx context.Context, filter AssetFilter) ([]*MediaAsset, error)
}

// AssetFilter represents a filter for FindAssets.
type AssetFilter struct {
	RecordID *string `json:"recordId"`
	OwnerID  *int    `json:"ownerId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
