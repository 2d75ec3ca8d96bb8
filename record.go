package postport

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultOwnerID is the owning identity applied when none is configured.
const DefaultOwnerID = 1

// ContentRecord is the normalized result of importing one export file.
type ContentRecord struct {
	ID         string    `json:"id"`
	OwnerID    int       `json:"ownerId"`
	SourcePath string    `json:"sourcePath"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Created    time.Time `json:"created"`
	Body       string    `json:"body"`
	BodyHash   string    `json:"bodyHash"`
	ImportedAt time.Time `json:"importedAt"`

	// Assets holds the downloaded images in acquisition order.
	// The first asset is the lead image and is not referenced from Body.
	Assets []*MediaAsset `json:"assets"`
}

// HashBody returns the xxHash of body as 16 hex digits.
func HashBody(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// Validate returns an error if the record contains invalid fields.
func (r *ContentRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.SourcePath == "" {
		return Errorf(EINVALID, "record source path required")
	}
	if r.OwnerID <= 0 {
		return Errorf(EINVALID, "record owner must be positive")
	}
	return nil
}

// Lead returns the lead asset, or nil when the record has no images.
func (r *ContentRecord) Lead() *MediaAsset {
	if len(r.Assets) == 0 {
		return nil
	}
	return r.Assets[0]
}

// ContentStore persists content records.
type ContentStore interface {
	// CreateContentRecord persists rec and assigns its ID.
	CreateContentRecord(ctx context.Context, rec *ContentRecord) error
}

// ContentService represents a service for managing content records.
type ContentService interface {
	// CreateContentRecord creates a new record and links its assets.
	CreateContentRecord(ctx context.Context, rec *ContentRecord) error

	// FindContentRecordByID retrieves a record and its assets by ID.
	// Returns ENOTFOUND if record does not exist.
	FindContentRecordByID(ctx context.Context, id string) (*ContentRecord, error)

	// FindContentRecords retrieves records matching the filter.
	// Assets are not loaded.
	FindContentRecords(ctx context.Context, filter ContentFilter) ([]*ContentRecord, error)
}

// ContentFilter represents a filter for FindContentRecords.
type ContentFilter struct {
	ID         *string `json:"id"`
	OwnerID    *int    `json:"ownerId"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
