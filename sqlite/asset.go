package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/postport"
)

// Compile-time interface verification.
var _ postport.AssetService = (*AssetService)(nil)

// AssetService implements postport.AssetService using SQLite.
type AssetService struct {
	db *DB
}

// NewAssetService creates a new AssetService.
func NewAssetService(db *DB) *AssetService {
	return &AssetService{db: db}
}

const assetColumns = "id, record_id, owner_id, filename, path, alt, source_url, size, position, created_at"

// CreateAsset registers an asset under the ID assigned by the asset store.
// Returns ECONFLICT if the ID is already registered.
func (s *AssetService) CreateAsset(ctx context.Context, asset *postport.MediaAsset) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM media_assets WHERE id = ?", asset.ID).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return postport.Errorf(postport.ECONFLICT, "asset %q already registered", asset.ID)
	}

	asset.CreatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO media_assets (id, record_id, owner_id, filename, path, alt, source_url, size, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, asset.ID, nullString(asset.RecordID), asset.OwnerID, asset.Filename, asset.Path, asset.Alt,
		asset.SourceURL, asset.Size, asset.Position, asset.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindAssetByID retrieves an asset by ID.
func (s *AssetService) FindAssetByID(ctx context.Context, id string) (*postport.MediaAsset, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+assetColumns+" FROM media_assets WHERE id = ?", id)

	asset, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, postport.Errorf(postport.ENOTFOUND, "asset not found")
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// FindAssets retrieves assets matching the filter ordered by position.
func (s *AssetService) FindAssets(ctx context.Context, filter postport.AssetFilter) ([]*postport.MediaAsset, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + assetColumns + " FROM media_assets WHERE 1=1")

	if filter.RecordID != nil {
		query.WriteString(" AND record_id = ?")
		args = append(args, *filter.RecordID)
	}
	if filter.OwnerID != nil {
		query.WriteString(" AND owner_id = ?")
		args = append(args, *filter.OwnerID)
	}

	query.WriteString(" ORDER BY position ASC, created_at ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	return queryAssets(ctx, s.db, query.String(), args...)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryAssets(ctx context.Context, q querier, query string, args ...any) ([]*postport.MediaAsset, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*postport.MediaAsset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (*postport.MediaAsset, error) {
	var asset postport.MediaAsset
	var recordID sql.NullString
	var createdAt string

	if err := row.Scan(&asset.ID, &recordID, &asset.OwnerID, &asset.Filename, &asset.Path, &asset.Alt,
		&asset.SourceURL, &asset.Size, &asset.Position, &createdAt); err != nil {
		return nil, err
	}
	asset.RecordID = recordID.String

	var err error
	asset.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
