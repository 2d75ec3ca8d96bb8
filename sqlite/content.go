package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/postport"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ postport.ContentService = (*ContentService)(nil)

// ContentService implements postport.ContentService using SQLite.
type ContentService struct {
	db *DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *DB) *ContentService {
	return &ContentService{db: db}
}

const recordColumns = "id, owner_id, source_path, title, summary, created, body, body_hash, imported_at"

// CreateContentRecord inserts the record and links its assets, which must
// already be registered, in one transaction.
func (s *ContentService) CreateContentRecord(ctx context.Context, rec *postport.ContentRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	id := uuid.New().String()
	importedAt := time.Now().UTC()
	hash := postport.HashBody(rec.Body)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO content_records (id, owner_id, source_path, title, summary, created, body, body_hash, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rec.OwnerID, rec.SourcePath, rec.Title, rec.Summary, rec.Created.UTC().Format(time.RFC3339),
		rec.Body, hash, importedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, asset := range rec.Assets {
		result, err := tx.ExecContext(ctx,
			"UPDATE media_assets SET record_id = ?, position = ? WHERE id = ?", id, i, asset.ID)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return postport.Errorf(postport.ENOTFOUND, "asset %q not registered", asset.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rec.ID = id
	rec.ImportedAt = importedAt
	rec.BodyHash = hash
	for i, asset := range rec.Assets {
		asset.RecordID = id
		asset.Position = i
	}

	return nil
}

// FindContentRecordByID retrieves a record with its assets by ID.
func (s *ContentService) FindContentRecordByID(ctx context.Context, id string) (*postport.ContentRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM content_records WHERE id = ?", id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, postport.Errorf(postport.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	rec.Assets, err = queryAssets(ctx, s.db,
		"SELECT "+assetColumns+" FROM media_assets WHERE record_id = ? ORDER BY position ASC", id)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindContentRecords retrieves records matching the filter, newest first.
func (s *ContentService) FindContentRecords(ctx context.Context, filter postport.ContentFilter) ([]*postport.ContentRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM content_records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.OwnerID != nil {
		query.WriteString(" AND owner_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	query.WriteString(" ORDER BY created DESC, imported_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*postport.ContentRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func scanRecord(row scanner) (*postport.ContentRecord, error) {
	var rec postport.ContentRecord
	var created, importedAt string

	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.SourcePath, &rec.Title, &rec.Summary, &created,
		&rec.Body, &rec.BodyHash, &importedAt); err != nil {
		return nil, err
	}

	var err error
	if rec.Created, err = parseRFC3339(created, "created"); err != nil {
		return nil, err
	}
	if rec.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}
