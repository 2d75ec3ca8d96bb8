package mock

import (
	"context"

	"github.com/fwojciec/postport"
)

// Compile-time interface verification.
var (
	_ postport.ContentStore   = (*ContentStore)(nil)
	_ postport.ContentService = (*ContentService)(nil)
)

// ContentStore is a mock implementation of postport.ContentStore.
type ContentStore struct {
	CreateContentRecordFn func(ctx context.Context, rec *postport.ContentRecord) error
}

func (s *ContentStore) CreateContentRecord(ctx context.Context, rec *postport.ContentRecord) error {
	return s.CreateContentRecordFn(ctx, rec)
}

// ContentService is a mock implementation of postport.ContentService.
type ContentService struct {
	CreateContentRecordFn   func(ctx context.Context, rec *postport.ContentRecord) error
	FindContentRecordByIDFn func(ctx context.Context, id string) (*postport.ContentRecord, error)
	FindContentRecordsFn    func(ctx context.Context, filter postport.ContentFilter) ([]*postport.ContentRecord, error)
}

func (s *ContentService) CreateContentRecord(ctx context.Context, rec *postport.ContentRecord) error {
	return s.CreateContentRecordFn(ctx, rec)
}

func (s *ContentService) FindContentRecordByID(ctx context.Context, id string) (*postport.ContentRecord, error) {
	return s.FindContentRecordByIDFn(ctx, id)
}

func (s *ContentService) FindContentRecords(ctx context.Context, filter postport.ContentFilter) ([]*postport.ContentRecord, error) {
	return s.FindContentRecordsFn(ctx, filter)
}
