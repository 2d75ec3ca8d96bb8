package mock

import (
	"context"

	"github.com/fwojciec/postport"
)

// Compile-time interface verification.
var (
	_ postport.AssetStore   = (*AssetStore)(nil)
	_ postport.AssetService = (*AssetService)(nil)
)

// AssetStore is a mock implementation of postport.AssetStore.
type AssetStore struct {
	StoreAssetFn func(ctx context.Context, data []byte, filename string) (*postport.AssetHandle, error)
}

func (s *AssetStore) StoreAsset(ctx context.Context, data []byte, filename string) (*postport.AssetHandle, error) {
	return s.StoreAssetFn(ctx, data, filename)
}

// AssetService is a mock implementation of postport.AssetService.
type AssetService struct {
	CreateAssetFn   func(ctx context.Context, asset *postport.MediaAsset) error
	FindAssetByIDFn func(ctx context.Context, id string) (*postport.MediaAsset, error)
	FindAssetsFn    func(ctx context.Context, filter postport.AssetFilter) ([]*postport.MediaAsset, error)
}

func (s *AssetService) CreateAsset(ctx context.Context, asset *postport.MediaAsset) error {
	return s.CreateAssetFn(ctx, asset)
}

func (s *AssetService) FindAssetByID(ctx context.Context, id string) (*postport.MediaAsset, error) {
	return s.FindAssetByIDFn(ctx, id)
}

func (s *AssetService) FindAssets(ctx context.Context, filter postport.AssetFilter) ([]*postport.MediaAsset, error) {
	return s.FindAssetsFn(ctx, filter)
}
