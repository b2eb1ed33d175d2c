package service

import (
	"context"

	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/domain/repository"
	"github.com/octosolido/sales-api/pkg/apperror"
)

// StoreService exposes the store catalog the intake form starts from.
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// ListStores returns all retail locations.
func (s *StoreService) ListStores(ctx context.Context) ([]entity.Store, error) {
	return s.storeRepo.List(ctx)
}

// GetStore retrieves a store by ID.
func (s *StoreService) GetStore(ctx context.Context, id string) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}
