package repository

import (
	"context"

	"github.com/octosolido/sales-api/internal/domain/entity"
)

// StoreRepository defines the interface for store catalog lookups
type StoreRepository interface {
	List(ctx context.Context) ([]entity.Store, error)
	GetByID(ctx context.Context, id string) (*entity.Store, error)
}
