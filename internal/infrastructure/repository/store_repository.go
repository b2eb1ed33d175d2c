package repository

import (
	"context"

	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/domain/enum"
)

// MemoryStoreRepository serves the store catalog from memory. The catalog is
// a handful of fixed locations; there is no persisted state in this service.
type MemoryStoreRepository struct {
	stores []entity.Store
}

// NewMemoryStoreRepository creates a store repository seeded with the
// business's retail locations.
func NewMemoryStoreRepository() *MemoryStoreRepository {
	return &MemoryStoreRepository{
		stores: []entity.Store{
			{
				ID:          "1",
				Name:        "Clássica",
				Description: "A loja original com produtos tradicionais.",
				SalesTypes:  []enum.SalesType{enum.SalesTypeDelivery},
			},
			{
				ID:          "3",
				Name:        "Moderna",
				Description: "Uma loja com designs contemporâneos.",
				SalesTypes:  []enum.SalesType{enum.SalesTypeDelivery},
			},
			{
				ID:          "6",
				Name:        "Iluminação",
				Description: "Especializada em iluminação de qualidade.",
				SalesTypes:  []enum.SalesType{enum.SalesTypeDelivery, enum.SalesTypeDirect},
			},
		},
	}
}

// List returns all stores.
func (r *MemoryStoreRepository) List(ctx context.Context) ([]entity.Store, error) {
	out := make([]entity.Store, len(r.stores))
	copy(out, r.stores)
	return out, nil
}

// GetByID returns the store with the given ID, or nil when unknown.
func (r *MemoryStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			store := s
			return &store, nil
		}
	}
	return nil, nil
}
