package entity

import "github.com/octosolido/sales-api/internal/domain/enum"

// Store is a retail location an order can be placed from. A store with a
// single allowed sales type lets the UI skip the sale-type step entirely.
type Store struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	SalesTypes  []enum.SalesType `json:"sales_types"`
}

// AllowsSalesType reports whether the store accepts the given sales type.
func (s Store) AllowsSalesType(t enum.SalesType) bool {
	for _, st := range s.SalesTypes {
		if st == t {
			return true
		}
	}
	return false
}
