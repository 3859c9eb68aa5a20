// Package domain defines core business types and interfaces.
package domain

import "context"

// Product is a catalog entry. The catalog holds the canonical record;
// every other component works on snapshots, never live references.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ProductPatch carries a partial update. Nil fields keep their current
// value. A non-nil ID rekeys the product in the same operation.
type ProductPatch struct {
	ID       *string
	Name     *string
	Quantity *int
	Price    *float64
}

// ListFilter allows filtering and sorting results from List. Filtering
// is a read-side concern: the catalog itself never re-sorts its state.
type ListFilter struct {
	Search   string // case-insensitive substring over id and name
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	SortBy   string // "name", "price", "quantity"
	Order    string // "asc" or "desc"
}

// ValidateProduct checks the field invariants for a catalog product.
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewInvalidProductError("id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError("name", "cannot be empty", p.Name)
	}
	if p.Price <= 0 {
		return NewInvalidProductError("price", "must be positive", p.Price)
	}
	if p.Quantity < 0 {
		return NewInvalidProductError("quantity", "must be non-negative", p.Quantity)
	}
	return nil
}

// Catalog defines the storage contract for the product catalog.
type Catalog interface {
	Create(ctx context.Context, product Product) error
	Get(ctx context.Context, id string) (Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	BulkImport(ctx context.Context, products []Product) error
	IsIDUnique(id, excludeID string) bool
	SetSearchTerm(term string)
	SearchTerm() string
	LowStockThreshold() int
}
