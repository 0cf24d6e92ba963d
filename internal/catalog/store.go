package catalog

import "context"

// Store is the read side of the catalog the listing engine depends on.
type Store interface {
	// ListCategories returns categories in store order (by name).
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
	// BrandsOf returns the brands sold in a category, sorted by name.
	BrandsOf(ctx context.Context, category string) ([]string, error)
	FindProducts(ctx context.Context, f Filter, page PageRequest) ([]Product, error)
	CountAndBounds(ctx context.Context, f Filter) (Aggregate, error)
	CategoryProductCounts(ctx context.Context) (map[string]int, error)
	Bestsellers(ctx context.Context, limit int) ([]Product, error)
	// GetProduct returns ErrProductNotFound for unknown ids.
	GetProduct(ctx context.Context, id string) (*Product, error)
	Suggested(ctx context.Context, category, excludeID string, limit int) ([]Product, error)
}

// Snapshotter is implemented by stores that can serve a sequence of reads
// from one consistent snapshot. fn must only use the Store it is given.
type Snapshotter interface {
	ReadSnapshot(ctx context.Context, fn func(Store) error) error
}

// Fixture is a complete catalog used to seed a store.
type Fixture struct {
	Categories []Category
	// Brands maps a category name to the brands sold in it.
	Brands   map[string][]string
	Products []Product
}
