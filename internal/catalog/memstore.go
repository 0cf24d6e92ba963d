package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store. It backs the demo mode of the service
// and the tests.
type MemStore struct {
	mu         sync.RWMutex
	categories []Category
	brands     map[string][]string
	products   map[string]Product
}

func NewMemStore(f Fixture) *MemStore {
	s := &MemStore{
		brands:   make(map[string][]string),
		products: make(map[string]Product),
	}
	for _, c := range f.Categories {
		s.PutCategory(c, f.Brands[c.Name]...)
	}
	for _, p := range f.Products {
		s.PutProduct(p)
	}
	return s
}

// PutCategory adds or replaces a category and its brands.
func (s *MemStore) PutCategory(c Category, brands ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i := range s.categories {
		if s.categories[i].Name == c.Name {
			s.categories[i] = c
			replaced = true
		}
	}
	if !replaced {
		s.categories = append(s.categories, c)
		sort.Slice(s.categories, func(i, j int) bool { return s.categories[i].Name < s.categories[j].Name })
	}
	s.brands[c.Name] = normalizeSet(brands)
}

func (s *MemStore) PutProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *MemStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

// ReadSnapshot hands fn a frozen copy of the store.
func (s *MemStore) ReadSnapshot(ctx context.Context, fn func(Store) error) error {
	s.mu.RLock()
	snap := &MemStore{
		categories: append([]Category(nil), s.categories...),
		brands:     make(map[string][]string, len(s.brands)),
		products:   make(map[string]Product, len(s.products)),
	}
	for k, v := range s.brands {
		snap.brands[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	s.mu.RUnlock()
	return fn(snap)
}

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...), nil
}

func (s *MemStore) CategoryExists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemStore) BrandsOf(ctx context.Context, category string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.brands[category]...), nil
}

func (s *MemStore) FindProducts(ctx context.Context, f Filter, page PageRequest) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	matched := s.filterLocked(f)
	s.mu.RUnlock()

	if page.Sort != "" {
		ordered, err := SortProducts(matched, page.Sort)
		if err != nil {
			return nil, err
		}
		matched = ordered
	}
	start := page.Offset
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		return []Product{}, nil
	}
	end := len(matched)
	if page.Limit > 0 && start+page.Limit < end {
		end = start + page.Limit
	}
	return matched[start:end], nil
}

func (s *MemStore) CountAndBounds(ctx context.Context, f Filter) (Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return Aggregate{}, err
	}
	s.mu.RLock()
	matched := s.filterLocked(f)
	s.mu.RUnlock()

	agg := Aggregate{Count: len(matched)}
	for i := range matched {
		price := matched[i].DiscountedPrice
		if agg.MinPrice == nil || price.LessThan(*agg.MinPrice) {
			agg.MinPrice = &price
		}
		if agg.MaxPrice == nil || price.GreaterThan(*agg.MaxPrice) {
			agg.MaxPrice = &price
		}
	}
	return agg, nil
}

func (s *MemStore) CategoryProductCounts(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.categories))
	for _, c := range s.categories {
		out[c.Name] = 0
	}
	for _, p := range s.products {
		if _, ok := out[p.Category]; ok {
			out[p.Category]++
		}
	}
	return out, nil
}

func (s *MemStore) Bestsellers(ctx context.Context, limit int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Product{}
	for _, p := range s.sortedLocked() {
		if p.IsBestseller {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id string) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (s *MemStore) Suggested(ctx context.Context, category, excludeID string, limit int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Product{}
	for _, p := range s.sortedLocked() {
		if p.Category == category && p.ID != excludeID {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// sortedLocked returns all products ordered by id.
func (s *MemStore) sortedLocked() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) filterLocked(f Filter) []Product {
	out := []Product{}
	for _, p := range s.sortedLocked() {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
