// Package catalog implements the storefront listing engine: facet
// validation, listing metadata, paging, sorting and response composition
// over a read-only catalog Store.
package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

const (
	BestsellerLimit = 8
	SuggestionLimit = 8
)

type Options struct {
	// DefaultPageSize applies to the initial listing when none is given.
	DefaultPageSize int
	// MaxPageSize caps page sizes; zero means no cap.
	MaxPageSize int
	// SnapshotReads runs each request's reads inside one store snapshot
	// when the store supports it.
	SnapshotReads bool
}

func DefaultOptions() Options {
	return Options{DefaultPageSize: 10, MaxPageSize: 100, SnapshotReads: true}
}

// Service answers listing requests. It keeps no state between calls.
type Service struct {
	store Store
	opts  Options
}

func NewService(store Store, opts Options) *Service {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 10
	}
	return &Service{store: store, opts: opts}
}

func (s *Service) read(ctx context.Context, fn func(Store) error) error {
	if snap, ok := s.store.(Snapshotter); ok && s.opts.SnapshotReads {
		if err := snap.ReadSnapshot(ctx, fn); err != nil {
			return unavailable("read snapshot", err)
		}
		return nil
	}
	return fn(s.store)
}

func (s *Service) validator(st Store) validator {
	return validator{st: st, maxPageSize: s.opts.MaxPageSize}
}

// InitialListing returns page 1 of the first category sorted by name,
// together with the category overview used to bootstrap the storefront.
func (s *Service) InitialListing(ctx context.Context, pageSizeRaw string) (*ListingResponse, error) {
	var out *ListingResponse
	err := s.read(ctx, func(st Store) error {
		v := s.validator(st)
		if strings.TrimSpace(pageSizeRaw) == "" {
			pageSizeRaw = strconv.Itoa(s.opts.DefaultPageSize)
		}
		pageSize, err := v.pageSize(pageSizeRaw)
		if err != nil {
			return err
		}

		categories, err := st.ListCategories(ctx)
		if err != nil {
			return unavailable("list categories", err)
		}
		if len(categories) == 0 {
			return newError(KindNotFound, DimCategory, ErrNoCategories, "the catalog has no categories")
		}
		first := categories[0].Name

		available, availability, err := v.brands(ctx, first, nil)
		if err != nil {
			return err
		}
		counts, err := st.CategoryProductCounts(ctx)
		if err != nil {
			return unavailable("count products per category", err)
		}
		bestsellers, err := st.Bestsellers(ctx, BestsellerLimit)
		if err != nil {
			return unavailable("list bestsellers", err)
		}

		c := FilterCriteria{Filter: Filter{Category: first}, Page: 1, PageSize: pageSize, Sort: SortName}
		listing, bounds, err := computeListing(ctx, st, c, availability, false)
		if err != nil {
			return err
		}
		out = composeInitial(listing, bounds, available, CategoryOverview{
			CategoryList:          categories,
			ItemsCountPerCategory: counts,
			BestsellerProducts:    nonNil(bestsellers),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCategory switches to a category: page 1, brand and price filters cleared.
func (s *Service) ListByCategory(ctx context.Context, p RawParams) (*ListingResponse, error) {
	var out *ListingResponse
	err := s.read(ctx, func(st Store) error {
		v := s.validator(st)
		if err := v.category(ctx, p.Category); err != nil {
			return err
		}
		available, availability, err := v.brands(ctx, p.Category, nil)
		if err != nil {
			return err
		}
		pageSize, err := v.pageSize(p.PageSize)
		if err != nil {
			return err
		}
		sortOpt, err := v.sortOption(p.Sort)
		if err != nil {
			return err
		}

		c := FilterCriteria{Filter: Filter{Category: p.Category}, Page: 1, PageSize: pageSize, Sort: sortOpt}
		listing, bounds, err := computeListing(ctx, st, c, availability, false)
		if err != nil {
			return err
		}
		out = composeByCategory(listing, bounds, available)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByBrandsOrPrice returns page 1 under a new brand and/or price selection.
func (s *Service) ListByBrandsOrPrice(ctx context.Context, p RawParams) (*ListingResponse, error) {
	p.PageNumber = "1"
	return s.filtered(ctx, p, false)
}

// ChangePage returns an arbitrary page under a fully specified filter. The
// page must exist under the other active filters.
func (s *Service) ChangePage(ctx context.Context, p RawParams) (*ListingResponse, error) {
	if err := p.RequirePriceRange(); err != nil {
		return nil, err
	}
	if err := required(p.PageNumber, DimPage, "pageNumber"); err != nil {
		return nil, err
	}
	return s.filtered(ctx, p, true)
}

func (s *Service) filtered(ctx context.Context, p RawParams, checkPage bool) (*ListingResponse, error) {
	var out *ListingResponse
	err := s.read(ctx, func(st Store) error {
		v := s.validator(st)
		if err := v.category(ctx, p.Category); err != nil {
			return err
		}
		selected := normalizeSet(p.Brands)
		_, availability, err := v.brands(ctx, p.Category, selected)
		if err != nil {
			return err
		}
		pageSize, err := v.pageSize(p.PageSize)
		if err != nil {
			return err
		}
		lo, hi, err := v.priceRange(p.MinPrice, p.MaxPrice)
		if err != nil {
			return err
		}
		page, err := v.pageNumber(p.PageNumber)
		if err != nil {
			return err
		}
		sortOpt, err := v.sortOption(p.Sort)
		if err != nil {
			return err
		}

		c := FilterCriteria{
			Filter:   Filter{Category: p.Category, Brands: selected, MinPrice: lo, MaxPrice: hi},
			Page:     page,
			PageSize: pageSize,
			Sort:     sortOpt,
		}
		listing, bounds, err := computeListing(ctx, st, c, availability, checkPage)
		if err != nil {
			return err
		}
		out = composeFiltered(listing, bounds, c.Filter)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// computeListing runs the metadata passes, the page-bounds check, the page
// fetch and the sort for validated criteria.
func computeListing(ctx context.Context, st Store, c FilterCriteria, availability BrandAvailability, checkPage bool) (Listing, PriceBounds, error) {
	global, err := computeMetadata(ctx, st, c.WithoutPrice(), c.PageSize, true)
	if err != nil {
		return Listing{}, PriceBounds{}, err
	}
	bounds := *global.Bounds
	if err := withinBounds(bounds, c.MinPrice, c.MaxPrice); err != nil {
		return Listing{}, PriceBounds{}, err
	}

	md := global
	if c.HasPrice() {
		if md, err = computeMetadata(ctx, st, c.Filter, c.PageSize, false); err != nil {
			return Listing{}, PriceBounds{}, err
		}
	}
	if checkPage {
		if err := withinPages(c.Page, md.TotalPages); err != nil {
			return Listing{}, PriceBounds{}, err
		}
	}

	page, err := fetchPage(ctx, st, c)
	if err != nil {
		return Listing{}, PriceBounds{}, err
	}
	sorted, err := SortProducts(page, c.Sort)
	if err != nil {
		return Listing{}, PriceBounds{}, err
	}

	return Listing{
		PageNumber:       c.Page,
		PageSize:         c.PageSize,
		TotalPages:       md.TotalPages,
		TotalItems:       md.TotalItems,
		SelectedCategory: c.Category,
		SortOption:       c.Sort,
		SelectedBrands:   availability,
		Products:         sorted,
	}, bounds, nil
}

// SuggestedProducts returns up to SuggestionLimit other products of the category.
func (s *Service) SuggestedProducts(ctx context.Context, category, productID string) (*Suggestions, error) {
	if err := required(productID, DimProduct, "productId"); err != nil {
		return nil, err
	}
	var out *Suggestions
	err := s.read(ctx, func(st Store) error {
		if err := s.validator(st).category(ctx, category); err != nil {
			return err
		}
		if _, err := st.GetProduct(ctx, productID); err != nil {
			return productError(productID, err)
		}
		products, err := st.Suggested(ctx, category, productID, SuggestionLimit)
		if err != nil {
			return unavailable("list suggested products", err)
		}
		out = &Suggestions{SuggestedProducts: nonNil(products)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ProductDetails(ctx context.Context, productID string) (*ProductDetails, error) {
	if err := required(productID, DimProduct, "productId"); err != nil {
		return nil, err
	}
	p, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, productError(productID, err)
	}
	return &ProductDetails{Product: *p}, nil
}

func productError(id string, err error) error {
	if errors.Is(err, ErrProductNotFound) {
		return newError(KindNotFound, DimProduct, ErrProductNotFound, "product %q not found", id)
	}
	return unavailable("get product", err)
}

func nonNil(p []Product) []Product {
	if p == nil {
		return []Product{}
	}
	return p
}
