package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// NameKey is the case-folded title the Name order compares byte-wise.
// PGRepo stores it in products.name_key so SQL paging agrees with SortProducts.
func NameKey(title string) string {
	return cases.Fold().String(title)
}

// SortProducts returns a new slice ordered by opt. The sort is stable, so
// products that compare equal keep their input order.
func SortProducts(products []Product, opt SortOption) ([]Product, error) {
	if _, ok := ParseSortOption(string(opt)); !ok {
		return nil, newError(KindInvalidArgument, DimSort, ErrInvalidSortOption, "unknown sort option %q", opt)
	}

	type keyed struct {
		p   Product
		key string
	}
	items := make([]keyed, len(products))
	for i, p := range products {
		items[i].p = p
		if opt == SortName {
			items[i].key = NameKey(p.Title)
		}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch opt {
		case SortName:
			if c := strings.Compare(a.key, b.key); c != 0 {
				return c
			}
			return strings.Compare(a.p.Title, b.p.Title)
		case SortHighestPrice:
			return b.p.DiscountedPrice.Cmp(a.p.DiscountedPrice)
		case SortLowestPrice:
			return a.p.DiscountedPrice.Cmp(b.p.DiscountedPrice)
		default:
			return b.p.Ratings.Cmp(a.p.Ratings)
		}
	})

	out := make([]Product, 0, len(items))
	for _, it := range items {
		out = append(out, it.p)
	}
	if len(products) > 0 && len(out) == 0 {
		return nil, newError(KindInternal, DimSort, ErrEmptyResultAnomaly,
			"sorting %d products by %q returned nothing", len(products), opt)
	}
	return out, nil
}
