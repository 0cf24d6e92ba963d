package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawParams are listing parameters as the HTTP layer received them.
// Brands is already split into individual names.
type RawParams struct {
	Category   string
	Brands     []string
	PageSize   string
	MinPrice   string
	MaxPrice   string
	PageNumber string
	Sort       string
}

// RequirePriceRange fails unless both price bounds were supplied.
func (p RawParams) RequirePriceRange() error {
	if err := required(p.MinPrice, DimPrice, "minPrice"); err != nil {
		return err
	}
	return required(p.MaxPrice, DimPrice, "maxPrice")
}

type validator struct {
	st          Store
	maxPageSize int
}

func required(value string, dim Dimension, name string) error {
	if strings.TrimSpace(value) == "" {
		return newError(KindInvalidArgument, dim, ErrMissingParameter, "query parameter %s is required", name)
	}
	return nil
}

func (v validator) category(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return newError(KindNotFound, DimCategory, ErrCategoryNotFound, "category is required")
	}
	ok, err := v.st.CategoryExists(ctx, name)
	if err != nil {
		return unavailable("check category", err)
	}
	if !ok {
		return newError(KindNotFound, DimCategory, ErrCategoryNotFound, "category %q does not exist", name)
	}
	return nil
}

// brands checks selected against the category's brand set. The returned
// availability map is filled on success and on UnknownBrand failures.
func (v validator) brands(ctx context.Context, category string, selected []string) ([]string, BrandAvailability, error) {
	available, err := v.st.BrandsOf(ctx, category)
	if err != nil {
		return nil, nil, unavailable("list brands", err)
	}
	availability := NewBrandAvailability(available, selected)
	var unknown []string
	for _, b := range selected {
		if !containsString(available, b) {
			unknown = append(unknown, b)
		}
	}
	if len(unknown) > 0 {
		e := newError(KindOutOfRange, DimBrand, ErrUnknownBrand,
			"brands %s are not sold in category %q", strings.Join(unknown, ", "), category)
		e.Brands = availability
		return available, availability, e
	}
	return available, availability, nil
}

func (v validator) pageSize(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, newError(KindInvalidArgument, DimPageSize, ErrInvalidPageSize,
			"page size must be a number greater than 0, got %q", raw)
	}
	if v.maxPageSize > 0 && n > v.maxPageSize {
		return 0, newError(KindInvalidArgument, DimPageSize, ErrInvalidPageSize,
			"page size must not exceed %d", v.maxPageSize)
	}
	return n, nil
}

func (v validator) pageNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, newError(KindInvalidArgument, DimPage, ErrInvalidPageNumber,
			"page number must be a number greater than 0, got %q", raw)
	}
	return n, nil
}

func parsePrice(raw, name string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, newError(KindInvalidArgument, DimPrice, ErrInvalidPriceRange, "%s must be a number, got %q", name, raw)
	}
	if d.IsNegative() {
		return nil, newError(KindInvalidArgument, DimPrice, ErrInvalidPriceRange, "%s must not be negative", name)
	}
	return &d, nil
}

// priceRange parses the optional bounds and checks min <= max.
func (v validator) priceRange(minRaw, maxRaw string) (*decimal.Decimal, *decimal.Decimal, error) {
	lo, err := parsePrice(minRaw, "minPrice")
	if err != nil {
		return nil, nil, err
	}
	hi, err := parsePrice(maxRaw, "maxPrice")
	if err != nil {
		return nil, nil, err
	}
	if lo != nil && hi != nil && hi.LessThan(*lo) {
		return nil, nil, newError(KindInvalidArgument, DimPrice, ErrInvalidPriceRange,
			"the maximum price must be greater than or equal to the minimum price")
	}
	return lo, hi, nil
}

func (v validator) sortOption(raw string) (SortOption, error) {
	opt, ok := ParseSortOption(raw)
	if !ok {
		return "", newError(KindInvalidArgument, DimSort, ErrInvalidSortOption,
			"sort option must be one of Name, Highest Price, Lowest Price, Rating; got %q", raw)
	}
	return opt, nil
}

// withinBounds checks a selected price range against the global bounds of
// the category and brand selection.
func withinBounds(b PriceBounds, lo, hi *decimal.Decimal) error {
	if lo == nil && hi == nil {
		return nil
	}
	if b.Empty {
		return newError(KindOutOfRange, DimPrice, ErrPriceOutOfRange, "no products to filter by price")
	}
	if lo != nil && lo.LessThan(decimal.NewFromInt(b.Min)) {
		return newError(KindOutOfRange, DimPrice, ErrPriceOutOfRange,
			"the minimum price %s is less than the actual minimum price %d", lo, b.Min)
	}
	if hi != nil && hi.GreaterThan(decimal.NewFromInt(b.Max)) {
		return newError(KindOutOfRange, DimPrice, ErrPriceOutOfRange,
			"the maximum price %s exceeds the actual maximum price %d", hi, b.Max)
	}
	// one-sided ranges are echoed with the missing end taken from b
	if lo != nil && lo.GreaterThan(decimal.NewFromInt(b.Max)) {
		return newError(KindOutOfRange, DimPrice, ErrPriceOutOfRange,
			"the minimum price %s exceeds the actual maximum price %d", lo, b.Max)
	}
	if hi != nil && hi.LessThan(decimal.NewFromInt(b.Min)) {
		return newError(KindOutOfRange, DimPrice, ErrPriceOutOfRange,
			"the maximum price %s is less than the actual minimum price %d", hi, b.Min)
	}
	return nil
}

func withinPages(page, totalPages int) error {
	if page > totalPages {
		return newError(KindOutOfRange, DimPage, ErrPageOutOfRange,
			"page %d requested but there are only %d pages", page, totalPages)
	}
	return nil
}
