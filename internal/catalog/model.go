package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a storefront product as stored in the catalog.
type Product struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	ShortDescription string              `json:"shortDescription"`
	DiscountedPrice  decimal.Decimal     `json:"discountedPrice"`
	OriginalPrice    decimal.Decimal     `json:"originalPrice"`
	Colors           []string            `json:"colors"`
	Category         string              `json:"category"`
	Brand            string              `json:"brand"`
	DisplayImage     string              `json:"displayImage"`
	Ratings          decimal.Decimal     `json:"ratings"`
	Reviews          []string            `json:"reviews"`
	LongDescription  string              `json:"longDescription"`
	Overview         []string            `json:"overview"`
	KeyFeatures      []map[string]string `json:"keyFeatures"`
	IsBestseller     bool                `json:"isBestseller"`
	AdditionalImages []string            `json:"additionalImages"`
	DescriptionImage string              `json:"descriptionImage"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// SortOption values are the literal strings the storefront sends.
type SortOption string

const (
	SortName         SortOption = "Name"
	SortHighestPrice SortOption = "Highest Price"
	SortLowestPrice  SortOption = "Lowest Price"
	SortRating       SortOption = "Rating"
)

var sortOptions = []SortOption{SortName, SortHighestPrice, SortLowestPrice, SortRating}

func ParseSortOption(s string) (SortOption, bool) {
	for _, o := range sortOptions {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// Filter is the facet selection a store query is bounded by.
// Empty Brands means every brand; nil prices mean no bound on that side.
type Filter struct {
	Category string
	Brands   []string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// WithoutPrice returns the same selection with the price facet cleared.
func (f Filter) WithoutPrice() Filter {
	f.MinPrice, f.MaxPrice = nil, nil
	return f
}

func (f Filter) HasPrice() bool { return f.MinPrice != nil || f.MaxPrice != nil }

// Matches reports whether p falls inside the selection.
func (f Filter) Matches(p Product) bool {
	if p.Category != f.Category {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}
	if f.MinPrice != nil && p.DiscountedPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.DiscountedPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// FilterCriteria is a fully validated listing request.
type FilterCriteria struct {
	Filter
	Page     int
	PageSize int
	Sort     SortOption
}

func (c FilterCriteria) Offset() int { return (c.Page - 1) * c.PageSize }

// Aggregate is what the store reports for a selection without paging.
// MinPrice/MaxPrice are nil when Count is zero.
type Aggregate struct {
	Count    int
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// PageRequest bounds a product fetch. Sort is an ordering hint the store
// uses so consecutive pages do not overlap.
type PageRequest struct {
	Offset int
	Limit  int
	Sort   SortOption
}

// PriceBounds are the floor/ceil discounted-price extremes of a selection
// with the price facet not applied. Empty is set when nothing matched, in
// which case Min and Max are zero.
type PriceBounds struct {
	Min   int64 `json:"minPriceLimit"`
	Max   int64 `json:"maxPriceLimit"`
	Empty bool  `json:"priceLimitsEmpty,omitempty"`
}

// PriceRange is the price filter the client selected, echoed back.
type PriceRange struct {
	Min decimal.Decimal `json:"minPrice"`
	Max decimal.Decimal `json:"maxPrice"`
}

// BrandAvailability maps every brand sold in a category to whether it is selected.
type BrandAvailability map[string]bool

func NewBrandAvailability(available, selected []string) BrandAvailability {
	out := make(BrandAvailability, len(available))
	for _, b := range available {
		out[b] = containsString(selected, b)
	}
	return out
}

// Metadata is the aggregate side of a listing.
type Metadata struct {
	TotalItems int
	TotalPages int
	Bounds     *PriceBounds
}

// Listing is the base record every listing response carries.
type Listing struct {
	PageNumber       int               `json:"pageNumber"`
	PageSize         int               `json:"pageSize"`
	TotalPages       int               `json:"totalPages"`
	TotalItems       int               `json:"totalItems"`
	SelectedCategory string            `json:"selectedCategory"`
	SortOption       SortOption        `json:"sortOption"`
	SelectedBrands   BrandAvailability `json:"selectedBrands"`
	Products         []Product         `json:"products"`
}

type BrandList struct {
	AvailableBrands []string `json:"availableBrands"`
}

type CategoryOverview struct {
	CategoryList          []Category     `json:"categoryList"`
	ItemsCountPerCategory map[string]int `json:"itemsCountPerCategory"`
	BestsellerProducts    []Product      `json:"bestsellerProducts"`
}

// ListingResponse is a Listing with the fragments an operation attaches.
// Nil fragments are left out of the JSON body.
type ListingResponse struct {
	Listing
	*PriceBounds
	*PriceRange
	*BrandList
	*CategoryOverview
}

type Suggestions struct {
	SuggestedProducts []Product `json:"suggestedProducts"`
}

type ProductDetails struct {
	Product Product `json:"product"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: category not found
	Error string `json:"error"`
	// example: CategoryNotFound
	Code string `json:"code,omitempty"`
	// example: category
	Dimension string `json:"dimension,omitempty"`
	// availability of every brand of the category, on brand errors
	SelectedBrands BrandAvailability `json:"selectedBrands,omitempty"`
}

// SplitBrands turns the comma-joined wire form into a sorted set.
func SplitBrands(raw ...string) []string {
	var out []string
	for _, r := range raw {
		for _, b := range strings.Split(r, ",") {
			if b = strings.TrimSpace(b); b != "" {
				out = append(out, b)
			}
		}
	}
	return normalizeSet(out)
}

func normalizeSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := append([]string(nil), in...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i == 0 || s != out[n-1] {
			out[n] = s
			n++
		}
	}
	return out[:n]
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
