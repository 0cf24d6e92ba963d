package catalog

import "github.com/shopspring/decimal"

// Each listing operation attaches its own fragments to the base Listing.

func composeInitial(l Listing, bounds PriceBounds, available []string, overview CategoryOverview) *ListingResponse {
	return &ListingResponse{
		Listing:          l,
		PriceBounds:      &bounds,
		BrandList:        &BrandList{AvailableBrands: nonNilStrings(available)},
		CategoryOverview: &overview,
	}
}

func composeByCategory(l Listing, bounds PriceBounds, available []string) *ListingResponse {
	return &ListingResponse{
		Listing:     l,
		PriceBounds: &bounds,
		BrandList:   &BrandList{AvailableBrands: nonNilStrings(available)},
	}
}

// composeFiltered serves the brand, price and page-change operations. The
// selected price range is echoed with both ends resolved against the bounds.
func composeFiltered(l Listing, bounds PriceBounds, f Filter) *ListingResponse {
	out := &ListingResponse{Listing: l, PriceBounds: &bounds}
	if f.HasPrice() {
		r := PriceRange{}
		if f.MinPrice != nil {
			r.Min = *f.MinPrice
		} else {
			r.Min = decimal.NewFromInt(bounds.Min)
		}
		if f.MaxPrice != nil {
			r.Max = *f.MaxPrice
		} else {
			r.Max = decimal.NewFromInt(bounds.Max)
		}
		out.PriceRange = &r
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
