package catalog

import "context"

// TotalPages is ceil(totalItems / pageSize).
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// BoundsOf floors the minimum and ceils the maximum of an aggregate.
func BoundsOf(agg Aggregate) PriceBounds {
	if agg.Count == 0 || agg.MinPrice == nil || agg.MaxPrice == nil {
		return PriceBounds{Empty: true}
	}
	return PriceBounds{
		Min: agg.MinPrice.Floor().IntPart(),
		Max: agg.MaxPrice.Ceil().IntPart(),
	}
}

// computeMetadata counts the products matching f and, when wantBounds is
// set, reduces their discounted prices to PriceBounds. Callers that want
// global bounds pass f.WithoutPrice().
func computeMetadata(ctx context.Context, st Store, f Filter, pageSize int, wantBounds bool) (Metadata, error) {
	agg, err := st.CountAndBounds(ctx, f)
	if err != nil {
		return Metadata{}, unavailable("count products", err)
	}
	md := Metadata{
		TotalItems: agg.Count,
		TotalPages: TotalPages(agg.Count, pageSize),
	}
	if wantBounds {
		b := BoundsOf(agg)
		md.Bounds = &b
	}
	return md, nil
}

// fetchPage loads exactly one page of the selection.
func fetchPage(ctx context.Context, st Store, c FilterCriteria) ([]Product, error) {
	products, err := st.FindProducts(ctx, c.Filter, PageRequest{
		Offset: c.Offset(),
		Limit:  c.PageSize,
		Sort:   c.Sort,
	})
	if err != nil {
		return nil, unavailable("find products", err)
	}
	if len(products) > c.PageSize {
		products = products[:c.PageSize]
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}
