package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_Categories(t *testing.T) {
	st := shoeStore(t)
	ctx := context.Background()

	st.PutCategory(Category{Name: "Bags"}, "Zara", "Gucci", "Zara")
	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Bags", cats[0].Name, "categories are kept in name order")

	brands, err := st.BrandsOf(ctx, "Bags")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gucci", "Zara"}, brands)

	st.PutCategory(Category{Name: "Bags", Img: "bags.png"})
	cats, _ = st.ListCategories(ctx)
	assert.Len(t, cats, 3)
	assert.Equal(t, "bags.png", cats[0].Img)

	ok, err := st.CategoryExists(ctx, "Bags")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemStore_FindProductsPagesInSortOrder(t *testing.T) {
	st := shoeStore(t)
	f := Filter{Category: "Shoes"}

	first, err := st.FindProducts(context.Background(), f, PageRequest{Offset: 0, Limit: 3, Sort: SortHighestPrice})
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-25", "shoe-24", "shoe-23"}, ids(first))

	past, err := st.FindProducts(context.Background(), f, PageRequest{Offset: 100, Limit: 3, Sort: SortName})
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

func TestMemStore_CountAndBounds(t *testing.T) {
	st := shoeStore(t)
	lo := decimal.NewFromInt(50)

	agg, err := st.CountAndBounds(context.Background(), Filter{Category: "Shoes", Brands: []string{"Nike"}, MinPrice: &lo})
	require.NoError(t, err)
	assert.Equal(t, 7, agg.Count)
	assert.True(t, agg.MinPrice.Equal(decimal.NewFromInt(50)))
	assert.True(t, agg.MaxPrice.Equal(decimal.NewFromInt(185)))

	agg, err = st.CountAndBounds(context.Background(), Filter{Category: "Watches"})
	require.NoError(t, err)
	assert.Zero(t, agg.Count)
	assert.Nil(t, agg.MinPrice)
}

func TestMemStore_SnapshotIsIsolated(t *testing.T) {
	st := shoeStore(t)
	ctx := context.Background()

	err := st.ReadSnapshot(ctx, func(snap Store) error {
		require.True(t, st.DeleteProduct("shoe-01"))
		_, err := snap.GetProduct(ctx, "shoe-01")
		assert.NoError(t, err, "the snapshot still sees the deleted product")
		return nil
	})
	require.NoError(t, err)

	_, err = st.GetProduct(ctx, "shoe-01")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.False(t, st.DeleteProduct("shoe-01"))
}

func TestMemStore_BestsellersAndSuggested(t *testing.T) {
	st := shoeStore(t)
	ctx := context.Background()

	best, err := st.Bestsellers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-01", "shoe-11"}, ids(best))

	sug, err := st.Suggested(ctx, "Shoes", "shoe-02", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoe-01", "shoe-03", "shoe-04"}, ids(sug))
}

func TestMemStore_CanceledContext(t *testing.T) {
	st := shoeStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.FindProducts(ctx, Filter{Category: "Shoes"}, PageRequest{Limit: 1})
	assert.ErrorIs(t, err, context.Canceled)

	svc := NewService(st, DefaultOptions())
	_, err = svc.ListByCategory(ctx, params(nil))
	assert.Equal(t, KindUnavailable, KindOf(err))
}
