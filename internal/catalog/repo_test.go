package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilterQuery(t *testing.T) {
	lo, hi := decimal.RequireFromString("19.99"), decimal.NewFromInt(200)
	stmt := filterQuery(Filter{Category: "Shoes", Brands: []string{"Nike"}, MinPrice: &lo, MaxPrice: &hi}).
		Select("id").
		Build()

	assert.Equal(t,
		"SELECT id FROM products WHERE category = $1 AND brand = ANY($2) AND discounted_price >= $3::text::numeric AND discounted_price <= $4::text::numeric",
		stmt.SQL)
	assert.Equal(t, []any{"Shoes", []string{"Nike"}, "19.99", "200"}, stmt.Args)
}

func TestFilterQuery_OnlyCategory(t *testing.T) {
	stmt := filterQuery(Filter{Category: "Shoes"}).Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = $1", stmt.SQL)
}

func TestCategoryCount(t *testing.T) {
	stmt := categoryCount("Shoes").Build()
	assert.Equal(t, "SELECT COUNT(*) FROM categories WHERE name = $1", stmt.SQL)
	assert.Equal(t, []any{"Shoes"}, stmt.Args)
}

func TestOrderFor(t *testing.T) {
	tests := []struct {
		opt  SortOption
		want string
	}{
		{SortName, ` ORDER BY name_key COLLATE "C" ASC, title COLLATE "C" ASC, id COLLATE "C" ASC`},
		{SortHighestPrice, ` ORDER BY discounted_price DESC, id COLLATE "C" ASC`},
		{SortLowestPrice, ` ORDER BY discounted_price ASC, id COLLATE "C" ASC`},
		{SortRating, ` ORDER BY ratings DESC, id COLLATE "C" ASC`},
	}
	for _, tt := range tests {
		stmt := orderFor(filterQuery(Filter{Category: "Shoes"}).Select("id"), tt.opt).Build()
		assert.Equal(t, "SELECT id FROM products WHERE category = $1"+tt.want, stmt.SQL, string(tt.opt))
	}
}

func TestPGRepo_SeedNeedsPool(t *testing.T) {
	r := &PGRepo{}
	assert.ErrorIs(t, r.Seed(context.Background(), Fixture{}), errNoPool)
}
