package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("id", "title", "category").
		Build()

	assert.Equal(t, "SELECT id, title, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Args)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Args)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(Eq("category", "Shoes")).
		Where(In("brand", []string{"Nike", "Puma"})).
		Build()

	assert.Equal(t, "SELECT id FROM products WHERE category = $1 AND brand = ANY($2)", stmt.SQL)
	assert.Equal(t, []any{"Shoes", []string{"Nike", "Puma"}}, stmt.Args)
}

func TestBuilder_NumericRange(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(NumericGte("discounted_price", decimal.RequireFromString("20.5"))).
		Where(NumericLte("discounted_price", decimal.NewFromInt(200))).
		Build()

	assert.Equal(t,
		"SELECT id FROM products WHERE discounted_price >= $1::text::numeric AND discounted_price <= $2::text::numeric",
		stmt.SQL)
	assert.Equal(t, []any{"20.5", "200"}, stmt.Args)
}

func TestBuilder_OrderByTerms(t *testing.T) {
	stmt := From("products").
		Select("id").
		OrderBy("discounted_price", Desc).
		OrderBy("id", Asc).
		Build()

	assert.Equal(t, "SELECT id FROM products ORDER BY discounted_price DESC, id ASC", stmt.SQL)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("products").
		Select("id", "title").
		Where(Eq("category", "Shoes")).
		Where(Ne("id", "p-1")).
		OrderBy("id", Asc).
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t,
		"SELECT id, title FROM products WHERE category = $1 AND id <> $2 ORDER BY id ASC LIMIT $3 OFFSET $4",
		stmt.SQL)
	assert.Equal(t, []any{"Shoes", "p-1", int64(10), int64(20)}, stmt.Args)
}

func TestBuilder_ZeroOffsetIsOmitted(t *testing.T) {
	stmt := From("products").Select("id").Limit(5).Offset(0).Build()

	assert.Equal(t, "SELECT id FROM products LIMIT $1", stmt.SQL)
	assert.Equal(t, []any{int64(5)}, stmt.Args)
}

func TestBuilder_CountDropsPagination(t *testing.T) {
	builder := From("products").
		Select("id", "title").
		Where(Eq("category", "Shoes")).
		OrderBy("title", Asc).
		Limit(50).
		Offset(100)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = $1", countStmt.SQL)
	assert.Equal(t, []any{"Shoes"}, countStmt.Args)

	// the original builder is unchanged
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "LIMIT $2 OFFSET $3")
}

func TestBuilder_Aggregate(t *testing.T) {
	stmt := From("products").
		Where(Eq("category", "Shoes")).
		Aggregate("COUNT(*)", "MIN(discounted_price)::text").
		Build()

	assert.Equal(t, "SELECT COUNT(*), MIN(discounted_price)::text FROM products WHERE category = $1", stmt.SQL)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("id")

	stmt1 := base.Where(Eq("brand", "Nike")).Build()
	stmt2 := base.Where(Eq("category", "Shoes")).Build()

	assert.Contains(t, stmt1.SQL, "brand = $1")
	assert.NotContains(t, stmt1.SQL, "category")
	assert.Contains(t, stmt2.SQL, "category = $1")
	assert.NotContains(t, stmt2.SQL, "brand")
}

func TestCondition_IsTrue(t *testing.T) {
	sql, args := IsTrue("is_bestseller").SQL(3)

	assert.Equal(t, "is_bestseller IS TRUE", sql)
	assert.Empty(t, args)
}
