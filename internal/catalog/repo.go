// File: internal/catalog/repo.go
// PostgreSQL implementation of the catalog Store.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/catalogo-ecom/internal/pkg/query"
)

const queryTimeout = 5 * time.Second

// querier is the subset of pgxpool.Pool and pgx.Tx the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGRepo struct {
	db   querier
	pool *pgxpool.Pool
}

func NewPGRepo(pool *pgxpool.Pool) *PGRepo { return &PGRepo{db: pool, pool: pool} }

var productColumns = []string{
	"id", "title", "short_description",
	"discounted_price::text", "original_price::text",
	"colors", "category", "brand", "display_image", "ratings::text",
	"reviews", "long_description", "overview", "key_features",
	"is_bestseller", "additional_images", "description_image",
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	var discounted, original, ratings string
	err := row.Scan(&p.ID, &p.Title, &p.ShortDescription, &discounted, &original,
		&p.Colors, &p.Category, &p.Brand, &p.DisplayImage, &ratings,
		&p.Reviews, &p.LongDescription, &p.Overview, &p.KeyFeatures,
		&p.IsBestseller, &p.AdditionalImages, &p.DescriptionImage)
	if err != nil {
		return Product{}, err
	}
	if p.DiscountedPrice, err = decimal.NewFromString(discounted); err != nil {
		return Product{}, err
	}
	if p.OriginalPrice, err = decimal.NewFromString(original); err != nil {
		return Product{}, err
	}
	if p.Ratings, err = decimal.NewFromString(ratings); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PGRepo) queryProducts(ctx context.Context, stmt query.Statement) ([]Product, error) {
	rows, err := r.db.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ReadSnapshot runs fn inside a read-only repeatable-read transaction so
// every read of one request sees the same catalog state.
func (r *PGRepo) ReadSnapshot(ctx context.Context, fn func(Store) error) error {
	if r.pool == nil {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&PGRepo{db: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) ListCategories(ctx context.Context) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id::text, name, img FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Img); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func categoryCount(name string) *query.Builder {
	return query.From("categories").Where(query.Eq("name", name)).Count()
}

func (r *PGRepo) CategoryExists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := categoryCount(name).Build()
	var n int
	if err := r.db.QueryRow(ctx, stmt.SQL, stmt.Args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PGRepo) BrandsOf(ctx context.Context, category string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT name FROM brands WHERE category_name=$1 ORDER BY name`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func filterQuery(f Filter) *query.Builder {
	b := query.From("products").Where(query.Eq("category", f.Category))
	if len(f.Brands) > 0 {
		b = b.Where(query.In("brand", f.Brands))
	}
	if f.MinPrice != nil {
		b = b.Where(query.NumericGte("discounted_price", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		b = b.Where(query.NumericLte("discounted_price", *f.MaxPrice))
	}
	return b
}

// orderFor mirrors SortProducts so that pages never overlap; id breaks ties.
// Text keys compare under the "C" collation, which is the byte order
// strings.Compare uses.
func orderFor(b *query.Builder, opt SortOption) *query.Builder {
	switch opt {
	case SortName:
		b = b.OrderBy(`name_key COLLATE "C"`, query.Asc).OrderBy(`title COLLATE "C"`, query.Asc)
	case SortHighestPrice:
		b = b.OrderBy("discounted_price", query.Desc)
	case SortLowestPrice:
		b = b.OrderBy("discounted_price", query.Asc)
	case SortRating:
		b = b.OrderBy("ratings", query.Desc)
	}
	return b.OrderBy(`id COLLATE "C"`, query.Asc)
}

func (r *PGRepo) FindProducts(ctx context.Context, f Filter, page PageRequest) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	b := orderFor(filterQuery(f).Select(productColumns...), page.Sort)
	if page.Limit > 0 {
		b = b.Limit(int64(page.Limit))
	}
	if page.Offset > 0 {
		b = b.Offset(int64(page.Offset))
	}
	return r.queryProducts(ctx, b.Build())
}

func (r *PGRepo) CountAndBounds(ctx context.Context, f Filter) (Aggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := filterQuery(f).
		Aggregate("COUNT(*)", "MIN(discounted_price)::text", "MAX(discounted_price)::text").
		Build()

	var agg Aggregate
	var lo, hi *string
	if err := r.db.QueryRow(ctx, stmt.SQL, stmt.Args...).Scan(&agg.Count, &lo, &hi); err != nil {
		return Aggregate{}, err
	}
	if lo != nil && hi != nil {
		minPrice, err := decimal.NewFromString(*lo)
		if err != nil {
			return Aggregate{}, err
		}
		maxPrice, err := decimal.NewFromString(*hi)
		if err != nil {
			return Aggregate{}, err
		}
		agg.MinPrice, agg.MaxPrice = &minPrice, &maxPrice
	}
	return agg, nil
}

func (r *PGRepo) CategoryProductCounts(ctx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category = c.name
		GROUP BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, rows.Err()
}

func (r *PGRepo) Bestsellers(ctx context.Context, limit int) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := query.From("products").
		Select(productColumns...).
		Where(query.IsTrue("is_bestseller")).
		OrderBy("id", query.Asc).
		Limit(int64(limit)).
		Build()
	return r.queryProducts(ctx, stmt)
}

func (r *PGRepo) GetProduct(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := query.From("products").Select(productColumns...).Where(query.Eq("id", id)).Build()
	p, err := scanProduct(r.db.QueryRow(ctx, stmt.SQL, stmt.Args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) Suggested(ctx context.Context, category, excludeID string, limit int) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := query.From("products").
		Select(productColumns...).
		Where(query.Eq("category", category)).
		Where(query.Ne("id", excludeID)).
		OrderBy("id", query.Asc).
		Limit(int64(limit)).
		Build()
	return r.queryProducts(ctx, stmt)
}
